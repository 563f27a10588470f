package domain

import (
	"testing"

	"github.com/shelterly/adoption-system/shared/events"
	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    ProcessStatus
		eventType string
		want      ProcessStatus
		legal     bool
	}{
		{"reserved while reserving", StatusReserving, events.AnimalReservedEvent, StatusCreatingChat, true},
		{"reservation failed while reserving", StatusReserving, events.AnimalReservationFailedEvent, StatusFinal, true},
		{"conversation created while creating chat", StatusCreatingChat, events.ConversationCreatedEvent, StatusWaitingForAdoption, true},
		{"conversation failed while creating chat", StatusCreatingChat, events.ConversationCreationFailedEvent, StatusCompensating, true},
		{"confirmed while waiting", StatusWaitingForAdoption, events.AdoptionConfirmedEvent, StatusAdopting, true},
		{"rejected while waiting", StatusWaitingForAdoption, events.AdoptionRejectedEvent, StatusCompensating, true},
		{"finalized while adopting", StatusAdopting, events.AdoptionFinalizedEvent, StatusFinal, true},
		{"finalization failed while adopting", StatusAdopting, events.AdoptionFinalizationFailedEvent, StatusCompensating, true},
		{"released while compensating", StatusCompensating, events.AnimalReleasedEvent, StatusFinal, true},

		{"reserved while waiting", StatusWaitingForAdoption, events.AnimalReservedEvent, "", false},
		{"confirmed while reserving", StatusReserving, events.AdoptionConfirmedEvent, "", false},
		{"released outside compensation", StatusAdopting, events.AnimalReleasedEvent, "", false},
		{"anything in final", StatusFinal, events.AnimalReservedEvent, "", false},
		{"unknown state", ProcessStatus("bogus"), events.AnimalReservedEvent, "", false},
		{"unknown event", StatusReserving, "animal.groomed", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := NextStatus(tt.status, tt.eventType)
			assert.Equal(t, tt.legal, ok)
			if tt.legal {
				assert.Equal(t, tt.want, next)
			}
			assert.Equal(t, tt.legal, CanApply(tt.status, tt.eventType))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusFinal))

	for _, status := range Statuses() {
		if status == StatusFinal {
			continue
		}
		assert.False(t, IsTerminal(status), "state %s should accept events", status)
	}
}

// Every edge in the table must point at a declared state, and every
// non-terminal state must have at least one path that can reach final.
func TestTransitionTableIsClosed(t *testing.T) {
	declared := make(map[ProcessStatus]bool)
	for _, status := range Statuses() {
		declared[status] = true
	}

	for status, edges := range transitions {
		assert.True(t, declared[status], "state %s is not declared", status)
		for eventType, next := range edges {
			assert.True(t, declared[next],
				"event %s in state %s leads to undeclared state %s", eventType, status, next)
		}
	}

	// Reachability: walk the table from every state; all roads lead to final.
	for _, start := range Statuses() {
		seen := map[ProcessStatus]bool{start: true}
		frontier := []ProcessStatus{start}
		reachedFinal := start == StatusFinal

		for len(frontier) > 0 {
			current := frontier[0]
			frontier = frontier[1:]
			for _, next := range transitions[current] {
				if next == StatusFinal {
					reachedFinal = true
				}
				if !seen[next] {
					seen[next] = true
					frontier = append(frontier, next)
				}
			}
		}

		assert.True(t, reachedFinal, "state %s cannot reach a terminal state", start)
	}
}
