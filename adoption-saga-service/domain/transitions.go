package domain

import "github.com/shelterly/adoption-system/shared/events"

// transitions is the single source of truth for which events an adoption
// process accepts in each state and where each event leads. Legality checks
// fall out of table lookup; an event missing from the current state's row is
// a duplicate or out-of-order delivery and is rejected.
var transitions = map[ProcessStatus]map[string]ProcessStatus{
	StatusReserving: {
		events.AnimalReservedEvent:          StatusCreatingChat,
		events.AnimalReservationFailedEvent: StatusFinal,
	},
	StatusCreatingChat: {
		events.ConversationCreatedEvent:        StatusWaitingForAdoption,
		events.ConversationCreationFailedEvent: StatusCompensating,
	},
	StatusWaitingForAdoption: {
		events.AdoptionConfirmedEvent: StatusAdopting,
		events.AdoptionRejectedEvent:  StatusCompensating,
	},
	StatusAdopting: {
		events.AdoptionFinalizedEvent:          StatusFinal,
		events.AdoptionFinalizationFailedEvent: StatusCompensating,
	},
	StatusCompensating: {
		events.AnimalReleasedEvent: StatusFinal,
	},
	// StatusFinal accepts nothing.
	StatusFinal: {},
}

// NextStatus returns the target state for eventType in the given state.
func NextStatus(status ProcessStatus, eventType string) (ProcessStatus, bool) {
	edges, ok := transitions[status]
	if !ok {
		return "", false
	}
	next, ok := edges[eventType]
	return next, ok
}

// CanApply reports whether eventType is legal in the given state.
func CanApply(status ProcessStatus, eventType string) bool {
	_, ok := NextStatus(status, eventType)
	return ok
}

// IsTerminal reports whether no further events are accepted in the state.
func IsTerminal(status ProcessStatus) bool {
	return len(transitions[status]) == 0
}

// Statuses lists every declared process state.
func Statuses() []ProcessStatus {
	return []ProcessStatus{
		StatusReserving,
		StatusCreatingChat,
		StatusWaitingForAdoption,
		StatusAdopting,
		StatusCompensating,
		StatusFinal,
	}
}
