package events

import "github.com/shelterly/adoption-system/shared/models"

// Message payloads exchanged between the adoption saga service and its
// participants. Every message of one adoption attempt carries the process ID
// as the event correlation ID; the payloads repeat it so consumers do not
// depend on transport metadata.

type AdoptionStartedData struct {
	ProcessID          models.ID `json:"process_id"`
	AnimalID           models.ID `json:"animal_id"`
	CustodianID        models.ID `json:"custodian_id"`
	AdopterID          models.ID `json:"adopter_id"`
	AdopterDisplayName string    `json:"adopter_display_name"`
	AnimalDisplayName  string    `json:"animal_display_name"`
}

type AnimalReserveRequestedData struct {
	ProcessID   models.ID `json:"process_id"`
	AnimalID    models.ID `json:"animal_id"`
	CustodianID models.ID `json:"custodian_id"`
	AdopterID   models.ID `json:"adopter_id"`
}

type AnimalReservedData struct {
	ProcessID models.ID `json:"process_id"`
	AnimalID  models.ID `json:"animal_id"`
}

type AnimalReservationFailedData struct {
	ProcessID models.ID `json:"process_id"`
	AnimalID  models.ID `json:"animal_id"`
	Reason    string    `json:"reason"`
}

type AnimalReleaseRequestedData struct {
	ProcessID   models.ID `json:"process_id"`
	AnimalID    models.ID `json:"animal_id"`
	CustodianID models.ID `json:"custodian_id"`
}

type AnimalReleasedData struct {
	ProcessID models.ID `json:"process_id"`
	AnimalID  models.ID `json:"animal_id"`
}

type ConversationCreateRequestedData struct {
	ProcessID         models.ID `json:"process_id"`
	AnimalID          models.ID `json:"animal_id"`
	CustodianID       models.ID `json:"custodian_id"`
	AdopterID         models.ID `json:"adopter_id"`
	AnimalDisplayName string    `json:"animal_display_name"`
}

type ConversationCreatedData struct {
	ProcessID      models.ID `json:"process_id"`
	ConversationID models.ID `json:"conversation_id"`
}

type ConversationCreationFailedData struct {
	ProcessID models.ID `json:"process_id"`
	Reason    string    `json:"reason"`
}

type AdoptionConfirmedData struct {
	ProcessID   models.ID `json:"process_id"`
	ConfirmedBy models.ID `json:"confirmed_by"`
}

type AdoptionRejectedData struct {
	ProcessID  models.ID `json:"process_id"`
	RejectedBy models.ID `json:"rejected_by"`
	Reason     string    `json:"reason,omitempty"`
}

type AdoptionFinalizeRequestedData struct {
	ProcessID   models.ID `json:"process_id"`
	AnimalID    models.ID `json:"animal_id"`
	CustodianID models.ID `json:"custodian_id"`
	AdopterID   models.ID `json:"adopter_id"`
}

type AdoptionFinalizedData struct {
	ProcessID models.ID `json:"process_id"`
	AnimalID  models.ID `json:"animal_id"`
}

type AdoptionFinalizationFailedData struct {
	ProcessID models.ID `json:"process_id"`
	AnimalID  models.ID `json:"animal_id"`
	Reason    string    `json:"reason"`
}

type NotificationRequestedData struct {
	RecipientID models.ID         `json:"recipient_id"`
	Template    string            `json:"template"`
	Params      map[string]string `json:"params,omitempty"`
}

// Notification templates published by the saga.
const (
	NotificationTemplateChatReadyAdopter   = "adoption_chat_ready_adopter"
	NotificationTemplateChatReadyCustodian = "adoption_chat_ready_custodian"
	NotificationTemplateAdoptionCompleted  = "adoption_completed"
)
