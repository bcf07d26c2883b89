package domain

import "time"

type EventStatus string

const (
	EventStatusPendingApproval EventStatus = "PENDING_APPROVAL"
	EventStatusApproved        EventStatus = "APPROVED"
	EventStatusRejected        EventStatus = "REJECTED"
	// EventStatusCancelled exists in the data model but no route produces it.
	EventStatusCancelled EventStatus = "CANCELLED"
)

type Event struct {
	ID                   int32       `json:"id"`
	ClubID               int32       `json:"club_id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Location             string      `json:"location"`
	StartAt              time.Time   `json:"start_at"`
	EndAt                time.Time   `json:"end_at"`
	Capacity             *int32      `json:"capacity,omitempty"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	Status               EventStatus `json:"status"`
	AdminComment         string      `json:"admin_comment"`
	DecidedByAdminID     *int32      `json:"decided_by_admin_id,omitempty"`
	CreatedByManagerID   int32       `json:"created_by_manager_id"`
	CreatedAt            time.Time   `json:"created_at"`
	DecidedAt            *time.Time  `json:"decided_at,omitempty"`
}

type EventRegistrationStatus string

const (
	EventRegistrationStatusRegistered EventRegistrationStatus = "REGISTERED"
	EventRegistrationStatusCancelled  EventRegistrationStatus = "CANCELLED"
)

// EventRegistration is unique per (event, account); cancelling and
// re-registering reuses the same row.
type EventRegistration struct {
	ID           int32                   `json:"id"`
	EventID      int32                   `json:"event_id"`
	AccountID    int32                   `json:"account_id"`
	Status       EventRegistrationStatus `json:"status"`
	RegisteredAt time.Time               `json:"registered_at"`
	CancelledAt  *time.Time              `json:"cancelled_at,omitempty"`
}
