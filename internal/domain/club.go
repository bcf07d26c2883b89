package domain

import "time"

type ClubStatus string

const (
	ClubStatusPending  ClubStatus = "PENDING"
	ClubStatusApproved ClubStatus = "APPROVED"
	ClubStatusRejected ClubStatus = "REJECTED"
	ClubStatusInactive ClubStatus = "INACTIVE"
)

type Club struct {
	ID                 int32      `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	ContactEmail       string     `json:"contact_email"`
	Status             ClubStatus `json:"status"`
	ApplicantAccountID int32      `json:"applicant_account_id"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	RejectedAt         *time.Time `json:"rejected_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ClubManager is a separate principal kind with its own credential state.
// At most one manager exists per club.
type ClubManager struct {
	ID           int32     `json:"id"`
	ClubID       int32     `json:"club_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
