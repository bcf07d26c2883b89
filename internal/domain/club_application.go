package domain

import "time"

type ClubApplicationStatus string

const (
	ClubApplicationStatusPending  ClubApplicationStatus = "PENDING"
	ClubApplicationStatusApproved ClubApplicationStatus = "APPROVED"
	ClubApplicationStatusRejected ClubApplicationStatus = "REJECTED"
)

type ClubApplication struct {
	ID                  int32                 `json:"id"`
	ApplicantAccountID  int32                 `json:"applicant_account_id"`
	ProposedName        string                `json:"proposed_name"`
	ProposedDescription string                `json:"proposed_description"`
	ProposedCategory    string                `json:"proposed_category"`
	FoundersNote        string                `json:"founders_note"`
	Status              ClubApplicationStatus `json:"status"`
	AdminComment        string                `json:"admin_comment"`
	CreatedAt           time.Time             `json:"created_at"`
	DecidedAt           *time.Time            `json:"decided_at,omitempty"`
	DecidedByAdminID    *int32                `json:"decided_by_admin_id,omitempty"`
}

type InvitationStatus string

const (
	InvitationStatusInvited  InvitationStatus = "INVITED"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusRejected InvitationStatus = "REJECTED"
)

// FounderInvitation is mutable only while its parent application is PENDING.
type FounderInvitation struct {
	ID               int32            `json:"id"`
	ApplicationID    int32            `json:"application_id"`
	InvitedAccountID int32            `json:"invited_account_id"`
	Status           InvitationStatus `json:"status"`
	RespondedAt      *time.Time       `json:"responded_at,omitempty"`
}
