package domain

import "time"

type Membership struct {
	ID        int32     `json:"id"`
	ClubID    int32     `json:"club_id"`
	AccountID int32     `json:"account_id"`
	JoinedAt  time.Time `json:"joined_at"`
	IsActive  bool      `json:"is_active"`
}

type MembershipApplicationStatus string

const (
	MembershipApplicationStatusPending   MembershipApplicationStatus = "PENDING"
	MembershipApplicationStatusApproved  MembershipApplicationStatus = "APPROVED"
	MembershipApplicationStatusRejected  MembershipApplicationStatus = "REJECTED"
	MembershipApplicationStatusCancelled MembershipApplicationStatus = "CANCELLED"
)

type MembershipApplication struct {
	ID                 int32                       `json:"id"`
	ClubID             int32                       `json:"club_id"`
	AccountID          int32                       `json:"account_id"`
	Status             MembershipApplicationStatus `json:"status"`
	Message            string                      `json:"message"`
	CreatedAt          time.Time                   `json:"created_at"`
	DecidedAt          *time.Time                  `json:"decided_at,omitempty"`
	DecidedByManagerID *int32                      `json:"decided_by_manager_id,omitempty"`
	DecisionReason     string                      `json:"decision_reason"`
}
