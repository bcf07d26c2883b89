package domain

import "time"

type NotificationType string

const (
	NotificationTypeMembershipDecision NotificationType = "MEMBERSHIP_DECISION"
	NotificationTypeAnnouncement       NotificationType = "ANNOUNCEMENT"
	NotificationTypeClubAppDecision    NotificationType = "CLUB_APP_DECISION"
	NotificationTypeEventStatus        NotificationType = "EVENT_STATUS"
	NotificationTypeFounderInvite      NotificationType = "FOUNDER_INVITE"
	NotificationTypeFounderResponse    NotificationType = "FOUNDER_RESPONSE"
	NotificationTypeEventReminder      NotificationType = "EVENT_REMINDER"
)

// Notification is append-only; only is_read is ever mutated.
type Notification struct {
	ID                int32            `json:"id"`
	AccountID         int32            `json:"account_id"`
	Type              NotificationType `json:"type"`
	Title             string           `json:"title"`
	Body              string           `json:"body"`
	IsRead            bool             `json:"is_read"`
	RelatedObjectType string           `json:"related_object_type,omitempty"`
	RelatedObjectID   *int32           `json:"related_object_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
}
