package jobs

import (
	"context"
	"fmt"
	"time"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
)

// SendEventReminders creates one EVENT_REMINDER notification per active
// registration on approved events starting within the next 24 hours.
func (jr *JobRunner) SendEventReminders() {
	jr.runWithRecovery("SendEventReminders", func() {
		ctx := context.Background()
		now := jr.clk.Now()

		events, err := jr.store.Events().ListApprovedStartingBetween(ctx, now, now.Add(24*time.Hour))
		if err != nil {
			logger.Error("list upcoming events failed", "error", err)
			return
		}

		for _, event := range events {
			registrations, err := jr.store.EventRegistrations().ListByEvent(ctx, event.ID)
			if err != nil {
				logger.Error("list registrations failed", "event_id", event.ID, "error", err)
				continue
			}
			for _, reg := range registrations {
				if reg.Status != domain.EventRegistrationStatusRegistered {
					continue
				}
				// Overlapping lookahead windows must not double-notify.
				sent, err := jr.store.Notifications().ExistsForObject(ctx, reg.AccountID, domain.NotificationTypeEventReminder, "event", event.ID)
				if err != nil {
					logger.Error("check existing reminder failed", "event_id", event.ID, "account_id", reg.AccountID, "error", err)
					continue
				}
				if sent {
					continue
				}
				note := &domain.Notification{
					AccountID:         reg.AccountID,
					Type:              domain.NotificationTypeEventReminder,
					Title:             "Event reminder: " + event.Title,
					Body:              fmt.Sprintf("%q starts at %s in %s.", event.Title, event.StartAt.Format(time.RFC1123), event.Location),
					RelatedObjectType: "event",
					RelatedObjectID:   &event.ID,
					CreatedAt:         now,
				}
				if err := jr.store.Notifications().Create(ctx, note); err != nil {
					logger.Error("create reminder failed", "event_id", event.ID, "account_id", reg.AccountID, "error", err)
				}
			}
		}
	})
}
