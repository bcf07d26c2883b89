package domain

import "time"

// Announcement is immutable after creation.
type Announcement struct {
	ID                 int32     `json:"id"`
	ClubID             int32     `json:"club_id"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	CreatedByManagerID int32     `json:"created_by_manager_id"`
	CreatedAt          time.Time `json:"created_at"`
}
