package domain

import "time"

type AuditActorKind string

const (
	AuditActorKindAdmin   AuditActorKind = "USER_ADMIN"
	AuditActorKindManager AuditActorKind = "CLUB_MANAGER"
)

// AuditLog entries are append-only and never mutated.
type AuditLog struct {
	ID         int32          `json:"id"`
	ActorKind  AuditActorKind `json:"actor_kind"`
	ActorID    int32          `json:"actor_id"`
	Action     string         `json:"action"`
	ObjectType string         `json:"object_type"`
	ObjectID   int32          `json:"object_id"`
	Details    string         `json:"details"`
	CreatedAt  time.Time      `json:"created_at"`
}
