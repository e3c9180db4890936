package model

import (
	"time"

	"lagoon/shared/model"
)

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID         = "id"
	FieldEntity     = "entity"
	FieldEntityID   = "entity_id"
	FieldAction     = "action"
	FieldActorID    = "actor_id"
	FieldDetail     = "detail"
	FieldOccurredAt = "occurred_at"
)

// Entry is one immutable audit record. Entries are append-only: no update or
// delete path exists for them.
type Entry struct {
	ID         string    `db:"id"`
	Entity     string    `db:"entity"`
	EntityID   string    `db:"entity_id"`
	Action     string    `db:"action"`
	ActorID    string    `db:"actor_id"`
	Detail     string    `db:"detail"`
	OccurredAt time.Time `db:"occurred_at"`
	model.Metadata
}
