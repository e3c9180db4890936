package dto

import (
	"time"

	"lagoon/internal/domains/auditlog/model"
	"lagoon/shared"
	gDto "lagoon/shared/dto"
)

type EntryResponse struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
	ActorID    string `json:"actor_id"`
	Detail     string `json:"detail"`
	OccurredAt string `json:"occurred_at"`
	gDto.Metadata
}

func (r *EntryResponse) FromModel(mod model.Entry) {
	r.ID = mod.ID
	r.Entity = mod.Entity
	r.EntityID = mod.EntityID
	r.Action = mod.Action
	r.ActorID = mod.ActorID
	r.Detail = mod.Detail
	r.OccurredAt = mod.OccurredAt.Format(time.RFC3339)
	r.Metadata.FromModel(mod.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
