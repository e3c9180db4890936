package model

import "lagoon/shared/model"

const (
	TableName  = "galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldFacilityID  = "facility_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImages      = "images"
)

// Gallery is a set of photos attached to one facility, managed by the
// facility's affiliate.
type Gallery struct {
	ID          string   `db:"id"`
	FacilityID  string   `db:"facility_id"`
	Title       string   `db:"title"`
	Description string   `db:"description"`
	Images      []string `db:"images"`
	model.Metadata
}
