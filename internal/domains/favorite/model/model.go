package model

import "lagoon/shared/model"

const (
	TableName  = "favorites"
	EntityName = "favorite"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldFacilityID = "facility_id"
)

type Favorite struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	FacilityID string `db:"facility_id"`
	model.Metadata
}
