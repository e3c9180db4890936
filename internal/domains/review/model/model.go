package model

import "lagoon/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldFacilityID = "facility_id"
	FieldAffiliate  = "affiliate_id"
	FieldCustomerID = "customer_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
)

// Review is a customer's one-time verdict on a facility, allowed only after a
// completed stay. One review per customer per facility.
type Review struct {
	ID          string `db:"id"`
	FacilityID  string `db:"facility_id"`
	AffiliateID string `db:"affiliate_id"`
	CustomerID  string `db:"customer_id"`
	Rating      int    `db:"rating"`
	Comment     string `db:"comment"`
	model.Metadata
}
