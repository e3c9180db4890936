package model

import "lagoon/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID           = "id"
	FieldAffiliateID  = "affiliate_id"
	FieldName         = "name"
	FieldLocation     = "location"
	FieldAvailability = "availability"
)

const (
	AvailabilityAvailable   = "Available"
	AvailabilityUnavailable = "Unavailable"
)

type Facility struct {
	ID          string `db:"id"`
	AffiliateID string `db:"affiliate_id"`
	Name        string `db:"name"`
	Location    string `db:"location"`
	Description string `db:"description"`

	// Each tour slot has its own rate and daily start time.
	DayTourPrice   float64 `db:"day_tour_price"`
	DayTourStart   string  `db:"day_tour_start"`
	NightTourPrice float64 `db:"night_tour_price"`
	NightTourStart string  `db:"night_tour_start"`

	AdultEntranceFee float64 `db:"adult_entrance_fee"`
	ChildEntranceFee float64 `db:"child_entrance_fee"`

	// Availability is toggled by the owning affiliate. It is independent of
	// booking state; accepting a booking does not flip it.
	Availability string `db:"availability"`

	model.Metadata
}
