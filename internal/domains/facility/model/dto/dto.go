package dto

import (
	"lagoon/internal/domains/facility/model"
	"lagoon/shared"
	gDto "lagoon/shared/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"

	"github.com/google/uuid"
)

type CreateFacilityRequest struct {
	Name             string  `json:"name"               validate:"required,max=100"`
	Location         string  `json:"location"           validate:"omitempty,max=200"`
	Description      string  `json:"description"        validate:"omitempty"`
	DayTourPrice     float64 `json:"day_tour_price"     validate:"required,gte=0"`
	DayTourStart     string  `json:"day_tour_start"     validate:"omitempty,max=20"`
	NightTourPrice   float64 `json:"night_tour_price"   validate:"required,gte=0"`
	NightTourStart   string  `json:"night_tour_start"   validate:"omitempty,max=20"`
	AdultEntranceFee float64 `json:"adult_entrance_fee" validate:"omitempty,gte=0"`
	ChildEntranceFee float64 `json:"child_entrance_fee" validate:"omitempty,gte=0"`
}

func (c *CreateFacilityRequest) ToModel(affiliateID string) model.Facility {
	return model.Facility{
		ID:               uuid.NewString(),
		AffiliateID:      affiliateID,
		Name:             c.Name,
		Location:         c.Location,
		Description:      c.Description,
		DayTourPrice:     c.DayTourPrice,
		DayTourStart:     c.DayTourStart,
		NightTourPrice:   c.NightTourPrice,
		NightTourStart:   c.NightTourStart,
		AdultEntranceFee: c.AdultEntranceFee,
		ChildEntranceFee: c.ChildEntranceFee,
		Availability:     model.AvailabilityAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  affiliateID,
			ModifiedBy: affiliateID,
		},
	}
}

type UpdateFacilityRequest struct {
	Name             string   `db:"name"               json:"name"               validate:"omitempty,max=100"`
	Location         string   `db:"location"           json:"location"           validate:"omitempty,max=200"`
	Description      string   `db:"description"        json:"description"        validate:"omitempty"`
	DayTourPrice     *float64 `db:"day_tour_price"     json:"day_tour_price"     validate:"omitempty,gte=0"`
	DayTourStart     string   `db:"day_tour_start"     json:"day_tour_start"     validate:"omitempty,max=20"`
	NightTourPrice   *float64 `db:"night_tour_price"   json:"night_tour_price"   validate:"omitempty,gte=0"`
	NightTourStart   string   `db:"night_tour_start"   json:"night_tour_start"   validate:"omitempty,max=20"`
	AdultEntranceFee *float64 `db:"adult_entrance_fee" json:"adult_entrance_fee" validate:"omitempty,gte=0"`
	ChildEntranceFee *float64 `db:"child_entrance_fee" json:"child_entrance_fee" validate:"omitempty,gte=0"`
	Availability     string   `db:"availability"       json:"availability"       validate:"omitempty,oneof=Available Unavailable"`
}

type FacilityResponse struct {
	ID               string  `json:"id"`
	AffiliateID      string  `json:"affiliate_id"`
	Name             string  `json:"name"`
	Location         string  `json:"location"`
	Description      string  `json:"description"`
	DayTourPrice     float64 `json:"day_tour_price"`
	DayTourStart     string  `json:"day_tour_start"`
	NightTourPrice   float64 `json:"night_tour_price"`
	NightTourStart   string  `json:"night_tour_start"`
	AdultEntranceFee float64 `json:"adult_entrance_fee"`
	ChildEntranceFee float64 `json:"child_entrance_fee"`
	Availability     string  `json:"availability"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.AffiliateID = model.AffiliateID
	r.Name = model.Name
	r.Location = model.Location
	r.Description = model.Description
	r.DayTourPrice = model.DayTourPrice
	r.DayTourStart = model.DayTourStart
	r.NightTourPrice = model.NightTourPrice
	r.NightTourStart = model.NightTourStart
	r.AdultEntranceFee = model.AdultEntranceFee
	r.ChildEntranceFee = model.ChildEntranceFee
	r.Availability = model.Availability
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
