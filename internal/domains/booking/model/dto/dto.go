package dto

import (
	"time"

	"github.com/google/uuid"
	"lagoon/internal/domains/booking/model"
	"lagoon/shared"
	"lagoon/shared/constant"
	gDto "lagoon/shared/dto"
	gModel "lagoon/shared/model"
	"lagoon/shared/timezone"
)

type CreateBookingRequest struct {
	FacilityID      string  `json:"facility_id"      validate:"required"`
	CheckInDate     string  `json:"check_in_date"    validate:"required"`
	CheckOutDate    string  `json:"check_out_date"   validate:"required"`
	TourTime        string  `json:"tour_time"        validate:"required,oneof=day_tour night_tour"`
	AdultGuests     int     `json:"adult_guests"     validate:"min=0"`
	ChildGuests     int     `json:"child_guests"     validate:"min=0"`
	ReferenceNumber string  `json:"reference_number" validate:"required,max=100"`
	AmountPaid      float64 `json:"amount_paid"      validate:"required"`
	GuestName       string  `json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string  `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string  `json:"guest_phone"      validate:"omitempty,max=20"`
	GuestAddress    string  `json:"guest_address"    validate:"omitempty,max=200"`
}

// Dates parses the date-only request fields.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, c.CheckOutDate)

	return checkIn, checkOut, err
}

// HasGuestDetails reports whether the request carries any inline payer
// identity field instead of relying on an authenticated customer.
func (c *CreateBookingRequest) HasGuestDetails() bool {
	return c.GuestName != constant.Empty ||
		c.GuestEmail != constant.Empty ||
		c.GuestPhone != constant.Empty ||
		c.GuestAddress != constant.Empty
}

// HasCompleteGuestDetails reports whether every snapshot field an anonymous
// booking needs is present. A booking stores these as its only record of who
// paid, so a partial identity is as unusable as none.
func (c *CreateBookingRequest) HasCompleteGuestDetails() bool {
	return c.GuestName != constant.Empty &&
		c.GuestEmail != constant.Empty &&
		c.GuestPhone != constant.Empty &&
		c.GuestAddress != constant.Empty
}

// BookingContext carries the facility-derived values a booking request cannot
// know by itself: the owning affiliate, the computed total, and the display
// snapshots taken at booking time.
type BookingContext struct {
	AffiliateID    string
	TotalAmount    float64
	FacilityName   string
	AffiliateName  string
	AffiliateEmail string
	AffiliatePhone string
}

func (c *CreateBookingRequest) ToModel(bCtx BookingContext, customerID *string, user string) (model.Booking, error) {
	checkIn, checkOut, err := c.Dates()
	if err != nil {
		return model.Booking{}, err
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		FacilityID:      c.FacilityID,
		AffiliateID:     bCtx.AffiliateID,
		CustomerID:      customerID,
		CheckInDate:     &checkIn,
		CheckOutDate:    &checkOut,
		TourTime:        model.TourTime(c.TourTime),
		AdultGuests:     c.AdultGuests,
		ChildGuests:     c.ChildGuests,
		TotalAmount:     bCtx.TotalAmount,
		ReferenceNumber: c.ReferenceNumber,
		AmountPaid:      c.AmountPaid,
		Status:          model.StatusPending,
		FacilityName:    bCtx.FacilityName,
		AffiliateName:   bCtx.AffiliateName,
		AffiliateEmail:  bCtx.AffiliateEmail,
		AffiliatePhone:  bCtx.AffiliatePhone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if customerID == nil {
		booking.GuestName = &c.GuestName
		booking.GuestEmail = &c.GuestEmail
		booking.GuestPhone = &c.GuestPhone
		booking.GuestAddress = &c.GuestAddress
	}

	return booking, nil
}

type BookingResponse struct {
	ID              string  `json:"id"`
	FacilityID      string  `json:"facility_id"`
	AffiliateID     string  `json:"affiliate_id"`
	CustomerID      *string `json:"customer_id,omitempty"`
	GuestName       *string `json:"guest_name,omitempty"`
	GuestEmail      *string `json:"guest_email,omitempty"`
	GuestPhone      *string `json:"guest_phone,omitempty"`
	GuestAddress    *string `json:"guest_address,omitempty"`
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	TourTime        string  `json:"tour_time"`
	AdultGuests     int     `json:"adult_guests"`
	ChildGuests     int     `json:"child_guests"`
	TotalAmount     float64 `json:"total_amount"`
	ReferenceNumber string  `json:"reference_number"`
	AmountPaid      float64 `json:"amount_paid"`
	Status          string  `json:"status"`
	IsDeleted       bool    `json:"is_deleted"`
	FacilityName    string  `json:"facility_name"`
	AffiliateName   string  `json:"affiliate_name"`
	AffiliateEmail  string  `json:"affiliate_email"`
	AffiliatePhone  string  `json:"affiliate_phone"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.FacilityID = mod.FacilityID
	r.AffiliateID = mod.AffiliateID
	r.CustomerID = mod.CustomerID
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail
	r.GuestPhone = mod.GuestPhone
	r.GuestAddress = mod.GuestAddress
	r.CheckInDate = formatDate(mod.CheckInDate)
	r.CheckOutDate = formatDate(mod.CheckOutDate)
	r.TourTime = string(mod.TourTime)
	r.AdultGuests = mod.AdultGuests
	r.ChildGuests = mod.ChildGuests
	r.TotalAmount = mod.TotalAmount
	r.ReferenceNumber = mod.ReferenceNumber
	r.AmountPaid = mod.AmountPaid
	r.Status = string(mod.Status)
	r.IsDeleted = mod.IsDeleted
	r.FacilityName = mod.FacilityName
	r.AffiliateName = mod.AffiliateName
	r.AffiliateEmail = mod.AffiliateEmail
	r.AffiliatePhone = mod.AffiliatePhone
	r.Metadata.FromModel(mod.Metadata)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := t.Format(constant.DateOnlyFormat)

	return &formatted
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
