package model

import (
	"math"
	"time"

	"lagoon/shared/constant"
	"lagoon/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldFacilityID   = "facility_id"
	FieldAffiliateID  = "affiliate_id"
	FieldCustomerID   = "customer_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTourTime     = "tour_time"
	FieldStatus       = "status"
	FieldIsDeleted    = "is_deleted"
)

// Status is the closed set of booking lifecycle states.
type Status string

const (
	StatusPending    Status = "pending"
	StatusApproved   Status = "approved"
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
	StatusCompleted  Status = "completed"
	StatusDeclined   Status = "declined"
)

// transitions is the full state machine: each status maps to the set of
// states it may move to. Declined is terminal (soft delete is a flag, not a
// status), as is completed.
var transitions = map[Status][]Status{
	StatusPending:    {StatusApproved, StatusDeclined},
	StatusApproved:   {StatusCheckedIn},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {StatusCompleted},
}

// CanTransitionTo reports whether the status machine allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// TourTime selects which of a facility's two price slots applies.
type TourTime string

const (
	TourTimeDay   TourTime = "day_tour"
	TourTimeNight TourTime = "night_tour"
)

type Booking struct {
	ID          string  `db:"id"`
	FacilityID  string  `db:"facility_id"`
	AffiliateID string  `db:"affiliate_id"`
	CustomerID  *string `db:"customer_id"`

	// Inline payer identity for bookings made without an account. Exactly one
	// of CustomerID or the guest fields is set, never both.
	GuestName    *string `db:"guest_name"`
	GuestEmail   *string `db:"guest_email"`
	GuestPhone   *string `db:"guest_phone"`
	GuestAddress *string `db:"guest_address"`

	// Dates are nullable because declining a booking clears them, which is
	// what releases the slot for subsequent conflict checks.
	CheckInDate  *time.Time `db:"check_in_date"`
	CheckOutDate *time.Time `db:"check_out_date"`

	TourTime    TourTime `db:"tour_time"`
	AdultGuests int      `db:"adult_guests"`
	ChildGuests int      `db:"child_guests"`

	TotalAmount     float64 `db:"total_amount"`
	ReferenceNumber string  `db:"reference_number"`
	AmountPaid      float64 `db:"amount_paid"`

	Status    Status `db:"status"`
	IsDeleted bool   `db:"is_deleted"`

	// Snapshots taken at booking time so the record stays displayable after
	// the facility or affiliate is edited. Intentionally never resynchronized.
	FacilityName   string `db:"facility_name"`
	AffiliateName  string `db:"affiliate_name"`
	AffiliateEmail string `db:"affiliate_email"`
	AffiliatePhone string `db:"affiliate_phone"`

	model.Metadata
}

// StayDays counts billable days for an inclusive [checkIn, checkOut] range:
// ceil of the interval in days, plus one. A same-day stay therefore bills a
// full day. The +1 is the product's defined contract, not an accident; do not
// change it without a pricing decision.
func StayDays(checkIn, checkOut time.Time) int {
	deltaMillis := checkOut.Sub(checkIn).Milliseconds()

	return int(math.Ceil(float64(deltaMillis)/float64(constant.MillisPerDay))) + 1
}

// Rates is the pricing slice of a facility a quote needs.
type Rates struct {
	DayTourPrice     float64
	NightTourPrice   float64
	AdultEntranceFee float64
	ChildEntranceFee float64
}

// Quote prices a stay: the chosen tour slot's rate per day for every billable
// day, plus a one-time entrance fee per guest.
func Quote(rates Rates, tourTime TourTime, days, adultGuests, childGuests int) float64 {
	unitPrice := rates.DayTourPrice
	if tourTime == TourTimeNight {
		unitPrice = rates.NightTourPrice
	}

	tourTotal := unitPrice * float64(days)
	entranceTotal := float64(adultGuests)*rates.AdultEntranceFee + float64(childGuests)*rates.ChildEntranceFee

	return tourTotal + entranceTotal
}

// amountTolerance absorbs float rounding when comparing payment amounts.
const amountTolerance = 0.01

// AcceptedAmount reports whether paid settles a quote of total: either the
// full amount or the downpayment fraction of it.
func AcceptedAmount(paid, total, downpaymentRate float64) bool {
	return math.Abs(paid-total) <= amountTolerance ||
		math.Abs(paid-total*downpaymentRate) <= amountTolerance
}

// Overlaps reports whether the inclusive date ranges [aIn, aOut] and
// [bIn, bOut] intersect. Ranges sharing a single endpoint overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}

// Blocks reports whether this booking occupies [checkIn, checkOut] for
// conflict purposes. Declined and soft-deleted bookings release their slot,
// as do bookings whose dates were cleared.
func (b Booking) Blocks(checkIn, checkOut time.Time) bool {
	if b.Status == StatusDeclined || b.IsDeleted {
		return false
	}

	if b.CheckInDate == nil || b.CheckOutDate == nil {
		return false
	}

	return Overlaps(checkIn, checkOut, *b.CheckInDate, *b.CheckOutDate)
}
