package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lagoon/internal/domains/booking/model"
)

func date(day int) time.Time {
	return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from model.Status
		to   model.Status
		want bool
	}{
		{"pending to approved", model.StatusPending, model.StatusApproved, true},
		{"pending to declined", model.StatusPending, model.StatusDeclined, true},
		{"pending to checked-in", model.StatusPending, model.StatusCheckedIn, false},
		{"approved to checked-in", model.StatusApproved, model.StatusCheckedIn, true},
		{"approved to declined", model.StatusApproved, model.StatusDeclined, false},
		{"checked-in to checked-out", model.StatusCheckedIn, model.StatusCheckedOut, true},
		{"checked-out to completed", model.StatusCheckedOut, model.StatusCompleted, true},
		{"completed is terminal", model.StatusCompleted, model.StatusPending, false},
		{"declined is terminal", model.StatusDeclined, model.StatusApproved, false},
		{"no skipping ahead", model.StatusApproved, model.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStayDays(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"same day bills one day", date(10), date(10), 1},
		{"one night bills two days", date(10), date(11), 2},
		{"week-long stay", date(10), date(16), 7},
		{"partial day rounds up", date(10), date(10).Add(6 * time.Hour), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.StayDays(tt.checkIn, tt.checkOut))
		})
	}
}

func TestQuote(t *testing.T) {
	rates := model.Rates{
		DayTourPrice:     1000,
		NightTourPrice:   1500,
		AdultEntranceFee: 100,
		ChildEntranceFee: 50,
	}

	tests := []struct {
		name     string
		tourTime model.TourTime
		days     int
		adults   int
		children int
		want     float64
	}{
		{"day tour single day", model.TourTimeDay, 1, 2, 0, 1200},
		{"night tour single day", model.TourTimeNight, 1, 2, 0, 1700},
		{"multi-day stay bills the slot per day", model.TourTimeDay, 3, 2, 1, 3250},
		{"entrance fees are charged once", model.TourTimeNight, 2, 1, 1, 3150},
		{"no guests still bills the slot", model.TourTimeDay, 2, 0, 0, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.Quote(rates, tt.tourTime, tt.days, tt.adults, tt.children), 0.001)
		})
	}
}

func TestAcceptedAmount(t *testing.T) {
	tests := []struct {
		name            string
		paid            float64
		total           float64
		downpaymentRate float64
		want            bool
	}{
		{"full payment", 1200, 1200, 0.5, true},
		{"exact downpayment", 600, 1200, 0.5, true},
		{"within tolerance of full", 1199.995, 1200, 0.5, true},
		{"within tolerance of downpayment", 600.004, 1200, 0.5, true},
		{"arbitrary partial amount", 800, 1200, 0.5, false},
		{"overpayment", 1300, 1200, 0.5, false},
		{"zero payment", 0, 1200, 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.AcceptedAmount(tt.paid, tt.total, tt.downpaymentRate))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		aIn, aOut, bIn, bOut   time.Time
		want                   bool
	}{
		{"identical ranges", date(10), date(12), date(10), date(12), true},
		{"contained range", date(10), date(15), date(11), date(12), true},
		{"partial overlap", date(10), date(12), date(11), date(14), true},
		{"shared endpoint counts as overlap", date(10), date(12), date(12), date(14), true},
		{"disjoint before", date(10), date(11), date(12), date(14), false},
		{"disjoint after", date(15), date(16), date(12), date(14), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut))
			assert.Equal(t,
				model.Overlaps(tt.aIn, tt.aOut, tt.bIn, tt.bOut),
				model.Overlaps(tt.bIn, tt.bOut, tt.aIn, tt.aOut),
				"overlap must not depend on argument order",
			)
		})
	}
}

func TestBooking_Blocks(t *testing.T) {
	checkIn := date(10)
	checkOut := date(12)

	active := model.Booking{
		Status:       model.StatusApproved,
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
	}

	t.Run("active booking blocks an overlapping range", func(t *testing.T) {
		assert.True(t, active.Blocks(date(11), date(14)))
	})

	t.Run("active booking does not block a disjoint range", func(t *testing.T) {
		assert.False(t, active.Blocks(date(13), date(14)))
	})

	t.Run("declined booking releases the slot", func(t *testing.T) {
		declined := active
		declined.Status = model.StatusDeclined

		assert.False(t, declined.Blocks(date(11), date(14)))
	})

	t.Run("soft-deleted booking releases the slot", func(t *testing.T) {
		deleted := active
		deleted.IsDeleted = true

		assert.False(t, deleted.Blocks(date(11), date(14)))
	})

	t.Run("cleared dates release the slot", func(t *testing.T) {
		cleared := active
		cleared.CheckInDate = nil
		cleared.CheckOutDate = nil

		assert.False(t, cleared.Blocks(date(11), date(14)))
	})
}
