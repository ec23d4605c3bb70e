//go:build unit

package booking_test

import (
	"testing"
	"time"

	"servicebook/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() booking.Customer {
	return booking.Customer{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		ZipCode: "12345",
	}
}

func mustLine(t *testing.T, quantity int32, unitPrice string) booking.ServiceLine {
	t.Helper()
	line, err := booking.NewServiceLine(uuid.New(), quantity, decimal.RequireFromString(unitPrice))
	require.NoError(t, err)
	return line
}

func TestNewServiceLine(t *testing.T) {
	t.Run("total is quantity times unit price", func(t *testing.T) {
		line := mustLine(t, 3, "19.99")
		assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString("59.97")))
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := booking.NewServiceLine(uuid.New(), 0, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, booking.ErrInvalidQuantity)

		_, err = booking.NewServiceLine(uuid.New(), -1, decimal.NewFromInt(10))
		assert.ErrorIs(t, err, booking.ErrInvalidQuantity)

		_, err = booking.NewServiceLine(uuid.New(), 1, decimal.NewFromInt(-10))
		assert.ErrorIs(t, err, booking.ErrNegativeUnitPrice)
	})
}

func TestNewBooking(t *testing.T) {
	serviceDate := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	t.Run("totals add service lines and option impacts", func(t *testing.T) {
		lines := []booking.ServiceLine{mustLine(t, 2, "50.00"), mustLine(t, 1, "30.00")}
		options := []booking.OptionLine{
			{ServiceOptionID: uuid.New(), Value: "1", PriceImpact: decimal.NewFromInt(20)},
			{ServiceOptionID: uuid.New(), Value: "deep", PriceImpact: decimal.RequireFromString("9.50")},
		}

		b, err := booking.NewBooking(uuid.New(), validCustomer(), serviceDate, lines, options, nil, decimal.Zero, "")
		require.NoError(t, err)

		assert.True(t, b.Subtotal().Equal(decimal.RequireFromString("159.50")))
		assert.True(t, b.TotalPrice().Equal(decimal.RequireFromString("159.50")))
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("discount reduces the total", func(t *testing.T) {
		lines := []booking.ServiceLine{mustLine(t, 1, "100.00")}
		code := "SAVE20"

		b, err := booking.NewBooking(uuid.New(), validCustomer(), serviceDate, lines, nil, &code, decimal.NewFromInt(20), "")
		require.NoError(t, err)

		assert.True(t, b.DiscountAmount().Equal(decimal.NewFromInt(20)))
		assert.True(t, b.TotalPrice().Equal(decimal.NewFromInt(80)))
	})

	t.Run("discount clamps to the subtotal", func(t *testing.T) {
		lines := []booking.ServiceLine{mustLine(t, 1, "50.00")}

		b, err := booking.NewBooking(uuid.New(), validCustomer(), serviceDate, lines, nil, nil, decimal.NewFromInt(500), "")
		require.NoError(t, err)

		assert.True(t, b.DiscountAmount().Equal(decimal.NewFromInt(50)))
		assert.True(t, b.TotalPrice().IsZero())
	})

	t.Run("negative discount is ignored", func(t *testing.T) {
		lines := []booking.ServiceLine{mustLine(t, 1, "50.00")}

		b, err := booking.NewBooking(uuid.New(), validCustomer(), serviceDate, lines, nil, nil, decimal.NewFromInt(-10), "")
		require.NoError(t, err)

		assert.True(t, b.DiscountAmount().IsZero())
		assert.True(t, b.TotalPrice().Equal(decimal.NewFromInt(50)))
	})

	t.Run("rejections", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), validCustomer(), serviceDate, nil, nil, nil, decimal.Zero, "")
		assert.ErrorIs(t, err, booking.ErrNoServices)

		dup := mustLine(t, 1, "10.00")
		_, err = booking.NewBooking(uuid.New(), validCustomer(), serviceDate, []booking.ServiceLine{dup, dup}, nil, nil, decimal.Zero, "")
		assert.ErrorIs(t, err, booking.ErrDuplicateService)

		noName := validCustomer()
		noName.Name = "  "
		_, err = booking.NewBooking(uuid.New(), noName, serviceDate, []booking.ServiceLine{mustLine(t, 1, "10.00")}, nil, nil, decimal.Zero, "")
		assert.ErrorIs(t, err, booking.ErrMissingCustomerName)

		badEmail := validCustomer()
		badEmail.Email = "not-an-email"
		_, err = booking.NewBooking(uuid.New(), badEmail, serviceDate, []booking.ServiceLine{mustLine(t, 1, "10.00")}, nil, nil, decimal.Zero, "")
		assert.ErrorIs(t, err, booking.ErrInvalidEmail)
	})
}

func TestCustomerValidate(t *testing.T) {
	cases := []struct {
		email string
		want  error
	}{
		{"jane@example.com", nil},
		{"  jane@example.com  ", nil},
		{"", booking.ErrInvalidEmail},
		{"not-an-email", booking.ErrInvalidEmail},
		{"@example.com", booking.ErrInvalidEmail},
		{"jane@", booking.ErrInvalidEmail},
		{"jane doe@example.com", booking.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run("email "+tc.email, func(t *testing.T) {
			c := validCustomer()
			c.Email = tc.email
			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    booking.Status
		to      booking.Status
		allowed bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCompleted, booking.StatusCancelled, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusPending, booking.StatusRescheduled, true},
		{booking.StatusCompleted, booking.StatusRescheduled, true},
		{booking.StatusCancelled, booking.StatusRescheduled, true},
		{booking.StatusPending, booking.StatusPending, false},
		{booking.StatusPending, booking.Status("bogus"), false},
	}

	for _, tc := range cases {
		name := string(tc.from) + " to " + string(tc.to)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTransition(t *testing.T) {
	lines := []booking.ServiceLine{mustLine(t, 1, "10.00")}
	b, err := booking.NewBooking(uuid.New(), validCustomer(), time.Now(), lines, nil, nil, decimal.Zero, "")
	require.NoError(t, err)

	require.NoError(t, b.Transition(booking.StatusConfirmed))
	assert.Equal(t, booking.StatusConfirmed, b.Status())

	err = b.Transition(booking.StatusPending)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)

	require.NoError(t, b.Transition(booking.StatusCompleted))
	assert.Equal(t, booking.StatusCompleted, b.Status())
}
