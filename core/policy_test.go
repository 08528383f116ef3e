package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openshelf/circulation-go/core"
)

func Test_DueDate_IsFourteenDaysAfterBorrow(t *testing.T) {
	// arrange
	borrowDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	// act
	due := core.DueDate(borrowDate)

	// assert
	assert.Equal(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC), due)
}

func Test_OverdueDays(t *testing.T) {
	borrowDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		asOf     time.Time
		expected int
	}{
		{
			name:     "on the borrow day",
			asOf:     borrowDate,
			expected: -14,
		},
		{
			name:     "on the due date",
			asOf:     borrowDate.AddDate(0, 0, 14),
			expected: 0,
		},
		{
			name:     "one day past due",
			asOf:     borrowDate.AddDate(0, 0, 15),
			expected: 1,
		},
		{
			name:     "twenty days past due",
			asOf:     borrowDate.AddDate(0, 0, 34),
			expected: 20,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			days := core.OverdueDays(borrowDate, tc.asOf)

			// assert
			assert.Equal(t, tc.expected, days)
		})
	}
}

func Test_BaseOverdueFine(t *testing.T) {
	testCases := []struct {
		name        string
		overdueDays int
		expected    core.Rupees
	}{
		{
			name:        "not overdue",
			overdueDays: 0,
			expected:    0,
		},
		{
			name:        "negative days",
			overdueDays: -3,
			expected:    0,
		},
		{
			name:        "five days",
			overdueDays: 5,
			expected:    50,
		},
		{
			name:        "twenty days",
			overdueDays: 20,
			expected:    200,
		},
		{
			name:        "thirty days hits the cap exactly",
			overdueDays: 30,
			expected:    300,
		},
		{
			name:        "far past due is capped",
			overdueDays: 90,
			expected:    300,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			fine := core.BaseOverdueFine(tc.overdueDays)

			// assert
			assert.Equal(t, tc.expected, fine)
		})
	}
}

func Test_BaseOverdueFine_PlusSurcharge_IsNotRecapped(t *testing.T) {
	// arrange - 35 days overdue: base capped at 300, surcharge on top
	fine := core.BaseOverdueFine(35) + core.LateReturnSurcharge

	// assert
	assert.Equal(t, core.Rupees(500), fine)
}

func Test_CapAdminFine(t *testing.T) {
	// act + assert
	assert.Equal(t, core.Rupees(4999), core.CapAdminFine(4999))
	assert.Equal(t, core.Rupees(5000), core.CapAdminFine(5000))
	assert.Equal(t, core.Rupees(5000), core.CapAdminFine(9000))
}

func Test_SameCalendarDay(t *testing.T) {
	// arrange
	morning := time.Date(2025, 6, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)

	// act + assert
	assert.True(t, core.SameCalendarDay(morning, evening))
	assert.False(t, core.SameCalendarDay(evening, nextDay))
}

func Test_IsNoReturnDate(t *testing.T) {
	assert.True(t, core.IsNoReturnDate(core.NoReturnDate))
	assert.False(t, core.IsNoReturnDate(time.Now()))
}
