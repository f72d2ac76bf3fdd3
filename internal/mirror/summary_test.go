package mirror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/mirror"
	"tourdesk/shared/constant"
)

func TestSummaryFromBooking(t *testing.T) {
	booking := model.Booking{
		ID:              7,
		FullName:        "Abebe Bikila",
		Email:           "abebe@example.com",
		Phone:           "+251911000000",
		NumberOfPeople:  3,
		SelectedPackage: "omo-valley",
	}

	summary := mirror.SummaryFromBooking(booking)

	assert.Equal(t, "Abebe Bikila", summary.FullName)
	assert.Equal(t, "abebe@example.com", summary.Email)
	assert.Equal(t, "omo-valley", summary.Package)
	assert.Equal(t, 3, summary.NumberOfPeople)
	assert.Equal(t, constant.MirrorRowLabel, summary.Label)
	assert.NotEmpty(t, summary.Timestamp)
}

func TestSummary_Row(t *testing.T) {
	summary := mirror.Summary{
		Timestamp:      "2026-08-31 10:00:00",
		FullName:       "Abebe Bikila",
		Email:          "abebe@example.com",
		Phone:          "+251911000000",
		Package:        "omo-valley",
		NumberOfPeople: 3,
		Label:          constant.MirrorRowLabel,
	}

	row := summary.Row()

	assert.Equal(t, []string{
		"2026-08-31 10:00:00",
		"Abebe Bikila",
		"abebe@example.com",
		"+251911000000",
		"omo-valley",
		"3",
		constant.MirrorRowLabel,
	}, row)
}
