package mirror

import (
	"strconv"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/shared/constant"
	"tourdesk/shared/timezone"
)

// Summary is the flattened booking row mirrored to the spreadsheet. It
// carries copies, not references: the mirror must stay readable even if
// the booking is later updated or deleted.
type Summary struct {
	Timestamp      string `json:"timestamp"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Package        string `json:"package"`
	NumberOfPeople int    `json:"numberOfPeople"`
	Label          string `json:"label"`
}

func SummaryFromBooking(booking model.Booking) Summary {
	return Summary{
		Timestamp:      timezone.Now().Format(constant.DateFormat),
		FullName:       booking.FullName,
		Email:          booking.Email,
		Phone:          booking.Phone,
		Package:        booking.SelectedPackage,
		NumberOfPeople: booking.NumberOfPeople,
		Label:          constant.MirrorRowLabel,
	}
}

// Row renders the summary as a spreadsheet row, column order fixed.
func (s Summary) Row() []string {
	return []string{
		s.Timestamp,
		s.FullName,
		s.Email,
		s.Phone,
		s.Package,
		strconv.Itoa(s.NumberOfPeople),
		s.Label,
	}
}
