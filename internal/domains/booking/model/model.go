package model

import (
	"tourdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldFullName        = "full_name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldAge             = "age"
	FieldCountry         = "country"
	FieldBookingType     = "booking_type"
	FieldNumberOfPeople  = "number_of_people"
	FieldSelectedPackage = "selected_package"
	FieldStatus          = "status"
)

type Booking struct {
	ID              int64  `db:"id"`
	FullName        string `db:"full_name"`
	Email           string `db:"email"`
	Phone           string `db:"phone"`
	Age             int    `db:"age"`
	Country         string `db:"country"`
	BookingType     string `db:"booking_type"`
	NumberOfPeople  int    `db:"number_of_people"`
	SelectedPackage string `db:"selected_package"`
	Status          string `db:"status"`
	model.Metadata
}
