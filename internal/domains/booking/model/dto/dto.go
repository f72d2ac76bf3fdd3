package dto

import (
	"tourdesk/internal/domains/booking/model"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"
)

type CreateBookingRequest struct {
	FullName        string `json:"fullName"        validate:"required,max=100"`
	Email           string `json:"email"           validate:"required,email,max=100"`
	Phone           string `json:"phone"           validate:"required,max=20"`
	Age             int    `json:"age"             validate:"required,gte=1,lte=120"`
	Country         string `json:"country"         validate:"required,max=100"`
	BookingType     string `json:"bookingType"     validate:"required,oneof=individual group"`
	NumberOfPeople  int    `json:"numberOfPeople"  validate:"required,gte=1"`
	SelectedPackage string `json:"selectedPackage" validate:"required,tourpackage"`
}

// ToModel converts the request to a persistable booking. New bookings
// always start as pending.
func (c *CreateBookingRequest) ToModel() model.Booking {
	return model.Booking{
		FullName:        c.FullName,
		Email:           c.Email,
		Phone:           c.Phone,
		Age:             c.Age,
		Country:         c.Country,
		BookingType:     c.BookingType,
		NumberOfPeople:  c.NumberOfPeople,
		SelectedPackage: c.SelectedPackage,
		Status:          constant.BookingStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateBookingRequest struct {
	FullName        string `db:"full_name"        json:"fullName"        validate:"omitempty,max=100"`
	Email           string `db:"email"            json:"email"           validate:"omitempty,email,max=100"`
	Phone           string `db:"phone"            json:"phone"           validate:"omitempty,max=20"`
	Age             int    `db:"age"              json:"age"             validate:"omitempty,gte=1,lte=120"`
	Country         string `db:"country"          json:"country"         validate:"omitempty,max=100"`
	BookingType     string `db:"booking_type"     json:"bookingType"     validate:"omitempty,oneof=individual group"`
	NumberOfPeople  int    `db:"number_of_people" json:"numberOfPeople"  validate:"omitempty,gte=1"`
	SelectedPackage string `db:"selected_package" json:"selectedPackage" validate:"omitempty,tourpackage"`
	Status          string `db:"status"           json:"status"          validate:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Age             int    `json:"age"`
	Country         string `json:"country"`
	BookingType     string `json:"bookingType"`
	NumberOfPeople  int    `json:"numberOfPeople"`
	SelectedPackage string `json:"selectedPackage"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Age = model.Age
	r.Country = model.Country
	r.BookingType = model.BookingType
	r.NumberOfPeople = model.NumberOfPeople
	r.SelectedPackage = model.SelectedPackage
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

// CreateBookingResponse is returned to the public site after a
// successful submission. The reference is display-only and never
// stored; the id is the durable handle.
type CreateBookingResponse struct {
	BookingID int64           `json:"bookingId"`
	Reference string          `json:"reference"`
	Booking   BookingResponse `json:"booking"`
}

func (r *CreateBookingResponse) FromModel(model model.Booking, reference string) {
	r.BookingID = model.ID
	r.Reference = reference
	r.Booking.FromModel(model)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
