package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/payment"
	"github.com/BruksfildServices01/gamers-hub/internal/receipt"
	ucBooking "github.com/BruksfildServices01/gamers-hub/internal/usecase/booking"
)

// CreateBookingRequest accepts the slot under either form's field name.
// Fields are declared in form order; BindingCode reports the first failure.
type CreateBookingRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Phone            string `json:"phone" binding:"required,max=32"`
	Date             string `json:"date" binding:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Time             string `json:"time" binding:"required_without=TimeSlot,max=32"`
	TimeSlot         string `json:"timeSlot" binding:"required_without=Time,max=32"`
	UTR              string `json:"utr" binding:"required,max=64"`
	PaymentConfirmed bool   `json:"paymentConfirmed" binding:"required"`
}

var bindingCodes = map[string]string{
	"Name":             "invalid_name",
	"Phone":            "invalid_phone",
	"Date":             "invalid_date",
	"Time":             "invalid_slot",
	"TimeSlot":         "invalid_slot",
	"PaymentConfirmed": "payment_not_confirmed",
}

// BindingCode maps a binding failure to the business code the booking form
// shows. Malformed JSON is "invalid_request".
func BindingCode(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid_request"
	}

	fe := verrs[0]
	if fe.StructField() == "UTR" {
		if fe.Tag() == "max" {
			return "invalid_utr"
		}
		return "payment_not_confirmed"
	}
	if code, ok := bindingCodes[fe.StructField()]; ok {
		return code
	}
	return "invalid_request"
}

func (r CreateBookingRequest) ToDomain() domain.Request {
	slot := r.Time
	if slot == "" {
		slot = r.TimeSlot
	}
	return domain.Request{
		Name:             r.Name,
		Phone:            r.Phone,
		Date:             r.Date,
		Slot:             slot,
		UTR:              r.UTR,
		PaymentConfirmed: r.PaymentConfirmed,
	}
}

type SlotDTO struct {
	Slot      string `json:"slot"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
}

type AvailabilityDTO struct {
	Date  string    `json:"date"`
	Slots []SlotDTO `json:"slots"`
}

func NewAvailabilityDTO(a domain.Availability) AvailabilityDTO {
	slots := a.Slots()
	out := AvailabilityDTO{
		Date:  a.Date.String(),
		Slots: make([]SlotDTO, 0, len(slots)),
	}
	for _, s := range slots {
		out.Slots = append(out.Slots, SlotDTO{
			Slot:      s.Slot.Label,
			Available: s.Available,
			Reason:    string(s.Reason),
		})
	}
	return out
}

type BookingConfirmationDTO struct {
	Reference string `json:"reference"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Receipt   string `json:"receipt,omitempty"`
}

func NewBookingConfirmationDTO(res *ucBooking.SubmitBookingResult) BookingConfirmationDTO {
	return BookingConfirmationDTO{
		Reference: res.Booking.Reference,
		Date:      res.Booking.Date,
		Slot:      res.Booking.Slot,
		Name:      res.Booking.Name,
		Message:   res.Message,
		Receipt:   res.Receipt,
	}
}

type ReceiptDTO struct {
	Reference string `json:"reference"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"issued_at"`
	ExpiresAt int64  `json:"expires_at"`
}

func NewReceiptDTO(c *receipt.Claims) ReceiptDTO {
	out := ReceiptDTO{
		Reference: c.Reference,
		Date:      c.Date,
		Slot:      c.Slot,
		Name:      c.Name,
	}
	if c.IssuedAt != nil {
		out.IssuedAt = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Unix()
	}
	return out
}

type LoungeDTO struct {
	Name     string `json:"name"`
	About    string `json:"about"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`

	Payment payment.Details `json:"payment"`
}
