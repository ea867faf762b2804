package booking

import (
	"strings"

	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
)

const (
	minPhoneLen = 7
	maxPhoneLen = 15
)

// Request is what a customer fills in on the booking form. Presence, length
// and the payment checkbox are enforced by the request binding; Validate
// normalises the fields and checks what depends on the catalog.
type Request struct {
	Name             string
	Phone            string
	Date             string
	Slot             string
	UTR              string
	PaymentConfirmed bool
}

// Validated is a request whose fields passed every check.
type Validated struct {
	Name             string
	Phone            string
	Date             Date
	Slot             TimeSlot
	UTR              string
	PaymentConfirmed bool
}

func (v Validated) Record() Record {
	return Record{Date: v.Date, Slot: v.Slot.Label}
}

// Validate checks the fields in form order and returns the first failure.
func (r Request) Validate(catalog *Catalog) (Validated, error) {
	name, err := ValidateName(r.Name)
	if err != nil {
		return Validated{}, err
	}

	phone, err := NormalizePhone(r.Phone)
	if err != nil {
		return Validated{}, err
	}

	date, err := ParseDate(strings.TrimSpace(r.Date))
	if err != nil {
		return Validated{}, httperr.ErrBusiness("invalid_date")
	}

	slot, ok := catalog.Lookup(strings.TrimSpace(r.Slot))
	if !ok {
		return Validated{}, httperr.ErrBusiness("invalid_slot")
	}

	utr, err := ValidateUTR(r.UTR)
	if err != nil {
		return Validated{}, err
	}

	return Validated{
		Name:             name,
		Phone:            phone,
		Date:             date,
		Slot:             slot,
		UTR:              utr,
		PaymentConfirmed: r.PaymentConfirmed,
	}, nil
}

func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", httperr.ErrBusiness("invalid_name")
	}
	return name, nil
}

// NormalizePhone strips spaces, dashes, dots and parentheses and keeps a leading "+".
func NormalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	digits := 0
	for i, r := range phone {
		switch {
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", httperr.ErrBusiness("invalid_phone")
		}
	}

	if digits < minPhoneLen || digits > maxPhoneLen {
		return "", httperr.ErrBusiness("invalid_phone")
	}
	return b.String(), nil
}

// ValidateUTR rejects a reference that is only whitespace.
func ValidateUTR(utr string) (string, error) {
	utr = strings.TrimSpace(utr)
	if utr == "" {
		return "", httperr.ErrBusiness("payment_not_confirmed")
	}
	return utr, nil
}
