package httperr

import "net/http"

type codeInfo struct {
	status  int
	message string
}

var codes = map[string]codeInfo{
	"invalid_request":        {http.StatusBadRequest, "Invalid request."},
	"invalid_name":           {http.StatusBadRequest, "Please enter your name."},
	"invalid_phone":          {http.StatusBadRequest, "Please enter a valid phone number."},
	"invalid_date":           {http.StatusBadRequest, "Please pick a valid date."},
	"date_in_past":           {http.StatusBadRequest, "Please pick today or a later date."},
	"invalid_slot":           {http.StatusBadRequest, "Please select a time slot."},
	"payment_not_confirmed":  {http.StatusBadRequest, "Please confirm payment and enter UTR ID."},
	"invalid_utr":            {http.StatusBadRequest, "The UTR looks too long."},
	"invalid_receipt":        {http.StatusBadRequest, "This receipt is not valid."},
	"slot_unavailable":       {http.StatusConflict, "This slot is no longer available."},
	"slot_taken":             {http.StatusConflict, "This slot is already booked!"},
	"submission_in_progress": {http.StatusConflict, "A booking for this slot is already being submitted."},
	"relay_failed":           {http.StatusBadGateway, "Something went wrong. Please try again."},
	"invalid_size":           {http.StatusBadRequest, "Size must be between 64 and 1024."},
	"invalid_format":         {http.StatusBadRequest, "Format must be png or webp."},
	"qr_not_configured":      {http.StatusNotFound, "Payment QR code is not available."},
	"rate_limited":           {http.StatusTooManyRequests, "Too many bookings. Please wait a moment."},
}

// Describe returns the HTTP status and customer message for a business code.
func Describe(code string) (int, string) {
	if info, ok := codes[code]; ok {
		return info.status, info.message
	}
	return http.StatusBadRequest, "Request rejected."
}
