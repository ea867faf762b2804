package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
)

const DefaultSlotField = "time"

// FormRelay posts bookings as JSON to a hosted form endpoint.
type FormRelay struct {
	url       string
	slotField string
	client    *http.Client
}

func NewFormRelay(url, slotField string, timeout time.Duration) *FormRelay {
	if slotField == "" {
		slotField = DefaultSlotField
	}
	return &FormRelay{
		url:       url,
		slotField: slotField,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *FormRelay) payload(s domain.Submission) map[string]any {
	return map[string]any{
		"reference":        s.Reference,
		"name":             s.Name,
		"phone":            s.Phone,
		"date":             s.Date,
		r.slotField:        s.Slot,
		"utr":              s.UTR,
		"paymentConfirmed": s.PaymentConfirmed,
	}
}

func (r *FormRelay) Submit(ctx context.Context, s domain.Submission) error {
	body, err := json.Marshal(r.payload(s))
	if err != nil {
		return errors.Wrap(err, "encode relay payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build relay request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "relay request"), domain.ErrSubmission)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Mark(
			errors.Newf("relay responded with status %d", resp.StatusCode),
			domain.ErrSubmission,
		)
	}

	return nil
}

var _ domain.Submitter = (*FormRelay)(nil)
