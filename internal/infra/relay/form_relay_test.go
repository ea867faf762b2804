package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
)

func submission() domain.Submission {
	return domain.Submission{
		Reference:        "ref-1",
		Name:             "Arjun",
		Phone:            "+919876543210",
		Date:             "2025-06-01",
		Slot:             "6:00 PM - 7:00 PM",
		UTR:              "412345678901",
		PaymentConfirmed: true,
	}
}

func TestFormRelay_Submit(t *testing.T) {
	for _, field := range []string{"time", "timeSlot"} {
		t.Run(field, func(t *testing.T) {
			var got map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			err := NewFormRelay(srv.URL, field, time.Second).Submit(context.Background(), submission())
			require.NoError(t, err)

			assert.Equal(t, "6:00 PM - 7:00 PM", got[field])
			assert.Equal(t, "412345678901", got["utr"])
			assert.Equal(t, true, got["paymentConfirmed"])
			assert.Equal(t, "Arjun", got["name"])
		})
	}
}

func TestFormRelay_Failures(t *testing.T) {
	t.Run("non 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		err := NewFormRelay(srv.URL, "", time.Second).Submit(context.Background(), submission())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSubmission))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		err := NewFormRelay(url, "", time.Second).Submit(context.Background(), submission())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSubmission))
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewFormRelay(srv.URL, "", time.Second).Submit(ctx, submission())
		assert.True(t, errors.Is(err, domain.ErrSubmission))
	})
}
