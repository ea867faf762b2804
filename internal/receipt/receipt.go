package receipt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/gamers-hub/internal/models"
	"github.com/BruksfildServices01/gamers-hub/internal/timezone"
)

const issuer = "gamers-hub"

var ErrInvalidReceipt = errors.New("invalid receipt")

// Claims is the booking summary carried by a receipt token.
type Claims struct {
	Reference string `json:"ref"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

// Signer issues and checks HS256 booking receipts.
type Signer struct {
	secret []byte
	ttl    time.Duration
	clock  timezone.Clock
}

func NewSigner(secret string, ttl time.Duration, clock timezone.Clock) *Signer {
	return &Signer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (s *Signer) Sign(b *models.Booking) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Reference: b.Reference,
		Date:      b.Date,
		Slot:      b.Slot,
		Name:      b.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   b.Reference,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Signer) Verify(token string) (*Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidReceipt
	}

	return &claims, nil
}
