package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/gamers-hub/internal/config"
	"github.com/BruksfildServices01/gamers-hub/internal/dto"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/httpresp"
	"github.com/BruksfildServices01/gamers-hub/internal/payment"
)

// LoungeHandler serves the static lounge profile and the UPI payment code.
type LoungeHandler struct {
	info dto.LoungeDTO
	qr   *payment.QR
	log  *zap.Logger
}

// NewLoungeHandler accepts a nil qr; the QR route then answers 404.
func NewLoungeHandler(cfg config.LoungeConfig, qr *payment.QR, log *zap.Logger) *LoungeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoungeHandler{
		info: dto.LoungeDTO{
			Name:     cfg.Name,
			About:    cfg.About,
			Location: cfg.Location,
			Phone:    cfg.Phone,
			Email:    cfg.Email,
			Timezone: cfg.Timezone,
			Payment:  payment.Details{UPIID: cfg.UPIID, Payee: cfg.Name},
		},
		qr:  qr,
		log: log,
	}
}

func (h *LoungeHandler) Info(c *gin.Context) {
	httpresp.OK(c, h.info)
}

func (h *LoungeHandler) PaymentQR(c *gin.Context) {
	if h.qr == nil {
		httperr.Code(c, "qr_not_configured")
		return
	}

	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < payment.MinQRSize || n > payment.MaxQRSize {
			httperr.Code(c, "invalid_size")
			return
		}
		size = n
	}

	format, err := payment.ParseFormat(c.Query("format"))
	if err != nil {
		httperr.Code(c, "invalid_format")
		return
	}

	var buf bytes.Buffer
	if err := h.qr.Render(&buf, size, format); err != nil {
		respondError(c, h.log, err, "qr_render_failed")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
