package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
	"github.com/BruksfildServices01/gamers-hub/internal/dto"
	"github.com/BruksfildServices01/gamers-hub/internal/httperr"
	"github.com/BruksfildServices01/gamers-hub/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/gamers-hub/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availability *ucBooking.GetAvailability
	submit       *ucBooking.SubmitBooking
	receipts     *ucBooking.VerifyReceipt
	log          *zap.Logger
}

func NewPublicHandler(
	availability *ucBooking.GetAvailability,
	submit *ucBooking.SubmitBooking,
	receipts *ucBooking.VerifyReceipt,
	log *zap.Logger,
) *PublicHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PublicHandler{
		availability: availability,
		submit:       submit,
		receipts:     receipts,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListSlots(c *gin.Context) {
	httpresp.List(c, h.availability.Catalog().Labels())
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date, err := domain.ParseDate(strings.TrimSpace(c.Query("date")))
	if err != nil {
		httperr.Code(c, "invalid_date")
		return
	}

	a, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.log, err, "availability_failed")
		return
	}

	httpresp.OK(c, dto.NewAvailabilityDTO(a))
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Code(c, dto.BindingCode(err))
		return
	}

	res, err := h.submit.Execute(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, h.log, err, "booking_failed")
		return
	}

	httpresp.Created(c, dto.NewBookingConfirmationDTO(res))
}

////////////////////////////////////////////////////////
// RECEIPTS
////////////////////////////////////////////////////////

func (h *PublicHandler) GetReceipt(c *gin.Context) {
	claims, err := h.receipts.Execute(c.Param("token"))
	if err != nil {
		respondError(c, h.log, err, "receipt_failed")
		return
	}

	httpresp.OK(c, dto.NewReceiptDTO(claims))
}
