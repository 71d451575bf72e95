package api

import (
	"net/http"

	"tripma/internal/domain"
	"tripma/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type appendBookingRequest struct {
	Email   string               `json:"email"`
	Booking domain.BookingRecord `json:"booking"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

// list returns the entire mapping. Read failures are swallowed into an empty
// object with a success status; the history view tolerates an empty server
// side and falls back to the client mirror.
func (h *BookingHandler) list(c *gin.Context) {
	data, err := h.service.AllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, data)
}

// create appends a booking. The duplicate no-op case still responds with
// success and the submitted booking; unexpected failures (malformed body
// included) surface as 500 with the error message.
func (h *BookingHandler) create(c *gin.Context) {
	var req appendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.service.AppendBooking(c.Request.Context(), req.Email, req.Booking)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": rec})
}
