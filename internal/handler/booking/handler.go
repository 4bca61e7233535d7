package booking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/handler"
	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/service/booking"
	"github.com/trimshop/booking-api/pkg/validator"
)

type Handler struct {
	service  *booking.Service
	validate *validator.Validator
	loc      *time.Location
}

func NewHandler(service *booking.Service, validate *validator.Validator, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{service: service, validate: validate, loc: loc}
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Book(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	booked, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(booked))
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(cancelled))
}

func (h *Handler) updateStatus(status model.BookingStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid booking ID"))
			return
		}

		updated, err := h.service.UpdateStatus(c.Request.Context(), id, status)
		if err != nil {
			handler.Error(c, err)
			return
		}

		c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
	}
}

// GetAvailability enumerates open slots for a barber on a date. The duration
// comes either from a service_id or an explicit duration_minutes.
func (h *Handler) GetAvailability(c *gin.Context) {
	barberID, err := uuid.Parse(c.Query("barber_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid barber ID"))
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date format, expected YYYY-MM-DD"))
		return
	}

	var slots []time.Time
	if serviceID := c.Query("service_id"); serviceID != "" {
		svcID, err := uuid.Parse(serviceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid service ID"))
			return
		}
		slots, err = h.service.AvailableSlotsForService(c.Request.Context(), barberID, svcID, date)
		if err != nil {
			handler.Error(c, err)
			return
		}
	} else {
		duration, err := strconv.Atoi(c.DefaultQuery("duration_minutes", "30"))
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid duration_minutes"))
			return
		}
		slots, err = h.service.AvailableSlots(c.Request.Context(), barberID, date, duration)
		if err != nil {
			handler.Error(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slots))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.GET("/availability", h.GetAvailability)
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.POST("/:id/confirm", h.updateStatus(model.BookingStatusConfirmed))
		bookings.POST("/:id/complete", h.updateStatus(model.BookingStatusCompleted))
		bookings.POST("/:id/no-show", h.updateStatus(model.BookingStatusNoShow))
	}
}
