package barber

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/handler"
	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/service/barber"
	bookingService "github.com/trimshop/booking-api/internal/service/booking"
	"github.com/trimshop/booking-api/pkg/validator"
)

type Handler struct {
	service  *barber.Service
	bookings *bookingService.Service
	validate *validator.Validator
	loc      *time.Location
}

func NewHandler(service *barber.Service, bookings *bookingService.Service, validate *validator.Validator, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{service: service, bookings: bookings, validate: validate, loc: loc}
}

func (h *Handler) CreateBarber(c *gin.Context) {
	var req model.CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateBarber(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) GetBarber(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid barber ID"))
		return
	}

	found, err := h.service.GetBarber(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

// ListBarbers returns the active roster; ?name= narrows to a single
// case-insensitive match.
func (h *Handler) ListBarbers(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		found, err := h.service.FindByName(c.Request.Context(), name)
		if err != nil {
			handler.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse([]*model.Barber{found}))
		return
	}

	barbers, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(barbers))
}

// GetSlots lists the open grid-aligned start times for one barber and day.
func (h *Handler) GetSlots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid barber ID"))
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date format, expected YYYY-MM-DD"))
		return
	}

	duration, err := strconv.Atoi(c.DefaultQuery("duration_minutes", "30"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid duration_minutes"))
		return
	}

	slots, err := h.bookings.AvailableSlots(c.Request.Context(), id, date, duration)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(slots))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	barbers := r.Group("/barbers")
	{
		barbers.POST("", h.CreateBarber)
		barbers.GET("", h.ListBarbers)
		barbers.GET("/:id", h.GetBarber)
		barbers.GET("/:id/slots", h.GetSlots)
	}
}
