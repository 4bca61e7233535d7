package customer

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/trimshop/booking-api/internal/handler"
	"github.com/trimshop/booking-api/internal/model"
	bookingService "github.com/trimshop/booking-api/internal/service/booking"
	"github.com/trimshop/booking-api/internal/service/conversation"
	"github.com/trimshop/booking-api/internal/service/customer"
	"github.com/trimshop/booking-api/pkg/validator"
)

type Handler struct {
	service       *customer.Service
	bookings      *bookingService.Service
	conversations *conversation.Service
	validate      *validator.Validator
}

func NewHandler(service *customer.Service, bookings *bookingService.Service, conversations *conversation.Service, validate *validator.Validator) *Handler {
	return &Handler{
		service:       service,
		bookings:      bookings,
		conversations: conversations,
		validate:      validate,
	}
}

func (h *Handler) GetCustomer(c *gin.Context) {
	found, err := h.service.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(found))
}

func (h *Handler) UpdateName(c *gin.Context) {
	var req model.UpdateCustomerNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.UpdateName(c.Request.Context(), c.Param("phone"), req.Name)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

// ListBookings returns a customer's bookings by phone; ?upcoming=true keeps
// only future active ones.
func (h *Handler) ListBookings(c *gin.Context) {
	upcoming := c.Query("upcoming") == "true"

	bookings, err := h.bookings.CustomerBookings(c.Request.Context(), c.Param("phone"), upcoming)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(bookings))
}

func (h *Handler) GetHistory(c *gin.Context) {
	history, err := h.bookings.BarberHistory(c.Request.Context(), c.Param("phone"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(history))
}

func (h *Handler) AddMessage(c *gin.Context) {
	var req model.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	if err := h.validate.Validate(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	resolved, err := h.service.GetOrCreate(c.Request.Context(), c.Param("phone"), "")
	if err != nil {
		handler.Error(c, err)
		return
	}

	msg, err := h.conversations.AddMessage(c.Request.Context(), resolved.ID, model.MessageRole(req.Role), req.Content)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(msg))
}

func (h *Handler) ListMessages(c *gin.Context) {
	resolved, err := h.service.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	messages, err := h.conversations.RecentMessages(c.Request.Context(), resolved.ID, limit)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(messages))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	customers := r.Group("/customers")
	{
		customers.GET("/:phone", h.GetCustomer)
		customers.PUT("/:phone/name", h.UpdateName)
		customers.GET("/:phone/bookings", h.ListBookings)
		customers.GET("/:phone/history", h.GetHistory)
		customers.POST("/:phone/messages", h.AddMessage)
		customers.GET("/:phone/messages", h.ListMessages)
	}
}
