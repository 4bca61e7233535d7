package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/trimshop/booking-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes a typed rejection with the HTTP status matching its class:
// not-found and conflict map straight through; everything untyped is a 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.Code(err) {
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrConflict:
		status = http.StatusConflict
	case apperrors.ErrBadRequest:
		status = http.StatusBadRequest
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}
