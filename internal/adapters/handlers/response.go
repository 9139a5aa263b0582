package handlers

import (
	"net/http"

	"github.com/iwtcode/stepperTorque/pkg/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse возвращает стандартизированный ответ с ошибкой
func (h *Handler) ErrorResponse(c *gin.Context, err error, statusCode int, message string, showError bool) {
	errorMessage := message
	if showError && err != nil {
		errorMessage = message + ": " + err.Error()
	}

	if statusCode >= http.StatusInternalServerError {
		h.logger.Error(message, "error", err, "statusCode", statusCode)
	} else {
		h.logger.Warn(message, "error", err, "statusCode", statusCode)
	}
	c.AbortWithStatusJSON(statusCode, gin.H{
		"status": "error",
		"error": gin.H{
			"code":    statusCode,
			"message": errorMessage,
		},
	})
}

// Fail выбирает код ответа по доменной ошибке
func (h *Handler) Fail(c *gin.Context, err error) {
	appErr := errors.FromError(err)
	switch appErr.Code {
	case http.StatusBadRequest:
		h.BadRequest(c, appErr.Err, appErr.Message)
	case http.StatusNotFound:
		h.NotFound(c, appErr.Err)
	case http.StatusInternalServerError:
		h.InternalError(c, appErr.Err)
	default:
		h.ErrorResponse(c, appErr.Err, appErr.Code, appErr.Message, appErr.IsUserFacing)
	}
}

// BadRequest возвращает ошибку 400
func (h *Handler) BadRequest(c *gin.Context, err error, message string) {
	if message == "" {
		message = errors.BadRequest
	}
	h.ErrorResponse(c, err, http.StatusBadRequest, message, true)
}

// InternalError возвращает ошибку 500
func (h *Handler) InternalError(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusInternalServerError, errors.InternalServerError, false)
}

// NotFound возвращает ошибку 404
func (h *Handler) NotFound(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusNotFound, errors.NotFound, true)
}
