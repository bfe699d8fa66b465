package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/vehicle-inspection/internal/dto"
	"github.com/lshigami/vehicle-inspection/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError maps a service error onto its HTTP status and writes the error body.
func RespondError(ctx *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: validationErr.Message, Details: []string{validationErr.Field}})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrConflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	default:
		_ = ctx.Error(err)
		log.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}

// ParseIDParam reads a positive numeric path parameter, answering 400 when it is malformed.
func ParseIDParam(ctx *gin.Context, name, label string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " format"})
		return 0, false
	}
	return uint(id), true
}
