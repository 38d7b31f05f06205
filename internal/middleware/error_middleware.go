package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursegraph/internal/app/models/dto"
	"github.com/yigit/coursegraph/internal/pkg/apperrors"
	"github.com/yigit/coursegraph/internal/pkg/logger"
	"github.com/yigit/coursegraph/internal/planner"
)

// --- Central Error Handling Middleware/Function ---

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	// Engine errors carry their own context and map to specific statuses
	var notFound *planner.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, notFound.Error()),
			Timestamp: time.Now(),
		})
		return
	}

	var cycle *planner.CycleDetectedError
	if errors.As(err, &cycle) {
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCycleDetected, cycle.Error()).
				WithDetails(gin.H{"cycle": cycle.Cycle}),
			Timestamp: time.Now(),
		})
		return
	}

	var malformed *planner.MalformedGraphError
	if errors.As(err, &malformed) {
		c.JSON(422, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeMalformedGraph, malformed.Error()),
			Timestamp: time.Now(),
		})
		return
	}

	// Check for specific error types
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrProgramNotFound,
		apperrors.ErrSemesterNotFound):
		c.JSON(404, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrResourceAlreadyExists), errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
			Timestamp: time.Now(),
		})
		return
	case errors.Is(err, apperrors.ErrSnapshotUnavailable):
		c.JSON(503, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Catalog snapshot unavailable"),
			Timestamp: time.Now(),
		})
		return
	default:
		// Handle unknown errors
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(500, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
			Timestamp: time.Now(),
		})
		return
	}
}
