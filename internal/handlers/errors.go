package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/SscSPs/general_ledger/internal/dto"
	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP responses in one place.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var vErr *apperrors.ValidationError
	var rErr *apperrors.ReferenceError
	var sErr *apperrors.StateError
	var nfErr *apperrors.NotFoundError

	switch {
	case errors.As(err, &vErr):
		details := map[string]any{"kind": string(vErr.Kind)}
		if vErr.LineIndex >= 0 {
			details["lineIndex"] = vErr.LineIndex
		}
		if vErr.Kind == apperrors.KindUnbalanced || vErr.Kind == apperrors.KindZeroTotal {
			details["totalDebit"] = vErr.TotalDebit.StringFixed(domain.MinorUnitPlaces)
			details["totalCredit"] = vErr.TotalCredit.StringFixed(domain.MinorUnitPlaces)
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: string(vErr.Kind), Message: vErr.Error(), Details: details})

	case errors.As(err, &rErr):
		details := map[string]any{"accountId": rErr.AccountID}
		if rErr.AccountCode != "" {
			details["accountCode"] = rErr.AccountCode
		}
		if rErr.LineIndex >= 0 {
			details["lineIndex"] = rErr.LineIndex
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: string(rErr.Kind), Message: rErr.Error(), Details: details})

	case errors.As(err, &sErr):
		status := http.StatusBadRequest
		if sErr.Kind == apperrors.KindEditNotAllowed {
			status = http.StatusForbidden
		}
		details := map[string]any{"from": sErr.From}
		if sErr.To != "" {
			details["to"] = sErr.To
		}
		c.JSON(status, dto.ErrorResponse{Error: string(sErr.Kind), Message: sErr.Error(), Details: details})

	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "NotFound", Message: nfErr.Error()})

	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "NotFound", Message: "Resource not found"})

	case errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Request lost a concurrent write", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "ConcurrentModification", Message: "The journal entry was modified by another request; reload and retry"})

	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "ValidationError", Message: err.Error()})

	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "InternalError", Message: "An unexpected error occurred"})
	}
}

// respondBindError reports a request that could not be decoded or failed its binding tags.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "InvalidRequest", Message: err.Error()})
}
