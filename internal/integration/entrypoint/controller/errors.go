// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/scribe-ops/backend/internal/domain/error"
	"github.com/scribe-ops/backend/internal/integration/entrypoint/dto"
)

// respondError maps a domain error to an HTTP response. Typed domain errors
// carry their own code and a stable status mapping; storage failures become
// 503; anything else is a generic 500.
func respondError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		ctx.JSON(clientErrorStatus(clientErr.Code), dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		ctx.JSON(productErrorStatus(productErr.Code), dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	var orderErr *domainerror.OrderError
	if errors.As(err, &orderErr) {
		ctx.JSON(orderErrorStatus(orderErr.Code), dto.ErrorResponse{
			Error: orderErr.Message,
			Code:  string(orderErr.Code),
		})
		return
	}

	var classErr *domainerror.ClassificationError
	if errors.As(err, &classErr) {
		ctx.JSON(classificationErrorStatus(classErr.Code), dto.ErrorResponse{
			Error: classErr.Message,
			Code:  string(classErr.Code),
		})
		return
	}

	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		// All analytics errors are request validation failures.
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	var invoiceErr *domainerror.InvoiceError
	if errors.As(err, &invoiceErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: invoiceErr.Message,
			Code:  string(invoiceErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authErrorStatus(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrStorageFailure) {
		slog.Error("storage failure", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Storage temporarily unavailable",
			Code:  string(domainerror.ErrCodeStorageFailure),
		})
		return
	}

	slog.Error("unhandled error", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

func clientErrorStatus(code domainerror.ClientErrorCode) int {
	switch code {
	case domainerror.ErrCodeClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeClientNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func productErrorStatus(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeProductNameRequired,
		domainerror.ErrCodeInvalidUnitPrice:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func orderErrorStatus(code domainerror.OrderErrorCode) int {
	switch code {
	case domainerror.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidOrderDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func classificationErrorStatus(code domainerror.ClassificationErrorCode) int {
	switch code {
	case domainerror.ErrCodeClassificationExists:
		return http.StatusConflict
	case domainerror.ErrCodeClassificationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeClassificationNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func authErrorStatus(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodePasswordMismatch,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
