package catalog

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shoplane/catalog-service/internal/app/catalog/domain"
)

// respondError translates application errors into HTTP status codes.
// Rejected constructions are client errors; missing references are 404;
// anything else (repository failures included) surfaces as 500 and is logged.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		respondErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrCategoryNotFound):
		respondErrorMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondErrorMessage(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
		respondErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}
