package cart

import (
	"context"
	"net/http"

	"github.com/goshophq/marketplace-backend/api/responses"
	"github.com/goshophq/marketplace-backend/api/validators"
	"github.com/goshophq/marketplace-backend/internal/checkout"
	"github.com/goshophq/marketplace-backend/pkg/logger"
)

// QuoteService is the engine surface the controller needs.
type QuoteService interface {
	Quote(ctx context.Context, req checkout.QuoteRequest) (*checkout.QuoteResult, error)
}

// Quote handles POST /api/v1/cart/quote.
func Quote(svc QuoteService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req QuoteRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.Quote(ctx, req.toEngine())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, toQuoteResponse(result))
	}
}
