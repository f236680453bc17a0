// Package handlers wires the HTTP surface to the application services.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cardpay/gateway/internal/application/services"
	"github.com/cardpay/gateway/internal/auth"
	"github.com/cardpay/gateway/internal/config"
	"github.com/cardpay/gateway/internal/interfaces/rest"
	"github.com/cardpay/gateway/internal/interfaces/rest/middleware"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
)

type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, cmd services.ProcessPaymentCommand) (*services.PaymentResult, error)
}

type PaymentQuerier interface {
	GetPayment(ctx context.Context, id uuid.UUID) (*services.PaymentResult, error)
}

type TokenIssuer interface {
	IssueToken(merchantID string, scopes []string) (string, error)
	TokenTTL() time.Duration
}

type Handlers struct {
	paymentService PaymentProcessor
	queryService   PaymentQuerier
	tokens         TokenIssuer
	authConfig     config.AuthConfig
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewHandlers(
	paymentService PaymentProcessor,
	queryService PaymentQuerier,
	tokens TokenIssuer,
	authConfig config.AuthConfig,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		paymentService: paymentService,
		queryService:   queryService,
		tokens:         tokens,
		authConfig:     authConfig,
		logger:         logger,
		validate:       validator.New(),
	}
}

func (h *Handlers) RegisterRoutes(mux *http.ServeMux, bearer *middleware.BearerAuth) {
	mux.HandleFunc("POST /connect/token", h.HandleToken)
	mux.Handle("POST /api/payments",
		bearer.RequireScope(auth.ScopePaymentWrite)(http.HandlerFunc(h.HandleProcessPayment)))
	mux.Handle("GET /api/payments/{paymentID}",
		bearer.RequireScope(auth.ScopePaymentRead)(http.HandlerFunc(h.HandleGetPayment)))
	mux.HandleFunc("GET /health", h.HandleHealth)
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	rest.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
