package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cardpay/gateway/internal/application/services"
	"github.com/cardpay/gateway/internal/domain"
	"github.com/cardpay/gateway/internal/interfaces/rest"
	"github.com/cardpay/gateway/internal/interfaces/rest/middleware"
	"github.com/google/uuid"
)

// ProcessPaymentRequest carries the raw card fields. Validation is owned by
// the domain so that rejections cite the exact normalisation rule that
// failed.
type ProcessPaymentRequest struct {
	CardNumber  string `json:"card_number" example:"4111111111111111"`
	ExpiryMonth string `json:"expiry_month" example:"12"`
	ExpiryYear  string `json:"expiry_year" example:"2031"`
	Currency    string `json:"currency" example:"GBP"`
	Amount      int64  `json:"amount" example:"10000"`
	Cvv         string `json:"cvv" example:"123"`
}

// HandleProcessPayment authorises a card payment
// @Summary      Process a payment
// @Description  Validate card details, authorise the charge with the acquiring bank and persist the outcome.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      ProcessPaymentRequest  true  "Card payment details"
// @Success      201      {object}  rest.APIResponse       "Payment authorised"
// @Failure      400      {object}  rest.APIResponse       "Request rejected by validation"
// @Failure      402      {object}  rest.APIResponse       "Payment declined by the bank"
// @Failure      502      {object}  rest.APIResponse       "Acquiring bank unavailable"
// @Router       /api/payments [post]
func (h *Handlers) HandleProcessPayment(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := middleware.MerchantIDFromContext(r.Context())
	if !ok {
		rest.RespondWithJSON(w, http.StatusUnauthorized, &rest.APIError{
			Code:    "UNAUTHORIZED",
			Message: "missing merchant identity",
		})
		return
	}

	var req ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_BODY",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := h.paymentService.ProcessPayment(r.Context(), services.ProcessPaymentCommand{
		MerchantID:  merchantID,
		CardNumber:  req.CardNumber,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		Currency:    req.Currency,
		Amount:      req.Amount,
		Cvv:         req.Cvv,
	})
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	if result.Status == string(domain.StatusDeclined) {
		rest.RespondDeclined(w, result)
		return
	}

	rest.RespondWithJSON(w, http.StatusCreated, result)
}

// HandleGetPayment retrieves a stored payment
// @Summary      Get a payment by id
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      string            true  "Payment id (UUID)"
// @Success      200        {object}  rest.APIResponse
// @Failure      404        {object}  rest.APIResponse
// @Router       /api/payments/{paymentID} [get]
func (h *Handlers) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := r.PathValue("paymentID")

	id, err := uuid.Parse(paymentID)
	if err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_PAYMENT_ID",
			Message: "invalid payment id format, a valid UUID is expected",
		})
		return
	}

	result, err := h.queryService.GetPayment(r.Context(), id)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.RespondWithJSON(w, http.StatusOK, result)
}
