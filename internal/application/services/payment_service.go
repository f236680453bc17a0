package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cardpay/gateway/internal/application"
	"github.com/cardpay/gateway/internal/domain"
)

// ProcessPaymentService orchestrates a single authorisation attempt: build
// the aggregate, call the acquiring bank, apply the verdict, commit to the
// store. Nothing here is retried; a caller-side retry would generate a fresh
// payment id and double-authorise.
type ProcessPaymentService struct {
	store    application.PaymentStore
	acquirer application.AcquirerClient
	logger   *slog.Logger
}

func NewProcessPaymentService(
	store application.PaymentStore,
	acquirer application.AcquirerClient,
	logger *slog.Logger,
) *ProcessPaymentService {
	return &ProcessPaymentService{
		store:    store,
		acquirer: acquirer,
		logger:   logger,
	}
}

func (s *ProcessPaymentService) ProcessPayment(ctx context.Context, cmd ProcessPaymentCommand) (*PaymentResult, error) {
	payment, err := domain.NewPayment(
		cmd.MerchantID,
		cmd.CardNumber,
		cmd.ExpiryMonth,
		cmd.ExpiryYear,
		cmd.Amount,
		cmd.Currency,
		cmd.Cvv,
	)
	if err != nil {
		// Rejected: no bank call, no store write.
		s.logger.Info("payment request rejected",
			"merchant_id", cmd.MerchantID,
			"reason", err.Error(),
		)
		return nil, err
	}

	// The caller may disconnect or time out while the bank is deciding.
	// Once the aggregate exists, the bank call and the commit run to
	// completion regardless: only the response is lost, and the outcome
	// stays discoverable through the query path.
	ctx = context.WithoutCancel(ctx)

	expiry := payment.CardDetails.ExpiryDate()
	acquirerReq := application.AuthorisationRequest{
		CardNumber: payment.CardDetails.CardNumber().Value(),
		ExpiryDate: fmt.Sprintf("%s/%d", expiry.PaddedMonth(), expiry.Year()),
		Currency:   string(payment.Denomination.Currency()),
		Amount:     payment.Denomination.Amount(),
		Cvv:        payment.CardDetails.Cvv().Value(),
	}

	acquirerResp, err := s.acquirer.AuthorisePayment(ctx, acquirerReq)
	if err != nil {
		s.logger.Error("acquirer call failed",
			"payment_id", payment.ID,
			"merchant_id", payment.MerchantID,
			"error", err,
		)
		return nil, application.NewAcquirerFailureError(err)
	}

	if err := payment.Authorise(acquirerResp.Authorised); err != nil {
		s.logger.Error("illegal payment transition", "payment_id", payment.ID, "error", err)
		return nil, application.NewInternalError(err)
	}

	if payment.Status == domain.StatusAuthorised {
		if err := payment.AttachAuthorisationCode(acquirerResp.AuthorisationCode); err != nil {
			s.logger.Error("failed to attach authorisation code", "payment_id", payment.ID, "error", err)
			return nil, application.NewInternalError(err)
		}
	}

	if err := s.store.Add(ctx, payment); err != nil {
		// Ids are generated fresh per aggregate, so a duplicate here is a
		// defect rather than a caller problem.
		s.logger.Error("failed to store payment", "payment_id", payment.ID, "error", err)
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment processed",
		"payment_id", payment.ID,
		"merchant_id", payment.MerchantID,
		"status", payment.Status,
	)

	return newPaymentResult(payment), nil
}
