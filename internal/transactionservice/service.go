// Package transactionservice manages business logic layer of transactions and swaps.
package transactionservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/coin-wallet/internal/domain"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	Get(ctx context.Context, id int32) (domain.Transaction, error)
	ListByOwner(ctx context.Context, userID int32) ([]domain.Transaction, error)
	Update(ctx context.Context, id int32, patch domain.TransactionPatch) (domain.Transaction, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo Repo
}

// New returns transaction service.
func New(tr Repo) *Service {
	return &Service{repo: tr}
}

// Create records the transaction, pending unless a status is given.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	if arg.Status == "" {
		arg.Status = domain.TransactionPending
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the transaction with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

// ListByOwner returns the transactions of the user.
func (s *Service) ListByOwner(ctx context.Context, userID int32) ([]domain.Transaction, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Update merges the patch onto the transaction.
func (s *Service) Update(ctx context.Context, id int32, patch domain.TransactionPatch) (domain.Transaction, error) {
	return s.repo.Update(ctx, id, patch)
}

// Swap records a completed swap transaction debiting the source cryptocurrency.
//
// Balances and the target cryptocurrency are left untouched.
func (s *Service) Swap(ctx context.Context, arg domain.SwapParams) (domain.SwapResult, error) {
	l := zerolog.Ctx(ctx)

	amount, err := decimal.NewFromString(arg.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.SwapResult{}, domain.ErrInvalidAmount
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		l.Info().Str("amount", arg.Amount).Msg("non-positive swap amount")
		return domain.SwapResult{}, domain.ErrInvalidAmount
	}

	tx, err := s.repo.Create(ctx, domain.CreateTransactionParams{
		UserID:   arg.UserID,
		Type:     domain.TransactionSwap,
		CryptoID: arg.FromCryptoID,
		Amount:   arg.Amount,
		Status:   domain.TransactionCompleted,
	})
	if err != nil {
		l.Error().Err(err).Send()
		return domain.SwapResult{}, err
	}

	return domain.SwapResult{Success: true, Transaction: tx}, nil
}
