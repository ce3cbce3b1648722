package payouts

import (
	"context"
	"sync"

	"github.com/nexodus-tech/vendor-console/internal/api"
	"github.com/nexodus-tech/vendor-console/internal/collection"
	"github.com/nexodus-tech/vendor-console/internal/models"
)

// Ledger is the slice of the remote service the payout view depends on.
type Ledger interface {
	Balance(ctx context.Context) (models.Balance, error)
	RequestPayout(ctx context.Context, req api.PayoutRequest) error
}

// Service owns the payout view: the request flow, the payout history list and
// the balance read used as the validation bound. Balance and history are
// refreshed by two independent fetches with no transactional guarantee
// between them, so the two can be transiently out of step.
type Service struct {
	ledger Ledger
	list   *collection.Controller[models.Payout]

	mu      sync.Mutex
	balance models.Balance
}

func NewService(ledger Ledger, list *collection.Controller[models.Payout]) *Service {
	return &Service{ledger: ledger, list: list}
}

// List exposes the payout history controller.
func (s *Service) List() *collection.Controller[models.Payout] {
	return s.list
}

// Balance returns the most recently fetched ledger position.
func (s *Service) Balance() models.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// RefreshBalance re-reads the ledger position.
func (s *Service) RefreshBalance(ctx context.Context) error {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.balance = balance
	s.mu.Unlock()
	return nil
}

// Refresh reloads both the balance and the payout history. Both fetches are
// attempted even if one fails; the first error is reported.
func (s *Service) Refresh(ctx context.Context) error {
	balErr := s.RefreshBalance(ctx)
	listErr := s.list.Refresh(ctx)
	if balErr != nil {
		return balErr
	}
	return listErr
}

// Submit re-reads the balance, validates the request against it, sends it,
// and on acceptance refreshes both the balance and the history.
func (s *Service) Submit(ctx context.Context, req Request) error {
	if err := s.RefreshBalance(ctx); err != nil {
		return err
	}

	amount, err := ValidateRequest(req, s.Balance().Available)
	if err != nil {
		return err
	}

	err = s.ledger.RequestPayout(ctx, api.PayoutRequest{
		Amount:         amount,
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
	})
	if err != nil {
		return err
	}

	return s.Refresh(ctx)
}
