package balance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/emberworks/gameledger/internal/cache"
	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/event"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/metrics"
	"github.com/emberworks/gameledger/internal/repository"
)

// Service defines the interface for currency balance operations
type Service interface {
	TopUp(ctx context.Context, characterID, currencyTypeID int64, amount decimal.Decimal) (*domain.CurrencyBalance, error)
	CheckBalanceHistory(ctx context.Context, balanceID, currencyTypeID int64) ([]domain.Transaction, error)
	GetBalance(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error)

	CreateCurrencyType(ctx context.Context, name, description string) (*domain.CurrencyType, error)
	ListCurrencyTypes(ctx context.Context) ([]domain.CurrencyType, error)

	// DeleteTransaction exists for admin audit corrections only; normal
	// flows never remove ledger entries.
	DeleteTransaction(ctx context.Context, id int64) error
}

type service struct {
	repo        repository.Ledger
	bus         event.Bus
	cache       cache.Cache
	cacheTTL    time.Duration
	cachePolicy cache.RetryPolicy
}

// NewService creates a new balance service. cache may be nil; history reads
// then always go to the store.
func NewService(repo repository.Ledger, bus event.Bus, c cache.Cache, cacheTTL time.Duration, policy cache.RetryPolicy) Service {
	return &service{
		repo:        repo,
		bus:         bus,
		cache:       c,
		cacheTTL:    cacheTTL,
		cachePolicy: policy,
	}
}

// TopUp credits a character's balance in a currency, creating the balance
// row when absent, and appends an "in" transaction. The owner notification
// happens after commit and never affects the result.
func (s *service) TopUp(ctx context.Context, characterID, currencyTypeID int64, amount decimal.Decimal) (bal *domain.CurrencyBalance, err error) {
	log := logger.FromContext(ctx)
	defer func() {
		result := "success"
		if err != nil {
			result = "failure"
		}
		metrics.TopUpsTotal.WithLabelValues(result).Inc()
	}()

	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetCurrencyTypeByID(ctx, currencyTypeID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}

	bal, err = tx.GetOrCreateBalanceForUpdate(ctx, characterID, currencyTypeID)
	if err != nil {
		return nil, err
	}

	bal.Balance = bal.Balance.Add(amount)
	if err := tx.UpdateBalance(ctx, bal.ID, bal.Balance); err != nil {
		return nil, err
	}

	_, err = tx.CreateTransaction(ctx, &domain.Transaction{
		TransactionType: domain.TransactionTypeIn,
		Amount:          amount,
		CurrencyTypeID:  currencyTypeID,
		CharacterTo:     &characterID,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.invalidateHistory(ctx, bal.ID, currencyTypeID)

	if s.bus != nil {
		e := event.NewBalanceToppedUpEvent(characterID, currencyTypeID, amount.String(), bal.Balance.String())
		if err := s.bus.Publish(ctx, e); err != nil {
			log.Warn("top-up notification failed", "character_id", characterID, "error", err)
		}
	}

	log.Info("balance topped up",
		"character_id", characterID,
		"currency_type_id", currencyTypeID,
		"amount", amount.String())
	return bal, nil
}

// CheckBalanceHistory returns every transaction involving the balance's
// character, oldest first. Results are served from cache when possible;
// cache failures degrade to a store read.
func (s *service) CheckBalanceHistory(ctx context.Context, balanceID, currencyTypeID int64) ([]domain.Transaction, error) {
	log := logger.FromContext(ctx)

	bal, err := s.repo.GetBalanceByID(ctx, balanceID)
	if err != nil {
		return nil, err
	}
	if bal.CurrencyTypeID != currencyTypeID {
		return nil, fmt.Errorf("%w: balance %d is not in currency %d",
			domain.ErrBalanceNotFound, balanceID, currencyTypeID)
	}

	key := historyKey(balanceID, currencyTypeID)
	if s.cache != nil {
		data, err := s.cache.Get(ctx, key, s.cachePolicy)
		if err == nil {
			var cached []domain.Transaction
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
			log.Warn("discarding undecodable cache entry", "key", key)
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn("cache read failed, falling back to store", "key", key, "error", err)
		}
	}

	history, err := s.repo.ListTransactionsForCharacter(ctx, bal.CharacterID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(history); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL, s.cachePolicy); err != nil {
				log.Warn("cache write failed", "key", key, "error", err)
			}
		}
	}
	return history, nil
}

func (s *service) GetBalance(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error) {
	return s.repo.GetBalance(ctx, characterID, currencyTypeID)
}

func (s *service) CreateCurrencyType(ctx context.Context, name, description string) (*domain.CurrencyType, error) {
	if name == "" || len(name) > domain.MaxTypeLength {
		return nil, fmt.Errorf("%w: invalid currency type name", domain.ErrInvalidInput)
	}
	return s.repo.CreateCurrencyType(ctx, &domain.CurrencyType{Name: name, Description: description})
}

func (s *service) ListCurrencyTypes(ctx context.Context) ([]domain.CurrencyType, error) {
	return s.repo.ListCurrencyTypes(ctx)
}

func (s *service) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Warn("transaction deleted by admin", "transaction_id", id)
	return nil
}

func (s *service) invalidateHistory(ctx context.Context, balanceID, currencyTypeID int64) {
	if s.cache == nil {
		return
	}
	key := historyKey(balanceID, currencyTypeID)
	if err := s.cache.Delete(ctx, key, s.cachePolicy); err != nil {
		logger.FromContext(ctx).Warn("cache invalidation failed", "key", key, "error", err)
	}
}

func historyKey(balanceID, currencyTypeID int64) string {
	return fmt.Sprintf("balance_history:%d:%d", balanceID, currencyTypeID)
}
