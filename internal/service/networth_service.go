package service

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/util"
	"github.com/dafibh/kasboek/kasboek-backend/internal/websocket"
	"github.com/shopspring/decimal"
)

// NetWorthService computes net worth from account balances and keeps the monthly history
type NetWorthService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
	netWorthRepo    domain.NetWorthRepository
	eventPublisher  websocket.EventPublisher
}

// NewNetWorthService creates a new NetWorthService
func NewNetWorthService(accountRepo domain.AccountRepository, transactionRepo domain.TransactionRepository, netWorthRepo domain.NetWorthRepository) *NetWorthService {
	return &NetWorthService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		netWorthRepo:    netWorthRepo,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *NetWorthService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// NetWorthSummary is the current net worth. Debt balances count as liabilities by their
// absolute value; every other account type is an asset.
type NetWorthSummary struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	NetWorth    decimal.Decimal
	ByType      map[domain.AccountType]decimal.Decimal
	Accounts    []*AccountWithBalance
}

// GetCurrent computes net worth from the current account balances
func (s *NetWorthService) GetCurrent() (*NetWorthSummary, error) {
	accounts, err := s.accountRepo.GetAll()
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	return Summarize(withBalances(accounts, transactions)), nil
}

// GetHistory returns the recorded snapshots, oldest first
func (s *NetWorthService) GetHistory() ([]*domain.NetWorthSnapshot, error) {
	return s.netWorthRepo.List()
}

// RecordSnapshot stores the current net worth as the snapshot for the month of now,
// replacing an earlier snapshot of the same month
func (s *NetWorthService) RecordSnapshot(now time.Time) (*domain.NetWorthSnapshot, error) {
	summary, err := s.GetCurrent()
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.AccountType]float64, len(summary.ByType))
	for t, v := range summary.ByType {
		byType[t] = v.Round(2).InexactFloat64()
	}

	snapshot := &domain.NetWorthSnapshot{
		Month:       util.MonthStart(now),
		Assets:      summary.Assets.Round(2).InexactFloat64(),
		Liabilities: summary.Liabilities.Round(2).InexactFloat64(),
		NetWorth:    summary.NetWorth.Round(2).InexactFloat64(),
		ByType:      byType,
		RecordedAt:  now.UTC(),
	}
	if err := s.netWorthRepo.Upsert(snapshot); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.NetWorthRecorded(snapshot))
	}
	return snapshot, nil
}

// Summarize totals account balances into assets, liabilities and a per-type breakdown
func Summarize(accounts []*AccountWithBalance) *NetWorthSummary {
	summary := &NetWorthSummary{
		Assets:      decimal.Zero,
		Liabilities: decimal.Zero,
		ByType:      make(map[domain.AccountType]decimal.Decimal),
		Accounts:    accounts,
	}

	for _, acc := range accounts {
		summary.ByType[acc.Type] = summary.ByType[acc.Type].Add(acc.CurrentBalance)
		if acc.Type.IsLiability() {
			summary.Liabilities = summary.Liabilities.Add(acc.CurrentBalance.Abs())
		} else {
			summary.Assets = summary.Assets.Add(acc.CurrentBalance)
		}
	}
	summary.NetWorth = summary.Assets.Sub(summary.Liabilities)
	return summary
}
