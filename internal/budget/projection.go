package budget

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/util"
	"github.com/shopspring/decimal"
)

const (
	// DefaultProjectionMonths is the horizon used when callers do not ask for one
	DefaultProjectionMonths = 12
	// MaxProjectionMonths caps the horizon accepted from API callers
	MaxProjectionMonths = 120
)

var (
	ErrMissingStart      = errors.New("projection start month is required")
	ErrInvalidAccountRef = errors.New("invalid account in projection snapshot")
)

// AccountBalance is an account's current balance at projection start
type AccountBalance struct {
	ID      string
	Name    string
	Type    domain.AccountType
	Balance decimal.Decimal
}

// RecurringItem is any expected cash flow that repeats: a recurring transaction, a
// configured expense (already negated), an income source or one leg of a savings transfer.
// Anchor is the calendar month the item was recorded in; yearly and quarterly items key off it.
type RecurringItem struct {
	Name      string
	AccountID string
	Amount    decimal.Decimal
	Frequency domain.Frequency
	Anchor    time.Month
}

// ProjectionInput is the snapshot a projection runs over
type ProjectionInput struct {
	Start    time.Time
	Accounts []AccountBalance
	Items    []RecurringItem
}

// AccountProjection is one account's projected balance
type AccountProjection struct {
	AccountID string          `json:"accountId"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}

// MonthlySnapshot is the projected state at the start of Month. Unallocated collects flows
// that are not tied to a known account; it is part of TotalBalance.
type MonthlySnapshot struct {
	Month        time.Time           `json:"month"`
	TotalBalance decimal.Decimal     `json:"totalBalance"`
	Income       decimal.Decimal     `json:"income"`
	Expenses     decimal.Decimal     `json:"expenses"`
	Unallocated  decimal.Decimal     `json:"unallocated"`
	Accounts     []AccountProjection `json:"accounts"`
}

// Projector produces forward balance projections from a fixed snapshot. It holds no cursor:
// every call to Months starts again from the snapshot.
type Projector struct {
	start    time.Time
	accounts []AccountBalance
	index    map[string]int
	items    []RecurringItem
}

// NewProjector validates the snapshot and copies it so later changes by the caller do not leak in
func NewProjector(in ProjectionInput) (*Projector, error) {
	if in.Start.IsZero() {
		return nil, ErrMissingStart
	}

	p := &Projector{
		start:    util.MonthStart(in.Start),
		accounts: make([]AccountBalance, len(in.Accounts)),
		index:    make(map[string]int, len(in.Accounts)),
		items:    make([]RecurringItem, len(in.Items)),
	}

	for i, acc := range in.Accounts {
		if acc.ID == "" {
			return nil, fmt.Errorf("%w: account %d has no id", ErrInvalidAccountRef, i)
		}
		if _, dup := p.index[acc.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate account id %q", ErrInvalidAccountRef, acc.ID)
		}
		p.index[acc.ID] = i
		p.accounts[i] = acc
	}

	for i, item := range in.Items {
		if item.Anchor < time.January || item.Anchor > time.December {
			item.Anchor = p.start.Month()
		}
		p.items[i] = item
	}

	return p, nil
}

// Months yields one snapshot per month for the next horizon months, starting with the month
// after the start month. A horizon of zero or less yields nothing.
func (p *Projector) Months(horizon int) iter.Seq[MonthlySnapshot] {
	return func(yield func(MonthlySnapshot) bool) {
		if horizon <= 0 {
			return
		}

		balances := make([]decimal.Decimal, len(p.accounts))
		for i, acc := range p.accounts {
			balances[i] = acc.Balance
		}
		unallocated := decimal.Zero

		for step := 1; step <= horizon; step++ {
			target := util.AddMonths(p.start, step)
			income := decimal.Zero
			expenses := decimal.Zero

			for _, item := range p.items {
				delta := AmountForMonth(item, target)
				if delta.IsZero() {
					continue
				}
				if delta.IsPositive() {
					income = income.Add(delta)
				} else {
					expenses = expenses.Add(delta.Neg())
				}

				if idx, ok := p.index[item.AccountID]; ok {
					balances[idx] = balances[idx].Add(delta)
				} else {
					unallocated = unallocated.Add(delta)
				}
			}

			snap := MonthlySnapshot{
				Month:        target,
				TotalBalance: unallocated,
				Income:       income,
				Expenses:     expenses,
				Unallocated:  unallocated,
				Accounts:     make([]AccountProjection, len(p.accounts)),
			}
			for i, acc := range p.accounts {
				snap.Accounts[i] = AccountProjection{
					AccountID: acc.ID,
					Name:      acc.Name,
					Balance:   balances[i],
				}
				snap.TotalBalance = snap.TotalBalance.Add(balances[i])
			}

			if !yield(snap) {
				return
			}
		}
	}
}

// Generate collects Months(horizon) into a slice. The result is never nil.
func (p *Projector) Generate(horizon int) []MonthlySnapshot {
	out := make([]MonthlySnapshot, 0, max(horizon, 0))
	for snap := range p.Months(horizon) {
		out = append(out, snap)
	}
	return out
}

// AmountForMonth returns how much of item lands in the month of target. Monthly items apply
// every month, yearly items only in their anchor month, quarterly items every third month from
// the anchor. Weekly, biweekly and daily items are averaged into a monthly amount.
// Unknown frequencies apply as monthly.
func AmountForMonth(item RecurringItem, target time.Time) decimal.Decimal {
	switch NormalizeFrequency(item.Frequency) {
	case domain.FrequencyYearly:
		if target.Month() == item.Anchor {
			return item.Amount
		}
		return decimal.Zero
	case domain.FrequencyQuarterly:
		diff := (int(target.Month()) - int(item.Anchor) + 12) % 12
		if diff%3 == 0 {
			return item.Amount
		}
		return decimal.Zero
	case domain.FrequencyMonthly:
		return item.Amount
	default:
		return MonthlyEquivalent(item.Amount, item.Frequency)
	}
}
