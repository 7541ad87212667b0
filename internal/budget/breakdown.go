package budget

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingMonth    = errors.New("month end date is required")
	ErrNegativeIncome  = errors.New("total income must not be negative")
	ErrInvalidSnapshot = errors.New("invalid budget snapshot")
)

// Default 50/30/20 split as fractions of income
var (
	DefaultNeedsShare   = decimal.NewFromFloat(0.50)
	DefaultWantsShare   = decimal.NewFromFloat(0.30)
	DefaultSavingsShare = decimal.NewFromFloat(0.20)
)

var hundred = decimal.NewFromInt(100)

// ItemSource tells where a line item's amount came from
type ItemSource string

const (
	SourceTransaction ItemSource = "transaction"
	SourceConfigured  ItemSource = "configured"
	SourceSavingsGoal ItemSource = "savings_goal"
)

// BreakdownInput is the snapshot a breakdown is computed from.
// Transaction categories must already be resolved from ids to names.
type BreakdownInput struct {
	TotalIncome        decimal.Decimal
	ConfiguredExpenses []*domain.RecurringExpense
	Transactions       []*domain.Transaction
	SavingsGoals       []*domain.SavingsGoal
	MonthEnd           time.Time
	// Percentages overrides the default split when set; values are whole percents
	Percentages *domain.BudgetPercentages
}

// LineItem is one contribution to a bucket's spent amount
type LineItem struct {
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Source   ItemSource      `json:"source"`
	Date     *time.Time      `json:"date,omitempty"`
}

// BucketSummary is the budget state of one bucket. Remaining goes negative on overspend.
type BucketSummary struct {
	Bucket      Bucket          `json:"bucket"`
	Share       decimal.Decimal `json:"share"`
	Budgeted    decimal.Decimal `json:"budgeted"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	PercentUsed decimal.Decimal `json:"percentUsed"`
	Items       []LineItem      `json:"items"`
}

// Breakdown is the budget for one month split into needs, wants and savings
type Breakdown struct {
	Year           int             `json:"year"`
	Month          time.Month      `json:"month"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalBudgeted  decimal.Decimal `json:"totalBudgeted"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalRemaining decimal.Decimal `json:"totalRemaining"`
	Needs          *BucketSummary  `json:"needs"`
	Wants          *BucketSummary  `json:"wants"`
	Savings        *BucketSummary  `json:"savings"`
}

// Bucket returns the summary for b
func (b *Breakdown) Bucket(bucket Bucket) *BucketSummary {
	switch bucket {
	case BucketNeeds:
		return b.Needs
	case BucketWants:
		return b.Wants
	case BucketSavings:
		return b.Savings
	}
	return nil
}

// Shares returns the bucket shares as fractions of income. Custom percentages are
// taken as given; only the defaults are guaranteed to add up to one.
func Shares(p *domain.BudgetPercentages) map[Bucket]decimal.Decimal {
	if p == nil {
		return map[Bucket]decimal.Decimal{
			BucketNeeds:   DefaultNeedsShare,
			BucketWants:   DefaultWantsShare,
			BucketSavings: DefaultSavingsShare,
		}
	}
	return map[Bucket]decimal.Decimal{
		BucketNeeds:   decimal.NewFromFloat(p.Needs).Div(hundred),
		BucketWants:   decimal.NewFromFloat(p.Wants).Div(hundred),
		BucketSavings: decimal.NewFromFloat(p.Savings).Div(hundred),
	}
}

// CalculateBreakdown computes budgeted and spent amounts per bucket for the month that
// MonthEnd falls in. It never mutates its input.
func CalculateBreakdown(in BreakdownInput) (*Breakdown, error) {
	if err := validateBreakdownInput(in); err != nil {
		return nil, err
	}

	shares := Shares(in.Percentages)
	summaries := make(map[Bucket]*BucketSummary, len(Buckets))
	for _, b := range Buckets {
		summaries[b] = &BucketSummary{
			Bucket:   b,
			Share:    shares[b],
			Budgeted: in.TotalIncome.Mul(shares[b]),
			Spent:    decimal.Zero,
			Items:    []LineItem{},
		}
	}

	add := func(b Bucket, item LineItem) {
		s := summaries[b]
		s.Spent = s.Spent.Add(item.Amount)
		s.Items = append(s.Items, item)
	}

	activeGoals := make(map[string]bool)
	for _, g := range in.SavingsGoals {
		if g != nil && g.IsActiveAt(in.MonthEnd) {
			activeGoals[g.ID] = true
		}
	}

	// Actual transactions of the month
	var monthExpenses []*domain.Transaction
	for _, tx := range in.Transactions {
		if tx == nil || !tx.InMonth(in.MonthEnd) {
			continue
		}
		date := tx.Date

		if tx.SavingsGoalID != nil && activeGoals[*tx.SavingsGoalID] {
			add(BucketSavings, LineItem{
				Name:     tx.Description,
				Category: CategorySavings,
				Amount:   decimal.NewFromFloat(tx.Amount).Abs(),
				Source:   SourceSavingsGoal,
				Date:     &date,
			})
			continue
		}

		if tx.Type != domain.TransactionTypeExpense {
			continue
		}
		monthExpenses = append(monthExpenses, tx)

		category := NormalizeCategory(tx.Category)
		add(BucketFor(category), LineItem{
			Name:     tx.Description,
			Category: category,
			Amount:   decimal.NewFromFloat(tx.Amount).Abs(),
			Source:   SourceTransaction,
			Date:     &date,
		})
	}

	// Configured expenses that have no actual counterpart this month
	for _, exp := range in.ConfiguredExpenses {
		if exp == nil || !exp.IsActive {
			continue
		}
		if hasActualPayment(exp.Name, monthExpenses) {
			continue
		}
		category := NormalizeCategory(exp.Category)
		add(BucketFor(category), LineItem{
			Name:     exp.Name,
			Category: category,
			Amount:   MonthlyEquivalent(decimal.NewFromFloat(exp.Amount).Abs(), exp.Frequency),
			Source:   SourceConfigured,
		})
	}

	result := &Breakdown{
		Year:           in.MonthEnd.Year(),
		Month:          in.MonthEnd.Month(),
		TotalIncome:    in.TotalIncome,
		TotalBudgeted:  decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalRemaining: decimal.Zero,
		Needs:          summaries[BucketNeeds],
		Wants:          summaries[BucketWants],
		Savings:        summaries[BucketSavings],
	}

	for _, b := range Buckets {
		s := summaries[b]
		s.Remaining = s.Budgeted.Sub(s.Spent)
		s.PercentUsed = Percentage(s.Spent, s.Budgeted)

		result.TotalBudgeted = result.TotalBudgeted.Add(s.Budgeted)
		result.TotalSpent = result.TotalSpent.Add(s.Spent)
	}
	result.TotalRemaining = result.TotalBudgeted.Sub(result.TotalSpent)

	return result, nil
}

// Percentage returns part/whole*100, or zero when whole is zero
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// NamesMatch reports whether two payment descriptions refer to the same payment:
// either one contains the other, ignoring case. Empty names never match.
func NamesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func hasActualPayment(name string, expenses []*domain.Transaction) bool {
	for _, tx := range expenses {
		if NamesMatch(tx.Description, name) {
			return true
		}
	}
	return false
}

func validateBreakdownInput(in BreakdownInput) error {
	if in.MonthEnd.IsZero() {
		return ErrMissingMonth
	}
	if in.TotalIncome.IsNegative() {
		return ErrNegativeIncome
	}
	for i, tx := range in.Transactions {
		if tx == nil {
			continue
		}
		if tx.Date.IsZero() {
			return fmt.Errorf("%w: transaction %d (%q) has no date", ErrInvalidSnapshot, i, tx.ID)
		}
	}
	for i, exp := range in.ConfiguredExpenses {
		if exp == nil {
			continue
		}
		if strings.TrimSpace(exp.Name) == "" {
			return fmt.Errorf("%w: configured expense %d has no name", ErrInvalidSnapshot, i)
		}
	}
	return nil
}
