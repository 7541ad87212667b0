package service

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/util"
)

// BudgetService assembles the stored data into a budget breakdown
type BudgetService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	expenseRepo     domain.RecurringExpenseRepository
	sourceRepo      domain.IncomeSourceRepository
	goalRepo        domain.SavingsGoalRepository
	settingsRepo    domain.SettingsRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(
	transactionRepo domain.TransactionRepository,
	categoryRepo domain.CategoryRepository,
	expenseRepo domain.RecurringExpenseRepository,
	sourceRepo domain.IncomeSourceRepository,
	goalRepo domain.SavingsGoalRepository,
	settingsRepo domain.SettingsRepository,
) *BudgetService {
	return &BudgetService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		expenseRepo:     expenseRepo,
		sourceRepo:      sourceRepo,
		goalRepo:        goalRepo,
		settingsRepo:    settingsRepo,
	}
}

// GetBreakdown computes the budget breakdown for a calendar month. Transaction categories
// are resolved from ids to names, income is the expected monthly income and the split
// follows the stored budget percentages when set. Goal progress is taken as of the start of
// the month so a goal reached by this month's contribution still shows it under savings.
func (s *BudgetService) GetBreakdown(year int, month time.Month) (*budget.Breakdown, error) {
	if month < time.January || month > time.December || year < 1 {
		return nil, domain.ErrInvalidDate
	}
	monthEnd := util.MonthEnd(year, month)

	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetAll()
	if err != nil {
		return nil, err
	}
	sources, err := s.sourceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	goals, err := s.goalRepo.GetAll()
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	resolved := ResolveCategories(transactions, categories)
	configured := make([]*domain.RecurringExpense, 0, len(expenses))
	for _, exp := range expenses {
		if exp == nil {
			continue
		}
		e := *exp
		e.Category = resolveCategoryName(e.Category, categories)
		configured = append(configured, &e)
	}

	return budget.CalculateBreakdown(budget.BreakdownInput{
		TotalIncome:        budget.MonthlyIncome(sources, resolved, monthEnd),
		ConfiguredExpenses: configured,
		Transactions:       resolved,
		SavingsGoals:       WithProgress(goals, resolved, util.MonthStart(monthEnd)),
		MonthEnd:           monthEnd,
		Percentages:        settings.BudgetPercentages,
	})
}

func resolveCategoryName(value string, categories []*domain.Category) string {
	for _, c := range categories {
		if c.ID == value {
			return c.Name
		}
	}
	return value
}
