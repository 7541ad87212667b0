package main

import (
	"fmt"
	"os"

	"github.com/dafibh/kasboek/kasboek-backend/internal/logger"
	"github.com/dafibh/kasboek/kasboek-backend/internal/repository/jsonfile"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagCurrency string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "kasboek",
	Short: "Household budget CLI",
	Long:  "Print the monthly budget breakdown, balance projections and net worth from a kasboek data directory.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Setup(false)
		if !flagVerbose {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Same .env as the API so both read the same data directory
	_ = godotenv.Load()

	defaultDataDir := os.Getenv("DATA_DIR")
	if defaultDataDir == "" {
		defaultDataDir = "./data"
	}

	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", defaultDataDir, "kasboek data directory")
	rootCmd.PersistentFlags().StringVarP(&flagCurrency, "currency", "c", "", "Currency code shown with amounts (default: from settings)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
}

// services holds the read-only services the commands need
type services struct {
	budget     *service.BudgetService
	projection *service.ProjectionService
	netWorth   *service.NetWorthService
	settings   *service.SettingsService
}

func openServices() (*services, error) {
	if _, err := os.Stat(flagDataDir); err != nil {
		return nil, fmt.Errorf("data directory %s: %w", flagDataDir, err)
	}
	store, err := jsonfile.NewStore(flagDataDir)
	if err != nil {
		return nil, err
	}

	accountRepo := jsonfile.NewAccountRepository(store)
	transactionRepo := jsonfile.NewTransactionRepository(store)
	categoryRepo := jsonfile.NewCategoryRepository(store)
	expenseRepo := jsonfile.NewRecurringExpenseRepository(store)
	sourceRepo := jsonfile.NewIncomeSourceRepository(store)
	goalRepo := jsonfile.NewSavingsGoalRepository(store)
	settingsRepo := jsonfile.NewSettingsRepository(store)

	return &services{
		budget:     service.NewBudgetService(transactionRepo, categoryRepo, expenseRepo, sourceRepo, goalRepo, settingsRepo),
		projection: service.NewProjectionService(accountRepo, transactionRepo, expenseRepo, sourceRepo, goalRepo, 0),
		netWorth:   service.NewNetWorthService(accountRepo, transactionRepo, jsonfile.NewNetWorthRepository(store)),
		settings:   service.NewSettingsService(settingsRepo),
	}, nil
}

// currency returns the --currency flag, falling back to the stored settings
func (s *services) currency() string {
	if flagCurrency != "" {
		return flagCurrency
	}
	settings, err := s.settings.GetSettings()
	if err != nil {
		return ""
	}
	return settings.Currency
}
