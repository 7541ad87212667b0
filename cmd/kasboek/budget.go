package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/cli"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [year] [month]",
	Short: "Needs/wants/savings breakdown for a month (default: current month)",
	Args:  cobra.RangeArgs(0, 2),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	year, month, err := parseYearMonth(args, time.Now())
	if err != nil {
		return err
	}

	svc, err := openServices()
	if err != nil {
		return err
	}

	breakdown, err := svc.budget.GetBreakdown(year, month)
	if err != nil {
		return fmt.Errorf("calculate budget breakdown: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderBreakdown(breakdown, svc.currency()))
	return nil
}

// parseYearMonth reads optional year and month arguments, defaulting to the month of now
func parseYearMonth(args []string, now time.Time) (int, time.Month, error) {
	year, month := now.Year(), now.Month()
	if len(args) > 0 {
		y, err := strconv.Atoi(args[0])
		if err != nil || y < 1 {
			return 0, 0, fmt.Errorf("invalid year %q", args[0])
		}
		year = y
	}
	if len(args) > 1 {
		m, err := strconv.Atoi(args[1])
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month %q: must be between 1 and 12", args[1])
		}
		month = time.Month(m)
	}
	return year, month, nil
}
