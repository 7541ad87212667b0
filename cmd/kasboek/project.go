package main

import (
	"fmt"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/cli"
	"github.com/spf13/cobra"
)

var flagMonths int

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project account balances for the coming months",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().IntVarP(&flagMonths, "months", "m", budget.DefaultProjectionMonths, fmt.Sprintf("Number of months to project (capped at %d)", budget.MaxProjectionMonths))
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, _ []string) error {
	svc, err := openServices()
	if err != nil {
		return err
	}

	result, err := svc.projection.Project(flagMonths)
	if err != nil {
		return fmt.Errorf("project balances: %w", err)
	}
	if len(result.Accounts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "\n  No accounts found. Add an account first.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderProjection(result, svc.currency()))
	return nil
}
