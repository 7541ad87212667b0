package main

import (
	"fmt"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/cli"
	"github.com/spf13/cobra"
)

var flagRecord bool

var netWorthCmd = &cobra.Command{
	Use:   "networth",
	Short: "Current net worth by account",
	RunE:  runNetWorth,
}

func init() {
	netWorthCmd.Flags().BoolVar(&flagRecord, "record", false, "Also store the result as this month's snapshot")
	rootCmd.AddCommand(netWorthCmd)
}

func runNetWorth(cmd *cobra.Command, _ []string) error {
	svc, err := openServices()
	if err != nil {
		return err
	}

	summary, err := svc.netWorth.GetCurrent()
	if err != nil {
		return fmt.Errorf("calculate net worth: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderNetWorth(summary, svc.currency()))

	if flagRecord {
		snapshot, err := svc.netWorth.RecordSnapshot(time.Now())
		if err != nil {
			return fmt.Errorf("record snapshot: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n  Recorded snapshot for %s\n", snapshot.Month.Format("January 2006"))
	}
	return nil
}
