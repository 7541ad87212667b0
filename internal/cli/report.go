package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dafibh/kasboek/kasboek-backend/internal/budget"
	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
)

const barWidth = 20

// RenderBreakdown renders a monthly needs/wants/savings breakdown with one table per bucket.
func RenderBreakdown(b *budget.Breakdown, currency string) string {
	var out strings.Builder

	out.WriteString(RenderTitle(fmt.Sprintf("BUDGET  %s %d", b.Month, b.Year)))
	out.WriteString("\n\n")

	summary := Table{
		Headers: []string{"Bucket", "Share", "Budgeted", "Spent", "Remaining", "Used"},
	}
	for _, s := range []*budget.BucketSummary{b.Needs, b.Wants, b.Savings} {
		summary.Rows = append(summary.Rows, []string{
			strings.ToUpper(string(s.Bucket[:1])) + string(s.Bucket[1:]),
			FormatShare(s.Share),
			FormatMoney(s.Budgeted, currency),
			FormatMoney(s.Spent, currency),
			Signed(s.Remaining, FormatMoney(s.Remaining, currency)),
			RenderBar(s.PercentUsed, barWidth) + " " + FormatPercent(s.PercentUsed),
		})
	}
	summary.Rows = append(summary.Rows,
		[]string{Separator},
		[]string{
			"Total",
			"",
			FormatMoney(b.TotalBudgeted, currency),
			FormatMoney(b.TotalSpent, currency),
			Signed(b.TotalRemaining, FormatMoney(b.TotalRemaining, currency)),
			"",
		},
	)
	out.WriteString(fmt.Sprintf("  Income %s\n", FormatMoney(b.TotalIncome, currency)))
	out.WriteString(RenderTable(summary))

	for _, s := range []*budget.BucketSummary{b.Needs, b.Wants, b.Savings} {
		if len(s.Items) == 0 {
			continue
		}
		items := Table{
			Title:   strings.ToUpper(string(s.Bucket)),
			Headers: []string{"Item", "Category", "Date", "Amount"},
		}
		for _, item := range s.Items {
			date := Muted("expected")
			if item.Date != nil {
				date = item.Date.Format("2006-01-02")
			}
			items.Rows = append(items.Rows, []string{
				item.Name,
				string(item.Category),
				date,
				FormatMoney(item.Amount, currency),
			})
		}
		out.WriteString("\n")
		out.WriteString(RenderTable(items))
	}

	return out.String()
}

// RenderProjection renders projected month-end balances, one column per account.
func RenderProjection(result *service.ProjectionResult, currency string) string {
	var out strings.Builder

	out.WriteString(RenderTitle(fmt.Sprintf("PROJECTION  %d months from %s", len(result.Months), result.Start.Format("Jan 2006"))))
	out.WriteString("\n\n")

	t := Table{Headers: []string{"Month", "Income", "Expenses"}}
	for _, acc := range result.Accounts {
		t.Headers = append(t.Headers, acc.Name)
	}
	t.Headers = append(t.Headers, "Total")

	start := []string{"Now", "", ""}
	for _, acc := range result.Accounts {
		start = append(start, FormatMoney(acc.Balance, currency))
	}
	start = append(start, "")
	t.Rows = append(t.Rows, start, []string{Separator})

	for _, m := range result.Months {
		row := []string{
			m.Month.Format("Jan 2006"),
			FormatMoney(m.Income, currency),
			FormatMoney(m.Expenses, currency),
		}
		for _, acc := range m.Accounts {
			row = append(row, Signed(acc.Balance, FormatMoney(acc.Balance, currency)))
		}
		row = append(row, Signed(m.TotalBalance, FormatMoney(m.TotalBalance, currency)))
		t.Rows = append(t.Rows, row)
	}
	out.WriteString(RenderTable(t))

	if len(result.Months) > 0 {
		last := result.Months[len(result.Months)-1]
		if !last.Unallocated.IsZero() {
			out.WriteString(Muted(fmt.Sprintf("  Includes %s not linked to an account\n", FormatMoney(last.Unallocated, currency))))
		}
	}
	return out.String()
}

// RenderNetWorth renders the current net worth with a per-type breakdown.
func RenderNetWorth(summary *service.NetWorthSummary, currency string) string {
	var out strings.Builder

	out.WriteString(RenderTitle("NET WORTH"))
	out.WriteString("\n\n")

	accounts := Table{Headers: []string{"Account", "Type", "Balance"}}
	for _, acc := range summary.Accounts {
		accounts.Rows = append(accounts.Rows, []string{
			acc.Name,
			string(acc.Type),
			Signed(acc.CurrentBalance, FormatMoney(acc.CurrentBalance, currency)),
		})
	}
	accounts.Rows = append(accounts.Rows,
		[]string{Separator},
		[]string{"Assets", "", FormatMoney(summary.Assets, currency)},
		[]string{"Liabilities", "", FormatMoney(summary.Liabilities, currency)},
		[]string{"Net worth", "", Signed(summary.NetWorth, FormatMoney(summary.NetWorth, currency))},
	)
	out.WriteString(RenderTable(accounts))

	types := make([]domain.AccountType, 0, len(summary.ByType))
	for typ := range summary.ByType {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	byType := Table{Title: "BY TYPE", Headers: []string{"Type", "Total"}}
	for _, typ := range types {
		byType.Rows = append(byType.Rows, []string{string(typ), FormatMoney(summary.ByType[typ], currency)})
	}
	out.WriteString("\n")
	out.WriteString(RenderTable(byType))

	return out.String()
}
