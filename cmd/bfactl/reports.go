package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/SscSPs/budget_forecast_app/internal/core/domain"
	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <year>",
		Short: "Show the budget, forecast and closed months of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, userID, err := scope()
			if err != nil {
				return err
			}
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}

			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			status, err := env.services.Version.GetVersions(cmd.Context(), orgID, year, userID)
			if err != nil {
				return err
			}
			closed, err := env.services.Actuals.LockedMonths(cmd.Context(), orgID, year, userID)
			if err != nil {
				return err
			}

			fmt.Println(headerStyle.Render(fmt.Sprintf("Year %d", year)))
			if status.Budget.IsLocked {
				fmt.Printf("  budget:   %s\n", lockedStyle.Render("locked")+mutedStyle.Render(lockedSuffix(status.Budget)))
			} else {
				fmt.Printf("  budget:   %s\n", "open")
			}
			if status.Forecast != nil {
				fmt.Printf("  forecast: derived %s\n", status.Forecast.LastUpdatedAt.Format(time.DateOnly))
			} else {
				fmt.Printf("  forecast: %s\n", mutedStyle.Render("not derived"))
			}

			months := make([]string, 0, len(closed))
			for _, m := range closed {
				months = append(months, time.Month(m).String()[:3])
			}
			if len(months) == 0 {
				fmt.Printf("  closed:   %s\n", mutedStyle.Render("none"))
			} else {
				fmt.Printf("  closed:   %s\n", strings.Join(months, " "))
			}
			return nil
		},
	}
}

func lockedSuffix(v domain.Version) string {
	if v.LockedAt == nil {
		return ""
	}
	by := ""
	if v.LockedBy != nil {
		by = " by " + *v.LockedBy
	}
	return fmt.Sprintf(" (%s%s)", v.LockedAt.Format(time.DateOnly), by)
}

func totalsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "totals <year>",
		Short: "Print monthly revenue, expense and profit/loss",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, userID, err := scope()
			if err != nil {
				return err
			}
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			amountKind, err := domain.ParseAmountKind(kind)
			if err != nil {
				return err
			}

			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			report, err := env.services.Report.GetTotals(cmd.Context(), orgID, year, amountKind, userID)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				headerStyle.Render("Month"),
				headerStyle.Render("Revenue"),
				headerStyle.Render("Expense"),
				headerStyle.Render("P/L"))
			for _, m := range domain.Months() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
					time.Month(m).String()[:3],
					report.Monthly.Revenue.At(m).StringFixed(2),
					report.Monthly.Expense.At(m).StringFixed(2),
					report.Monthly.ProfitLoss.At(m).StringFixed(2))
			}
			for q := range report.Quarterly.Revenue {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
					mutedStyle.Render(fmt.Sprintf("Q%d", q+1)),
					report.Quarterly.Revenue[q].StringFixed(2),
					report.Quarterly.Expense[q].StringFixed(2),
					report.Quarterly.ProfitLoss[q].StringFixed(2))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
				headerStyle.Render("Year"),
				report.FullYear.Revenue.StringFixed(2),
				report.FullYear.Expense.StringFixed(2),
				report.FullYear.ProfitLoss.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(domain.KindBudget), "budget, forecast or actuals")
	return cmd
}
