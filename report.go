package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mustafagenc/planly/model"
	"github.com/mustafagenc/planly/services"
	"github.com/spf13/cobra"
)

var (
	reportEmail string
	reportYear  int
	reportPDF   string
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	totalStyle  = cellStyle.Bold(true)
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a user's yearly effort by month",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		user, err := st.GetUserByEmail(cmd.Context(), reportEmail)
		if err != nil {
			return fmt.Errorf("find user %s: %w", reportEmail, err)
		}
		stats, err := services.NewReportService(st).YearlyStats(cmd.Context(), user.UserID, reportYear)
		if err != nil {
			return err
		}

		if reportPDF != "" {
			f, err := os.Create(reportPDF)
			if err != nil {
				return err
			}
			if err := services.RenderYearlyPDF(f, stats); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderYearTable(stats))
		return nil
	},
}

// renderYearTable lays out one row per month plus a totals row.
func renderYearTable(stats model.YearlyStats) string {
	rows := make([][]string, 0, len(stats.Months)+1)
	for _, m := range stats.Months {
		rows = append(rows, []string{
			time.Month(m.Month).String(),
			formatDays(m.AnnualPlanDays),
			formatDays(m.AdHocDays),
			formatDays(m.Total),
		})
	}
	rows = append(rows, []string{
		"Total",
		formatDays(stats.AnnualPlanTotal),
		formatDays(stats.AdHocTotal),
		formatDays(stats.GrandTotal),
	})
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(fmt.Sprintf("%d", stats.Year), "Annual plan", "Ad hoc", "Total").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == last:
				return totalStyle
			}
			return cellStyle
		})
	return t.String()
}

func formatDays(d float64) string {
	return fmt.Sprintf("%.1f", d)
}

func init() {
	reportCmd.Flags().StringVar(&reportEmail, "email", "", "account email")
	reportCmd.Flags().IntVar(&reportYear, "year", time.Now().Year(), "calendar year")
	reportCmd.Flags().StringVar(&reportPDF, "pdf", "", "also write the report as a PDF to this path")
	_ = reportCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(reportCmd)
}
