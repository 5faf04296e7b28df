package fitlife

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Weekly and date-range reports",
}

var reportStart string

var reportWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Seven-day summary of calories, steps, and water",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWeekly(cmd, service.WeeklySummary)
	},
}

var reportStepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Seven-day steps report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWeekly(cmd, service.StepsWeeklyReport)
	},
}

var reportWaterCmd = &cobra.Command{
	Use:   "water",
	Short: "Seven-day water report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWeekly(cmd, service.WaterWeeklyReport)
	},
}

// runWeekly prints a weekly report. An unparsable --start is reported in
// place of the report rather than as a command error.
func runWeekly(cmd *cobra.Command, render func(service.RecordSet, string) string) error {
	start := strings.TrimSpace(reportStart)
	if start == "" {
		start = model.FormatDate(model.Day(time.Now()).AddDate(0, 0, -(service.WeekDays - 1)))
	}
	return withStore(func(st *store.Store) error {
		fmt.Fprintln(cmd.OutOrStdout(), render(service.LoadRecords(st), start))
		return nil
	})
}

var (
	rangeFrom string
	rangeTo   string
	rangeJSON bool
)

var reportRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Statistics over an arbitrary date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := resolveRange(rangeFrom, rangeTo, 0)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			snap, err := service.Extract(service.LoadRecords(st), from, to)
			if err != nil {
				return err
			}
			if rangeJSON {
				return printJSON(cmd.OutOrStdout(), "range report", snap)
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.FormatRangeSummary(snap))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportWeekCmd)
	reportCmd.AddCommand(reportStepsCmd)
	reportCmd.AddCommand(reportWaterCmd)
	reportCmd.AddCommand(reportRangeCmd)

	for _, c := range []*cobra.Command{reportWeekCmd, reportStepsCmd, reportWaterCmd} {
		c.Flags().StringVar(&reportStart, "start", "", "First day of the week YYYY-MM-DD (default six days ago)")
	}

	reportRangeCmd.Flags().StringVar(&rangeFrom, "from", "", "Start date YYYY-MM-DD")
	reportRangeCmd.Flags().StringVar(&rangeTo, "to", "", "End date YYYY-MM-DD")
	reportRangeCmd.Flags().BoolVar(&rangeJSON, "json", false, "Output JSON")
}
