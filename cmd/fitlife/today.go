package fitlife

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var (
	todayDate  string
	todayWatch bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meals, steps, water, and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := parseDateFlag("date", todayDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			out := cmd.OutOrStdout()
			renderDashboard(out, st, target)
			if !todayWatch {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "Watching for new entries, press Ctrl-C to stop.")
			return service.WatchLogs(cmd.Context(), st.Dir(), func() {
				fmt.Fprintf(out, "\n--- updated %s ---\n", time.Now().Format("15:04:05"))
				renderDashboard(out, st, target)
			})
		})
	},
}

func renderDashboard(w io.Writer, st *store.Store, date time.Time) {
	fmt.Fprintln(w, service.FormatDashboard(service.BuildDashboard(service.LoadRecords(st), date)))
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayWatch, "watch", false, "Redraw whenever a log file changes")
}
