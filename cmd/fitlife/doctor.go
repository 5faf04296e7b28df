package fitlife

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check record logs for unreadable or malformed lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			report := service.RunDoctor(st)
			if doctorJSON {
				if err := printJSON(cmd.OutOrStdout(), "doctor", report); err != nil {
					return err
				}
			} else {
				for _, s := range report.Stores {
					switch {
					case s.Error != "":
						fmt.Fprintf(cmd.OutOrStdout(), "%-6s unreadable: %s\n", s.Name, s.Error)
					case s.Missing:
						fmt.Fprintf(cmd.OutOrStdout(), "%-6s not created yet\n", s.Name)
					default:
						fmt.Fprintf(cmd.OutOrStdout(), "%-6s %d records, %d malformed lines\n", s.Name, s.Records, s.Skipped)
					}
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output JSON")
}
