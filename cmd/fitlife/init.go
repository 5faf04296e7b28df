package fitlife

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/app"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the fitlife data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.EnsureDataDir(cfg.DataDir); err != nil {
			return err
		}
		wrote, err := app.WriteDefaultSettings(cfg.DataDir)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fitlife data directory at %s\n", st.Dir())
			if wrote {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", app.SettingsPath(st.Dir()))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
