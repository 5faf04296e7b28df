package fitlife

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/app"
)

var (
	dataDir string
	debug   bool

	cfg app.Config
)

var rootCmd = &cobra.Command{
	Use:   "fitlife",
	Short: "fitlife logs meals, steps, and water from your terminal",
	Long:  "fitlife keeps meals, step counts, and water intake in plain text logs and turns them into weekly summaries, range statistics, and AI health analysis.",

	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := app.LoadConfig(dataDir)
		if err != nil {
			return err
		}
		if err := app.SetupLogging(cmd.ErrOrStderr(), loaded.LogLevel, debug); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding the record logs (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
}
