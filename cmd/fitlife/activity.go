package fitlife

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "Log and list step counts",
}

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log and list water intake",
}

var (
	stepsCount    int
	stepsDate     string
	stepsListDate string

	waterLiters   float64
	waterAmount   float64
	waterUnit     string
	waterDate     string
	waterListDate string
)

var stepsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a step count",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", stepsDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			rec, err := service.LogSteps(st, date, stepsCount)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d steps on %s\n", rec.Steps, model.FormatDate(rec.Date))
			return nil
		})
	},
}

var stepsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List step entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", stepsListDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			entries := service.LoadRecords(st).Between(date, date).Steps
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No steps logged on %s\n", model.FormatDate(date))
				return nil
			}
			total := 0
			for _, r := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d steps\n", r.Steps)
				total += r.Steps
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d steps\n", total)
			return nil
		})
	},
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", waterDate)
		if err != nil {
			return err
		}
		liters := waterLiters
		if cmd.Flags().Changed("amount") {
			if liters, err = service.ToLiters(waterAmount, waterUnit); err != nil {
				return err
			}
		}
		return withStore(func(st *store.Store) error {
			rec, err := service.LogWater(st, date, liters)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %.2f L of water on %s\n", rec.Liters, model.FormatDate(rec.Date))
			return nil
		})
	},
}

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List water entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", waterListDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			entries := service.LoadRecords(st).Between(date, date).Water
			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No water logged on %s\n", model.FormatDate(date))
				return nil
			}
			total := 0.0
			for _, r := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%.2f L\n", r.Liters)
				total += r.Liters
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %.2f L\n", total)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(stepsCmd)
	stepsCmd.AddCommand(stepsAddCmd)
	stepsCmd.AddCommand(stepsListCmd)
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterListCmd)

	stepsAddCmd.Flags().IntVar(&stepsCount, "steps", 0, "Step count")
	stepsAddCmd.Flags().StringVar(&stepsDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = stepsAddCmd.MarkFlagRequired("steps")
	stepsListCmd.Flags().StringVar(&stepsListDate, "date", "", "Date YYYY-MM-DD (default today)")

	waterAddCmd.Flags().Float64Var(&waterLiters, "liters", 0, "Liters of water")
	waterAddCmd.Flags().Float64Var(&waterAmount, "amount", 0, "Quantity in --unit instead of liters")
	waterAddCmd.Flags().StringVar(&waterUnit, "unit", "ml", "Volume unit for --amount: ml, l, cup, fl-oz, tbsp, tsp")
	waterAddCmd.Flags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
	waterAddCmd.MarkFlagsOneRequired("liters", "amount")
	waterAddCmd.MarkFlagsMutuallyExclusive("liters", "amount")
	waterListCmd.Flags().StringVar(&waterListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
