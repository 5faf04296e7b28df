package fitlife

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/service"
)

var (
	bmiAge    int
	bmiHeight float64
	bmiWeight float64
	bmiJSON   bool
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Calculate body mass index",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := service.CalculateBMI(bmiAge, bmiHeight, bmiWeight)
		if err != nil {
			return err
		}
		if bmiJSON {
			return printJSON(cmd.OutOrStdout(), "bmi", res)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.2f\n", res.BMI)
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", res.Category)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bmiCmd)
	bmiCmd.Flags().IntVar(&bmiAge, "age", 0, "Age in years")
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "Height in meters")
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "Weight in kilograms")
	bmiCmd.Flags().BoolVar(&bmiJSON, "json", false, "Output JSON")
	_ = bmiCmd.MarkFlagRequired("height")
	_ = bmiCmd.MarkFlagRequired("weight")
}
