package fitlife

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and list meals",
}

var (
	mealName     string
	mealGrams    float64
	mealAmount   float64
	mealUnit     string
	mealCalories int
	mealCategory string
	mealDate     string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	Long:  "Log a meal. With --calories the food table learns the calories per gram; without it calories are estimated from what the table already knows.",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", mealDate)
		if err != nil {
			return err
		}
		grams := mealGrams
		if cmd.Flags().Changed("amount") {
			if grams, err = service.ToGrams(mealAmount, mealUnit); err != nil {
				return err
			}
		}
		return withStore(func(st *store.Store) error {
			table := service.LoadFoodTable(st)
			rec, err := service.LogMeal(st, table, service.MealInput{
				Date:     date,
				Name:     mealName,
				Grams:    grams,
				Calories: mealCalories,
				Category: mealCategory,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s: %.0fg, %d kcal\n", rec.Meal.Food, model.FormatDate(rec.Date), rec.Meal.Grams, rec.Meal.Calories)
			if mealCalories <= 0 {
				if _, ok := table.Lookup(rec.Meal.Food); ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Calories estimated from the food table.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Unknown food, logged with 0 kcal. Pass --calories once to teach it.")
				}
			}
			return nil
		})
	},
}

var mealListDate string

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meals for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", mealListDate)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			meals := service.LoadRecords(st).Between(date, date).Meals
			if len(meals) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No meals logged on %s\n", model.FormatDate(date))
				return nil
			}
			total := 0
			for _, r := range meals {
				category := r.Meal.Category
				if category == "" {
					category = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %6dg %6d kcal  %s\n", r.Meal.Food, int(math.Round(r.Meal.Grams)), r.Meal.Calories, category)
				total += r.Meal.Calories
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal over %d meals\n", total, len(meals))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Food name")
	mealAddCmd.Flags().Float64Var(&mealGrams, "grams", 0, "Quantity in grams")
	mealAddCmd.Flags().Float64Var(&mealAmount, "amount", 0, "Quantity in --unit instead of grams")
	mealAddCmd.Flags().StringVar(&mealUnit, "unit", "g", "Mass unit for --amount: mg, g, kg, oz, lb")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories for this quantity (0 = estimate from food table)")
	mealAddCmd.Flags().StringVar(&mealCategory, "category", "", "Meal category, e.g. breakfast")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	_ = mealAddCmd.MarkFlagRequired("name")
	mealAddCmd.MarkFlagsOneRequired("grams", "amount")
	mealAddCmd.MarkFlagsMutuallyExclusive("grams", "amount")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
