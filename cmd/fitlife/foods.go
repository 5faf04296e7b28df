package fitlife

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Inspect the learned calorie-per-gram table",
}

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			table := service.LoadFoodTable(st)
			if table.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods learned yet. Log a meal with --calories to add one.")
				return nil
			}
			for _, f := range table.Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %.3f kcal/g\n", f.Name, f.CaloriesPerGram)
			}
			return nil
		})
	},
}

var foodsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one food's calories per gram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			name := store.NormalizeFood(args[0])
			cpg, ok := service.LoadFoodTable(st).Lookup(name)
			if !ok {
				return fmt.Errorf("food %q not found", name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.3f kcal/g (%.0f kcal per 100g)\n", name, cpg, cpg*100)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodsCmd)
	foodsCmd.AddCommand(foodsListCmd)
	foodsCmd.AddCommand(foodsShowCmd)
}
