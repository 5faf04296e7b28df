package fitlife

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saadjs/fitlife-cli/internal/provider/gemini"
	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

var (
	analyzeQuestion string
	analyzeDays     int
	analyzeFrom     string
	analyzeTo       string
	analyzeJSON     bool
)

type analyzeOutput struct {
	Question string           `json:"question"`
	Metrics  service.Snapshot `json:"metrics"`
	Analysis service.Analysis `json:"analysis"`
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask Gemini a question about your logged data",
	Long:  "Summarizes the chosen date range and sends it with your question to Gemini. Requires GEMINI_API_KEY in the environment or a .env file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(analyzeQuestion)
		if question == "" {
			return fmt.Errorf("--question is required")
		}
		if err := service.RequireAPIKey(cfg.Gemini.APIKey); err != nil {
			return err
		}
		if analyzeDays < 0 {
			return fmt.Errorf("--days must be > 0")
		}
		from, to, err := resolveRange(analyzeFrom, analyzeTo, analyzeDays)
		if err != nil {
			return err
		}

		return withStore(func(st *store.Store) error {
			records := service.LoadRecords(st)
			if records.Between(from, to).Empty() {
				fmt.Fprintln(cmd.ErrOrStderr(), "No entries logged in this period; the analysis will only see zeroed metrics.")
			}
			snap, err := service.Extract(records, from, to)
			if err != nil {
				return err
			}
			client := &gemini.Client{
				APIKey:     cfg.Gemini.APIKey,
				Model:      cfg.Gemini.Model,
				BaseURL:    cfg.Gemini.BaseURL,
				HTTPClient: gemini.NewHTTPClient(),
			}
			pending := service.AnalyzeAsync(client, snap, question)
			fmt.Fprintf(cmd.ErrOrStderr(), "Analyzing %s to %s...\n", snap.StartDate, snap.EndDate)

			select {
			case <-pending.Done():
			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
			result := pending.Wait()

			if analyzeJSON {
				if err := printJSON(cmd.OutOrStdout(), "analysis", analyzeOutput{Question: question, Metrics: snap, Analysis: result}); err != nil {
					return err
				}
			} else if !result.Failed() {
				fmt.Fprintln(cmd.OutOrStdout(), service.FormatAnalysis(question, result))
			}
			if result.Failed() {
				return fmt.Errorf("analysis failed: %s", result.Error)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeQuestion, "question", "", "Question about your health data")
	analyzeCmd.Flags().IntVar(&analyzeDays, "days", 0, "Analyze the last N days (default analysis_days setting)")
	analyzeCmd.Flags().StringVar(&analyzeFrom, "from", "", "Start date YYYY-MM-DD")
	analyzeCmd.Flags().StringVar(&analyzeTo, "to", "", "End date YYYY-MM-DD")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output JSON")
	analyzeCmd.MarkFlagsMutuallyExclusive("days", "from")
	analyzeCmd.MarkFlagsMutuallyExclusive("days", "to")
}
