package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	DefaultConfidence  = 0.85
	DegradedConfidence = 0.70
	DefaultAnswer      = "Analysis complete"
)

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Analysis is the decoded model reply. A non-empty Error means the call
// failed and the other fields are unset.
type Analysis struct {
	Answer          string   `json:"answer,omitempty"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Confidence      float64  `json:"confidence"`
	Error           string   `json:"error,omitempty"`
}

func (a Analysis) Failed() bool {
	return a.Error != ""
}

// RequireAPIKey is checked before any analysis request is built.
func RequireAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: set GEMINI_API_KEY in the environment or a .env file", ErrMissingAPIKey)
	}
	return nil
}

// Analyze sends one prompt built from snap and question. Failures come back
// as an Analysis with Error set and zero confidence.
func Analyze(ctx context.Context, gen Generator, snap Snapshot, question string) Analysis {
	text, err := gen.Generate(ctx, BuildPrompt(snap, question))
	if err != nil {
		return Analysis{Error: "API Error: " + err.Error()}
	}
	return ParseAnalysis(text)
}

// PendingAnalysis is a started analysis. It cannot be cancelled; it resolves
// once, when the request completes or fails.
type PendingAnalysis struct {
	ID     uuid.UUID
	done   chan struct{}
	result Analysis
}

func (p *PendingAnalysis) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the analysis resolves.
func (p *PendingAnalysis) Wait() Analysis {
	<-p.done
	return p.result
}

func AnalyzeAsync(gen Generator, snap Snapshot, question string) *PendingAnalysis {
	p := &PendingAnalysis{ID: uuid.New(), done: make(chan struct{})}
	log.Info().Str("job", p.ID.String()).Str("from", snap.StartDate).Str("to", snap.EndDate).Msg("Analysis started")

	go func() {
		defer close(p.done)
		started := time.Now()
		p.result = Analyze(context.Background(), gen, snap, question)
		ev := log.Info()
		if p.result.Failed() {
			ev = log.Warn().Str("error", p.result.Error)
		}
		ev.Str("job", p.ID.String()).Dur("elapsed", time.Since(started)).Msg("Analysis finished")
	}()
	return p
}

type analysisPayload struct {
	Answer          *string  `json:"answer"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	Confidence      *float64 `json:"confidence"`
}

// ParseAnalysis decodes a model reply. Missing fields take defaults; a reply
// that is not a JSON object is returned verbatim at reduced confidence.
func ParseAnalysis(text string) Analysis {
	var p *analysisPayload
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &p); err != nil || p == nil {
		return Analysis{
			Answer:          text,
			Insights:        []string{},
			Recommendations: []string{},
			Confidence:      DegradedConfidence,
		}
	}

	out := Analysis{
		Answer:          DefaultAnswer,
		Insights:        p.Insights,
		Recommendations: p.Recommendations,
		Confidence:      DefaultConfidence,
	}
	if p.Answer != nil {
		out.Answer = *p.Answer
	}
	if p.Confidence != nil {
		out.Confidence = min(max(*p.Confidence, 0), 1)
	}
	if out.Insights == nil {
		out.Insights = []string{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	return out
}

// ExtractJSON strips a ```json or bare ``` fence around the reply, if any.
func ExtractJSON(text string) string {
	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(text, fence)
		if start < 0 {
			continue
		}
		start += len(fence)
		if end := strings.Index(text[start:], "```"); end > 0 {
			return strings.TrimSpace(text[start : start+end])
		}
	}
	return strings.TrimSpace(text)
}

func BuildPrompt(s Snapshot, question string) string {
	var b strings.Builder
	b.WriteString("You are an expert personal health and fitness analyst. Analyze the following user health data and answer their specific question.\n\n")
	b.WriteString("=== USER'S HEALTH DATA ===\n")
	fmt.Fprintf(&b, "Analysis Period: %s to %s (%d days)\n\n", s.StartDate, s.EndDate, s.PeriodDays)

	b.WriteString("NUTRITION:\n")
	fmt.Fprintf(&b, "- Average Daily Calories: %.0f kcal\n", s.AverageDailyCalories)
	fmt.Fprintf(&b, "- Total Meals Logged: %d meals\n", s.TotalMeals)
	fmt.Fprintf(&b, "- Top Foods Eaten: %s\n\n", joinOr(s.TopFoods, "None logged yet"))

	b.WriteString("ACTIVITY:\n")
	fmt.Fprintf(&b, "- Average Daily Steps: %.0f steps\n", s.AverageDailySteps)
	fmt.Fprintf(&b, "- Days With Activity Logged: %d days\n", s.StepDays)
	fmt.Fprintf(&b, "- Step Range: %d - %d steps per day\n\n", s.MinDailySteps, s.MaxDailySteps)

	b.WriteString("HYDRATION:\n")
	fmt.Fprintf(&b, "- Average Daily Water: %.1f liters\n", s.AverageDailyLiters)
	fmt.Fprintf(&b, "- Days With Water Logged: %d days\n", s.WaterDays)
	fmt.Fprintf(&b, "- Water Range: %.1f - %.1f liters per day\n\n", s.MinDailyLiters, s.MaxDailyLiters)

	b.WriteString("=== USER'S SPECIFIC QUESTION ===\n")
	fmt.Fprintf(&b, "%q\n\n", strings.TrimSpace(question))

	b.WriteString(`=== YOUR RESPONSE ===
Provide ONLY a valid JSON response with NO markdown formatting or extra text.
Use this exact structure:
{
  "answer": "Direct answer to their question (2-3 sentences)",
  "insights": ["insight 1", "insight 2", "insight 3"],
  "recommendations": ["recommendation 1", "recommendation 2", "recommendation 3"],
  "confidence": 0.85
}

Make insights and recommendations specific and actionable based on their data.
Confidence should be 0.0-1.0 indicating how confident you are in this analysis.
`)
	return b.String()
}
