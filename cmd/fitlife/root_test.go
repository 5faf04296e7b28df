package fitlife

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saadjs/fitlife-cli/internal/app"
	"github.com/saadjs/fitlife-cli/internal/service"
)

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		app.EnvDataDir, app.EnvLogLevel, app.EnvAnalysisDays,
		app.EnvGeminiAPIKey, app.EnvGeminiModel, app.EnvGeminiURL,
	} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(append([]string{"--data-dir", dir}, args...))
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootHelp(t *testing.T) {
	isolateEnv(t)
	out, _, err := run(t, t.TempDir(), "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "fitlife")
}

func TestInitCommandIdempotent(t *testing.T) {
	isolateEnv(t)
	dir := filepath.Join(t.TempDir(), "data")
	for i := 0; i < 2; i++ {
		out, _, err := run(t, dir, "init")
		require.NoError(t, err, "init run %d", i+1)
		assert.Contains(t, out, "Initialized fitlife data directory")
		if i == 0 {
			assert.Contains(t, out, "Wrote default settings")
		} else {
			assert.NotContains(t, out, "Wrote default settings")
		}
	}
	_, err := os.Stat(app.SettingsPath(dir))
	require.NoError(t, err)
}

func TestLogAndReportFlow(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := run(t, dir, "meal", "add", "--name", "apple", "--grams", "100", "--calories", "52", "--category", "fruit", "--date", "2025-11-10")
	require.NoError(t, err)
	out, _, err := run(t, dir, "meal", "add", "--name", "apple", "--grams", "50", "--date", "2025-11-11")
	require.NoError(t, err)
	assert.Contains(t, out, "26 kcal")
	assert.Contains(t, out, "estimated from the food table")

	_, _, err = run(t, dir, "steps", "add", "--steps", "8000", "--date", "2025-11-10")
	require.NoError(t, err)
	_, _, err = run(t, dir, "steps", "add", "--steps", "3000", "--date", "2025-11-12")
	require.NoError(t, err)
	_, _, err = run(t, dir, "water", "add", "--liters", "1.5", "--date", "2025-11-10")
	require.NoError(t, err)

	meals, err := os.ReadFile(filepath.Join(dir, "meals.txt"))
	require.NoError(t, err)
	assert.Equal(t, "2025-11-10,Monday,apple,100,52,fruit\n2025-11-11,Tuesday,apple,50,26,\n", string(meals))

	out, _, err = run(t, dir, "report", "week", "--start", "2025-11-10")
	require.NoError(t, err)
	assert.Contains(t, out, "2025-11-10 (Monday): calories=52, steps=8000, water_liters=1.50")
	assert.Contains(t, out, "Steps: 1571.43 steps/day")

	out, _, err = run(t, dir, "report", "steps", "--start", "2025-11-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Total steps: 11000")

	out, _, err = run(t, dir, "report", "week", "--start", "10-11-2025")
	require.NoError(t, err)
	assert.Equal(t, service.InvalidStartMessage+"\n", out)

	out, _, err = run(t, dir, "report", "range", "--from", "2025-11-10", "--to", "2025-11-12", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_calories_logged": 78`)
	assert.Contains(t, out, `"step_days_logged": 2`)

	out, _, err = run(t, dir, "meal", "list", "--date", "2025-11-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 52 kcal over 1 meals")

	out, _, err = run(t, dir, "today", "--date", "2025-11-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 8000 steps")

	out, _, err = run(t, dir, "foods", "show", "Apple")
	require.NoError(t, err)
	assert.Contains(t, out, "apple: 0.520 kcal/g")

	out, _, err = run(t, dir, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "meal   2 records, 0 malformed lines")
}

func TestLoggingRejectsInvalidDate(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := run(t, dir, "steps", "add", "--steps", "100", "--date", "yesterday")
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidDate))

	_, err = os.Stat(filepath.Join(dir, "steps.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestDoctorFailsOnMalformedLines(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "water.txt"), []byte("2025-11-10,Monday,1.0\nnope\n"), 0o644))

	out, _, err := run(t, dir, "doctor")
	require.Error(t, err)
	assert.Contains(t, out, "water  1 records, 1 malformed lines")
}

func TestAnalyzeRequiresAPIKey(t *testing.T) {
	isolateEnv(t)

	_, _, err := run(t, t.TempDir(), "analyze", "--question", "How am I doing?")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrMissingAPIKey)
}

func TestAnalyzeCallsGemini(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "test-model:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` +
			"```json\\n{\\\"answer\\\":\\\"Walk more.\\\",\\\"insights\\\":[\\\"Low steps\\\"],\\\"recommendations\\\":[\\\"Take stairs\\\"],\\\"confidence\\\":0.9}\\n```" +
			`"}]}}]}`))
	}))
	defer ts.Close()

	t.Setenv(app.EnvGeminiAPIKey, "demo")
	t.Setenv(app.EnvGeminiURL, ts.URL)
	t.Setenv(app.EnvGeminiModel, "test-model")

	_, _, err := run(t, dir, "steps", "add", "--steps", "2000", "--date", "2025-11-10")
	require.NoError(t, err)

	out, errOut, err := run(t, dir, "analyze", "--question", "Am I active?", "--from", "2025-11-01", "--to", "2025-11-30")
	require.NoError(t, err)
	assert.Contains(t, out, "Walk more.")
	assert.Contains(t, out, "* Take stairs")
	assert.Contains(t, out, "Analysis Confidence: 90%")
	assert.NotContains(t, errOut, "No entries logged")

	_, errOut, err = run(t, dir, "analyze", "--question", "Am I active?", "--from", "2025-10-01", "--to", "2025-10-31")
	require.NoError(t, err)
	assert.Contains(t, errOut, "No entries logged in this period")
}

func TestBMICommand(t *testing.T) {
	isolateEnv(t)

	out, _, err := run(t, t.TempDir(), "bmi", "--age", "30", "--height", "1.75", "--weight", "70")
	require.NoError(t, err)
	assert.Contains(t, out, "BMI: 22.86")
	assert.Contains(t, out, "Category: Normal")
}

func TestQuantityUnits(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	_, _, err := run(t, dir, "water", "add", "--amount", "500", "--unit", "ml", "--date", "2025-11-10")
	require.NoError(t, err)
	out, _, err := run(t, dir, "water", "list", "--date", "2025-11-10")
	require.NoError(t, err)
	assert.Contains(t, out, "Total: 0.50 L")

	out, _, err = run(t, dir, "meal", "add", "--name", "steak", "--amount", "0.25", "--unit", "kg", "--calories", "500", "--date", "2025-11-10")
	require.NoError(t, err)
	assert.Contains(t, out, "250g, 500 kcal")

	_, _, err = run(t, dir, "water", "add", "--amount", "1", "--unit", "lb")
	assert.Error(t, err)
}
