package fitlife

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/saadjs/fitlife-cli/internal/service"
	"github.com/saadjs/fitlife-cli/internal/store"
)

func withStore(run func(*store.Store) error) error {
	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	return run(st)
}

// parseDateFlag resolves a --date style flag; empty means today.
func parseDateFlag(flag, value string) (time.Time, error) {
	t, err := service.ParseDateOrToday(value, time.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return t, nil
}

// resolveRange turns --from/--to into a range. With neither set it falls back
// to the configured analysis window ending today.
func resolveRange(from, to string, days int) (time.Time, time.Time, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case from == "" && to == "":
		if days <= 0 {
			days = cfg.AnalysisDays
		}
		start, end := service.LastDays(time.Now(), days)
		return start, end, nil
	case from == "" || to == "":
		return time.Time{}, time.Time{}, fmt.Errorf("--from and --to must be set together")
	}
	start, err := parseDateFlag("from", from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateFlag("to", to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func printJSON(w io.Writer, what string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s json: %w", what, err)
	}
	fmt.Fprintln(w, string(b))
	return nil
}
