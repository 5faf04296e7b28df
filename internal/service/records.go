package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saadjs/fitlife-cli/internal/model"
	"github.com/saadjs/fitlife-cli/internal/store"
)

type Loader interface {
	Load(kind model.Kind) store.LoadResult
}

// RecordSet holds every decodable record of each kind, in file order.
type RecordSet struct {
	Meals []model.Record
	Steps []model.Record
	Water []model.Record
}

// LoadRecords reads all three logs. Missing or unreadable logs contribute no
// records; read failures are logged.
func LoadRecords(l Loader) RecordSet {
	set, _ := LoadRecordsDetailed(l)
	return set
}

func LoadRecordsDetailed(l Loader) (RecordSet, []store.LoadResult) {
	var set RecordSet
	results := make([]store.LoadResult, 0, 3)
	for _, kind := range model.Kinds() {
		res := l.Load(kind)
		results = append(results, res)
		switch {
		case res.Err != nil:
			log.Warn().Err(res.Err).Str("kind", string(kind)).Str("path", res.Path).Msg("Failed to read log, treating as empty")
		case res.Missing:
			log.Debug().Str("kind", string(kind)).Str("path", res.Path).Msg("Log does not exist yet")
		case res.Skipped > 0:
			log.Debug().Str("kind", string(kind)).Int("skipped", res.Skipped).Msg("Skipped malformed log lines")
		}
		switch kind {
		case model.KindMeal:
			set.Meals = res.Records
		case model.KindSteps:
			set.Steps = res.Records
		case model.KindWater:
			set.Water = res.Records
		}
	}
	return set, results
}

func (s RecordSet) Empty() bool {
	return len(s.Meals) == 0 && len(s.Steps) == 0 && len(s.Water) == 0
}

// Between keeps records dated within [from, to].
func (s RecordSet) Between(from, to time.Time) RecordSet {
	return RecordSet{
		Meals: filterRange(s.Meals, from, to),
		Steps: filterRange(s.Steps, from, to),
		Water: filterRange(s.Water, from, to),
	}
}

func filterRange(records []model.Record, from, to time.Time) []model.Record {
	from, to = model.Day(from), model.Day(to)
	var out []model.Record
	for _, r := range records {
		if r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}
