package service

import (
	"time"

	"github.com/saadjs/fitlife-cli/internal/model"
)

// LogSteps appends a step count. Several entries on one date are all kept and
// summed by reports.
func LogSteps(app Appender, date time.Time, steps int) (model.Record, error) {
	if err := validateNonNegativeInt("steps", steps); err != nil {
		return model.Record{}, err
	}
	rec := model.NewStepsRecord(date, steps)
	if err := app.Append(rec); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}

func LogWater(app Appender, date time.Time, liters float64) (model.Record, error) {
	if err := validateNonNegativeFloat("liters", liters); err != nil {
		return model.Record{}, err
	}
	rec := model.NewWaterRecord(date, liters)
	if err := app.Append(rec); err != nil {
		return model.Record{}, err
	}
	return rec, nil
}
