package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/fitlife-cli/internal/model"
)

var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrMissingAPIKey = errors.New("API key not configured")
)

// InvalidStartMessage is what report functions return in place of a report
// when the anchor date cannot be parsed.
const InvalidStartMessage = "Invalid start date format. Use YYYY-MM-DD."

// ParseDate parses a YYYY-MM-DD argument.
func ParseDate(value string) (time.Time, error) {
	t, err := model.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q (expected YYYY-MM-DD)", ErrInvalidDate, strings.TrimSpace(value))
	}
	return t, nil
}

// ParseDateOrToday treats an empty value as today's date.
func ParseDateOrToday(value string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return model.Day(now), nil
	}
	return ParseDate(value)
}

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number", name)
	}
	if value < 0 {
		return fmt.Errorf("%s must be >= 0", name)
	}
	return nil
}

// MaxFieldLength caps free-text fields stored in a log line.
const MaxFieldLength = 200

// validateField rejects text that would break the positional line format.
func validateField(name, value string) error {
	if len(value) > MaxFieldLength {
		return fmt.Errorf("%s must be at most %d characters", name, MaxFieldLength)
	}
	if strings.ContainsAny(value, ",\r\n") {
		return fmt.Errorf("%s must not contain commas or line breaks", name)
	}
	return nil
}
