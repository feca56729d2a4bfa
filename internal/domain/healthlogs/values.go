package healthlogs

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"
)

// Weight es un peso en kg. Solo se construye validado (finito y > 0).
type Weight float64

func NewWeight(v float64) (Weight, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperr.Validation("weight must be a finite number")
	}
	if v <= 0 {
		return 0, apperr.Validation("weight must be > 0")
	}
	return Weight(v), nil
}

// ParseWeight acepta "25.5", " 26 " y también coma decimal ("25,5").
func ParseWeight(s string) (Weight, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.Validation("weight is required")
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, apperr.Validation("weight must be numeric, got %q", s)
	}
	return NewWeight(v)
}

func (w Weight) Float64() float64 { return float64(w) }

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Un "+hh:mm" sin escapar en la query string llega como " hh:mm".
var unescapedOffset = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}T[0-9:.]+) (\d{2}:\d{2})$`)

// ParseDate valida la fecha en el borde. Sin zona explícita se interpreta en loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, apperr.Validation("date is required")
	}
	s = unescapedOffset.ReplaceAllString(s, "${1}+${2}")
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("date must be RFC3339 or YYYY-MM-DD, got %q", s)
}

// ParseBodyCondition normaliza el score (texto o número) a string no vacío.
func ParseBodyCondition(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperr.Validation("body_condition is required")
	}
	return s, nil
}

// normalizeNotes: notas vacías se guardan como NULL.
func normalizeNotes(n *string) *string {
	if n == nil {
		return nil
	}
	v := strings.TrimSpace(*n)
	if v == "" {
		return nil
	}
	return &v
}
