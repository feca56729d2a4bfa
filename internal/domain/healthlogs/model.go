package healthlogs

import (
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"
)

// Kind identifica la colección (y la tabla) de un log.
type Kind string

const (
	KindWeight        Kind = "weight"
	KindBodyCondition Kind = "body_condition"
	KindVetVisit      Kind = "vet_visit"
)

// Kinds en el orden en que se muestran las pestañas.
var Kinds = []Kind{KindWeight, KindBodyCondition, KindVetVisit}

// ParseKind acepta el nombre canónico, la forma de URL y los alias cortos del cliente móvil.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight", "weights":
		return KindWeight, nil
	case "body", "body_condition", "body-condition", "bodycondition":
		return KindBodyCondition, nil
	case "vet", "vet_visit", "vet-visit", "vet-visits", "vet_visits":
		return KindVetVisit, nil
	default:
		return "", apperr.Validation("unknown log kind %q", s)
	}
}

// Label es el nombre usado en mensajes de error.
func (k Kind) Label() string {
	switch k {
	case KindWeight:
		return "weight log"
	case KindBodyCondition:
		return "body condition log"
	case KindVetVisit:
		return "vet visit log"
	default:
		return "log"
	}
}

// Entry es la forma almacenada de cualquier log. Solo los campos de su Kind son significativos.
type Entry struct {
	ID    string
	PetID string
	Kind  Kind

	Date time.Time

	Weight        Weight  // KindWeight
	BodyCondition string  // KindBodyCondition
	Notes         *string // KindVetVisit, nullable

	CreatedAt time.Time
	UpdatedAt time.Time
}

type WeightLog struct {
	ID     string    `json:"id"`
	PetID  string    `json:"pet_id"`
	Weight Weight    `json:"weight"`
	Date   time.Time `json:"date"`
}

type BodyConditionLog struct {
	ID            string    `json:"id"`
	PetID         string    `json:"pet_id"`
	BodyCondition string    `json:"body_condition"`
	Date          time.Time `json:"date"`
}

type VetVisitLog struct {
	ID    string    `json:"id"`
	PetID string    `json:"pet_id"`
	Notes *string   `json:"notes"`
	Date  time.Time `json:"date"`
}

func (e Entry) WeightLog() WeightLog {
	return WeightLog{ID: e.ID, PetID: e.PetID, Weight: e.Weight, Date: e.Date}
}

func (e Entry) BodyConditionLog() BodyConditionLog {
	return BodyConditionLog{ID: e.ID, PetID: e.PetID, BodyCondition: e.BodyCondition, Date: e.Date}
}

func (e Entry) VetVisitLog() VetVisitLog {
	return VetVisitLog{ID: e.ID, PetID: e.PetID, Notes: e.Notes, Date: e.Date}
}

// View devuelve la vista tipada según Kind (lo que se serializa en la API).
func (e Entry) View() any {
	switch e.Kind {
	case KindWeight:
		return e.WeightLog()
	case KindBodyCondition:
		return e.BodyConditionLog()
	default:
		return e.VetVisitLog()
	}
}

func WeightLogs(entries []Entry) []WeightLog {
	out := make([]WeightLog, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.WeightLog())
	}
	return out
}

func BodyConditionLogs(entries []Entry) []BodyConditionLog {
	out := make([]BodyConditionLog, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.BodyConditionLog())
	}
	return out
}

func VetVisitLogs(entries []Entry) []VetVisitLog {
	out := make([]VetVisitLog, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.VetVisitLog())
	}
	return out
}
