// Package summary calcula, sin efectos secundarios, el resumen del mes en curso
// y el estado de salud de una mascota a partir de sus logs en memoria.
package summary

import (
	"strconv"
	"time"

	"pet-health-tracker/internal/domain/healthlogs"
)

const (
	LabelGood          = "Good"
	LabelNeedsMoreData = "Needs More Data"

	// NoData es el texto que se muestra cuando no hay dato para un campo.
	NoData = "No data"

	// Con más de goodWeightLogs pesajes la etiqueta pasa a "Good".
	goodWeightLogs = 3

	dateLayout = "2006-01-02"
)

// PeriodSummary tiene el último log de cada tipo dentro del mes calendario de "now".
// nil = no hay logs de ese tipo en el período.
type PeriodSummary struct {
	LatestBodyConditionLog *healthlogs.BodyConditionLog `json:"latest_body_condition_log"`
	LatestWeightLog        *healthlogs.WeightLog        `json:"latest_weight_log"`
}

// InCurrentPeriod compara mes y año calendario en la zona de now.
// Fechas cero (no parseables en origen) nunca pertenecen al período.
func InCurrentPeriod(date, now time.Time) bool {
	if date.IsZero() || now.IsZero() {
		return false
	}
	d := date.In(now.Location())
	return d.Year() == now.Year() && d.Month() == now.Month()
}

// ComputeCurrentPeriodSummary elige, por tipo, el log más reciente del mes de now.
// El resultado no depende del orden de entrada: empate de fecha se resuelve por id asc.
func ComputeCurrentPeriodSummary(bodyConditionLogs []healthlogs.BodyConditionLog, weightLogs []healthlogs.WeightLog, now time.Time) PeriodSummary {
	var out PeriodSummary

	for i := range bodyConditionLogs {
		l := bodyConditionLogs[i]
		if !InCurrentPeriod(l.Date, now) {
			continue
		}
		if out.LatestBodyConditionLog == nil || healthlogs.Newer(l.Date, l.ID, out.LatestBodyConditionLog.Date, out.LatestBodyConditionLog.ID) {
			out.LatestBodyConditionLog = &l
		}
	}

	for i := range weightLogs {
		l := weightLogs[i]
		if !InCurrentPeriod(l.Date, now) {
			continue
		}
		if out.LatestWeightLog == nil || healthlogs.Newer(l.Date, l.ID, out.LatestWeightLog.Date, out.LatestWeightLog.ID) {
			out.LatestWeightLog = &l
		}
	}

	return out
}

// WeightDisplay: "25.5 kg" o NoData.
func (s PeriodSummary) WeightDisplay() string {
	if s.LatestWeightLog == nil {
		return NoData
	}
	return strconv.FormatFloat(s.LatestWeightLog.Weight.Float64(), 'f', -1, 64) + " kg"
}

// BodyConditionDisplay: el score tal cual o NoData.
func (s PeriodSummary) BodyConditionDisplay() string {
	if s.LatestBodyConditionLog == nil {
		return NoData
	}
	return s.LatestBodyConditionLog.BodyCondition
}

type HealthStatus struct {
	Label          string     `json:"label"`
	LastVetVisit   string     `json:"last_vet_visit"`
	LastVetVisitAt *time.Time `json:"last_vet_visit_at,omitempty"`
}

// DeriveHealthStatus aplica la heurística de conteo de pesajes y toma la visita
// al veterinario más reciente. vetVisitLogs puede ser nil. La fecha se expresa
// en el calendario de loc; nil equivale a UTC.
func DeriveHealthStatus(weightLogs []healthlogs.WeightLog, vetVisitLogs []healthlogs.VetVisitLog, loc *time.Location) HealthStatus {
	if loc == nil {
		loc = time.UTC
	}
	out := HealthStatus{
		Label:        LabelNeedsMoreData,
		LastVetVisit: NoData,
	}
	if len(weightLogs) > goodWeightLogs {
		out.Label = LabelGood
	}

	var latest *healthlogs.VetVisitLog
	for i := range vetVisitLogs {
		v := vetVisitLogs[i]
		if v.Date.IsZero() {
			continue
		}
		if latest == nil || healthlogs.Newer(v.Date, v.ID, latest.Date, latest.ID) {
			latest = &v
		}
	}
	if latest != nil {
		at := latest.Date.In(loc)
		out.LastVetVisitAt = &at
		out.LastVetVisit = at.Format(dateLayout)
	}
	return out
}

// Report junta ambos cálculos para una mascota.
type Report struct {
	CurrentPeriod PeriodSummary `json:"current_period"`
	Health        HealthStatus  `json:"health"`
}

func Build(logs healthlogs.PetLogs, now time.Time) Report {
	return Report{
		CurrentPeriod: ComputeCurrentPeriodSummary(logs.BodyConditions, logs.Weights, now),
		Health:        DeriveHealthStatus(logs.Weights, logs.VetVisits, now.Location()),
	}
}
