// Package profiles coordina pets, healthlogs y summary: alta de mascota con
// logs iniciales, vista de perfil y baja en cascada.
package profiles

import (
	"context"
	"fmt"
	"time"

	"pet-health-tracker/internal/domain/healthlogs"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/domain/summary"
)

type Service struct {
	pets *pets.Service
	logs *healthlogs.Service
	loc  *time.Location
	now  func() time.Time
}

// NewService usa loc como calendario del "mes en curso". nil = UTC.
func NewService(petsSvc *pets.Service, logsSvc *healthlogs.Service, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		pets: petsSvc,
		logs: logsSvc,
		loc:  loc,
		now:  time.Now,
	}
}

// Now devuelve la hora actual en la zona configurada.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// OnboardInput es el formulario de alta: la mascota y, opcionalmente, su primer log de cada tipo.
type OnboardInput struct {
	Pet pets.CreateInput

	InitialWeight        *healthlogs.Weight
	InitialBodyCondition *string
	InitialVetNotes      *string
}

type OnboardResult struct {
	Pet           pets.Pet
	Weight        *healthlogs.WeightLog
	BodyCondition *healthlogs.BodyConditionLog
	VetVisit      *healthlogs.VetVisitLog
}

// StepError indica qué paso del alta falló después de crear la mascota.
// La mascota NO se revierte: PetID queda creado.
type StepError struct {
	Step  string
	PetID string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("pet %s was created but %s failed: %v", e.PetID, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Onboard crea la mascota y luego sus logs iniciales, en orden y sin transacción.
// Los logs iniciales se fechan con la hora actual.
func (s *Service) Onboard(ctx context.Context, ownerUserID string, in OnboardInput) (OnboardResult, error) {
	p, err := s.pets.Create(ctx, ownerUserID, in.Pet)
	if err != nil {
		return OnboardResult{}, err
	}
	out := OnboardResult{Pet: p}
	date := s.Now()

	if in.InitialWeight != nil {
		wl, err := s.logs.AddWeight(ctx, p.ID, *in.InitialWeight, date)
		if err != nil {
			return out, &StepError{Step: "initial weight log", PetID: p.ID, Err: err}
		}
		out.Weight = &wl
	}
	if in.InitialBodyCondition != nil {
		bl, err := s.logs.AddBodyCondition(ctx, p.ID, *in.InitialBodyCondition, date)
		if err != nil {
			return out, &StepError{Step: "initial body condition log", PetID: p.ID, Err: err}
		}
		out.BodyCondition = &bl
	}
	if in.InitialVetNotes != nil {
		vl, err := s.logs.AddVetVisit(ctx, p.ID, in.InitialVetNotes, date)
		if err != nil {
			return out, &StepError{Step: "initial vet visit log", PetID: p.ID, Err: err}
		}
		out.VetVisit = &vl
	}
	return out, nil
}

type Profile struct {
	Pet    pets.Pet
	Logs   healthlogs.PetLogs
	Report summary.Report
	Now    time.Time
}

// Profile arma la pantalla de detalle de una mascota propia.
func (s *Service) Profile(ctx context.Context, petID, userID string) (Profile, error) {
	p, err := s.pets.Authorize(ctx, petID, userID)
	if err != nil {
		return Profile{}, err
	}
	logs, err := s.logs.ListAll(ctx, p.ID)
	if err != nil {
		return Profile{}, err
	}
	now := s.Now()
	return Profile{
		Pet:    p,
		Logs:   logs,
		Report: summary.Build(logs, now),
		Now:    now,
	}, nil
}

// Summary calcula el resumen para now; now cero = hora actual en la zona configurada.
func (s *Service) Summary(ctx context.Context, petID, userID string, now time.Time) (summary.Report, error) {
	p, err := s.pets.Authorize(ctx, petID, userID)
	if err != nil {
		return summary.Report{}, err
	}
	logs, err := s.logs.ListAll(ctx, p.ID)
	if err != nil {
		return summary.Report{}, err
	}
	if now.IsZero() {
		now = s.Now()
	}
	return summary.Build(logs, now), nil
}

// RemovePet borra primero los logs y después la mascota: si falla a mitad
// la mascota sigue existiendo y el borrado se puede reintentar.
func (s *Service) RemovePet(ctx context.Context, petID, userID string) error {
	p, err := s.pets.Authorize(ctx, petID, userID)
	if err != nil {
		return err
	}
	if err := s.logs.DeleteByPet(ctx, p.ID); err != nil {
		return err
	}
	return s.pets.Delete(ctx, p.ID)
}
