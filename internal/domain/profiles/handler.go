package profiles

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/healthlogs"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/domain/summary"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/pets", createPetHandler(svc))
	r.Delete("/pets/{petID}", deletePetHandler(svc))
	r.Get("/pets/{petID}/profile", getProfileHandler(svc))
	r.Get("/pets/{petID}/summary", getSummaryHandler(svc))
}

type createPetRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Breed   string `json:"breed"`
	Age     *int   `json:"age"`

	InitialWeight        *healthlogs.FlexString `json:"initial_weight"`
	InitialBodyCondition *healthlogs.FlexString `json:"initial_body_condition"`
	InitialVetNotes      *string                `json:"initial_vet_notes"`
}

type createPetResponse struct {
	Pet                  pets.PetResponse             `json:"pet"`
	InitialWeight        *healthlogs.WeightLog        `json:"initial_weight_log,omitempty"`
	InitialBodyCondition *healthlogs.BodyConditionLog `json:"initial_body_condition_log,omitempty"`
	InitialVetVisit      *healthlogs.VetVisitLog      `json:"initial_vet_visit_log,omitempty"`
}

type SummaryResponse struct {
	LatestWeightLog        *healthlogs.WeightLog        `json:"latest_weight_log"`
	LatestBodyConditionLog *healthlogs.BodyConditionLog `json:"latest_body_condition_log"`
	WeightDisplay          string                       `json:"weight_display"`
	BodyConditionDisplay   string                       `json:"body_condition_display"`
	Health                 summary.HealthStatus         `json:"health"`
	Now                    time.Time                    `json:"now"`
}

type ProfileResponse struct {
	Pet               pets.PetResponse              `json:"pet"`
	WeightLogs        []healthlogs.WeightLog        `json:"weight_logs"`
	BodyConditionLogs []healthlogs.BodyConditionLog `json:"body_condition_logs"`
	VetVisitLogs      []healthlogs.VetVisitLog      `json:"vet_visit_logs"`
	Summary           SummaryResponse               `json:"summary"`
}

func toSummaryResponse(rep summary.Report, now time.Time) SummaryResponse {
	return SummaryResponse{
		LatestWeightLog:        rep.CurrentPeriod.LatestWeightLog,
		LatestBodyConditionLog: rep.CurrentPeriod.LatestBodyConditionLog,
		WeightDisplay:          rep.CurrentPeriod.WeightDisplay(),
		BodyConditionDisplay:   rep.CurrentPeriod.BodyConditionDisplay(),
		Health:                 rep.Health,
		Now:                    now,
	}
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description Crea una mascota propia y, si vienen, sus logs iniciales (fechados ahora). No es transaccional: si un log falla la mascota queda creada y el error indica el paso y el id.
// @Tags pets
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body createPetRequest true "Mascota y logs iniciales"
// @Success 201 {object} createPetResponse
// @Failure 400 {string} string "campos faltantes o inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Los valores iniciales se validan antes de crear nada
		in := OnboardInput{
			Pet: pets.CreateInput{
				Name:    req.Name,
				Species: req.Species,
				Breed:   req.Breed,
				Age:     req.Age,
			},
			InitialVetNotes: req.InitialVetNotes,
		}
		if req.InitialWeight != nil {
			wv, err := healthlogs.ParseWeight(string(*req.InitialWeight))
			if err != nil {
				respond.Error(w, r, err)
				return
			}
			in.InitialWeight = &wv
		}
		if req.InitialBodyCondition != nil {
			bc, err := healthlogs.ParseBodyCondition(string(*req.InitialBodyCondition))
			if err != nil {
				respond.Error(w, r, err)
				return
			}
			in.InitialBodyCondition = &bc
		}

		res, err := svc.Onboard(r.Context(), claims.UserID, in)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, createPetResponse{
			Pet:                  pets.ToResponse(res.Pet),
			InitialWeight:        res.Weight,
			InitialBodyCondition: res.BodyCondition,
			InitialVetVisit:      res.VetVisit,
		})
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Borra la mascota y todos sus logs.
// @Tags pets
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.RemovePet(r.Context(), chi.URLParam(r, "petID"), claims.UserID); err != nil {
			respond.Error(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// getProfileHandler godoc
// @Summary Perfil de mascota
// @Description Mascota, sus tres listas de logs (más recientes primero), resumen del mes y estado de salud.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		prof, err := svc.Profile(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, ProfileResponse{
			Pet:               pets.ToResponse(prof.Pet),
			WeightLogs:        prof.Logs.Weights,
			BodyConditionLogs: prof.Logs.BodyConditions,
			VetVisitLogs:      prof.Logs.VetVisits,
			Summary:           toSummaryResponse(prof.Report, prof.Now),
		})
	}
}

// getSummaryHandler godoc
// @Summary Resumen del mes
// @Description Último peso y condición corporal del mes calendario de `now` y estado de salud.
// @Tags pets
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param now query string false "Instante de referencia (RFC3339 o YYYY-MM-DD); el + del offset va escapado como %2B"
// @Success 200 {object} SummaryResponse
// @Failure 400 {string} string "now inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/summary [get]
func getSummaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		now := svc.Now()
		if raw := strings.TrimSpace(r.URL.Query().Get("now")); raw != "" {
			t, err := healthlogs.ParseDate(raw, svc.loc)
			if err != nil {
				respond.Error(w, r, apperr.Validation("now must be RFC3339 or YYYY-MM-DD"))
				return
			}
			now = t
		}

		rep, err := svc.Summary(r.Context(), chi.URLParam(r, "petID"), claims.UserID, now)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toSummaryResponse(rep, now))
	}
}
