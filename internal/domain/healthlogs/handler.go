package healthlogs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}

	r.Route("/pets/{petID}/logs/{kind}", func(lr chi.Router) {
		lr.Post("/", createLogHandler(svc, petsSvc, loc))
		lr.Get("/", listLogsHandler(svc, petsSvc))

		lr.Patch("/{logID}", updateLogHandler(svc, petsSvc, loc))
		lr.Delete("/{logID}", deleteLogHandler(svc, petsSvc))
	})
}

// FlexString acepta string o número JSON (el cliente manda weight como 25.5 o "25.5").
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return apperr.Validation("expected number or string")
	}
	*f = FlexString(n.String())
	return nil
}

// logRequest sirve para create y patch. Campos ausentes = nil.
type logRequest struct {
	Date          *string     `json:"date"`           // RFC3339 o YYYY-MM-DD; en create, default ahora
	Weight        *FlexString `json:"weight"`         // weight
	BodyCondition *FlexString `json:"body_condition"` // body-condition
	Notes         *string     `json:"notes"`          // vet-visits; "" limpia
}

type parsedFields struct {
	date          *time.Time
	weight        *Weight
	bodyCondition *string
}

func (req logRequest) parse(loc *time.Location) (parsedFields, error) {
	var out parsedFields
	if req.Date != nil {
		t, err := ParseDate(*req.Date, loc)
		if err != nil {
			return parsedFields{}, err
		}
		out.date = &t
	}
	if req.Weight != nil {
		w, err := ParseWeight(string(*req.Weight))
		if err != nil {
			return parsedFields{}, err
		}
		out.weight = &w
	}
	if req.BodyCondition != nil {
		bc := string(*req.BodyCondition)
		out.bodyCondition = &bc
	}
	return out, nil
}

// createLogHandler godoc
// @Summary Registrar log de salud
// @Description Crea un log (peso, condición corporal o visita al veterinario) para una mascota propia. Si no se envía `date` se usa la fecha actual.
// @Tags logs
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param kind path string true "weight | body-condition | vet-visits"
// @Param payload body logRequest true "Campos del log"
// @Success 201 {object} WeightLog
// @Failure 400 {string} string "campos faltantes o inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/logs/{kind} [post]
func createLogHandler(svc *Service, petsSvc *pets.Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			respond.Error(w, r, err)
			return
		}

		var req logRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fields, err := req.parse(loc)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		date := time.Now().In(loc)
		if fields.date != nil {
			date = *fields.date
		}

		e, err := svc.Create(r.Context(), petID, CreateInput{
			Kind:          kind,
			Date:          date,
			Weight:        fields.weight,
			BodyCondition: fields.bodyCondition,
			Notes:         req.Notes,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusCreated, e.View())
	}
}

// listLogsHandler godoc
// @Summary Listar logs de una mascota
// @Description Lista los logs del tipo indicado, más recientes primero (empate por id asc).
// @Tags logs
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param kind path string true "weight | body-condition | vet-visits"
// @Success 200 {array} WeightLog
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID}/logs/{kind} [get]
func listLogsHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			respond.Error(w, r, err)
			return
		}

		items, err := svc.List(r.Context(), kind, petID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := make([]any, 0, len(items))
		for _, e := range items {
			out = append(out, e.View())
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// updateLogHandler godoc
// @Summary Editar log
// @Description Actualiza parcialmente un log (fecha y el valor propio de su tipo).
// @Tags logs
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param kind path string true "weight | body-condition | vet-visits"
// @Param logID path string true "ID del log"
// @Param payload body logRequest true "Campos a modificar"
// @Success 200 {object} WeightLog
// @Failure 400 {string} string "campos inválidos"
// @Failure 404 {string} string "log not found"
// @Router /pets/{petID}/logs/{kind}/{logID} [patch]
func updateLogHandler(svc *Service, petsSvc *pets.Service, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			respond.Error(w, r, err)
			return
		}

		// El log debe existir y pertenecer a la mascota
		logID := chi.URLParam(r, "logID")
		current, err := svc.GetByID(r.Context(), kind, logID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		if current.PetID != petID {
			respond.Error(w, r, apperr.NotFound(kind.Label()))
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req logRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fields, err := req.parse(loc)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		updated, err := svc.Update(r.Context(), kind, logID, UpdateInput{
			Date:          fields.date,
			Weight:        fields.weight,
			BodyCondition: fields.bodyCondition,
			Notes:         req.Notes,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, updated.View())
	}
}

// deleteLogHandler godoc
// @Summary Borrar log
// @Tags logs
// @Param Authorization header string false "Bearer token"
// @Param petID path string true "ID de la mascota"
// @Param kind path string true "weight | body-condition | vet-visits"
// @Param logID path string true "ID del log"
// @Success 204
// @Failure 404 {string} string "log not found"
// @Router /pets/{petID}/logs/{kind}/{logID} [delete]
func deleteLogHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := petsSvc.Authorize(r.Context(), petID, claims.UserID); err != nil {
			respond.Error(w, r, err)
			return
		}

		logID := chi.URLParam(r, "logID")
		current, err := svc.GetByID(r.Context(), kind, logID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		if current.PetID != petID {
			respond.Error(w, r, apperr.NotFound(kind.Label()))
			return
		}

		if err := svc.Delete(r.Context(), kind, logID); err != nil {
			respond.Error(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
