// Package respond concentra la escritura de respuestas JSON y errores.
// Lo usan todos los módulos de dominio.
package respond

import (
	"encoding/json"
	"net/http"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error escribe err como texto plano con el status de la taxonomía.
// Los errores fuera de la taxonomía se loguean y salen como "internal error".
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed", logger.Fields{
			"request_id": chimw.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"error":      err,
		})
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
