package users

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/logger"
	"pet-health-tracker/internal/platform/respond"
	"pet-health-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// TokenIssuer emite el token devuelto por signup/signin.
type TokenIssuer interface {
	Issue(userID, name string) (token string, expiresAt time.Time, err error)
}

// SessionStore guarda la identidad en una cookie para restaurarla en el próximo arranque.
type SessionStore interface {
	Save(w http.ResponseWriter, r *http.Request, c auth.Claims) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// RegisterRoutes monta /auth/* y /me/profile. limit se aplica solo a signup/signin; puede ser nil.
func RegisterRoutes(r chi.Router, svc *Service, tokens TokenIssuer, sessions SessionStore, limit func(http.Handler) http.Handler) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Group(func(cr chi.Router) {
			if limit != nil {
				cr.Use(limit)
			}
			cr.Post("/signup", signUpHandler(svc, tokens, sessions))
			cr.Post("/signin", signInHandler(svc, tokens, sessions))
		})
		ar.Post("/signout", signOutHandler(sessions))
		ar.Get("/me", currentUserHandler(svc))
	})

	r.Get("/me/profile", getProfileHandler(svc))
	r.Put("/me/profile", putProfileHandler(svc))
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

type CurrentUserResponse struct {
	User *UserResponse `json:"user"`
}

type ProfileResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

type profileRequest struct {
	Username  *string `json:"username"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

// signUpHandler godoc
// @Summary Registrarse
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Nombre y password"
// @Success 201 {object} AuthResponse
// @Failure 400 {string} string "campos faltantes"
// @Failure 409 {string} string "nombre tomado"
// @Failure 429 {string} string "too many requests"
// @Router /auth/signup [post]
func signUpHandler(svc *Service, tokens TokenIssuer, sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.SignUp(r.Context(), req.Name, req.Password)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		logger.FromContext(r.Context()).Info("user signed up", logger.Fields{"user_id": u.ID})

		writeSession(w, r, u, http.StatusCreated, tokens, sessions)
	}
}

// signInHandler godoc
// @Summary Iniciar sesión
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "Nombre y password"
// @Success 200 {object} AuthResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "credenciales inválidas o vacías"
// @Failure 429 {string} string "too many requests"
// @Router /auth/signin [post]
func signInHandler(svc *Service, tokens TokenIssuer, sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.SignIn(r.Context(), req.Name, req.Password)
		if err != nil {
			logger.FromContext(r.Context()).Warn("sign in failed", logger.Fields{"name": strings.TrimSpace(req.Name)})
			respond.Error(w, r, err)
			return
		}

		writeSession(w, r, u, http.StatusOK, tokens, sessions)
	}
}

func writeSession(w http.ResponseWriter, r *http.Request, u User, status int, tokens TokenIssuer, sessions SessionStore) {
	token, exp, err := tokens.Issue(u.ID, u.Name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if sessions != nil {
		if err := sessions.Save(w, r, auth.Claims{UserID: u.ID, Name: u.Name, Source: "session"}); err != nil {
			respond.Error(w, r, err)
			return
		}
	}
	respond.JSON(w, status, AuthResponse{
		User:      toUserResponse(u),
		Token:     token,
		ExpiresAt: exp,
	})
}

// signOutHandler godoc
// @Summary Cerrar sesión
// @Description Borra la cookie de sesión. Los tokens emitidos expiran solos.
// @Tags auth
// @Success 204
// @Router /auth/signout [post]
func signOutHandler(sessions SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessions != nil {
			if err := sessions.Clear(w, r); err != nil {
				respond.Error(w, r, err)
				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// currentUserHandler godoc
// @Summary Usuario actual
// @Description Restaura la sesión desde el token o la cookie. Sin identidad devuelve {"user": null}.
// @Tags auth
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} CurrentUserResponse
// @Router /auth/me [get]
func currentUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var userID string
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			userID = claims.UserID
		}

		u, err := svc.CurrentUser(r.Context(), userID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		out := CurrentUserResponse{}
		if u != nil {
			ur := toUserResponse(*u)
			out.User = &ur
		}
		respond.JSON(w, http.StatusOK, out)
	}
}

// getProfileHandler godoc
// @Summary Ver mi perfil
// @Tags profile
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} ProfileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// putProfileHandler godoc
// @Summary Crear o editar mi perfil
// @Tags profile
// @Accept json
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Param payload body profileRequest true "Campos del perfil"
// @Success 200 {object} ProfileResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "unauthorized"
// @Router /me/profile [put]
func putProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		var req profileRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.UpsertProfile(r.Context(), claims.UserID, ProfileInput{
			Username:  req.Username,
			FullName:  req.FullName,
			AvatarURL: req.AvatarURL,
		})
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

func toProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		UpdatedAt: p.UpdatedAt,
	}
}
