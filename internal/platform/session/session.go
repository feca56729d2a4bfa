// Package session guarda la identidad del usuario en una cookie firmada
// (gorilla/sessions) para restaurar la sesión en el próximo arranque del cliente.
package session

import (
	"errors"
	"net/http"
	"time"

	"pet-health-tracker/internal/ports/auth"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "pht_session"

	keyUserID = "user_id"
	keyName   = "name"
)

// minSecretLen es lo mínimo que aceptamos para la clave HMAC de la cookie.
const minSecretLen = 32

var ErrWeakSecret = errors.New("session secret must be at least 32 bytes")

type Options struct {
	Secret string
	MaxAge time.Duration
	Secure bool
}

type Store struct {
	cookies *sessions.CookieStore
}

func New(opts Options) (*Store, error) {
	if len(opts.Secret) < minSecretLen {
		return nil, ErrWeakSecret
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = 7 * 24 * time.Hour
	}

	cs := sessions.NewCookieStore([]byte(opts.Secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cs}, nil
}

func (s *Store) Save(w http.ResponseWriter, r *http.Request, c auth.Claims) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Values[keyUserID] = c.UserID
	sess.Values[keyName] = c.Name
	return sess.Save(r, w)
}

// Load devuelve la identidad guardada. Cookie ausente, inválida o vencida => false.
func (s *Store) Load(r *http.Request) (auth.Claims, bool) {
	sess, err := s.cookies.Get(r, cookieName)
	if err != nil || sess.IsNew {
		return auth.Claims{}, false
	}
	uid, _ := sess.Values[keyUserID].(string)
	if uid == "" {
		return auth.Claims{}, false
	}
	name, _ := sess.Values[keyName].(string)
	return auth.Claims{UserID: uid, Name: name, Source: "session"}, true
}

func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.cookies.Get(r, cookieName)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
