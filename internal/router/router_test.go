package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-health-tracker/internal/config"
	"pet-health-tracker/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Defaults()
	cfg.Auth.JWTSecret = "test-jwt-secret"
	cfg.Auth.SessionSecret = strings.Repeat("s", 32)
	cfg.Auth.DebugHeaders = true
	cfg.RateLimit.Requests = 0

	h, err := router.NewRouter(router.Options{Config: cfg})
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PetHealthFlow(t *testing.T) {
	ts := newTestServer(t)

	// 1) Signup devuelve token
	token := signUp(t, ts.URL, "ana", "s3cret")
	bearer := map[string]string{"Authorization": "Bearer " + token}

	// 2) /auth/me restaura la sesión con el token
	{
		st, body := doReqWith(t, ts.URL, "GET", "/auth/me", bearer, nil)
		var resp struct {
			User *struct {
				Name string `json:"name"`
			} `json:"user"`
		}
		_ = json.Unmarshal(body, &resp)
		if st != http.StatusOK || resp.User == nil || resp.User.Name != "ana" {
			t.Fatalf("expected current user ana, got %d body=%s", st, string(body))
		}
	}

	// 3) Alta de mascota con logs iniciales
	var petID string
	{
		st, body := doReqWith(t, ts.URL, "POST", "/pets", bearer, map[string]any{
			"name":                   "Max",
			"species":                "dog",
			"age":                    3,
			"initial_weight":         "12.5",
			"initial_body_condition": 4,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			Pet struct {
				ID string `json:"id"`
			} `json:"pet"`
			InitialWeight *struct {
				Weight float64 `json:"weight"`
			} `json:"initial_weight_log"`
			InitialVetVisit *struct{} `json:"initial_vet_visit_log"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Pet.ID == "" || resp.InitialWeight == nil || resp.InitialWeight.Weight != 12.5 {
			t.Fatalf("unexpected create pet body=%s", string(body))
		}
		if resp.InitialVetVisit != nil {
			t.Fatalf("expected no vet visit log without notes, body=%s", string(body))
		}
		petID = resp.Pet.ID
	}

	// 4) Logs con fecha explícita (número y string)
	addLog(t, ts.URL, bearer, petID, "weight", map[string]any{"weight": 25.5, "date": "2024-02-25"})
	addLog(t, ts.URL, bearer, petID, "weight", map[string]any{"weight": "26.0", "date": "2024-01-25"})

	// 5) Resumen de febrero 2024
	{
		st, body := doReqWith(t, ts.URL, "GET", "/pets/"+petID+"/summary?now=2024-02-25", bearer, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary, got %d body=%s", st, string(body))
		}
		var resp struct {
			LatestWeightLog *struct {
				Weight float64 `json:"weight"`
			} `json:"latest_weight_log"`
			WeightDisplay        string `json:"weight_display"`
			BodyConditionDisplay string `json:"body_condition_display"`
			Health               struct {
				Label        string `json:"label"`
				LastVetVisit string `json:"last_vet_visit"`
			} `json:"health"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.LatestWeightLog == nil || resp.LatestWeightLog.Weight != 25.5 || resp.WeightDisplay != "25.5 kg" {
			t.Fatalf("expected latest weight 25.5, body=%s", string(body))
		}
		if resp.BodyConditionDisplay != "No data" {
			t.Fatalf("expected no body condition in Feb 2024, body=%s", string(body))
		}
		if resp.Health.Label != "Needs More Data" || resp.Health.LastVetVisit != "No data" {
			t.Fatalf("unexpected health, body=%s", string(body))
		}

		// offset con + sin escapar: la query lo decodifica como espacio
		st, body = doReqWith(t, ts.URL, "GET", "/pets/"+petID+"/summary?now=2024-02-25T12:00:00+02:00", bearer, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 summary with unescaped offset, got %d body=%s", st, string(body))
		}
		resp.LatestWeightLog = nil
		_ = json.Unmarshal(body, &resp)
		if resp.LatestWeightLog == nil || resp.LatestWeightLog.Weight != 25.5 {
			t.Fatalf("expected latest weight 25.5 with unescaped offset, body=%s", string(body))
		}
	}

	// 6) Listado: más recientes primero
	{
		st, body := doReqWith(t, ts.URL, "GET", "/pets/"+petID+"/logs/weight", bearer, nil)
		var logs []struct {
			Weight float64 `json:"weight"`
		}
		_ = json.Unmarshal(body, &logs)
		if st != http.StatusOK || len(logs) != 3 || logs[1].Weight != 25.5 || logs[2].Weight != 26.0 {
			t.Fatalf("unexpected weight list %d body=%s", st, string(body))
		}
	}

	// 7) Otro usuario no puede ver la mascota; sin identidad es 401
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID, "intruder", nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for another user, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}

	// 8) Borrado en cascada; el segundo delete es 404
	if st, body := doReqWith(t, ts.URL, "DELETE", "/pets/"+petID, bearer, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete, got %d body=%s", st, string(body))
	}
	if st, _ := doReqWith(t, ts.URL, "GET", "/pets/"+petID+"/logs/weight", bearer, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 listing logs of deleted pet, got %d", st)
	}
	if st, _ := doReqWith(t, ts.URL, "DELETE", "/pets/"+petID, bearer, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", st)
	}
}

func TestHTTP_Auth_SignInErrorsAndAnonymousMe(t *testing.T) {
	ts := newTestServer(t)
	signUp(t, ts.URL, "ana", "s3cret")

	if st, _ := doReq(t, ts.URL, "POST", "/auth/signup", "", map[string]any{"name": "ana", "password": "x"}); st != http.StatusConflict {
		t.Fatalf("expected 409 for taken name, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/auth/signin", "", map[string]any{"name": "ana", "password": "wrong"}); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/auth/signin", "", map[string]any{"name": "ana", "password": ""}); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 for empty password, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "POST", "/auth/signup", "", map[string]any{"name": "", "password": "x"}); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/auth/me", "", nil)
	if st != http.StatusOK || strings.TrimSpace(string(body)) != `{"user":null}` {
		t.Fatalf("expected null user, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Logs_Validation(t *testing.T) {
	ts := newTestServer(t)
	owner := "owner-1"

	st, body := doReq(t, ts.URL, "POST", "/pets", owner, map[string]any{"name": "Luna", "species": "cat", "age": 2})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
	var created struct {
		Pet struct {
			ID string `json:"id"`
		} `json:"pet"`
	}
	_ = json.Unmarshal(body, &created)
	petID := created.Pet.ID

	cases := []struct {
		name    string
		kind    string
		payload map[string]any
		want    int
	}{
		{"non numeric weight", "weight", map[string]any{"weight": "heavy"}, http.StatusBadRequest},
		{"missing weight", "weight", map[string]any{}, http.StatusBadRequest},
		{"bad date", "body-condition", map[string]any{"body_condition": "3", "date": "yesterday"}, http.StatusBadRequest},
		{"unknown kind", "height", map[string]any{"height": 1}, http.StatusBadRequest},
		{"vet visit without notes", "vet-visits", map[string]any{"date": "2024-02-01"}, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/logs/"+tc.kind, owner, tc.payload)
			if st != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, st, string(body))
			}
		})
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := newTestServer(t)

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected ok, got %d body=%s", st, string(body))
	}
	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/pets/{petID}/summary") {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func signUp(t *testing.T, baseURL, name, password string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/auth/signup", "", map[string]any{"name": name, "password": password})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 signup, got %d body=%s", st, string(body))
	}
	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("signup: missing token body=%s", string(body))
	}
	return resp.Token
}

func addLog(t *testing.T, baseURL string, headers map[string]string, petID, kind string, payload map[string]any) {
	t.Helper()

	st, body := doReqWith(t, baseURL, "POST", "/pets/"+petID+"/logs/"+kind, headers, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s log, got %d body=%s", kind, st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var headers map[string]string
	if debugUserID != "" {
		headers = map[string]string{"X-Debug-User-ID": debugUserID}
	}
	return doReqWith(t, baseURL, method, path, headers, body)
}

func doReqWith(t *testing.T, baseURL, method, path string, headers map[string]string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
