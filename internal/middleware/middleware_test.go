package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/utils"
)

var jm = utils.NewJWTManager("mw-secret", time.Hour)

func token(t *testing.T, role models.Role) string {
	t.Helper()
	tok, err := jm.Issue(models.User{ID: "u", Username: "u", FullName: "U", Role: role})
	require.NoError(t, err)
	return tok
}

func echoRole(w http.ResponseWriter, r *http.Request) {
	role, _ := utils.RoleFrom(r.Context())
	_, _ = w.Write([]byte(role))
}

func TestWithAuth(t *testing.T) {
	h := WithAuth(zerolog.Nop(), jm)(http.HandlerFunc(echoRole))

	cases := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{"no token", "", "", ""},
		{"bearer", "Bearer " + token(t, models.RolePolice), "", "police"},
		{"lowercase scheme", "bearer " + token(t, models.RoleHospital), "", "hospital"},
		{"query token", "", token(t, models.RoleTourism), "tourism"},
		{"invalid token", "Bearer nope", "", ""},
		{"basic scheme ignored", "Basic dXNlcjpwYXNz", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			if tc.query != "" {
				r.URL.RawQuery = "token=" + tc.query
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestRequireAuthAndRoles(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	chain := WithAuth(zerolog.Nop(), jm)(RequireAuth(RequireRoles(models.RolePolice, models.RoleHospital)(ok)))

	do := func(auth string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if auth != "" {
			r.Header.Set("Authorization", "Bearer "+auth)
		}
		w := httptest.NewRecorder()
		chain.ServeHTTP(w, r)
		return w
	}

	w := do("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Authentication required"}`, w.Body.String())

	w = do(token(t, models.RoleTourist))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Forbidden"}`, w.Body.String())

	assert.Equal(t, http.StatusNoContent, do(token(t, models.RolePolice)).Code)
	assert.Equal(t, http.StatusNoContent, do(token(t, models.RoleHospital)).Code)

	// RequireRoles alone still refuses anonymous callers.
	w = httptest.NewRecorder()
	RequireRoles(models.RolePolice)(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecoverer(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := Recoverer(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("db password is hunter2")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.Contains(t, buf.String(), "hunter2", "detail stays in the server log")
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/health", entry["path"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, 5, entry["bytes"])
	assert.Equal(t, "request", entry["message"])
}
