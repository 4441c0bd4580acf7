package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/24KD1A0503/jn/internal/models"
)

func TestError(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, http.StatusUnauthorized, "Invalid username")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Invalid username"}`, w.Body.String())
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]string{"k": "v"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"k":"v"}}`, w.Body.String())
}

func TestClaimsContext(t *testing.T) {
	_, ok := ClaimsFrom(context.Background())
	assert.False(t, ok)
	_, ok = RoleFrom(context.Background())
	assert.False(t, ok)

	ctx := WithClaims(context.Background(), &Claims{Role: models.RoleHospital})
	role, ok := RoleFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, models.RoleHospital, role)
}
