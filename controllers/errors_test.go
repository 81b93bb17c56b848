package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/foodpoint-pos/repositories"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{repositories.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: name is required", services.ErrValidation), http.StatusBadRequest},
		{services.ErrOrderNotPending, http.StatusConflict},
		{fmt.Errorf("%w: disk full", services.ErrImageWrite), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func respond(t *testing.T, err error, notFound error) (int, utils.JSONResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(c, err, notFound)

	var body utils.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondServiceError(t *testing.T) {
	code, body := respond(t, repositories.ErrNotFound, ErrOrderNotFound)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "order not found", body.Message)
	assert.False(t, body.Status)

	code, body = respond(t, fmt.Errorf("%w: price must be >= 0", services.ErrValidation), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation failed: price must be >= 0", body.Message)

	// internals are not leaked
	code, body = respond(t, errors.New("dial tcp 10.0.0.5:5432: refused"), nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "internal server error", body.Message)

	code, body = respond(t, fmt.Errorf("%w: disk full", services.ErrImageWrite), nil)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, services.ErrImageWrite.Error(), body.Message)
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, tt := range []struct {
		raw string
		ok  bool
	}{
		{"7", true},
		{"0", false},
		{"-1", false},
		{"abc", false},
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: tt.raw}}

		_, ok := parseID(c)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if !ok {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
