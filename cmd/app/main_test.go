package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func hitUnknownRoute(t *testing.T, verbose bool) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.NoRoute(notFoundHandler(verbose))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestNotFoundHandlerVerboseCarriesStack(t *testing.T) {
	body := hitUnknownRoute(t, true)

	require.Equal(t, "fail", body["status"])
	require.Equal(t, "Can't find /nope on this server!", body["message"])
	require.Contains(t, body, "error")
	require.Contains(t, body, "stack")
}

func TestNotFoundHandlerTerseInProduction(t *testing.T) {
	body := hitUnknownRoute(t, false)

	require.Equal(t, "fail", body["status"])
	require.Equal(t, "Can't find /nope on this server!", body["message"])
	require.NotContains(t, body, "error")
	require.NotContains(t, body, "stack")
}
