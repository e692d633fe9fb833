package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerRecoversPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := gin.New()
	server.Use(RequestLogger(zerolog.New(io.Discard)))
	server.GET("/panic", func(c *gin.Context) {
		var members []string
		_ = members[2] // index out of range
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/panic", nil)

	server.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var got struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "unexpected error", got.Error)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := gin.New()
	server.Use(RequestLogger(zerolog.New(io.Discard)))
	server.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/ok", nil)

	server.ServeHTTP(recorder, request)

	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}
