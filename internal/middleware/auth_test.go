package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimit_PerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(rate.Limit(0.001), 1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	post := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remote
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, post("10.0.0.1:4000"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1:4001"))

	// another client keeps its own budget
	assert.Equal(t, http.StatusOK, post("10.0.0.2:4000"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.2:4000"))
}
