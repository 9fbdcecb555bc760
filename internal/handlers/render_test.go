package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

func TestRenderError_StatusByKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrValidation("bad"), http.StatusBadRequest},
		{domain.ErrNotFound("missing"), http.StatusNotFound},
		{domain.ErrAccessDenied("no"), http.StatusForbidden},
		{domain.ErrState("conflict"), http.StatusConflict},
		{domain.ErrAuthentication("wrong"), http.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", domain.ErrNotFound("missing")), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		h.renderError(c, tc.err)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), tc.err.Error())
	}
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for raw, want := range map[string]int{"7": 7, "0": 0, "-3": -3} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, ok := paramID(c)
		assert.True(t, ok, raw)
		assert.Equal(t, want, id)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	_, ok := paramID(c)
	assert.False(t, ok)
}

func TestToView(t *testing.T) {
	admin := &models.Administrator{Identity: models.Identity{ID: 0, Name: "Root"}}
	v := toView(admin)
	assert.Equal(t, models.TypeAdministrator, v.Type)
	assert.Nil(t, v.Salary)

	acct, err := models.NewEmployee(models.TypeManager, 1, "Mia", "hash", 100, 5, 10, true)
	assert.NoError(t, err)
	mgr := acct.(*models.Manager)
	mgr.Reports[2] = struct{}{}

	v = toView(mgr)
	assert.Equal(t, models.TypeManager, v.Type)
	assert.Equal(t, 100.0, *v.Salary)
	assert.True(t, *v.InHumanResources)
	assert.Equal(t, []int{2}, v.Reports)
}
