package handlers

import (
	"net/http"

	"hr-directory/internal/middleware"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	ID       *int   `json:"id" binding:"required"`
	Password string `json:"password"`
}

func (h *Handlers) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "invalid login request")
		return
	}

	s := middleware.DirectorySession(c)
	if err := s.LogIn(*form.ID, form.Password); err != nil {
		h.renderError(c, err)
		return
	}
	if err := middleware.SaveIdentity(c, form.ID); err != nil {
		h.renderError(c, err)
		return
	}

	me, _ := s.CurrentUser()
	c.JSON(http.StatusOK, toView(me))
}

func (h *Handlers) Logout(c *gin.Context) {
	middleware.DirectorySession(c).LogOut()
	if err := middleware.SaveIdentity(c, nil); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) Me(c *gin.Context) {
	me, ok := middleware.DirectorySession(c).CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "you must log in to perform this action"})
		return
	}
	c.JSON(http.StatusOK, toView(me))
}
