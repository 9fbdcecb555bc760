package handlers

import (
	"net/http"

	"hr-directory/internal/middleware"

	"github.com/gin-gonic/gin"
)

type managerForm struct {
	ManagerID *int `json:"manager_id" binding:"required"`
}

func (h *Handlers) LinkManager(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	var form managerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "manager_id is required")
		return
	}

	if err := middleware.DirectorySession(c).LinkEmployeeAndManager(id, *form.ManagerID); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) UnlinkManager(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	if err := middleware.DirectorySession(c).UnlinkEmployee(id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) GetManager(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	managerID, err := middleware.DirectorySession(c).GetManager(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "manager_id": managerID})
}

func (h *Handlers) GetReports(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	reports, err := middleware.DirectorySession(c).GetReportingEmployees(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "reports": reports})
}
