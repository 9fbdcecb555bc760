package handlers

import (
	"net/http"
	"strconv"

	"hr-directory/internal/middleware"

	"github.com/gin-gonic/gin"
)

const auditPageLimit = 200

func (h *Handlers) ListAuditLogs(c *gin.Context) {
	limit := auditPageLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			h.badRequest(c, "invalid limit")
			return
		}
		limit = min(n, auditPageLimit)
	}

	logs, err := h.Audit.Recent(limit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// UserHistory lists the audit entries about one account of the running
// directory, oldest first.
func (h *Handlers) UserHistory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}

	logs, err := h.Audit.ForTarget(middleware.DirectorySession(c).InstanceID(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "logs": logs})
}
