package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"hr-directory/internal/domain"
	"hr-directory/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers holds what the HTTP endpoints need besides the per-request
// directory session.
type Handlers struct {
	Audit AuditReader
	Log   *slog.Logger
}

type AuditReader interface {
	Recent(limit int) ([]models.AuditLog, error)
	ForTarget(instance string, id int) ([]models.AuditLog, error)
}

func New(audit AuditReader, log *slog.Logger) *Handlers {
	return &Handlers{Audit: audit, Log: log}
}

// renderError maps domain error kinds onto HTTP statuses.
func (h *Handlers) renderError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFound      *domain.NotFoundError
		accessDenied  *domain.AccessDeniedError
		stateErr      *domain.StateError
		authErr       *domain.AuthenticationError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &accessDenied):
		status = http.StatusForbidden
	case errors.As(err, &stateErr):
		status = http.StatusConflict
	case errors.As(err, &authErr):
		status = http.StatusUnauthorized
	default:
		h.Log.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (h *Handlers) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// paramID parses :id. Administrator IDs are zero or negative.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

type userView struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Type             models.UserType `json:"type"`
	Salary           *float64        `json:"salary,omitempty"`
	VacationBalance  *int            `json:"vacation_balance,omitempty"`
	AnnualBonus      *float64        `json:"annual_bonus,omitempty"`
	InHumanResources *bool           `json:"in_hr,omitempty"`
	ManagerID        *int            `json:"manager_id,omitempty"`
	Reports          []int           `json:"reports,omitempty"`
}

func toView(acct models.Account) userView {
	v := userView{ID: acct.AccountID(), Name: acct.AccountName(), Type: acct.Type()}
	if emp, ok := models.EmployeeOf(acct); ok {
		v.Salary = &emp.Salary
		v.VacationBalance = &emp.VacationBalance
		v.AnnualBonus = &emp.AnnualBonus
		v.InHumanResources = &emp.InHumanResources
		v.ManagerID = emp.ManagerID
	}
	if mgr, ok := acct.(*models.Manager); ok {
		v.Reports = mgr.ReportIDs()
	}
	return v
}
