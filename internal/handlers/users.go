package handlers

import (
	"net/http"

	"hr-directory/internal/directory"
	"hr-directory/internal/middleware"
	"hr-directory/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := middleware.DirectorySession(c).ListUsers()
	if err != nil {
		h.renderError(c, err)
		return
	}

	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, toView(u))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

type employeeForm struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Password        string  `json:"password"`
	Salary          float64 `json:"salary"`
	VacationBalance int     `json:"vacation_balance"`
	AnnualBonus     float64 `json:"annual_bonus"`
	InHR            bool    `json:"in_hr"`
}

func (h *Handlers) CreateEmployee(c *gin.Context) {
	var form employeeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "invalid employee data")
		return
	}
	typ, err := models.ParseEmployeeType(form.Type)
	if err != nil {
		h.renderError(c, err)
		return
	}

	acct, err := middleware.DirectorySession(c).AddEmployee(directory.NewEmployee{
		Type:             typ,
		Name:             form.Name,
		Password:         form.Password,
		Salary:           form.Salary,
		VacationBalance:  form.VacationBalance,
		AnnualBonus:      form.AnnualBonus,
		InHumanResources: form.InHR,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toView(acct))
}

type adminForm struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handlers) CreateAdministrator(c *gin.Context) {
	var form adminForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "invalid administrator data")
		return
	}

	acct, err := middleware.DirectorySession(c).AddAdministrator(form.Name, form.Password)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toView(acct))
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}

	removed, err := middleware.DirectorySession(c).RemoveUser(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toView(removed))
}

func (h *Handlers) Promote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	if err := middleware.DirectorySession(c).PromoteToManager(id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) Demote(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	if err := middleware.DirectorySession(c).DemoteToStandard(id); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type hrForm struct {
	InHR *bool `json:"in_hr" binding:"required"`
}

func (h *Handlers) SetHRStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	var form hrForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "in_hr is required")
		return
	}

	if err := middleware.DirectorySession(c).ChangeHRStatus(id, *form.InHR); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) GetHRStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	inHR, err := middleware.DirectorySession(c).IsInHumanResources(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "in_hr": inHR})
}
