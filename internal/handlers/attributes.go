package handlers

import (
	"net/http"

	"hr-directory/internal/middleware"

	"github.com/gin-gonic/gin"
)

type amountForm struct {
	Value *float64 `json:"value" binding:"required"`
}

type balanceForm struct {
	Value *int `json:"value" binding:"required"`
}

func (h *Handlers) GetSalary(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	salary, err := middleware.DirectorySession(c).GetSalary(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "salary": salary})
}

func (h *Handlers) SetSalary(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	var form amountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "value is required")
		return
	}
	if err := middleware.DirectorySession(c).SetSalary(id, *form.Value); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) GetSalaryHistory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	history, err := middleware.DirectorySession(c).GetSalaryHistory(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "history": history})
}

func (h *Handlers) GetVacation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	balance, err := middleware.DirectorySession(c).GetVacationBalance(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "vacation_balance": balance})
}

func (h *Handlers) SetVacation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	var form balanceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "value is required")
		return
	}
	if err := middleware.DirectorySession(c).SetVacationBalance(id, *form.Value); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) GetBonus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	bonus, err := middleware.DirectorySession(c).GetAnnualBonus(id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "annual_bonus": bonus})
}

func (h *Handlers) SetBonus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		h.badRequest(c, "invalid user ID")
		return
	}
	var form amountForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, "value is required")
		return
	}
	if err := middleware.DirectorySession(c).SetAnnualBonus(id, *form.Value); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
