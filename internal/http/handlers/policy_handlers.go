package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ola-Segun/inventorysupabase-sub002/domain"
)

// PolicyHandlers exposes the casbin policy set on the admin surface.
type PolicyHandlers struct{ Svc domain.PolicyService }

type policyReq struct {
	Sub string `json:"sub" binding:"required"`
	Obj string `json:"obj" binding:"required"`
	Act string `json:"act" binding:"required"`
}

func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.GetPolicies())
}

func (h *PolicyHandlers) Add(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.AddPolicy(r.Sub, r.Obj, r.Act); err != nil {
		if errors.Is(err, domain.ErrPolicyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Policy already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add policy"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PolicyHandlers) Remove(c *gin.Context) {
	var r policyReq
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Svc.RemovePolicy(r.Sub, r.Obj, r.Act); err != nil {
		if errors.Is(err, domain.ErrPolicyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Policy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove policy"})
		return
	}
	c.Status(http.StatusNoContent)
}
