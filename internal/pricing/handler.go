package pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func restaurantParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return 0, false
	}
	return id, true
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// --------------------------------------------------
// POST /restaurants/:restaurantId/pricing-rules
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	var req struct {
		Name      string  `json:"name"`
		Kind      string  `json:"kind"`
		Value     float64 `json:"value"`
		Category  *string `json:"category"`
		Days      []int   `json:"days"`
		StartTime string  `json:"start_time"`
		EndTime   string  `json:"end_time"`
		Active    bool    `json:"active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rule := &Rule{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Kind:         req.Kind,
		Value:        req.Value,
		Category:     req.Category,
		Days:         req.Days,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Active:       req.Active,
	}

	if err := h.service.Create(c.Request.Context(), c.GetString("userID"), rule); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// --------------------------------------------------
// GET /restaurants/:restaurantId/pricing-rules
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	rules, err := h.service.List(c.Request.Context(), c.GetString("userID"), restaurantID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if rules == nil {
		rules = []*Rule{}
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

// --------------------------------------------------
// PATCH /restaurants/:restaurantId/pricing-rules/:ruleId/active
// --------------------------------------------------
func (h *Handler) SetActive(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	ruleID, err := strconv.Atoi(c.Param("ruleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}

	var req struct {
		Active *bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetActive(
		c.Request.Context(), c.GetString("userID"),
		restaurantID, ruleID, *req.Active,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": *req.Active})
}

// --------------------------------------------------
// DELETE /restaurants/:restaurantId/pricing-rules/:ruleId
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	ruleID, err := strconv.Atoi(c.Param("ruleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule id"})
		return
	}

	if err := h.service.Delete(
		c.Request.Context(), c.GetString("userID"), restaurantID, ruleID,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
