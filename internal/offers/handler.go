package offers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
// POST /restaurants/:restaurantId/offers
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	var req struct {
		Title         string     `json:"title"`
		Description   *string    `json:"description"`
		Type          string     `json:"type"`
		Category      *string    `json:"category"`
		DiscountValue float64    `json:"discount_value"`
		StartsAt      *time.Time `json:"starts_at"`
		EndsAt        *time.Time `json:"ends_at"`
		Status        string     `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	offer := &Offer{
		RestaurantID:  restaurantID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		Category:      req.Category,
		DiscountValue: req.DiscountValue,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Status:        req.Status,
	}

	if err := h.service.Create(c.Request.Context(), c.GetString("userID"), offer); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// --------------------------------------------------
// GET /restaurants/:restaurantId/offers
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	list, err := h.service.List(c.Request.Context(), c.GetString("userID"), restaurantID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if list == nil {
		list = []*Offer{}
	}
	c.JSON(http.StatusOK, gin.H{"offers": list})
}

// --------------------------------------------------
// POST /restaurants/:restaurantId/offers/extract
// --------------------------------------------------
func (h *Handler) Extract(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	candidates, err := h.service.ExtractCandidates(
		c.Request.Context(), c.GetString("userID"), restaurantID, req.Text,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// --------------------------------------------------
// PATCH /restaurants/:restaurantId/offers/:offerId/status
// --------------------------------------------------
func (h *Handler) SetStatus(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	offerID, err := strconv.Atoi(c.Param("offerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetStatus(
		c.Request.Context(), c.GetString("userID"),
		restaurantID, offerID, req.Status,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// --------------------------------------------------
// DELETE /restaurants/:restaurantId/offers/:offerId
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	offerID, err := strconv.Atoi(c.Param("offerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer id"})
		return
	}

	if err := h.service.Delete(
		c.Request.Context(), c.GetString("userID"), restaurantID, offerID,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
