package restaurant

import (
	"net/http"
	"strconv"

	"qrmenu/internal/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	r2      *storage.R2Client
}

func NewHandler(service *Service, r2 *storage.R2Client) *Handler {
	return &Handler{service: service, r2: r2}
}

// --------------------------------------------------
// POST /restaurants
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name     string  `json:"name"`
		City     string  `json:"city"`
		Address  string  `json:"address"`
		Phone    string  `json:"phone"`
		Currency string  `json:"currency"`
		LogoURL  *string `json:"logo_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant := &Restaurant{
		Name:     req.Name,
		City:     req.City,
		Address:  req.Address,
		Phone:    req.Phone,
		Currency: req.Currency,
		LogoURL:  req.LogoURL,
	}

	if err := h.service.Create(
		c.Request.Context(), c.GetString("userID"), restaurant,
	); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// GET /restaurants/me
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	restaurants, err := h.service.ListMine(
		c.Request.Context(), c.GetString("userID"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if restaurants == nil {
		restaurants = []*Restaurant{}
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// --------------------------------------------------
// POST /restaurants/:restaurantId/logo
// --------------------------------------------------
func (h *Handler) UploadLogo(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}

	url, err := storage.UploadMultipartFile(
		c.Request.Context(), h.r2, "logos", file,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	if err := h.service.SetLogo(
		c.Request.Context(), c.GetString("userID"), restaurantID, url,
	); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
