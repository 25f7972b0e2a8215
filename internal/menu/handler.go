package menu

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
// POST /restaurants/:restaurantId/categories
// --------------------------------------------------
func (h *Handler) CreateCategory(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	var req struct {
		Name      string  `json:"name"`
		Icon      *string `json:"icon"`
		SortOrder int     `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category := &Category{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Icon:         req.Icon,
		SortOrder:    req.SortOrder,
	}

	if err := h.service.CreateCategory(
		c.Request.Context(), c.GetString("userID"), category,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// --------------------------------------------------
// GET /restaurants/:restaurantId/categories
// --------------------------------------------------
func (h *Handler) ListCategories(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	categories, err := h.service.ListCategories(
		c.Request.Context(), c.GetString("userID"), restaurantID,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// --------------------------------------------------
// PUT /restaurants/:restaurantId/categories/:categoryID
// --------------------------------------------------
func (h *Handler) UpdateCategory(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	categoryID, err := strconv.Atoi(c.Param("categoryID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req struct {
		Name      string  `json:"name"`
		Icon      *string `json:"icon"`
		SortOrder int     `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category := &Category{
		ID:           categoryID,
		RestaurantID: restaurantID,
		Name:         req.Name,
		Icon:         req.Icon,
		SortOrder:    req.SortOrder,
	}

	if err := h.service.UpdateCategory(
		c.Request.Context(), c.GetString("userID"), category,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// --------------------------------------------------
// DELETE /restaurants/:restaurantId/categories/:categoryID
// --------------------------------------------------
func (h *Handler) DeleteCategory(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	categoryID, err := strconv.Atoi(c.Param("categoryID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	if err := h.service.DeleteCategory(
		c.Request.Context(), c.GetString("userID"), restaurantID, categoryID,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// --------------------------------------------------
// POST /restaurants/:restaurantId/categories/:categoryID/subcategories
// --------------------------------------------------
func (h *Handler) CreateSubCategory(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	categoryID, err := strconv.Atoi(c.Param("categoryID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		SortOrder   int     `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub := &SubCategory{
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}

	if err := h.service.CreateSubCategory(
		c.Request.Context(), c.GetString("userID"), restaurantID, sub,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// --------------------------------------------------
// POST /restaurants/:restaurantId/subcategories/:subCategoryID/items
// --------------------------------------------------
func (h *Handler) CreateItem(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	subCategoryID, err := strconv.Atoi(c.Param("subCategoryID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sub-category id"})
		return
	}

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item.SubCategoryID = subCategoryID

	if err := h.service.CreateItem(
		c.Request.Context(), c.GetString("userID"), restaurantID, &item,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --------------------------------------------------
// PUT /restaurants/:restaurantId/items/:itemID
// --------------------------------------------------
func (h *Handler) UpdateItem(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var item Item
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item.ID = itemID

	if err := h.service.UpdateItem(
		c.Request.Context(), c.GetString("userID"), restaurantID, &item,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// DELETE /restaurants/:restaurantId/items/:itemID
// --------------------------------------------------
func (h *Handler) DeleteItem(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.service.DeleteItem(
		c.Request.Context(), c.GetString("userID"), restaurantID, itemID,
	); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// --------------------------------------------------
// GET /restaurants/:restaurantId/menu
// --------------------------------------------------
func (h *Handler) GetTree(c *gin.Context) {
	restaurantID, ok := restaurantParam(c)
	if !ok {
		return
	}

	tree, err := h.service.GetTree(
		c.Request.Context(), c.GetString("userID"), restaurantID,
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tree)
}
