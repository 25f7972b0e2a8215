package importer

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RestaurantResolver finds the target restaurant for an import, the
// authenticated owner's first restaurant.
type RestaurantResolver interface {
	FirstByOwner(ctx context.Context, ownerID string) (int, error)
}

type Handler struct {
	service     *Service
	restaurants RestaurantResolver
}

func NewHandler(service *Service, restaurants RestaurantResolver) *Handler {
	return &Handler{service: service, restaurants: restaurants}
}

// --------------------------------------------------
// POST /menus/import
// --------------------------------------------------
func (h *Handler) Import(c *gin.Context) {
	ownerID := c.GetString("userID")

	restaurantID, err := h.restaurants.FirstByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no restaurant found for this account"})
		return
	}

	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	if header.Size > MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10MB limit"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	summary, err := h.service.ImportFile(
		c.Request.Context(),
		restaurantID,
		header.Filename,
		data,
	)
	if err != nil {
		status, msg := importErrorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": summary})
}

// importErrorResponse maps the pipeline error taxonomy onto HTTP
// responses. Unsupported formats and parse failures surface their own
// message; persistence failures do not leak partial counts.
func importErrorResponse(err error) (int, string) {
	var unsupported *UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return http.StatusBadRequest, unsupported.Error()
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadRequest, parseErr.Error()
	}

	if errors.Is(err, ErrEmptyResult) {
		return http.StatusBadRequest, "No valid menu data found in file"
	}

	return http.StatusInternalServerError, "failed to import menu"
}
