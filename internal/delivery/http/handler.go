package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/cartfinder/backend/internal/domain"
	"github.com/cartfinder/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps uploaded shopping-list files.
const maxUploadBytes = 1 << 20

// StoreSearcher runs one store search end to end.
type StoreSearcher interface {
	Search(ctx context.Context, request *domain.SearchRequest) (*domain.SearchResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searcher StoreSearcher
	results  *usecase.ResultStore
}

// NewHandler creates a new HTTP handler
func NewHandler(searcher StoreSearcher, results *usecase.ResultStore) *Handler {
	return &Handler{
		searcher: searcher,
		results:  results,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cartfinder-backend",
		"version": "1.0.0",
	})
}

// SearchStores handles store search requests
func (h *Handler) SearchStores(c *gin.Context) {
	var request domain.SearchRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	h.runSearch(c, &request)
}

// SearchStoresUpload handles store search requests with an uploaded
// shopping-list file (plain text, one item per line).
func (h *Handler) SearchStoresUpload(c *gin.Context) {
	file, err := c.FormFile("list")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing shopping list file"})
		return
	}
	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shopping list file too large"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read shopping list file"})
		return
	}
	defer opened.Close()

	content, err := io.ReadAll(io.LimitReader(opened, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read shopping list file"})
		return
	}

	request := domain.SearchRequest{
		ListText:   string(content),
		Location:   c.PostForm("location"),
		SearchType: c.PostForm("search_type"),
	}
	if raw := c.PostForm("max_distance_km"); raw != "" {
		maxDistance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_distance_km"})
			return
		}
		request.MaxDistanceKm = maxDistance
	}

	h.runSearch(c, &request)
}

// LatestResult returns the most recent search result.
func (h *Handler) LatestResult(c *gin.Context) {
	result, err := h.results.Latest()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no search has been run yet"})
		return
	}

	c.JSON(http.StatusOK, BuildSearchView(result))
}

func (h *Handler) runSearch(c *gin.Context, request *domain.SearchRequest) {
	result, err := h.searcher.Search(c.Request.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "a shopping list and a location are required"})
		case errors.Is(err, domain.ErrNoStoresFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no stores found in the requested area"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		}
		return
	}

	h.results.Set(result)

	c.JSON(http.StatusOK, BuildSearchView(result))
}
