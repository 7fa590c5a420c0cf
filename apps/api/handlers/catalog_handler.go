package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/catalog"
	"github.com/handyline/handyline-api/libs/go/pricing"
	"github.com/handyline/handyline-api/libs/go/types/api/responses"
)

// CatalogHandler serves the order form price list
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListCatalog godoc
// @Summary List services and price bands
// @Description Returns every orderable service grouped by category, with the minimum order total
// @Tags catalog
// @Produce json
// @Success 200 {object} responses.CatalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, responses.CatalogResponse{
		Categories:        h.catalog.Categories(),
		MinimumOrderTotal: pricing.MinimumOrderTotal(),
	})
}
