package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portssvc "github.com/kbeautyshop/storefront_backend/internal/core/ports/services"
	"github.com/kbeautyshop/storefront_backend/internal/dto"
	"github.com/kbeautyshop/storefront_backend/internal/middleware"
)

// catalogHandler handles HTTP requests for product browsing.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes related to the product catalog.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.GET("/categories", h.listCategories)
	}
}

// listProducts godoc
// @Summary List products
// @Description Lists products for one category, or for all storefront categories when no filter is given. A remote catalog failure degrades to an empty list.
// @Tags catalog
// @Produce json
// @Param category query string false "Category filter (beauty, skin-care, fragrances)"
// @Param sort query string false "Sort order (recent, price-asc, price-desc, rating-desc)" default(recent)
// @Param lang query string false "Display language (ko, en, ja, zh)"
// @Success 200 {array} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (h *catalogHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), params.Category, domain.ParseProductSort(params.Sort))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		// Remote catalog trouble is not the shopper's problem: show an
		// empty shelf rather than an error page. Retries belong upstream.
		logger.Warn("Catalog unavailable, returning empty product list", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []dto.ProductResponse{})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductListResponse(products, displayCurrency(c), rates))
}

// listCategories godoc
// @Summary List categories
// @Description Lists the storefront's category identifiers. A remote catalog failure degrades to an empty list.
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /products/categories [get]
func (h *catalogHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Warn("Catalog unavailable, returning empty category list", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, []string{})
		return
	}

	c.JSON(http.StatusOK, categories)
}
