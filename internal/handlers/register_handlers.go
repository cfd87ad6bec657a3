package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kbeautyshop/storefront_backend/internal/core/money"
	"github.com/kbeautyshop/storefront_backend/internal/core/services"
	"github.com/kbeautyshop/storefront_backend/internal/middleware"
	"github.com/kbeautyshop/storefront_backend/internal/platform/config"
)

// rates is the static conversion table every handler projects prices through.
// Cart state itself is always USD; only responses are converted.
var rates = money.DefaultRates()

// displayCurrency resolves the display currency for a request: an explicit
// ?currency= wins, otherwise ?lang= picks the locale's currency, defaulting
// to USD.
func displayCurrency(c *gin.Context) money.Currency {
	if cur := money.Currency(c.Query("currency")); money.Known(cur) {
		return cur
	}
	return money.ForLang(c.Query("lang"))
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc *services.Container) {
	registerPublicAuthRoutes(r, cfg, svc.User)

	// Catalog browsing needs no identity of any kind.
	public := r.Group("/api/v1")
	registerCatalogRoutes(public, svc.Catalog)

	// Cart and checkout are usable by guests; identity is a JWT subject when
	// present, a guest cookie otherwise.
	carted := r.Group("/api/v1", middleware.CartIdentityMiddleware(cfg.JWTSecret))
	RegisterCartRoutes(carted, svc.Cart)
	registerCheckoutRoutes(carted, svc.Checkout)

	// Account routes require a valid token.
	protected := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	registerProtectedAuthRoutes(protected, cfg, svc.User)
}
