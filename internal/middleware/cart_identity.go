package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kbeautyshop/storefront_backend/internal/utils"
)

// cartCookieName identifies a guest's cart across sessions.
const cartCookieName = "cart_id"

// cartCookieMaxAge keeps guest carts for 30 days.
const cartCookieMaxAge = 30 * 24 * 60 * 60

// CartIdentityMiddleware resolves the cart key for the request: the JWT
// subject when a valid bearer token is present, otherwise a guest cart id
// from a cookie, issued on first touch. Cart routes stay usable without an
// account; an invalid token here degrades to guest rather than failing.
func CartIdentityMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartKey := ""

		authHeader := c.GetHeader("Authorization")
		if parts := strings.Split(authHeader, " "); len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			if claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret); err == nil && claims.Subject != "" {
				cartKey = claims.Subject
			}
		}

		if cartKey == "" {
			if cookie, err := c.Cookie(cartCookieName); err == nil && cookie != "" {
				cartKey = cookie
			} else {
				cartKey = uuid.NewString()
				c.SetCookie(cartCookieName, cartKey, cartCookieMaxAge, "/", "", false, true)
			}
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), cartKeyKey, cartKey))
		c.Next()
	}
}

// RequireCartKey fetches the resolved cart key or aborts. It only fires when
// CartIdentityMiddleware was not applied to the route, which is a wiring bug.
func RequireCartKey(c *gin.Context) (string, bool) {
	cartKey, ok := GetCartKeyFromCtx(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "cart identity not resolved"})
		return "", false
	}
	return cartKey, true
}
