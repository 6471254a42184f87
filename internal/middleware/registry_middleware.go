package middleware

import (
	"github.com/gin-gonic/gin"

	"expodir/internal/managers"
)

// RegistryMiddleware injects the process-wide manager registry into the
// request context so handlers never reach for global state.
func RegistryMiddleware(registry *managers.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("registry", registry)
		c.Next()
	}
}

func GetRegistry(c *gin.Context) *managers.Registry {
	registry, exists := c.Get("registry")
	if !exists {
		return nil
	}
	return registry.(*managers.Registry)
}
