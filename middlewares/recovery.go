package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 JSON body. The panic value is
// logged server-side only.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
	})
}
