package controller

import (
	"net/http"

	"devfolio/database/model"

	"github.com/gin-gonic/gin"
)

// jsonError sends a short machine readable error body. Internal detail
// never leaks to the caller.
func jsonError(c *gin.Context, statusCode int, reason string) {
	c.JSON(statusCode, gin.H{"error": reason})
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	jsonError(c, http.StatusUnauthorized, "unauthorized")
	c.Abort()
}

// loginUser returns the user resolved by the checkToken middleware.
func loginUser(c *gin.Context) *model.User {
	if obj, ok := c.Get(ctxLoginUser); ok {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}
