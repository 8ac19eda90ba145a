// Package controller provides the gin HTTP handlers of the devfolio API.
package controller

import (
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

const ctxLoginUser = "LOGIN_USER"

// BaseController carries the bearer-token guard shared by all protected
// routes.
type BaseController struct {
	tokenService service.TokenService
}

// checkToken is a middleware that validates the Authorization bearer
// token and stores the resolved user in the request context. Every
// failure kind collapses into one unauthorized response so callers learn
// nothing about why a credential was rejected.
func (a *BaseController) checkToken(c *gin.Context) {
	token, err := service.TokenFromHeader(c.GetHeader("Authorization"))
	if err != nil {
		unauthorized(c)
		return
	}

	user, err := a.tokenService.Validate(token)
	if err != nil {
		unauthorized(c)
		return
	}

	c.Set(ctxLoginUser, user)
	c.Next()
}
