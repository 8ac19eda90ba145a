package controller

import (
	"net/http"

	"devfolio/logger"
	"devfolio/web/entity"
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

// AuthController handles credential verification and token issuance.
type AuthController struct {
	BaseController

	userService  service.UserService
	tokenService service.TokenService
}

// NewAuthController creates an AuthController and registers its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/token", a.login)
	g.GET("/auth/verify", a.checkToken, a.verify)
}

// login exchanges a form encoded username/password for a bearer token.
func (a *AuthController) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user := a.userService.CheckUser(username, password)
	if user == nil {
		unauthorized(c)
		return
	}

	token, err := a.tokenService.Issue(user.Username)
	if err != nil {
		logger.Warning("issue token err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, entity.Token{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// verify confirms that the presented bearer token is valid.
func (a *AuthController) verify(c *gin.Context) {
	user := loginUser(c)
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"user":   user.Username,
	})
}
