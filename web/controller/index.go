package controller

import (
	"net/http"

	"devfolio/config"

	"github.com/gin-gonic/gin"
)

// IndexController serves the liveness banner.
type IndexController struct{}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
}

func (a *IndexController) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to " + config.GetName() + " API",
	})
}
