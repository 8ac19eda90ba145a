package controller

import (
	"net/http"

	"devfolio/logger"
	"devfolio/web/entity"
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

// CVController serves the CV singleton.
type CVController struct {
	BaseController

	cvService service.CVService
}

func NewCVController(g *gin.RouterGroup) *CVController {
	a := &CVController{}
	a.initRouter(g)
	return a
}

func (a *CVController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.getCV)
	g.PUT("", a.checkToken, a.updateCV)
}

// getCV returns the CV, lazily creating an empty one on first read.
func (a *CVController) getCV(c *gin.Context) {
	cv, err := a.cvService.GetCV()
	if err != nil {
		logger.Warning("get cv err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, cv)
}

func (a *CVController) updateCV(c *gin.Context) {
	payload := &entity.CVPayload{}
	if err := c.ShouldBindJSON(payload); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cv, err := a.cvService.UpdateCV(payload)
	if err != nil {
		logger.Warning("update cv err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, cv)
}
