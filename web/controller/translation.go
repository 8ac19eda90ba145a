package controller

import (
	"net/http"

	"devfolio/logger"
	"devfolio/web/entity"
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

// TranslationController serves UI translation strings.
type TranslationController struct {
	BaseController

	translationService service.TranslationService
}

func NewTranslationController(g *gin.RouterGroup) *TranslationController {
	a := &TranslationController{}
	a.initRouter(g)
	return a
}

func (a *TranslationController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.getTranslations)
	g.POST("", a.checkToken, a.updateTranslations)
}

func (a *TranslationController) getTranslations(c *gin.Context) {
	translations, err := a.translationService.GetTranslations()
	if err != nil {
		logger.Warning("list translations err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, translations)
}

// updateTranslations bulk-upserts every key of one language atomically.
func (a *TranslationController) updateTranslations(c *gin.Context) {
	payload := &entity.TranslationUpsert{}
	if err := c.ShouldBindJSON(payload); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := a.translationService.UpsertTranslations(payload.Language, payload.Translations)
	if err != nil {
		logger.Warning("upsert translations err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
