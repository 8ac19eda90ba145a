package controller

import (
	"errors"
	"net/http"

	"devfolio/logger"
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

// UploadController accepts authenticated multipart file uploads.
type UploadController struct {
	BaseController

	uploadService service.UploadService
}

func NewUploadController(g *gin.RouterGroup) *UploadController {
	a := &UploadController{}
	a.initRouter(g)
	return a
}

func (a *UploadController) initRouter(g *gin.RouterGroup) {
	g.POST("", a.checkToken, a.upload)
}

func (a *UploadController) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		jsonError(c, http.StatusBadRequest, "file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		jsonError(c, http.StatusBadRequest, "file is required")
		return
	}
	defer src.Close()

	url, err := a.uploadService.Save(fileHeader.Filename, src)
	if errors.Is(err, service.ErrNoFilename) {
		jsonError(c, http.StatusBadRequest, "filename is required")
		return
	} else if errors.Is(err, service.ErrBadExtension) {
		jsonError(c, http.StatusBadRequest, "unsupported file type")
		return
	} else if errors.Is(err, service.ErrTooLarge) {
		jsonError(c, http.StatusRequestEntityTooLarge, "file too large")
		return
	} else if err != nil {
		logger.Warning("save upload err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
