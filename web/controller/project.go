package controller

import (
	"net/http"
	"strconv"

	"devfolio/database"
	"devfolio/logger"
	"devfolio/web/entity"
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

// ProjectController handles CRUD over project listings. Reads are public,
// writes require a bearer token.
type ProjectController struct {
	BaseController

	projectService service.ProjectService
}

// NewProjectController creates a ProjectController and registers its
// routes on the given group.
func NewProjectController(g *gin.RouterGroup) *ProjectController {
	a := &ProjectController{}
	a.initRouter(g)
	return a
}

func (a *ProjectController) initRouter(g *gin.RouterGroup) {
	g.GET("", a.getProjects)
	g.GET("/:id", a.getProject)

	g.POST("", a.checkToken, a.addProject)
	g.PUT("/:id", a.checkToken, a.updateProject)
	g.DELETE("/:id", a.checkToken, a.deleteProject)
}

func (a *ProjectController) getProjects(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	projects, err := a.projectService.GetProjects(skip, limit)
	if err != nil {
		logger.Warning("list projects err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (a *ProjectController) getProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := a.projectService.GetProject(id)
	if database.IsNotFound(err) {
		jsonError(c, http.StatusNotFound, "project not found")
		return
	} else if err != nil {
		logger.Warning("get project err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (a *ProjectController) addProject(c *gin.Context) {
	payload := &entity.ProjectPayload{}
	if err := c.ShouldBindJSON(payload); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := a.projectService.AddProject(payload)
	if err != nil {
		logger.Warning("create project err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (a *ProjectController) updateProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	payload := &entity.ProjectPayload{}
	if err := c.ShouldBindJSON(payload); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := a.projectService.UpdateProject(id, payload)
	if database.IsNotFound(err) {
		jsonError(c, http.StatusNotFound, "project not found")
		return
	} else if err != nil {
		logger.Warning("update project err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, project)
}

// deleteProject removes a project and returns its prior state. A missing
// id yields a null body rather than an error, matching what existing
// frontend callers expect.
func (a *ProjectController) deleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, err := a.projectService.DeleteProject(id)
	if err != nil {
		logger.Warning("delete project err:", err)
		jsonError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	c.JSON(http.StatusOK, project)
}
