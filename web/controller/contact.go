package controller

import (
	"net/http"

	"devfolio/web/entity"
	"devfolio/web/service"

	"github.com/gin-gonic/gin"
)

// ContactController accepts contact-form submissions and relays them by
// mail after the response has been sent.
type ContactController struct {
	mailService service.MailService
}

func NewContactController(g *gin.RouterGroup) *ContactController {
	a := &ContactController{}
	a.initRouter(g)
	return a
}

func (a *ContactController) initRouter(g *gin.RouterGroup) {
	g.POST("", a.contact)
}

// contact acknowledges well formed input immediately; delivery is best
// effort and never reported back to the caller.
func (a *ContactController) contact(c *gin.Context) {
	payload := &entity.ContactRequest{}
	if err := c.ShouldBindJSON(payload); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	a.mailService.SendContactMailAsync(payload.Name, payload.Email, payload.Message)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Message received",
	})
}
