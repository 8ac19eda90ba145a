// Package web implements the HTTP server of the devfolio backend:
// routing, middleware, static file serving and scheduled maintenance.
package web

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"

	"devfolio/config"
	"devfolio/logger"
	"devfolio/web/controller"
	"devfolio/web/job"
	"devfolio/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// Server is the devfolio web server with its controllers and cron jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index       *controller.IndexController
	auth        *controller.AuthController
	project     *controller.ProjectController
	cv          *controller.CVController
	translation *controller.TranslationController
	upload      *controller.UploadController
	contact     *controller.ContactController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes gin, registers middleware, static directories
// and controllers, and returns the configured engine.
func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.Cors(config.GetAllowedOrigins()))
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/media/"}),
	))

	// Static assets and uploaded media are served straight from disk.
	staticDir := config.GetStaticFolder()
	mediaDir := config.GetMediaFolder()
	for _, dir := range []string{staticDir, mediaDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, err
		}
	}
	engine.Static("/static", staticDir)
	engine.Static("/media", mediaDir)

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.auth = controller.NewAuthController(g)
	s.project = controller.NewProjectController(engine.Group("/projects"))
	s.cv = controller.NewCVController(engine.Group("/cv"))
	s.translation = controller.NewTranslationController(engine.Group("/translations"))
	s.upload = controller.NewUploadController(engine.Group("/upload"))
	s.contact = controller.NewContactController(engine.Group("/contact"))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return engine, nil
}

// startTask schedules background maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%v:%v", config.GetListen(), config.GetPort())
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.httpServer = &http.Server{
		Handler: engine,
	}

	s.startTask()

	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve err:", err)
		}
	}()

	logger.Infof("%v %v listening on %v", config.GetName(), config.GetVersion(), addr)
	return nil
}

// Stop shuts the server down, stopping the cron scheduler and in-flight
// requests.
func (s *Server) Stop() error {
	s.cancel()

	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(s.ctx)
	} else if s.listener != nil {
		err = s.listener.Close()
	}
	return err
}
