// Package web provides the HTTP server of the ad-hub backend: routing,
// middleware, and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"

	"ad-hub/config"
	"ad-hub/logger"
	"ad-hub/util/common"
	"ad-hub/web/controller"
	"ad-hub/web/job"
	"ad-hub/web/middleware"
	"ad-hub/web/service"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Server wires the services, controllers and scheduled jobs together.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	db       *gorm.DB
	dbConfig *config.DatabaseConfig

	userService    *service.UserService
	tokenService   *service.TokenService
	adService      *service.AdService
	commentService *service.CommentService

	user *controller.UserController
	ad   *controller.AdController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a web server instance over an initialized database.
func NewServer(db *gorm.DB, dbConfig *config.DatabaseConfig) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		db:       db,
		dbConfig: dbConfig,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Server) initServices() {
	s.userService = service.NewUserService(s.db)
	s.tokenService = service.NewTokenService(config.GetJWTSecret())
	s.adService = service.NewAdService(s.db)
	s.commentService = service.NewCommentService(s.db)
}

func (s *Server) initRouter() *gin.Engine {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	g := engine.Group("/")
	s.user = controller.NewUserController(g, s.userService, s.tokenService)
	s.ad = controller.NewAdController(g, s.tokenService, s.adService, s.commentService)

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine
}

// startTask schedules the background jobs.
func (s *Server) startTask() {
	if s.dbConfig.IsSQLite() {
		s.cron.AddJob("@every 10m", job.NewCheckpointJob(s.db))
	}
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

	s.initServices()
	engine := s.initRouter()

	listener, err := net.Listen("tcp", config.GetListen())
	if err != nil {
		return err
	}
	logger.Info("web server running on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}
