package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	engineHTTP "smart-task-assistant/internal/engine/delivery/http"
	"smart-task-assistant/internal/middleware"
	taskHTTP "smart-task-assistant/internal/task/delivery/http"
	tgDelivery "smart-task-assistant/internal/task/delivery/telegram"
	"smart-task-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	taskHandler     taskHTTP.Handler
	engineHandler   engineHTTP.Handler
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	TaskHandler   taskHTTP.Handler
	EngineHandler engineHTTP.Handler

	// TelegramHandler is optional; the webhook route is skipped when nil.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		taskHandler:     cfg.TaskHandler,
		engineHandler:   cfg.EngineHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.engineHandler == nil {
		return errors.New("engine handler is required")
	}
	return nil
}
