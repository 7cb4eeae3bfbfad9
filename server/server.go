package server

import (
	"smoke-server/confs"
	"smoke-server/db"
	"smoke-server/handlers"
	httpHandler "smoke-server/handlers/http"
	"smoke-server/notify"
	"smoke-server/repositories"
	"smoke-server/usecases"
	"smoke-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	cfg *confs.Config
	db  db.Database
}

func NewServer(cfg *confs.Config, database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		cfg: cfg,
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Detectors and dashboards post from anywhere
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repository
	smokeLogRepo := repositories.NewSmokeLogPgRepository(s.db)

	// Outbound alert channel and live dashboard feed
	notifier := notify.NewLineNotifier(s.cfg.LineNotifyToken, s.cfg.LineNotifyURL)
	hub := ws.NewHub()

	// Initialize use case
	smokeLogUseCase := usecases.NewSmokeLogUseCase(smokeLogRepo, notifier, hub)

	// Initialize handlers
	smokeLogHandler := httpHandler.NewSmokeLogHandler(smokeLogUseCase, s.cfg.Location(), s.cfg.LogLimit)
	wsHandler := handlers.NewWSHandler(hub)

	// Setup routes
	s.app.GET("/", smokeLogHandler.Root)
	s.app.POST("/smoke", smokeLogHandler.Ingest)
	s.app.GET("/logs", smokeLogHandler.Logs)
	s.app.GET("/latest", smokeLogHandler.Latest)
	s.app.GET("/table", smokeLogHandler.Table)
	s.app.GET("/test-db", smokeLogHandler.TestDB)

	s.app.GET("/ws", wsHandler.HandleLiveFeed)
	s.app.GET("/ws/connected", wsHandler.Connected)

	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}
