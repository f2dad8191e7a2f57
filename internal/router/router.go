package router

import (
	"net/http"
	"time"

	"github.com/abbaschallawala95/studio/internal/config"
	"github.com/abbaschallawala95/studio/internal/handler"
	"github.com/abbaschallawala95/studio/internal/insights"
	"github.com/abbaschallawala95/studio/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures Gin engine, templates and static resources.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// static files and templates
	r.Static("/static", "./web/static")
	r.LoadHTMLGlob("web/templates/*")

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"title": "VoltTrack - Login",
		})
	})

	r.GET("/dashboard", func(c *gin.Context) {
		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"title": "VoltTrack - Dashboard",
		})
	})

	r.GET("/history", func(c *gin.Context) {
		c.HTML(http.StatusOK, "history.html", gin.H{
			"title": "VoltTrack - Charging History",
		})
	})

	r.GET("/statistics", func(c *gin.Context) {
		c.HTML(http.StatusOK, "statistics.html", gin.H{
			"title": "VoltTrack - Statistics",
		})
	})

	r.GET("/profile", func(c *gin.Context) {
		c.HTML(http.StatusOK, "profile.html", gin.H{
			"title": "VoltTrack - Profile",
		})
	})

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	authHandler := handler.NewAuthHandler(db, jwtSecret, cfg.JWT.ExpireHours)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(jwtSecret, db),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	sessionHandler := handler.NewSessionHandler(db, cfg.App.BatteryCapacityKWh, cfg.App.PageSize)
	protected.POST("/sessions", sessionHandler.CreateSession)
	protected.GET("/sessions", sessionHandler.ListSessions)
	protected.GET("/sessions/:id", sessionHandler.GetSession)
	protected.PUT("/sessions/:id", sessionHandler.UpdateSession)
	protected.DELETE("/sessions/:id", sessionHandler.DeleteSession)

	statsHandler := handler.NewStatsHandler(db, cfg.App.BatteryCapacityKWh)
	protected.GET("/stats/summary", statsHandler.GetSummary)
	protected.GET("/stats/chart", statsHandler.GetChartData)
	protected.GET("/stats/monthly", statsHandler.GetMonthlyStats)

	insightsClient := insights.NewClient(
		cfg.Insights.BaseURL,
		cfg.Insights.APIKey,
		cfg.Insights.Model,
		time.Duration(cfg.Insights.TimeoutSeconds)*time.Second,
	)
	insightsHandler := handler.NewInsightsHandler(db, insightsClient)
	protected.GET("/insights", insightsHandler.GetInsights)

	protected.GET("/tracker", handler.GetTracker(db))
	protected.POST("/tracker", handler.UpdateTracker(db))
	protected.POST("/profile/password", handler.ChangePassword(db))

	exportHandler := handler.NewExportHandler(db, cfg.App.BatteryCapacityKWh)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	backupHandler := handler.NewBackupHandler(db, cfg.Backup.Dir)
	protected.POST("/backups", backupHandler.CreateBackup)
	protected.GET("/backups", backupHandler.ListBackups)
	protected.GET("/backups/:id/download", backupHandler.DownloadBackup)
	protected.POST("/backups/:id/restore", backupHandler.RestoreBackup)
	protected.DELETE("/backups/:id", backupHandler.DeleteBackup)

	logHandler := handler.NewLogHandler(db)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
