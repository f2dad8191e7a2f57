package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/abbaschallawala95/studio/internal/config"
	"github.com/abbaschallawala95/studio/internal/database"
	"github.com/abbaschallawala95/studio/internal/router"
)

// defaultJWTSecret is the placeholder shipped in config.yaml. Refusing to
// start with it forces every deployment onto its own signing key.
const defaultJWTSecret = "change-me-in-production"

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.JWT.Secret == "" || cfg.JWT.Secret == defaultJWTSecret {
		log.Fatal("jwt.secret is unset or still the shipped placeholder; set SCL_JWT_SECRET or edit config.yaml")
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
		log.Fatalf("create log dir: %v", err)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		log.Fatalf("create backup dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if cfg.Insights.BaseURL == "" {
		log.Print("insights disabled: insights.base_url is empty")
	} else {
		log.Printf("insights enabled via %s (model %s)", cfg.Insights.BaseURL, cfg.Insights.Model)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
