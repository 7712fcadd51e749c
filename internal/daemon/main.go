package daemon

import (
	"fmt"
	"time"

	sessionmysql "github.com/gofiber/storage/mysql/v2"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/dsn"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/logger/adapter/stdlogger"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService web.Service
}

// Start starts the Daemon's web service and blocks until it stops. Signal
// handling for graceful shutdown runs alongside the listener.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	dbDriver := gormmysql.Open(dsn.Create(cfg)) // open db with gorm mysql driver

	// route gorm's log output through the shared zerolog pipeline
	dbLogger := gormlogger.New(stdlogger.New(), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(dbDriver, &gorm.Config{Logger: dbLogger})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.Module{},
		&models.Permission{},
		&models.Profile{},
		&models.ProfileModule{},
		&models.User{},
	); err != nil {
		panic("failed to migrate database")
	}

	seed(cfg, db)

	// Initialize fiber session store
	sessionStorage := sessionmysql.New(sessionmysql.Config{
		ConnectionURI: dsn.Create(cfg),
		Table:         "sessions",
	})

	session.Init(sessionStorage)

	return &Daemon{
		cfg:        cfg,
		webService: *web.New(cfg, db),
	}
}
