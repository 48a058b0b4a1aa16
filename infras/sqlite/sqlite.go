package sqlite

import (
	"fmt"
	"xterminio/config"
	"xterminio/helper"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	defaultBusyTimeoutMillis = 5000
)

func init() {
	// The modernc driver registers as "sqlite", which sqlx does not know a
	// bindvar type for out of the box.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Connection wraps the single handle to the agenda database file. Reads and
// writes share one pool; there is no replica topology at this scale.
type Connection struct {
	DB *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	path := cfg.SQLitePath()
	if cfg.DB.SQLite.Path == "" {
		log.Warn().Str("path", path).Msg("No database path configured, using default")
	}

	busyTimeout := cfg.DB.SQLite.BusyTimeoutMillis
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeoutMillis
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", path, busyTimeout)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open database")
	}

	// One connection: the agenda is single-user, every operation is a single
	// statement, and in-memory databases are per-connection in this driver.
	db.SetMaxOpenConns(1)

	if cfg.DB.SQLite.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	log.Info().Str("path", path).Msg("Connected to database")

	return &Connection{DB: db}
}
