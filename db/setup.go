package db

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/starmap-dev/starmap/internal/models"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(uri string) error {
	var err error

	DB, err = Open(uri)

	if err != nil {
		return err
	}

	return nil
}

// Open connects to the database named by uri. Supported forms are
// sqlite://path, postgres:// or postgresql:// URLs, and mysql:// followed by
// a go-sql-driver DSN. A bare path or :memory: is treated as SQLite.
func Open(uri string) (*gorm.DB, error) {
	dialector, isSQLite, err := dialectorFor(uri)

	if err != nil {
		return nil, err
	}

	conn, err := gorm.Open(dialector, &gorm.Config{Logger: newGormLogger()})

	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if isSQLite {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, err
		}
		// SQLite is single-writer, and an in-memory database only lives as
		// long as its one connection.
		sqlDB.SetMaxOpenConns(1)
	}

	return conn, nil
}

func dialectorFor(uri string) (gorm.Dialector, bool, error) {
	switch {
	case strings.HasPrefix(uri, "postgres://"), strings.HasPrefix(uri, "postgresql://"):
		// pgx would accept the URL as is; converting it up front rejects a
		// malformed URI before any connection attempt.
		dsn, err := pq.ParseURL(uri)
		if err != nil {
			return nil, false, fmt.Errorf("invalid postgres uri: %w", err)
		}
		return postgres.Open(dsn), false, nil

	case strings.HasPrefix(uri, "mysql://"):
		cfg, err := mysql.ParseDSN(strings.TrimPrefix(uri, "mysql://"))
		if err != nil {
			return nil, false, fmt.Errorf("invalid mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		return gormmysql.Open(cfg.FormatDSN()), false, nil

	case strings.HasPrefix(uri, "sqlite://"):
		path := strings.TrimPrefix(uri, "sqlite://")
		if path == "" {
			return nil, false, fmt.Errorf("sqlite uri has no path")
		}
		return sqlite.Open(withForeignKeys(path)), true, nil

	case strings.Contains(uri, "://"):
		return nil, false, fmt.Errorf("unsupported database uri scheme: %s", uri[:strings.Index(uri, "://")])

	case uri == "":
		return nil, false, fmt.Errorf("database uri is empty")

	default:
		return sqlite.Open(withForeignKeys(uri)), true, nil
	}
}

// withForeignKeys turns on SQLite's foreign key enforcement, which is off
// per connection unless the DSN asks for it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}

	return dsn + "?_foreign_keys=on"
}

func MigrateDatabase() error {
	return Migrate(DB)
}

func Migrate(conn *gorm.DB) error {
	models := []interface{}{
		&models.Scientist{},
		&models.Planet{},
		&models.Mission{},
	}

	if err := conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Debug().Int("tables", len(models)).Msg("database migrated")
	return nil
}
