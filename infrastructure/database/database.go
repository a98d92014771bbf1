package database

import (
	"fmt"
	"net/url"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskstore-api/domain/models"
	"taskstore-api/pkg/config"
)

// Open connects to the datastore selected by the connection string scheme.
// postgres:// and postgresql:// go to the postgres driver, mysql:// is
// rewritten into a go-sql-driver DSN, everything else is treated as a sqlite
// file path.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.URL)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func dialectorFor(rawURL string) (gorm.Dialector, error) {
	switch {
	case strings.HasPrefix(rawURL, "postgres://"), strings.HasPrefix(rawURL, "postgresql://"):
		return postgres.Open(rawURL), nil
	case strings.HasPrefix(rawURL, "mysql://"):
		dsn, err := mysqlDSN(rawURL)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case strings.HasPrefix(rawURL, "sqlite://"):
		return sqlite.Open(sqlitePath(rawURL)), nil
	default:
		// Bare path, assume a sqlite file.
		return sqlite.Open(rawURL), nil
	}
}

// mysqlDSN converts a mysql:// URL into the user:pass@tcp(host:port)/name
// format the driver expects. parseTime is required for time.Time scanning.
func mysqlDSN(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid mysql url: %w", err)
	}

	host := u.Host
	if u.Port() == "" {
		host = host + ":3306"
	}

	user := u.User.Username()
	password, _ := u.User.Password()
	dbName := strings.TrimPrefix(u.Path, "/")

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		user, password, host, dbName), nil
}

func sqlitePath(rawURL string) string {
	path := strings.TrimPrefix(rawURL, "sqlite://")
	// sqlite:///./tasks.db style leaves a leading slash before a relative path
	if strings.HasPrefix(path, "/./") {
		path = path[1:]
	}
	if path == "" {
		path = "tasks.db"
	}
	return path
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Task{},
	)
}
