package repo

import (
	"strings"

	"ChatAuth/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB opens the server database and migrates the schema. Postgres DSNs
// ("postgres://", "postgresql://" or key=value with host=) go to Postgres,
// anything else is treated as a SQLite file path.
func InitDB(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	db, err := gorm.Open(dialectorFor(dsn), cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	// modernc.org/sqlite registers itself as "sqlite"; no cgo needed
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
