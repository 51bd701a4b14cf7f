package infra

import (
	"errors"
	"strings"
	"time"

	accountrepo "github.com/amirasaad/networth/infra/repository/account"
	familyrepo "github.com/amirasaad/networth/infra/repository/family"
	invitationrepo "github.com/amirasaad/networth/infra/repository/invitation"
	memberrepo "github.com/amirasaad/networth/infra/repository/member"
	snapshotrepo "github.com/amirasaad/networth/infra/repository/snapshot"
	userrepo "github.com/amirasaad/networth/infra/repository/user"
	"github.com/amirasaad/networth/pkg/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&userrepo.User{},
		&accountrepo.Asset{},
		&accountrepo.Liability{},
		&snapshotrepo.Snapshot{},
		&familyrepo.Family{},
		&memberrepo.Member{},
		&invitationrepo.Invitation{},
	}
}

// dialector picks the driver from the URL: sqlite:// paths and file: DSNs
// open sqlite, anything else is handed to postgres.
func dialector(url string) (gorm.Dialector, bool) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://")), true
	case strings.HasPrefix(url, "file:"):
		return sqlite.Open(url), true
	default:
		return postgres.Open(url), false
	}
}

// NewDBConnection opens the configured database and migrates the schema.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	dial, isSQLite := dialector(cnf.Url)
	connection, err := gorm.Open(dial, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	}

	if err := connection.AutoMigrate(Models()...); err != nil {
		return nil, err
	}
	return connection, nil
}
