package sql

import (
	"fmt"
	"net/url"
	"strings"

	_ "github.com/ncruces/go-sqlite3/embed" // embed sqlite3 driver
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"

	"github.com/aigovhub/lineage/pkg/config"
	"github.com/aigovhub/lineage/pkg/store"
	"github.com/aigovhub/lineage/pkg/store/sql/model"
)

type Store struct {
	config *config.Config
	db     *gorm.DB
	logger *logrus.Logger
}

var _ store.LineageStore = (*Store)(nil)

// NewDatabase opens the database named by storeURL. The scheme selects the dialect:
// postgres(ql)://, mysql://, mssql:// or sqlserver://, and sqlite://.
//
//nolint:ireturn
func NewDatabase(logger *logrus.Logger, cfg *config.Config) (*gorm.DB, error) {
	uri, err := url.Parse(cfg.StoreURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse store URL %q: %w", cfg.StoreURL, err)
	}

	var dialector gorm.Dialector

	uri.Scheme, _, _ = strings.Cut(uri.Scheme, "+")

	switch uri.Scheme {
	case "mssql", "sqlserver":
		uri.Scheme = "sqlserver"
		dialector = sqlserver.Open(uri.String())
	case "mysql":
		dsn := fmt.Sprintf("%s@tcp(%s)%s?parseTime=true", uri.User.String(), uri.Host, uri.Path)
		if uri.RawQuery != "" {
			dsn += "&" + uri.RawQuery
		}
		dialector = mysql.Open(dsn)
	case "postgres", "postgresql":
		uri.Scheme = "postgres"
		dialector = postgres.Open(uri.String())
	case "sqlite":
		dialector = gormlite.Open(sqliteDSN(uri))
	default:
		return nil, fmt.Errorf("unsupported store URL scheme %q", uri.Scheme)
	}

	database, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: NewLoggerAdaptor(logger, LoggerAdaptorConfig{
			SlowThreshold:             cfg.SlowThreshold.Duration,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", uri.Redacted(), err)
	}

	if uri.Scheme == "sqlite" {
		// An in-memory database exists per connection, and sqlite serialises writers anyway.
		sqlDB, err := database.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return database, nil
}

// sqliteDSN turns sqlite:///path/to.db, sqlite://relative.db and sqlite:///:memory: into
// a driver DSN with foreign keys enforced.
func sqliteDSN(uri *url.URL) string {
	path := uri.Host + uri.Path
	if path == "" || path == "/:memory:" {
		path = ":memory:"
	}

	query := uri.Query()
	query.Add("_pragma", "foreign_keys(1)")

	return "file:" + path + "?" + query.Encode()
}

// Migrate creates or updates the lineage tables.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

func NewSQLStore(logger *logrus.Logger, cfg *config.Config) (*Store, error) {
	database, err := NewDatabase(logger, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(database); err != nil {
			return nil, err
		}
	}

	return NewSQLStoreWithDB(logger, cfg, database), nil
}

func NewSQLStoreWithDB(logger *logrus.Logger, cfg *config.Config, database *gorm.DB) *Store {
	return &Store{config: cfg, db: database, logger: logger}
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
