package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// NewMigrator returns a migrate instance applying the embedded schema files
// to the database at dsn (a postgres:// URL).
func NewMigrator(dsn string) (*migrate.Migrate, error) {
	target, err := migrationURL(dsn)
	if err != nil {
		return nil, err
	}
	src, err := iofs.New(SchemaFS, SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("open schema source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, target)
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

func migrationURL(dsn string) (string, error) {
	for _, scheme := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, scheme) {
			return "pgx5://" + strings.TrimPrefix(dsn, scheme), nil
		}
	}
	if strings.HasPrefix(dsn, "pgx5://") {
		return dsn, nil
	}
	return "", errors.New("unsupported postgres dsn for migrations, want a postgres:// url")
}
