package journal

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the journal schema up to date.
func Migrate(opts *Options) error {
	opts.setDefaults()

	db, err := sql.Open("postgres", opts.url())
	if err != nil {
		return err
	}
	defer db.Close()

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err == nil || err == migrate.ErrNoChange {
		return nil
	}
	return fmt.Errorf("failed to migrate journal: %w", err)
}
