package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/render"
)

// SchemaFS holds the versioned schema files, one up/down pair per table, in
// the order tables must be created.
//
//go:embed schema/*.sql
var SchemaFS embed.FS

// SchemaDir is the directory of the schema files inside SchemaFS.
const SchemaDir = "schema"

var (
	// dropTables lists tables in reverse creation order.
	dropTables = []string{
		render.TableFungibles,
		render.TableGroups,
		render.TableTokens,
		render.TableDomains,
		render.TableActions,
		render.TableMetas,
		render.TableTransactions,
		render.TableBlocks,
		render.TableStats,
	}
	dropSequences = []string{render.SequenceMetaID}
)

// CreateSchemaIfAbsent creates every table, index and sequence that does not exist yet.
func (r *Repository) CreateSchemaIfAbsent(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_schema", err, start)
	}()

	files, err := schemaFiles(".up.sql")
	if err != nil {
		return err
	}
	for _, name := range files {
		var ddl []byte
		ddl, err = SchemaFS.ReadFile(SchemaDir + "/" + name)
		if err != nil {
			return fmt.Errorf("read schema %s: %w", name, err)
		}
		if err = r.session.Exec(ctx, string(ddl)); err != nil {
			return fmt.Errorf("apply schema %s: %w", name, err)
		}
	}
	return nil
}

// DropAllTables removes every table of the schema.
func (r *Repository) DropAllTables(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("drop_tables", err, start)
	}()

	for _, table := range dropTables {
		if err = r.session.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{table}.Sanitize()); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}

// DropAllSequences removes every sequence of the schema. Tables using a
// sequence must be dropped first.
func (r *Repository) DropAllSequences(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("drop_sequences", err, start)
	}()

	for _, seq := range dropSequences {
		if err = r.session.Exec(ctx, "DROP SEQUENCE IF EXISTS "+pgx.Identifier{seq}.Sanitize()); err != nil {
			return fmt.Errorf("drop sequence %s: %w", seq, err)
		}
	}
	return nil
}

// TableIsEmpty reports whether table has no rows.
func (r *Repository) TableIsEmpty(ctx context.Context, table string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("table_is_empty", err, start)
	}()

	var empty bool
	query := fmt.Sprintf("SELECT NOT EXISTS (SELECT 1 FROM %s)", pgx.Identifier{table}.Sanitize())
	if err = r.session.QueryRow(ctx, query).Scan(&empty); err != nil {
		return false, fmt.Errorf("probe table %s: %w", table, err)
	}
	return empty, nil
}

func schemaFiles(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(SchemaFS, SchemaDir)
	if err != nil {
		return nil, fmt.Errorf("list schema files: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
