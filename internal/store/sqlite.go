package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/avigne/trove/internal/model"
	"github.com/avigne/trove/internal/schema"
	"github.com/avigne/trove/internal/sqlutil"
)

// DB is the SQLite-backed Store.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at path, creating parent directories
// as needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	d := &DB{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// OpenInMemory opens an in-memory database (for testing).
func OpenInMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	d := &DB{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *DB) Close() error { return d.db.Close() }

func (d *DB) initialize() error {
	schemaSQL := `
	CREATE TABLE IF NOT EXISTS types (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		name_plural TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		properties TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS objects (
		id TEXT PRIMARY KEY,
		type_id TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL DEFAULT '',
		properties TEXT NOT NULL DEFAULT '{}',
		tags TEXT NOT NULL DEFAULT '[]',
		outbound_refs TEXT NOT NULL DEFAULT '[]',
		external_ref TEXT NOT NULL DEFAULT '',
		import_batch TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_objects_type ON objects(type_id);
	CREATE INDEX IF NOT EXISTS idx_objects_title ON objects(title COLLATE NOCASE);
	`
	if _, err := d.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// ListTypes returns every type in insertion order.
func (d *DB) ListTypes(ctx context.Context) ([]*schema.ObjectType, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, name, name_plural, icon, color, properties FROM types ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list types: %w", err)
	}
	return sqlutil.ScanRows(rows, func(r *sql.Rows) (*schema.ObjectType, error) {
		return scanType(r)
	})
}

// GetType returns one type by id.
func (d *DB) GetType(ctx context.Context, id string) (*schema.ObjectType, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, name, name_plural, icon, color, properties FROM types WHERE id = ?`, id)
	t, err := scanType(row)
	if err == sql.ErrNoRows {
		return nil, ErrTypeNotFound
	}
	return t, err
}

// SaveType inserts or replaces a type definition.
func (d *DB) SaveType(ctx context.Context, t *schema.ObjectType) error {
	propsJSON, err := json.Marshal(t.Properties)
	if err != nil {
		return fmt.Errorf("failed to encode properties: %w", err)
	}

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO types (id, name, name_plural, icon, color, properties)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			name_plural = excluded.name_plural,
			icon = excluded.icon,
			color = excluded.color,
			properties = excluded.properties`,
		t.ID, t.Name, t.NamePlural, t.Icon, t.Color, string(propsJSON))
	if err != nil {
		return fmt.Errorf("failed to save type %s: %w", t.ID, err)
	}
	return nil
}

// DeleteType removes a type definition.
func (d *DB) DeleteType(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM types WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete type %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTypeNotFound
	}
	return nil
}

const objectColumns = `id, type_id, title, body, properties, tags, outbound_refs,
	external_ref, import_batch, created_at, updated_at`

// ListObjects returns every object.
func (d *DB) ListObjects(ctx context.Context) ([]*model.Object, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+objectColumns+` FROM objects ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	return sqlutil.ScanRows(rows, func(r *sql.Rows) (*model.Object, error) {
		return scanObject(r)
	})
}

// GetObject returns one object by id.
func (d *DB) GetObject(ctx context.Context, id string) (*model.Object, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+objectColumns+` FROM objects WHERE id = ?`, id)
	o, err := scanObject(row)
	if err == sql.ErrNoRows {
		return nil, ErrObjectNotFound
	}
	return o, err
}

// CreateObject inserts a new object.
func (d *DB) CreateObject(ctx context.Context, o *model.Object) error {
	fields, err := encodeObject(o)
	if err != nil {
		return err
	}

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO objects (`+objectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Type, o.Title, o.Body, fields.props, fields.tags, fields.refs,
		o.ExternalRef, o.ImportBatch,
		o.CreatedAt.UTC().Format(time.RFC3339), o.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return ErrObjectExists
		}
		return fmt.Errorf("failed to create object %s: %w", o.ID, err)
	}
	return nil
}

// UpdateObject replaces a stored object.
func (d *DB) UpdateObject(ctx context.Context, o *model.Object) error {
	fields, err := encodeObject(o)
	if err != nil {
		return err
	}

	res, err := d.db.ExecContext(ctx, `
		UPDATE objects SET type_id = ?, title = ?, body = ?, properties = ?,
			tags = ?, outbound_refs = ?, external_ref = ?, import_batch = ?,
			updated_at = ?
		WHERE id = ?`,
		o.Type, o.Title, o.Body, fields.props, fields.tags, fields.refs,
		o.ExternalRef, o.ImportBatch,
		o.UpdatedAt.UTC().Format(time.RFC3339), o.ID)
	if err != nil {
		return fmt.Errorf("failed to update object %s: %w", o.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrObjectNotFound
	}
	return nil
}

// DeleteObject removes an object.
func (d *DB) DeleteObject(ctx context.Context, id string) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM objects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrObjectNotFound
	}
	return nil
}

// CountByType returns object counts per type id.
func (d *DB) CountByType(ctx context.Context) (map[string]int, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT type_id, COUNT(*) FROM objects GROUP BY type_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count objects: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var typeID string
		var n int
		if err := rows.Scan(&typeID, &n); err != nil {
			return nil, err
		}
		counts[typeID] = n
	}
	return counts, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanType(row scanner) (*schema.ObjectType, error) {
	var t schema.ObjectType
	var propsJSON string
	if err := row.Scan(&t.ID, &t.Name, &t.NamePlural, &t.Icon, &t.Color, &propsJSON); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(propsJSON), &t.Properties); err != nil {
		return nil, fmt.Errorf("corrupt properties for type %s: %w", t.ID, err)
	}
	return &t, nil
}

func scanObject(row scanner) (*model.Object, error) {
	var o model.Object
	var propsJSON, tagsJSON, refsJSON, createdAt, updatedAt string
	if err := row.Scan(&o.ID, &o.Type, &o.Title, &o.Body, &propsJSON, &tagsJSON,
		&refsJSON, &o.ExternalRef, &o.ImportBatch, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(propsJSON), &o.Properties); err != nil {
		return nil, fmt.Errorf("corrupt properties for object %s: %w", o.ID, err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &o.Tags); err != nil {
		return nil, fmt.Errorf("corrupt tags for object %s: %w", o.ID, err)
	}
	if err := json.Unmarshal([]byte(refsJSON), &o.OutboundRefs); err != nil {
		return nil, fmt.Errorf("corrupt refs for object %s: %w", o.ID, err)
	}

	var err error
	if o.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at for object %s: %w", o.ID, err)
	}
	if o.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("corrupt updated_at for object %s: %w", o.ID, err)
	}
	return &o, nil
}

type encodedFields struct {
	props, tags, refs string
}

func encodeObject(o *model.Object) (encodedFields, error) {
	props := o.Properties
	if props == nil {
		props = map[string]schema.Value{}
	}
	propsJSON, err := json.Marshal(props)
	if err != nil {
		return encodedFields{}, fmt.Errorf("failed to encode properties: %w", err)
	}

	tagsJSON, err := json.Marshal(emptyIfNil(o.Tags))
	if err != nil {
		return encodedFields{}, fmt.Errorf("failed to encode tags: %w", err)
	}
	refsJSON, err := json.Marshal(emptyIfNil(o.OutboundRefs))
	if err != nil {
		return encodedFields{}, fmt.Errorf("failed to encode refs: %w", err)
	}

	return encodedFields{
		props: string(propsJSON),
		tags:  string(tagsJSON),
		refs:  string(refsJSON),
	}, nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
