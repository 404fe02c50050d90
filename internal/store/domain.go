// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package store contains the data-access layer. Every content domain on
// the site (about, values, projects, courses, blog) follows the same
// shape: a singleton section row plus a collection of item rows, both
// gated by a published flag. Rather than repeating the CRUD per domain,
// the generic Domain type implements it once, parameterized by table
// names and column mappings; the per-domain files instantiate it.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned by item updates and deletes when no row exists
// with the given id.
var ErrNotFound = errors.New("store: row not found")

// ErrNoFields is returned by partial updates that name no fields.
var ErrNoFields = errors.New("store: no fields to update")

// RowScanner is satisfied by both *sql.Row and *sql.Rows, letting a single
// scan function serve lookups and list queries.
type RowScanner interface {
	Scan(dest ...any) error
}

// Field names one column to change in a partial item update. Columns are
// always supplied by per-domain code, never by request input.
type Field struct {
	Column string
	Value  any
}

// SectionMeta describes how a domain's singleton section maps onto its
// table. Columns lists the domain columns only; id, published, and the
// timestamps are handled by the generic SQL. Scan must read, in order:
// id, Columns..., published, created_at, updated_at.
type SectionMeta[S any] struct {
	Table     string
	Columns   []string
	Args      func(s *S) []any
	Scan      func(row RowScanner, s *S) error
	Published func(s *S) bool
}

// ItemMeta describes a domain's item collection. Ordered marks tables
// that carry an order_index column; their Scan must read it between the
// domain columns and published.
type ItemMeta[I any] struct {
	Table     string
	Columns   []string
	Args      func(i *I) []any
	Scan      func(row RowScanner, i *I) error
	Published func(i *I) bool
	Ordered   bool
}

// SectionRepo implements the singleton-section operations for one domain.
type SectionRepo[S any] struct {
	db   *sql.DB
	meta SectionMeta[S]
}

// NewSectionRepo creates a section repository from its table mapping.
func NewSectionRepo[S any](db *sql.DB, meta SectionMeta[S]) *SectionRepo[S] {
	return &SectionRepo[S]{db: db, meta: meta}
}

// selectCols returns the full select list for the section table.
func (r *SectionRepo[S]) selectCols() string {
	return "id, " + strings.Join(r.meta.Columns, ", ") + ", published, created_at, updated_at"
}

// FindPublished returns the section if it exists and is published.
// A missing or unpublished section is a valid empty state, not an error.
func (r *SectionRepo[S]) FindPublished() (*S, error) {
	s := new(S)
	row := r.db.QueryRow(
		`SELECT ` + r.selectCols() + ` FROM ` + r.meta.Table + ` WHERE published = TRUE LIMIT 1`)
	err := r.meta.Scan(row, s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published %s: %w", r.meta.Table, err)
	}
	return s, nil
}

// Find returns the section regardless of its published flag. Used by the
// admin read path. Returns nil if the section was never saved.
func (r *SectionRepo[S]) Find() (*S, error) {
	s := new(S)
	row := r.db.QueryRow(
		`SELECT ` + r.selectCols() + ` FROM ` + r.meta.Table + ` LIMIT 1`)
	err := r.meta.Scan(row, s)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.meta.Table, err)
	}
	return s, nil
}

// Upsert replaces the section wholesale. The insert conflicts on the
// table's fixed singleton constraint, so two concurrent saves can never
// create a second row — the loser's write becomes an update.
func (r *SectionRepo[S]) Upsert(s *S) (*S, error) {
	cols := r.meta.Columns
	placeholders := make([]string, len(cols))
	sets := make([]string, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (singleton, %s, published)
		VALUES (TRUE, %s, $%d)
		ON CONFLICT (singleton)
		DO UPDATE SET %s, published = EXCLUDED.published, updated_at = now()
		RETURNING %s`,
		r.meta.Table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		len(cols)+1,
		strings.Join(sets, ", "),
		r.selectCols(),
	)

	args := append(r.meta.Args(s), r.meta.Published(s))
	result := new(S)
	if err := r.meta.Scan(r.db.QueryRow(query, args...), result); err != nil {
		return nil, fmt.Errorf("upsert %s: %w", r.meta.Table, err)
	}
	return result, nil
}

// ItemRepo implements the collection operations for one domain.
type ItemRepo[I any] struct {
	db   *sql.DB
	meta ItemMeta[I]
}

// NewItemRepo creates an item repository from its table mapping.
func NewItemRepo[I any](db *sql.DB, meta ItemMeta[I]) *ItemRepo[I] {
	return &ItemRepo[I]{db: db, meta: meta}
}

func (r *ItemRepo[I]) selectCols() string {
	cols := "id, " + strings.Join(r.meta.Columns, ", ")
	if r.meta.Ordered {
		cols += ", order_index"
	}
	return cols + ", published, created_at, updated_at"
}

// orderBy returns the display ordering: order_index with creation time as
// the tie-break for ordered domains, creation time alone otherwise.
func (r *ItemRepo[I]) orderBy() string {
	if r.meta.Ordered {
		return "ORDER BY order_index ASC, created_at ASC"
	}
	return "ORDER BY created_at ASC"
}

// ListPublished returns the published items in display order.
func (r *ItemRepo[I]) ListPublished() ([]I, error) {
	return r.list(`WHERE published = TRUE`)
}

// List returns every item in display order, regardless of published flag.
func (r *ItemRepo[I]) List() ([]I, error) {
	return r.list("")
}

func (r *ItemRepo[I]) list(where string) ([]I, error) {
	query := fmt.Sprintf("SELECT %s FROM %s %s %s",
		r.selectCols(), r.meta.Table, where, r.orderBy())
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.meta.Table, err)
	}
	defer rows.Close()

	// Non-nil even when empty so JSON encodes [] rather than null.
	items := []I{}
	for rows.Next() {
		var item I
		if err := r.meta.Scan(rows, &item); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.meta.Table, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindByID returns one item by id, or ErrNotFound.
func (r *ItemRepo[I]) FindByID(id uuid.UUID) (*I, error) {
	item := new(I)
	row := r.db.QueryRow(
		`SELECT `+r.selectCols()+` FROM `+r.meta.Table+` WHERE id = $1`, id)
	err := r.meta.Scan(row, item)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by id: %w", r.meta.Table, err)
	}
	return item, nil
}

// Create inserts a new item and returns the persisted row with its
// server-generated id. For ordered domains the order_index is computed
// inside the INSERT (max + 1, or 1 on an empty collection) under a
// per-table advisory lock, so two concurrent creates cannot claim the
// same slot from a stale read.
func (r *ItemRepo[I]) Create(item *I) (*I, error) {
	cols := r.meta.Columns
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	insertCols := strings.Join(cols, ", ")
	values := strings.Join(placeholders, ", ")
	if r.meta.Ordered {
		insertCols += ", order_index"
		values += fmt.Sprintf(", (SELECT COALESCE(MAX(order_index), 0) + 1 FROM %s)", r.meta.Table)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, published)
		VALUES (%s, $%d)
		RETURNING %s`,
		r.meta.Table, insertCols, values, len(cols)+1, r.selectCols())

	args := append(r.meta.Args(item), r.meta.Published(item))
	result := new(I)

	if !r.meta.Ordered {
		if err := r.meta.Scan(r.db.QueryRow(query, args...), result); err != nil {
			return nil, fmt.Errorf("create %s: %w", r.meta.Table, err)
		}
		return result, nil
	}

	// The MAX subselect runs under read committed, so two simultaneous
	// inserts could read the same maximum. The transaction-scoped
	// advisory lock serializes inserts per table; it releases on commit
	// or rollback.
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("create %s: begin: %w", r.meta.Table, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, r.meta.Table); err != nil {
		return nil, fmt.Errorf("create %s: lock: %w", r.meta.Table, err)
	}
	if err := r.meta.Scan(tx.QueryRow(query, args...), result); err != nil {
		return nil, fmt.Errorf("create %s: %w", r.meta.Table, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("create %s: commit: %w", r.meta.Table, err)
	}
	return result, nil
}

// Update patches the named fields on one item and refreshes its
// updated_at timestamp. Returns ErrNotFound if the id does not exist and
// ErrNoFields if the patch is empty.
func (r *ItemRepo[I]) Update(id uuid.UUID, fields []Field) (*I, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", f.Column, i+1))
		args = append(args, f.Value)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		r.meta.Table, strings.Join(sets, ", "), len(fields)+1, r.selectCols())

	result := new(I)
	err := r.meta.Scan(r.db.QueryRow(query, args...), result)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", r.meta.Table, err)
	}
	return result, nil
}

// Delete removes one item by id. Returns ErrNotFound if nothing matched.
func (r *ItemRepo[I]) Delete(id uuid.UUID) error {
	res, err := r.db.Exec(`DELETE FROM `+r.meta.Table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.meta.Table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.meta.Table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Data is the section-plus-items envelope both read paths return.
type Data[S, I any] struct {
	Section *S
	Items   []I
}

// Domain composes the section and item repositories for one content
// domain and provides the two read paths.
type Domain[S, I any] struct {
	Sections *SectionRepo[S]
	Items    *ItemRepo[I]
}

// NewDomain builds the repositories for one domain from its table mappings.
func NewDomain[S, I any](db *sql.DB, section SectionMeta[S], item ItemMeta[I]) *Domain[S, I] {
	return &Domain[S, I]{
		Sections: NewSectionRepo(db, section),
		Items:    NewItemRepo(db, item),
	}
}

// ReadPublic returns the published section (nil when none) and the
// published items in display order. Anything unpublished never appears.
func (d *Domain[S, I]) ReadPublic() (*Data[S, I], error) {
	section, err := d.Sections.FindPublished()
	if err != nil {
		return nil, err
	}
	items, err := d.Items.ListPublished()
	if err != nil {
		return nil, err
	}
	return &Data[S, I]{Section: section, Items: items}, nil
}

// ReadAdmin returns the section and every item regardless of published
// flag, in the same display order the public path uses.
func (d *Domain[S, I]) ReadAdmin() (*Data[S, I], error) {
	section, err := d.Sections.Find()
	if err != nil {
		return nil, err
	}
	items, err := d.Items.List()
	if err != nil {
		return nil, err
	}
	return &Data[S, I]{Section: section, Items: items}, nil
}
