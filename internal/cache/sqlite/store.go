package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"filinglens/internal/domain"
)

const table = "cache_entries"

var columns = []string{"cache_key", "document_url", "summary", "insights", "created_at_ms"}

type entryRow struct {
	Key         string `db:"cache_key"`
	DocumentURL string `db:"document_url"`
	Summary     string `db:"summary"`
	Insights    string `db:"insights"`
	CreatedAtMs int64  `db:"created_at_ms"`
}

func (r *entryRow) toDomain() (*domain.CachedEntry, error) {
	var insights []string
	if err := json.Unmarshal([]byte(r.Insights), &insights); err != nil {
		return nil, fmt.Errorf("decoding insights for %s: %w", r.Key, err)
	}
	return &domain.CachedEntry{
		Key:         r.Key,
		Summary:     r.Summary,
		Insights:    insights,
		Timestamp:   time.UnixMilli(r.CreatedAtMs).UTC(),
		DocumentURL: r.DocumentURL,
	}, nil
}

// Store implements port.CacheStore on SQLite.
type Store struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewStore creates a Store. The schema must already be migrated.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, qb: sq.StatementBuilder.PlaceholderFormat(sq.Question)}
}

func (s *Store) Get(ctx context.Context, key string) (*domain.CachedEntry, error) {
	query, args, err := s.qb.Select(columns...).From(table).Where(sq.Eq{"cache_key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("building cache get: %w", err)
	}
	var row entryRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCacheEntryNotFound
		}
		return nil, fmt.Errorf("getting cache entry: %w", err)
	}
	return row.toDomain()
}

func (s *Store) Put(ctx context.Context, entry *domain.CachedEntry) error {
	insights := entry.Insights
	if insights == nil {
		insights = []string{}
	}
	encoded, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("encoding insights: %w", err)
	}
	query, args, err := s.qb.Insert(table).Options("OR REPLACE").Columns(columns...).
		Values(entry.Key, entry.DocumentURL, entry.Summary, string(encoded), entry.Timestamp.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("building cache put: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("putting cache entry: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query, args, err := s.qb.Delete(table).Where(sq.Eq{"cache_key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("building cache delete: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting cache entry: %w", err)
	}
	return nil
}

// DeletePrefix compares with substr rather than LIKE because keys contain underscores.
func (s *Store) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	query, args, err := s.qb.Delete(table).Where(hasPrefix(prefix)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("building cache clear: %w", err)
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clearing cache entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting cleared entries: %w", err)
	}
	return int(n), nil
}

// List returns matching entries oldest first.
func (s *Store) List(ctx context.Context, prefix string) ([]domain.CachedEntry, error) {
	query, args, err := s.qb.Select(columns...).From(table).Where(hasPrefix(prefix)).
		OrderBy("created_at_ms", "cache_key").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building cache list: %w", err)
	}
	var rows []entryRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("listing cache entries: %w", err)
	}
	out := make([]domain.CachedEntry, 0, len(rows))
	for i := range rows {
		e, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func hasPrefix(prefix string) sq.Sqlizer {
	return sq.Expr("substr(cache_key, 1, ?) = ?", len(prefix), prefix)
}
