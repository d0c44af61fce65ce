package adapter

import (
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	m "github.com/mouse-blink/equate/internal/model"
)

// HistorySchemaVersion is the schema version written to the metadata table.
const HistorySchemaVersion = "1"

// HistoryStore persists and retrieves line revisions.
type HistoryStore interface {
	// SaveRevision stores rev and returns it with Version and Time filled in.
	SaveRevision(rev m.Revision) (m.Revision, error)
	// LoadRevisions returns the revisions of path, newest first. A limit of
	// zero or less returns all of them.
	LoadRevisions(path m.Path, limit int) ([]m.Revision, error)
	Close() error
}

// SQLiteHistoryStore keeps revisions in a SQLite database.
type SQLiteHistoryStore struct {
	mu  sync.Mutex
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteHistoryStore opens (or creates) the history database at path.
func NewSQLiteHistoryStore(path string) (*SQLiteHistoryStore, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS revisions (
			path TEXT NOT NULL,
			line INTEGER NOT NULL,
			version INTEGER NOT NULL,
			text TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			PRIMARY KEY (path, version)
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	s := &SQLiteHistoryStore{db: db, now: time.Now}

	if err := s.checkSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteHistoryStore) checkSchema() error {
	var version string

	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = 'schema_version'").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.Exec("INSERT INTO metadata (key, value) VALUES ('schema_version', ?)", HistorySchemaVersion)
		if err != nil {
			return fmt.Errorf("write schema version: %w", err)
		}

		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != HistorySchemaVersion:
		return fmt.Errorf("unsupported history schema version: %s (expected %s)", version, HistorySchemaVersion)
	}

	return nil
}

// SaveRevision appends rev with the next version number of its path.
func (s *SQLiteHistoryStore) SaveRevision(rev m.Revision) (m.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return m.Revision{}, fmt.Errorf("begin revision: %w", err)
	}

	var last sql.NullInt64
	if err := tx.QueryRow("SELECT MAX(version) FROM revisions WHERE path = ?", string(rev.Path)).Scan(&last); err != nil {
		_ = tx.Rollback()
		return m.Revision{}, fmt.Errorf("next version: %w", err)
	}

	rev.Version = int(last.Int64) + 1
	rev.Time = s.now().UTC().Truncate(time.Second)

	_, err = tx.Exec(
		"INSERT INTO revisions (path, line, version, text, created_at) VALUES (?, ?, ?, ?, ?)",
		string(rev.Path), rev.Line, rev.Version, rev.Text, rev.Time.Unix(),
	)
	if err != nil {
		_ = tx.Rollback()
		return m.Revision{}, fmt.Errorf("insert revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return m.Revision{}, fmt.Errorf("commit revision: %w", err)
	}

	return rev, nil
}

// LoadRevisions returns the stored revisions of path, newest first.
func (s *SQLiteHistoryStore) LoadRevisions(path m.Path, limit int) ([]m.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := "SELECT line, version, text, created_at FROM revisions WHERE path = ? ORDER BY version DESC"
	args := []any{string(path)}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}

	defer func() {
		_ = rows.Close()
	}()

	var revs []m.Revision

	for rows.Next() {
		var (
			rev     = m.Revision{Path: path}
			created int64
		)

		if err := rows.Scan(&rev.Line, &rev.Version, &rev.Text, &created); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}

		rev.Time = time.Unix(created, 0).UTC()
		revs = append(revs, rev)
	}

	return revs, rows.Err()
}

// Close releases the database.
func (s *SQLiteHistoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}

// MemoryHistoryStore keeps revisions in memory. It backs editing sessions
// started without a history database.
type MemoryHistoryStore struct {
	mu   sync.Mutex
	revs map[m.Path][]m.Revision
	now  func() time.Time
}

// NewMemoryHistoryStore constructs an empty MemoryHistoryStore.
func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{revs: make(map[m.Path][]m.Revision), now: time.Now}
}

// SaveRevision appends rev with the next version number of its path.
func (s *MemoryHistoryStore) SaveRevision(rev m.Revision) (m.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rev.Version = len(s.revs[rev.Path]) + 1
	rev.Time = s.now().UTC().Truncate(time.Second)
	s.revs[rev.Path] = append(s.revs[rev.Path], rev)

	return rev, nil
}

// LoadRevisions returns the revisions of path, newest first.
func (s *MemoryHistoryStore) LoadRevisions(path m.Path, limit int) ([]m.Revision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	revs := append([]m.Revision(nil), s.revs[path]...)
	sort.Slice(revs, func(i, j int) bool { return revs[i].Version > revs[j].Version })

	if limit > 0 && len(revs) > limit {
		revs = revs[:limit]
	}

	return revs, nil
}

// Close is a no-op.
func (s *MemoryHistoryStore) Close() error {
	return nil
}
