package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/google/uuid"
	"github.com/huangsam/moodtrack/internal/contract"
	"github.com/huangsam/moodtrack/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Table names owned by the store.
const (
	entriesTable    = "mood_entries"
	migrationsTable = "schema_migrations"
)

// sqliteTimeLayout is fixed width and always UTC, so text order matches time order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// entryColumns is the select list shared by every fetch.
const entryColumns = "id, recorded_at, mood, energy, stress, notes, created_at"

// SQLEntryStore stores entries in a SQL database.
type SQLEntryStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
	now     func() time.Time
}

var _ contract.EntryStore = &SQLEntryStore{} // Compile-time check

// NewEntryStore creates an EntryStore for the given backend. The none backend
// yields an in-memory store that is lost when the process exits.
func NewEntryStore(backend schema.DatabaseBackend, connStr string) (contract.EntryStore, error) {
	if backend == schema.NoneBackend {
		return NewMemoryStore(), nil
	}

	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}

	if err := pingDB(db, backend); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := createEntrySchema(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create entry table: %w", err)
	}

	return &SQLEntryStore{
		db:      db,
		backend: backend,
		connStr: connStr,
		now:     time.Now,
	}, nil
}

// openDB opens a handle for the backend without touching the network.
func openDB(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
		return db, nil

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		cfg, err := mysql.ParseDSN(connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse MySQL connection string: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}
		cfg.ParseTime = true
		cfg.Loc = time.UTC
		db, err := sql.Open("mysql", cfg.FormatDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open MySQL database: %w", err)
		}
		return db, nil

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err := sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to open PostgreSQL database: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

// pingDB verifies the connection with a hint tailored to the backend.
func pingDB(db *sql.DB, backend schema.DatabaseBackend) error {
	if err := db.Ping(); err != nil {
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check that MySQL is running and the connection string is correct. Ensure user/password are valid."
		case schema.PostgreSQLBackend:
			connDetail = "Check that PostgreSQL is running and the connection string is correct. Ensure user/password are valid."
		default:
			connDetail = "Verify the database file is accessible."
		}
		return fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}
	return nil
}

// createEntrySchema creates the entry table and its timestamp index.
func createEntrySchema(db *sql.DB, backend schema.DatabaseBackend) error {
	if _, err := db.Exec(getCreateEntriesQuery(backend)); err != nil {
		return err
	}
	// MySQL has no CREATE INDEX IF NOT EXISTS; the migration adds it there.
	if backend == schema.MySQLBackend {
		return nil
	}
	query := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_mood_entries_recorded_at ON %s (recorded_at)",
		quoteTableName(entriesTable, backend))
	_, err := db.Exec(query)
	return err
}

// getCreateEntriesQuery returns the CREATE TABLE query for mood_entries.
func getCreateEntriesQuery(backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(entriesTable, backend)

	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id VARCHAR(36) PRIMARY KEY,
				recorded_at DATETIME(6) NOT NULL,
				mood INT NOT NULL,
				energy INT NOT NULL,
				stress INT NOT NULL,
				notes TEXT NOT NULL,
				created_at DATETIME(6) NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				recorded_at TIMESTAMPTZ NOT NULL,
				mood INT NOT NULL,
				energy INT NOT NULL,
				stress INT NOT NULL,
				notes TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				recorded_at TEXT NOT NULL,
				mood INTEGER NOT NULL,
				energy INTEGER NOT NULL,
				stress INTEGER NOT NULL,
				notes TEXT NOT NULL DEFAULT '',
				created_at TEXT NOT NULL
			);
		`, quotedTableName)
	}
}

// Insert stores a new entry, assigning ID and CreatedAt when missing.
func (s *SQLEntryStore) Insert(ctx context.Context, entry schema.Entry) (schema.Entry, error) {
	entry = prepareEntry(entry, s.now)

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		quoteTableName(entriesTable, s.backend), entryColumns, s.placeholders(1, 7))
	_, err := s.db.ExecContext(ctx, query,
		entry.ID, s.formatTime(entry.Timestamp), entry.Mood, entry.Energy, entry.Stress,
		entry.Notes, s.formatTime(entry.CreatedAt))
	if err != nil {
		return schema.Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}
	return entry, nil
}

// FetchAll returns every entry ascending by timestamp, then insertion time.
func (s *SQLEntryStore) FetchAll(ctx context.Context) ([]schema.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY recorded_at, created_at`,
		entryColumns, quoteTableName(entriesTable, s.backend))
	return s.queryEntries(ctx, query)
}

// FetchRange returns entries with start <= timestamp <= end.
func (s *SQLEntryStore) FetchRange(ctx context.Context, start, end time.Time) ([]schema.Entry, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE recorded_at >= %s AND recorded_at <= %s ORDER BY recorded_at, created_at`,
		entryColumns, quoteTableName(entriesTable, s.backend), s.placeholder(1), s.placeholder(2))
	return s.queryEntries(ctx, query, s.formatTime(start), s.formatTime(end))
}

func (s *SQLEntryStore) queryEntries(ctx context.Context, query string, args ...any) ([]schema.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []schema.Entry{}
	for rows.Next() {
		var e schema.Entry
		switch s.backend {
		case schema.SQLiteBackend:
			var recordedAt, createdAt string
			if err := rows.Scan(&e.ID, &recordedAt, &e.Mood, &e.Energy, &e.Stress, &e.Notes, &createdAt); err != nil {
				return nil, fmt.Errorf("failed to scan entry: %w", err)
			}
			if e.Timestamp, err = parseSQLiteTime(recordedAt); err != nil {
				return nil, fmt.Errorf("failed to parse recorded_at: %w", err)
			}
			if e.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
				return nil, fmt.Errorf("failed to parse created_at: %w", err)
			}
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&e.ID, &e.Timestamp, &e.Mood, &e.Energy, &e.Stress, &e.Notes, &e.CreatedAt); err != nil {
				return nil, fmt.Errorf("failed to scan entry: %w", err)
			}
		}
		e.Timestamp = e.Timestamp.In(time.Local)
		e.CreatedAt = e.CreatedAt.In(time.Local)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}
	return entries, nil
}

// Close closes the underlying DB connection.
func (s *SQLEntryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetStatus returns status information about the entry store.
func (s *SQLEntryStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    string(s.backend),
		Connected:  s.db != nil,
		TableSizes: make(map[string]int64),
	}
	if s.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(entriesTable, s.backend)

	// Get total entries
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := s.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalEntries); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}
	status.TableSizes[entriesTable] = status.TotalEntries

	if status.TotalEntries == 0 {
		return status, nil
	}

	// Get oldest and latest entry times
	rangeQuery := fmt.Sprintf("SELECT MIN(recorded_at), MAX(recorded_at) FROM %s", quotedTableName)
	row := s.db.QueryRowContext(ctx, rangeQuery)
	switch s.backend {
	case schema.SQLiteBackend:
		var oldest, latest string
		if err := row.Scan(&oldest, &latest); err != nil {
			return status, fmt.Errorf("failed to get entry time range: %w", err)
		}
		var err error
		if status.OldestEntryTime, err = parseSQLiteTime(oldest); err != nil {
			return status, fmt.Errorf("failed to parse oldest entry time: %w", err)
		}
		if status.LatestEntryTime, err = parseSQLiteTime(latest); err != nil {
			return status, fmt.Errorf("failed to parse latest entry time: %w", err)
		}
	default:
		if err := row.Scan(&status.OldestEntryTime, &status.LatestEntryTime); err != nil {
			return status, fmt.Errorf("failed to get entry time range: %w", err)
		}
	}
	status.OldestEntryTime = status.OldestEntryTime.In(time.Local)
	status.LatestEntryTime = status.LatestEntryTime.In(time.Local)

	return status, nil
}

// placeholder returns the n-th bind parameter for the backend.
func (s *SQLEntryStore) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// placeholders returns a comma separated list of bind parameters from..to.
func (s *SQLEntryStore) placeholders(from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, s.placeholder(i))
	}
	return strings.Join(parts, ", ")
}

// formatTime converts a time.Time to the appropriate format for the backend.
func (s *SQLEntryStore) formatTime(t time.Time) any {
	switch s.backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(sqliteTimeLayout)
	case schema.MySQLBackend:
		return t.UTC()
	default:
		return t
	}
}

func parseSQLiteTime(s string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, s)
}

// prepareEntry fills in identity fields and drops sub-microsecond precision,
// which MySQL and PostgreSQL cannot keep.
func prepareEntry(entry schema.Entry, now func() time.Time) schema.Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now()
	}
	entry.Timestamp = entry.Timestamp.Truncate(time.Microsecond).In(time.Local)
	entry.CreatedAt = entry.CreatedAt.Truncate(time.Microsecond).In(time.Local)
	return entry
}

// quoteTableName returns the properly quoted table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}
