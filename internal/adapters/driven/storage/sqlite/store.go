package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
)

// Store is a SQLite-based storage that provides access to the account,
// session, and audit stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.brandforge/data/studio.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".brandforge", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "studio.db")

	// WAL mode for better concurrency between poll loops and the CLI.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// UserStore returns a UserStore interface backed by this store.
func (s *Store) UserStore() driven.UserStore {
	return &userStore{store: s}
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// AuditLog returns an AuditLog interface backed by this store.
func (s *Store) AuditLog() driven.AuditLog {
	return &auditLog{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== User Store ====================

type userStore struct {
	store *Store
}

var _ driven.UserStore = (*userStore)(nil)

// SaveUser creates or updates a user record.
func (s *userStore) SaveUser(ctx context.Context, user domain.User) error {
	sheetsJSON, err := json.Marshal(user.Sheets)
	if err != nil {
		return fmt.Errorf("marshalling sheet config: %w", err)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO users (id, username, name, email, role, password, sheets, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			role = excluded.role,
			password = excluded.password,
			sheets = excluded.sheets
	`, user.ID, user.Username, user.Name, user.Email, user.Role,
		user.Password, string(sheetsJSON), user.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by username.
func (s *userStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, username, name, email, role, password, sheets, created_at
		FROM users WHERE username = ?
	`, username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// ListUsers returns all accounts ordered by creation time.
func (s *userStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, username, name, email, role, password, sheets, created_at
		FROM users ORDER BY created_at, username
	`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	var user domain.User
	var sheetsJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.Email,
		&user.Role, &user.Password, &sheetsJSON, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(sheetsJSON), &user.Sheets); err != nil {
		return nil, fmt.Errorf("unmarshalling sheet config: %w", err)
	}
	if createdAt.Valid {
		user.CreatedAt = createdAt.Time
	}
	return &user, nil
}

// ==================== Session Store ====================

type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// SaveSession stores the user as the current session.
func (s *sessionStore) SaveSession(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(sessionPayload{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Sheets:   user.Sheets,
	})
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO session (id, username, payload, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			username = excluded.username,
			payload = excluded.payload,
			saved_at = excluded.saved_at
	`, user.Username, string(payload), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// sessionPayload is the persisted session record. The password is
// deliberately absent: a session never needs it again.
type sessionPayload struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Name     string             `json:"name,omitempty"`
	Email    string             `json:"email,omitempty"`
	Role     string             `json:"role,omitempty"`
	Sheets   domain.SheetConfig `json:"sheets"`
}

// CurrentSession returns the stored user, or domain.ErrNoSession.
func (s *sessionStore) CurrentSession(ctx context.Context) (*domain.User, error) {
	var payload string
	err := s.store.db.QueryRowContext(ctx,
		`SELECT payload FROM session WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("getting session: %w", err)
	}

	var p sessionPayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("unmarshalling session: %w", err)
	}
	return &domain.User{
		ID:       p.ID,
		Username: p.Username,
		Name:     p.Name,
		Email:    p.Email,
		Role:     p.Role,
		Sheets:   p.Sheets,
	}, nil
}

// ClearSession removes the stored session, if any.
func (s *sessionStore) ClearSession(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// ==================== Audit Log ====================

type auditLog struct {
	store *Store
}

var _ driven.AuditLog = (*auditLog)(nil)

// Record appends one entry.
func (l *auditLog) Record(ctx context.Context, entry domain.AuditEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO audit_log (id, action, details, performed_by, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Action, entry.Details, entry.PerformedBy, entry.Timestamp)
	if err != nil {
		return fmt.Errorf("recording audit entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *auditLog) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := l.store.db.QueryContext(ctx, `
		SELECT id, action, details, performed_by, timestamp
		FROM audit_log ORDER BY timestamp DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing audit entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		var ts sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.Details,
			&entry.PerformedBy, &ts); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		if ts.Valid {
			entry.Timestamp = ts.Time
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
