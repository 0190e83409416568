// Package sqlite provides a SQLite-backed inbox storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/gameforge/internal/platform/id"
	sqlitemigrate "github.com/louisbranch/gameforge/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/gameforge/internal/services/site/storage"
	"github.com/louisbranch/gameforge/internal/services/site/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists inbox records in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) a SQLite inbox and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// stamp fills a missing ID and creation time.
func (s *Store) stamp(recordID string, createdAt time.Time) (string, time.Time, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		generated, err := id.NewID()
		if err != nil {
			return "", time.Time{}, fmt.Errorf("generate id: %w", err)
		}
		recordID = generated
	}
	if createdAt.IsZero() {
		createdAt = s.now()
	}
	return recordID, createdAt.UTC(), nil
}

// SaveContactMessage inserts one contact message.
func (s *Store) SaveContactMessage(ctx context.Context, message storage.ContactMessage) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name := strings.TrimSpace(message.Name)
	email := strings.TrimSpace(message.Email)
	body := strings.TrimSpace(message.Message)
	switch {
	case name == "":
		return fmt.Errorf("name is required")
	case email == "":
		return fmt.Errorf("email is required")
	case body == "":
		return fmt.Errorf("message is required")
	}
	recordID, createdAt, err := s.stamp(message.ID, message.CreatedAt)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO contact_messages (id, name, email, subject, message, locale, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		recordID,
		name,
		email,
		strings.TrimSpace(message.Subject),
		body,
		localeOrDefault(message.Locale),
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("save contact message: %w", err)
	}
	return nil
}

// GetContactMessage returns one contact message by ID.
func (s *Store) GetContactMessage(ctx context.Context, messageID string) (storage.ContactMessage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ContactMessage{}, err
	}
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return storage.ContactMessage{}, fmt.Errorf("message id is required")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, name, email, subject, message, locale, created_at
		   FROM contact_messages
		  WHERE id = ?`,
		messageID,
	)
	message, err := scanContactMessage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ContactMessage{}, storage.ErrNotFound
		}
		return storage.ContactMessage{}, fmt.Errorf("get contact message: %w", err)
	}
	return message, nil
}

// ListContactMessages returns up to limit messages, newest first.
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]storage.ContactMessage, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, subject, message, locale, created_at
		   FROM contact_messages
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	messages := make([]storage.ContactMessage, 0, limit)
	for rows.Next() {
		message, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("list contact messages: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

// SaveDonationPledge inserts one donation pledge.
func (s *Store) SaveDonationPledge(ctx context.Context, pledge storage.DonationPledge) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	name := strings.TrimSpace(pledge.Name)
	email := strings.TrimSpace(pledge.Email)
	method := strings.TrimSpace(pledge.PaymentMethod)
	switch {
	case name == "":
		return fmt.Errorf("name is required")
	case email == "":
		return fmt.Errorf("email is required")
	case pledge.AmountCents <= 0:
		return fmt.Errorf("amount must be greater than zero")
	case method == "":
		return fmt.Errorf("payment method is required")
	}
	recordID, createdAt, err := s.stamp(pledge.ID, pledge.CreatedAt)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO donation_pledges (id, name, email, amount_cents, payment_method, locale, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		recordID,
		name,
		email,
		pledge.AmountCents,
		method,
		localeOrDefault(pledge.Locale),
		toMillis(createdAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("save donation pledge: %w", err)
	}
	return nil
}

// ListDonationPledges returns up to limit pledges, newest first.
func (s *Store) ListDonationPledges(ctx context.Context, limit int) ([]storage.DonationPledge, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, name, email, amount_cents, payment_method, locale, created_at
		   FROM donation_pledges
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list donation pledges: %w", err)
	}
	defer rows.Close()

	pledges := make([]storage.DonationPledge, 0, limit)
	for rows.Next() {
		var pledge storage.DonationPledge
		var createdAt int64
		if err := rows.Scan(
			&pledge.ID,
			&pledge.Name,
			&pledge.Email,
			&pledge.AmountCents,
			&pledge.PaymentMethod,
			&pledge.Locale,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list donation pledges: %w", err)
		}
		pledge.CreatedAt = fromMillis(createdAt)
		pledges = append(pledges, pledge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donation pledges: %w", err)
	}
	return pledges, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContactMessage(row rowScanner) (storage.ContactMessage, error) {
	var message storage.ContactMessage
	var createdAt int64
	if err := row.Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Subject,
		&message.Message,
		&message.Locale,
		&createdAt,
	); err != nil {
		return storage.ContactMessage{}, err
	}
	message.CreatedAt = fromMillis(createdAt)
	return message, nil
}

func localeOrDefault(locale string) string {
	if locale = strings.TrimSpace(locale); locale != "" {
		return locale
	}
	return "en"
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.InboxStore = (*Store)(nil)
