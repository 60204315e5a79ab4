package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
)

// MessageStore is the MySQL-backed Messages repository.
type MessageStore struct {
	DB *sql.DB
}

func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{DB: db}
}

// Create inserts a contact message with read = false.
func (s *MessageStore) Create(ctx context.Context, m *models.Message) error {
	m.CreatedAt = time.Now()
	m.Read = false

	query := `
		INSERT INTO messages (name, email, message, is_read, created_at)
		VALUES (?, ?, ?, 0, ?)`

	result, err := s.DB.ExecContext(ctx, query, m.Name, m.Email, m.Message, m.CreatedAt)
	if err != nil {
		return errors.Wrap(err, "insert message")
	}

	m.ID, err = result.LastInsertId()
	return errors.Wrap(err, "read message id")
}

// List returns every message, newest first.
func (s *MessageStore) List(ctx context.Context) ([]models.Message, error) {
	query := `
		SELECT id, name, email, message, is_read, created_at
		FROM messages
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "query messages")
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan message row")
		}
		messages = append(messages, m)
	}

	return messages, errors.Wrap(rows.Err(), "iterate message rows")
}

// MarkRead flips is_read to true. The flip is one-way and idempotent:
// repeating it has no further effect and nothing ever unsets it.
func (s *MessageStore) MarkRead(ctx context.Context, id int64) error {
	result, err := s.DB.ExecContext(ctx,
		"UPDATE messages SET is_read = 1 WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "mark message read")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "check affected rows")
	}
	// Same MySQL caveat as order status: 0 affected rows can mean the flag
	// was already set, so check existence before reporting not found.
	if affected == 0 {
		var exists int
		err := s.DB.QueryRowContext(ctx, "SELECT 1 FROM messages WHERE id = ?", id).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return errors.Wrap(err, "verify message exists")
		}
	}
	return nil
}

// CountUnread returns how many messages still have read = false.
func (s *MessageStore) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM messages WHERE is_read = 0").Scan(&count)
	return count, errors.Wrap(err, "count unread messages")
}
