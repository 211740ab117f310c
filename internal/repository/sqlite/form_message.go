package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

type FormMessageRepository struct {
	db *sql.DB
}

func NewFormMessageRepository(db *sql.DB) *FormMessageRepository {
	return &FormMessageRepository{db: db}
}

const formMessageColumns = `id, name, email, message, created_at`

func scanFormMessage(row scanner) (model.FormMessage, error) {
	var (
		msg       model.FormMessage
		createdAt string
	)
	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &createdAt); err != nil {
		return model.FormMessage{}, err
	}

	t, err := parseTimestamp(createdAt)
	if err != nil {
		return model.FormMessage{}, err
	}
	msg.CreatedAt = t
	return msg, nil
}

func (r *FormMessageRepository) List(ctx context.Context) ([]model.FormMessage, error) {
	messages, err := listAll(ctx, r.db, scanFormMessage,
		`SELECT `+formMessageColumns+` FROM form_messages ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list form messages: %w", err)
	}
	return messages, nil
}

func (r *FormMessageRepository) Create(ctx context.Context, msg model.FormMessage) (model.FormMessage, error) {
	stmt := `
		INSERT INTO form_messages (id, name, email, message, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING ` + formMessageColumns

	created, err := insertReturning(ctx, r.db, scanFormMessage, stmt,
		uuid.New().String(),
		msg.Name,
		msg.Email,
		msg.Message,
		formatTimestamp(msg.CreatedAt),
	)
	if err != nil {
		return model.FormMessage{}, fmt.Errorf("failed to create form message: %w", err)
	}
	return created, nil
}
