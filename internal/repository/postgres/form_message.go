package postgres

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FormMessageRepository struct {
	pool *pgxpool.Pool
}

func NewFormMessageRepository(pool *pgxpool.Pool) *FormMessageRepository {
	return &FormMessageRepository{pool: pool}
}

const formMessageColumns = `id::text, name, email, message, created_at`

func scanFormMessage(row scanner) (model.FormMessage, error) {
	var msg model.FormMessage
	if err := row.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Message, &msg.CreatedAt); err != nil {
		return model.FormMessage{}, err
	}
	msg.CreatedAt = msg.CreatedAt.UTC()
	return msg, nil
}

func (r *FormMessageRepository) List(ctx context.Context) ([]model.FormMessage, error) {
	messages, err := listAll(ctx, r.pool, scanFormMessage,
		`SELECT `+formMessageColumns+` FROM form_messages ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list form messages: %w", err)
	}
	return messages, nil
}

func (r *FormMessageRepository) Create(ctx context.Context, msg model.FormMessage) (model.FormMessage, error) {
	stmt := `
		INSERT INTO form_messages (name, email, message, created_at)
		VALUES (@name, @email, @message, @created_at)
		RETURNING ` + formMessageColumns

	created, err := insertReturning(ctx, r.pool, scanFormMessage, stmt, pgx.NamedArgs{
		"name":       msg.Name,
		"email":      msg.Email,
		"message":    msg.Message,
		"created_at": msg.CreatedAt,
	})
	if err != nil {
		return model.FormMessage{}, fmt.Errorf("failed to create form message: %w", err)
	}
	return created, nil
}
