package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kunle-oseni/resume-ingest/gen/ent"
	"github.com/kunle-oseni/resume-ingest/gen/ent/user"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	return r.client.User.
		Query().
		Where(user.ID(id)).
		Only(ctx)
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.User.Query().Where(user.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
