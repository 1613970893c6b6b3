package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/gen/ent"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profilereadiness"
)

type ReadinessRepository interface {
	// StatusForUser resolves the readiness status visible to the
	// application. Users without a profile or readiness row read as
	// INCOMPLETE.
	StatusForUser(ctx context.Context, userID uuid.UUID) (constants.ReadinessStatus, error)
}

type readinessRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReadinessRepository(client *ent.Client, logger *slog.Logger) ReadinessRepository {
	return &readinessRepository{
		client: client,
		logger: logger,
	}
}

func (r *readinessRepository) StatusForUser(ctx context.Context, userID uuid.UUID) (constants.ReadinessStatus, error) {
	p, err := r.client.Profile.
		Query().
		Where(profile.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constants.ReadinessIncomplete, nil
		}
		r.logger.Error("failed to load profile for readiness", "user_id", userID, "error", err)
		return "", err
	}

	rec, err := r.client.ProfileReadiness.
		Query().
		Where(profilereadiness.ProfileID(p.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constants.ReadinessIncomplete, nil
		}
		r.logger.Error("failed to load readiness", "profile_id", p.ID, "error", err)
		return "", err
	}
	return constants.ReadinessStatus(rec.Status), nil
}
