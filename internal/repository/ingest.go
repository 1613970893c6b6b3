package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/gen/ent"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profilereadiness"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profileskill"
	"github.com/kunle-oseni/resume-ingest/gen/ent/skill"
	"github.com/kunle-oseni/resume-ingest/gen/ent/user"
	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/resume"
)

// Ingester applies one extracted profile to the store in a single
// transaction. A profile becomes visible as COMPLETE only after skills,
// experiences and the user link have all been committed; the readiness
// upsert is the final statement of the transaction.
type Ingester struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIngester(client *ent.Client, logger *slog.Logger) *Ingester {
	return &Ingester{
		client: client,
		logger: logger,
	}
}

// Ingest runs the unit of work for one user and returns the profile id.
// Re-running with the same extracted record is idempotent at the profile
// and skill-link level; experience rows are append-only.
func (ing *Ingester) Ingest(ctx context.Context, userID uuid.UUID, p *resume.ExtractedProfile) (uuid.UUID, error) {
	var profileID uuid.UUID
	err := WithTx(ctx, ing.client, func(tx *ent.Tx) error {
		txc := tx.Client()

		exists, err := txc.User.Query().Where(user.ID(userID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("resolve user %s: %w", userID, err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", common.ErrUserNotFound, userID)
		}

		profileID, err = ing.upsertProfile(ctx, txc, userID, p)
		if err != nil {
			return err
		}
		if err := ing.linkSkills(ctx, txc, profileID, p.Skills); err != nil {
			return err
		}
		if err := ing.appendExperiences(ctx, txc, profileID, p.Experience); err != nil {
			return err
		}

		if err := txc.User.UpdateOneID(userID).SetProfileDataID(profileID).Exec(ctx); err != nil {
			return fmt.Errorf("link user %s to profile %s: %w", userID, profileID, err)
		}

		// must stay the final statement of the transaction
		err = txc.ProfileReadiness.Create().
			SetProfileID(profileID).
			SetStatus(string(constants.ReadinessComplete)).
			OnConflictColumns(profilereadiness.FieldProfileID).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("upsert readiness for profile %s: %w", profileID, err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	ing.logger.Info("ingest.committed", "user_id", userID, "profile_id", profileID)
	return profileID, nil
}

func (ing *Ingester) upsertProfile(ctx context.Context, txc *ent.Client, userID uuid.UUID, p *resume.ExtractedProfile) (uuid.UUID, error) {
	education, err := json.Marshal(p.Education)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode education: %w", err)
	}

	existing, err := txc.Profile.Query().Where(profile.UserID(userID)).Only(ctx)
	switch {
	case err == nil:
		upd := existing.Update().SetEducation(education)
		if p.Summary != "" {
			upd.SetSummary(p.Summary)
		} else {
			upd.ClearSummary()
		}
		if err := upd.Exec(ctx); err != nil {
			return uuid.Nil, fmt.Errorf("update profile for user %s: %w", userID, err)
		}
		return existing.ID, nil
	case ent.IsNotFound(err):
		create := txc.Profile.Create().SetUserID(userID).SetEducation(education)
		if p.Summary != "" {
			create.SetSummary(p.Summary)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return uuid.Nil, fmt.Errorf("create profile for user %s: %w", userID, err)
		}
		return created.ID, nil
	default:
		return uuid.Nil, fmt.Errorf("load profile for user %s: %w", userID, err)
	}
}

// linkSkills reconciles extracted skills against the global skills table and
// links them to the profile. Both inserts are conflict-tolerant so a
// duplicate-key race with a concurrent job skips rather than aborts.
func (ing *Ingester) linkSkills(ctx context.Context, txc *ent.Client, profileID uuid.UUID, set resume.SkillSet) error {
	flat := set.Flatten()
	if len(flat) == 0 {
		return nil
	}

	builders := make([]*ent.SkillCreate, 0, len(flat))
	names := make([]string, 0, len(flat))
	for _, s := range flat {
		builders = append(builders, txc.Skill.Create().
			SetName(s.Name).
			SetCategory(string(s.Category)))
		names = append(names, s.Name)
	}
	err := txc.Skill.CreateBulk(builders...).
		OnConflictColumns(skill.FieldName).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert %d skills: %w", len(flat), err)
	}

	rows, err := txc.Skill.Query().Where(skill.NameIn(names...)).All(ctx)
	if err != nil {
		return fmt.Errorf("load skill ids: %w", err)
	}

	links := make([]*ent.ProfileSkillCreate, 0, len(rows))
	for _, row := range rows {
		links = append(links, txc.ProfileSkill.Create().
			SetProfileID(profileID).
			SetSkillID(row.ID))
	}
	err = txc.ProfileSkill.CreateBulk(links...).
		OnConflictColumns(profileskill.FieldProfileID, profileskill.FieldSkillID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("link %d skills to profile %s: %w", len(rows), profileID, err)
	}
	return nil
}

func (ing *Ingester) appendExperiences(ctx context.Context, txc *ent.Client, profileID uuid.UUID, entries []resume.Experience) error {
	if len(entries) == 0 {
		return nil
	}
	builders := make([]*ent.ExperienceCreate, 0, len(entries))
	for _, e := range entries {
		if e.Title == "" {
			continue
		}
		company := e.Company
		if company == "" {
			company = resume.UnknownName
		}
		start, end := resume.SplitDuration(e.Duration)
		create := txc.Experience.Create().
			SetProfileID(profileID).
			SetCompanyName(company).
			SetRole(e.Title).
			SetStartDate(start)
		if end != "" {
			create.SetEndDate(end)
		}
		if len(e.Responsibilities) > 0 {
			create.SetDescription(strings.Join(e.Responsibilities, "\n"))
		}
		builders = append(builders, create)
	}
	if len(builders) == 0 {
		return nil
	}
	if err := txc.Experience.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("append %d experiences to profile %s: %w", len(builders), profileID, err)
	}
	return nil
}

// WithTx wraps fn in a transaction, rolling back on error or panic.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
