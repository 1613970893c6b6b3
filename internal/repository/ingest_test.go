package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunle-oseni/resume-ingest/constants"
	"github.com/kunle-oseni/resume-ingest/gen/ent"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profile"
	"github.com/kunle-oseni/resume-ingest/gen/ent/profileskill"
	"github.com/kunle-oseni/resume-ingest/gen/ent/skill"
	"github.com/kunle-oseni/resume-ingest/internal/common"
	"github.com/kunle-oseni/resume-ingest/internal/resume"
	"github.com/kunle-oseni/resume-ingest/internal/testutil"
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	return testutil.OpenEnt(t)
}

func seedUser(t *testing.T, client *ent.Client) uuid.UUID {
	t.Helper()
	u, err := client.User.Create().SetEmail("jane.doe@example.com").Save(context.Background())
	require.NoError(t, err)
	return u.ID
}

func sampleExtracted() *resume.ExtractedProfile {
	return &resume.ExtractedProfile{
		Name:    "Jane Doe",
		Summary: "Backend engineer.",
		Education: []resume.Education{
			{Institution: "State University", Degree: "B.Sc", Duration: "2016-2020"},
		},
		Experience: []resume.Experience{
			{Title: "Software Engineer", Company: "Acme Corp", Duration: "Jan 2020 - Mar 2022", Responsibilities: []string{"Built data pipelines"}},
		},
		Skills: resume.SkillSet{Languages: []string{"Python", "Go"}},
	}
}

func TestIngestEndToEnd(t *testing.T) {
	client := openTestClient(t)
	ing := NewIngester(client, slog.Default())
	ctx := context.Background()

	userID := seedUser(t, client)
	profileID, err := ing.Ingest(ctx, userID, sampleExtracted())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, profileID)

	p := client.Profile.Query().Where(profile.UserID(userID)).OnlyX(ctx)
	assert.Equal(t, profileID, p.ID)
	require.NotNil(t, p.Summary)
	assert.Equal(t, "Backend engineer.", *p.Summary)

	links := client.ProfileSkill.Query().Where(profileskill.ProfileID(profileID)).AllX(ctx)
	assert.Len(t, links, 2)

	// skill names are stored case-normalized
	names := []string{}
	for _, s := range client.Skill.Query().AllX(ctx) {
		names = append(names, s.Name)
	}
	assert.ElementsMatch(t, []string{"python", "go"}, names)

	exps := p.QueryExperiences().AllX(ctx)
	require.Len(t, exps, 1)
	assert.Equal(t, "Software Engineer", exps[0].Role)
	assert.Equal(t, "Acme Corp", exps[0].CompanyName)
	assert.Equal(t, "Jan 2020", exps[0].StartDate)
	require.NotNil(t, exps[0].EndDate)
	assert.Equal(t, "Mar 2022", *exps[0].EndDate)

	u := client.User.GetX(ctx, userID)
	require.NotNil(t, u.ProfileDataID)
	assert.Equal(t, profileID, *u.ProfileDataID)

	status := readinessStatus(t, client, profileID)
	assert.Equal(t, constants.ReadinessComplete, status)
}

func TestIngestIdempotentPerUser(t *testing.T) {
	client := openTestClient(t)
	ing := NewIngester(client, slog.Default())
	ctx := context.Background()

	userID := seedUser(t, client)
	first, err := ing.Ingest(ctx, userID, sampleExtracted())
	require.NoError(t, err)
	second, err := ing.Ingest(ctx, userID, sampleExtracted())
	require.NoError(t, err)

	// same profile row both times
	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.Profile.Query().CountX(ctx))

	// one link per distinct skill, no duplicates
	assert.Equal(t, 2, client.ProfileSkill.Query().Where(profileskill.ProfileID(first)).CountX(ctx))
	assert.Equal(t, 2, client.Skill.Query().CountX(ctx))

	// experiences are append-only
	assert.Equal(t, 2, client.Experience.Query().CountX(ctx))

	assert.Equal(t, constants.ReadinessComplete, readinessStatus(t, client, first))
}

func TestIngestSharedSkillsAcrossUsers(t *testing.T) {
	client := openTestClient(t)
	ing := NewIngester(client, slog.Default())
	ctx := context.Background()

	a := seedUser(t, client)
	b := seedUser(t, client)

	extracted := sampleExtracted()
	_, err := ing.Ingest(ctx, a, extracted)
	require.NoError(t, err)
	_, err = ing.Ingest(ctx, b, extracted)
	require.NoError(t, err)

	// global skill rows are shared, links are per profile
	assert.Equal(t, 2, client.Skill.Query().CountX(ctx))
	assert.Equal(t, 4, client.ProfileSkill.Query().CountX(ctx))
}

func TestIngestCaseInsensitiveSkillDedup(t *testing.T) {
	client := openTestClient(t)
	ing := NewIngester(client, slog.Default())
	ctx := context.Background()

	userID := seedUser(t, client)
	extracted := sampleExtracted()
	extracted.Skills = resume.SkillSet{
		Languages: []string{"Python", "python", "PYTHON"},
	}
	profileID, err := ing.Ingest(ctx, userID, extracted)
	require.NoError(t, err)

	assert.Equal(t, 1, client.Skill.Query().Where(skill.Name("python")).CountX(ctx))
	assert.Equal(t, 1, client.ProfileSkill.Query().Where(profileskill.ProfileID(profileID)).CountX(ctx))
}

func TestIngestUnknownUser(t *testing.T) {
	client := openTestClient(t)
	ing := NewIngester(client, slog.Default())

	_, err := ing.Ingest(context.Background(), uuid.New(), sampleExtracted())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
	assert.False(t, common.Retryable(err))
}

func TestIngestAtomicity(t *testing.T) {
	client := openTestClient(t)
	ing := NewIngester(client, slog.Default())
	ctx := context.Background()

	userID := seedUser(t, client)

	// force the experience insert to fail mid-transaction
	_, err := client.ExecContext(ctx, "DROP TABLE experiences")
	require.NoError(t, err)

	_, err = ing.Ingest(ctx, userID, sampleExtracted())
	require.Error(t, err)

	// nothing from the failed run is visible
	assert.Equal(t, 0, client.Profile.Query().CountX(ctx))
	assert.Equal(t, 0, client.Skill.Query().CountX(ctx))
	assert.Equal(t, 0, client.ProfileSkill.Query().CountX(ctx))
	assert.Equal(t, 0, client.ProfileReadiness.Query().CountX(ctx))
	u := client.User.GetX(ctx, userID)
	assert.Nil(t, u.ProfileDataID)
}

func readinessStatus(t *testing.T, client *ent.Client, profileID uuid.UUID) constants.ReadinessStatus {
	t.Helper()
	repo := NewReadinessRepository(client, slog.Default())
	p := client.Profile.GetX(context.Background(), profileID)
	st, err := repo.StatusForUser(context.Background(), p.UserID)
	require.NoError(t, err)
	return st
}
