package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CampusPrep-2025/placement-service/internal/events"
	"github.com/CampusPrep-2025/placement-service/internal/models"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountFixture() (AccountService, *fakeRepository, *events.MockEventPublisher) {
	repo := newFakeRepository()
	publisher := events.NewMockEventPublisher(newTestLogger())
	return NewAccountService(repo, publisher, newTestLogger()), repo, publisher
}

func TestAccountService_RegisterAndAuthenticate(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, registered.UID)
	assert.Equal(t, "alice@example.com", registered.Email)
	assert.Equal(t, models.RoleStudent, registered.Role)

	authenticated, err := svc.Authenticate(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.UID, authenticated.UID)
}

func TestAccountService_RegisterNormalizesEmail(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "  ALICE@Example.COM ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", registered.Email)

	// Any casing of the same address signs in to the same account.
	authenticated, err := svc.Authenticate(ctx, "Alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.UID, authenticated.UID)
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "BOB@EXAMPLE.COM", "other456")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAccountService_AuthenticateFailures(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "secret123")
	require.NoError(t, err)

	// Wrong secret and unknown email report the same error so a caller
	// cannot probe which addresses are registered.
	_, err = svc.Authenticate(ctx, "carol@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAccountService_GetDocument(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	identity, err := svc.Register(ctx, "dave@example.com", "secret123")
	require.NoError(t, err)

	doc, err := svc.GetDocument(ctx, identity.UID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "dave@example.com", doc.Email)
	assert.Nil(t, doc.Profile)
	assert.Empty(t, doc.Roadmaps)
	assert.Empty(t, doc.MockTests)
}

func TestAccountService_GetDocumentAdminAndUnknown(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	doc, err := svc.GetDocument(ctx, models.AdminUID)
	require.NoError(t, err)
	assert.Nil(t, doc)

	doc, err = svc.GetDocument(ctx, "user_unknown")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestAccountService_SaveProfileAndRoadmapsRoundTrip(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	identity, err := svc.Register(ctx, "erin@example.com", "secret123")
	require.NoError(t, err)

	profile := &models.StudentProfile{
		GoalRole:      "Backend Engineer",
		GoalCompanies: []string{"Google", "Stripe"},
		Skills:        []string{"Go", "SQL"},
	}
	roadmaps := []models.Roadmap{
		{Role: "Backend Engineer", Steps: []models.RoadmapStep{
			{Title: "Learn Go", Description: "Work through the tour", Resources: []models.Resource{{Name: "Tour of Go", URL: "https://go.dev/tour"}}},
		}},
	}

	require.NoError(t, svc.SaveProfileAndRoadmaps(ctx, identity.UID, profile, roadmaps))

	doc, err := svc.GetDocument(ctx, identity.UID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, profile, doc.Profile)
	assert.Equal(t, roadmaps, doc.Roadmaps)
}

func TestAccountService_SaveRoadmapsUnknownUIDIsNoOp(t *testing.T) {
	svc, _, _ := newAccountFixture()

	err := svc.SaveRoadmaps(context.Background(), "user_unknown", []models.Roadmap{{Role: "SRE"}})
	assert.NoError(t, err)
}

func TestAccountService_SaveRoadmapsRejectsDuplicateRole(t *testing.T) {
	svc, _, _ := newAccountFixture()
	ctx := context.Background()

	identity, err := svc.Register(ctx, "frank@example.com", "secret123")
	require.NoError(t, err)

	err = svc.SaveRoadmaps(ctx, identity.UID, []models.Roadmap{
		{Role: "Data Engineer"},
		{Role: "data engineer"},
	})
	assert.ErrorIs(t, err, ErrRoadmapExists)
}

func TestAccountService_AppendMockTestResult(t *testing.T) {
	svc, _, publisher := newAccountFixture()
	ctx := context.Background()

	identity, err := svc.Register(ctx, "grace@example.com", "secret123")
	require.NoError(t, err)

	first, err := svc.AppendMockTestResult(ctx, identity.UID, &RecordTestRequest{Topic: "Arrays", Score: 7, TotalQuestions: 10})
	require.NoError(t, err)
	second, err := svc.AppendMockTestResult(ctx, identity.UID, &RecordTestRequest{Topic: "Graphs", Score: 9, TotalQuestions: 10})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Date.IsZero())

	doc, err := svc.GetDocument(ctx, identity.UID)
	require.NoError(t, err)
	require.Len(t, doc.MockTests, 2)
	// Newest first.
	assert.Equal(t, "Graphs", doc.MockTests[0].Topic)
	assert.Equal(t, "Arrays", doc.MockTests[1].Topic)

	published := publisher.GetPublishedEvents()
	var recorded int
	for _, event := range published {
		if event.Type == events.EventMockTestRecorded {
			recorded++
		}
	}
	assert.Equal(t, 2, recorded)
}

func TestAccountService_AppendMockTestResultUnknownUID(t *testing.T) {
	svc, _, publisher := newAccountFixture()
	ctx := context.Background()

	// The record is generated and returned even though nothing is persisted.
	result, err := svc.AppendMockTestResult(ctx, "user_unknown", &RecordTestRequest{Topic: "DP", Score: 3, TotalQuestions: 5})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "DP", result.Topic)

	for _, event := range publisher.GetPublishedEvents() {
		assert.NotEqual(t, events.EventMockTestRecorded, event.Type)
	}
}

func TestAccountService_StoreFailure(t *testing.T) {
	svc, repo, _ := newAccountFixture()
	ctx := context.Background()

	repo.users.fail = errors.New("connection refused")

	_, err := svc.Register(ctx, "henry@example.com", "secret123")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.Authenticate(ctx, "henry@example.com", "secret123")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
