package services

import (
	"context"
	"encoding/json"
	"sync"

	"gorm.io/gorm"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/repositories"
)

// fakeRepository is an in-memory repositories.Repository for service tests.
// It mirrors the store contracts the services rely on: gorm.ErrRecordNotFound
// on missing rows, newest-first ordering and silent no-ops on unknown ids.
type fakeRepository struct {
	users  *fakeUserRepository
	drives *fakeDriveRepository
	tests  *fakeMockTestRepository
}

func newFakeRepository() *fakeRepository {
	users := &fakeUserRepository{byID: make(map[string]*models.User)}
	tests := &fakeMockTestRepository{users: users}
	users.tests = tests

	return &fakeRepository{
		users:  users,
		drives: &fakeDriveRepository{},
		tests:  tests,
	}
}

func (r *fakeRepository) User() repositories.UserRepository         { return r.users }
func (r *fakeRepository) Drive() repositories.DriveRepository       { return r.drives }
func (r *fakeRepository) MockTest() repositories.MockTestRepository { return r.tests }

func (r *fakeRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(r)
}

func (r *fakeRepository) Ping(ctx context.Context) error { return nil }
func (r *fakeRepository) Close() error                   { return nil }

type fakeUserRepository struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	tests *fakeMockTestRepository
	fail  error
}

func (r *fakeUserRepository) Create(ctx context.Context, user *models.User) error {
	if r.fail != nil {
		return r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.fail != nil {
		return nil, r.fail
	}

	r.mu.Lock()
	user, ok := r.byID[id]
	r.mu.Unlock()
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	clone := *user
	results, err := r.tests.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	clone.MockTests = results
	return &clone, nil
}

func (r *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.fail != nil {
		return nil, r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if r.fail != nil {
		return false, r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepository) UpdateProfileAndRoadmaps(ctx context.Context, id string, profile *models.StudentProfile, roadmaps []models.Roadmap) error {
	if r.fail != nil {
		return r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	roadmapsJSON, err := json.Marshal(roadmaps)
	if err != nil {
		return err
	}
	user.Profile = profileJSON
	user.Roadmaps = roadmapsJSON
	return nil
}

func (r *fakeUserRepository) UpdateRoadmaps(ctx context.Context, id string, roadmaps []models.Roadmap) error {
	if r.fail != nil {
		return r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil
	}

	roadmapsJSON, err := json.Marshal(roadmaps)
	if err != nil {
		return err
	}
	user.Roadmaps = roadmapsJSON
	return nil
}

type fakeDriveRepository struct {
	mu     sync.Mutex
	drives []models.Drive
	fail   error
}

func (r *fakeDriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	if r.fail != nil {
		return r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, matching the created_at DESC ordering of the real store.
	r.drives = append([]models.Drive{*drive}, r.drives...)
	return nil
}

func (r *fakeDriveRepository) List(ctx context.Context) ([]models.Drive, error) {
	if r.fail != nil {
		return nil, r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Drive(nil), r.drives...), nil
}

func (r *fakeDriveRepository) Delete(ctx context.Context, id string) error {
	if r.fail != nil {
		return r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, drive := range r.drives {
		if drive.ID == id {
			r.drives = append(r.drives[:i], r.drives[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeDriveRepository) Count(ctx context.Context) (int64, error) {
	if r.fail != nil {
		return 0, r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.drives)), nil
}

type fakeMockTestRepository struct {
	mu      sync.Mutex
	results []models.MockTestResult
	users   *fakeUserRepository
	fail    error
}

func (r *fakeMockTestRepository) Append(ctx context.Context, result *models.MockTestResult) (bool, error) {
	if r.fail != nil {
		return false, r.fail
	}

	r.users.mu.Lock()
	_, ok := r.users.byID[result.UserID]
	r.users.mu.Unlock()
	if !ok {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append([]models.MockTestResult{*result}, r.results...)
	return true, nil
}

func (r *fakeMockTestRepository) ListByUser(ctx context.Context, userID string) ([]models.MockTestResult, error) {
	if r.fail != nil {
		return nil, r.fail
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.MockTestResult
	for _, result := range r.results {
		if result.UserID == userID {
			results = append(results, result)
		}
	}
	return results, nil
}

// stubGenerator returns canned content for prep service tests.
type stubGenerator struct {
	roadmap   *models.Roadmap
	questions []models.Question
	interview []models.InterviewQuestion
	feedback  *models.ResumeFeedback
	err       error
}

func (g *stubGenerator) AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeFeedback, error) {
	return g.feedback, g.err
}

func (g *stubGenerator) GenerateMockTest(ctx context.Context, topic, difficulty string, numQuestions int, description string) ([]models.Question, error) {
	return g.questions, g.err
}

func (g *stubGenerator) GenerateRoadmap(ctx context.Context, role string) (*models.Roadmap, error) {
	return g.roadmap, g.err
}

func (g *stubGenerator) GenerateInterviewQuestions(ctx context.Context, companyName, interviewRound string) ([]models.InterviewQuestion, error) {
	return g.interview, g.err
}
