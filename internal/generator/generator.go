package generator

import (
	"context"
	"errors"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// ErrGenerationFailed is returned when the content generator fails or
// produces an unparseable or invalid-shape result. The wrapped message
// carries a feature-specific hint for the user.
var ErrGenerationFailed = errors.New("generation failed")

// ContentGenerator produces structured placement-prep content. Given a
// request it returns data conforming to the feature's shape or fails with
// ErrGenerationFailed; callers never receive partially valid payloads.
type ContentGenerator interface {
	// AnalyzeResume critiques resume text and scores it for ATS friendliness.
	AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeFeedback, error)

	// GenerateMockTest produces numQuestions multiple-choice questions, each
	// with exactly four options and the correct answer among them.
	GenerateMockTest(ctx context.Context, topic, difficulty string, numQuestions int, description string) ([]models.Question, error)

	// GenerateRoadmap produces a step-by-step learning plan for the role.
	// Steps start not completed.
	GenerateRoadmap(ctx context.Context, role string) (*models.Roadmap, error)

	// GenerateInterviewQuestions produces 5-7 question/ideal-answer pairs for
	// the given company and interview round.
	GenerateInterviewQuestions(ctx context.Context, companyName, interviewRound string) ([]models.InterviewQuestion, error)
}
