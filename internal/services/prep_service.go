package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/CampusPrep-2025/placement-service/internal/events"
	"github.com/CampusPrep-2025/placement-service/internal/generator"
	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// PrepService orchestrates the AI-generated preparation features: roadmaps,
// mock tests, interview prep and resume feedback. Generated roadmaps are
// persisted onto the student's document; the other features return their
// payloads to the caller.
type PrepService interface {
	GenerateRoadmap(ctx context.Context, uid, role string) (*models.Roadmap, error)
	GenerateMockTest(ctx context.Context, req *GenerateTestRequest) ([]models.Question, error)
	GenerateInterviewQuestions(ctx context.Context, req *InterviewPrepRequest) ([]models.InterviewQuestion, error)
	AnalyzeResume(ctx context.Context, req *AnalyzeResumeRequest) (*models.ResumeFeedback, error)
}

// GenerateTestRequest describes the mock test a student wants.
type GenerateTestRequest struct {
	Topic        string `json:"topic" validate:"required,max=255"`
	Difficulty   string `json:"difficulty" validate:"required,difficulty_level"`
	NumQuestions int    `json:"num_questions" validate:"required,question_count"`
	Description  string `json:"description" validate:"max=1000"`
}

// InterviewPrepRequest targets a company and interview round.
type InterviewPrepRequest struct {
	CompanyName    string `json:"company_name" validate:"required,max=255"`
	InterviewRound string `json:"interview_round" validate:"required,max=255"`
}

// AnalyzeResumeRequest carries the resume text to critique.
type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

type prepService struct {
	accounts  AccountService
	generator generator.ContentGenerator
	publisher events.EventPublisher
	logger    *slog.Logger
}

func NewPrepService(accounts AccountService, gen generator.ContentGenerator, publisher events.EventPublisher, logger *slog.Logger) PrepService {
	return &prepService{
		accounts:  accounts,
		generator: gen,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *prepService) GenerateRoadmap(ctx context.Context, uid, role string) (*models.Roadmap, error) {
	doc, err := s.accounts.GetDocument(ctx, uid)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		// Admins and unknown ids own no roadmaps.
		return nil, ErrUserNotFound
	}

	for _, existing := range doc.Roadmaps {
		if strings.EqualFold(existing.Role, role) {
			return nil, ErrRoadmapExists
		}
	}

	roadmap, err := s.generator.GenerateRoadmap(ctx, role)
	if err != nil {
		return nil, err
	}

	roadmaps := append(doc.Roadmaps, *roadmap)
	if err := s.accounts.SaveRoadmaps(ctx, uid, roadmaps); err != nil {
		return nil, err
	}

	event := events.NewPlacementEvent(events.EventRoadmapGenerated, events.RoadmapEvent{
		UserID: uid,
		Role:   roadmap.Role,
	})
	if err := s.publisher.PublishPlacementEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish roadmap event", "error", err)
	}

	s.logger.Info("Roadmap generated", "uid", uid, "role", roadmap.Role, "steps", len(roadmap.Steps))
	return roadmap, nil
}

func (s *prepService) GenerateMockTest(ctx context.Context, req *GenerateTestRequest) ([]models.Question, error) {
	questions, err := s.generator.GenerateMockTest(ctx, req.Topic, req.Difficulty, req.NumQuestions, req.Description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Mock test generated", "topic", req.Topic, "questions", len(questions))
	return questions, nil
}

func (s *prepService) GenerateInterviewQuestions(ctx context.Context, req *InterviewPrepRequest) ([]models.InterviewQuestion, error) {
	questions, err := s.generator.GenerateInterviewQuestions(ctx, req.CompanyName, req.InterviewRound)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Interview questions generated", "company", req.CompanyName, "count", len(questions))
	return questions, nil
}

func (s *prepService) AnalyzeResume(ctx context.Context, req *AnalyzeResumeRequest) (*models.ResumeFeedback, error) {
	feedback, err := s.generator.AnalyzeResume(ctx, req.ResumeText)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Resume analyzed", "ats_score", feedback.ATSScore)
	return feedback, nil
}
