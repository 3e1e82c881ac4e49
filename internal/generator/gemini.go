package generator

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

const defaultModel = "gemini-2.5-flash"

// Gemini implements ContentGenerator against the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewGemini creates a Gemini-backed content generator.
func NewGemini(ctx context.Context, apiKey string, logger *slog.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  defaultModel,
		logger: logger,
	}, nil
}

func (g *Gemini) AnalyzeResume(ctx context.Context, resumeText string) (*models.ResumeFeedback, error) {
	data, err := g.generate(ctx, resumePrompt(resumeText), resumeFeedbackSchema, 0.5)
	if err != nil {
		g.logger.Error("Resume analysis failed", "error", err)
		return nil, fmt.Errorf("%w: failed to get feedback from AI, please check the resume content and try again", ErrGenerationFailed)
	}
	return decodeResumeFeedback(data)
}

func (g *Gemini) GenerateMockTest(ctx context.Context, topic, difficulty string, numQuestions int, description string) ([]models.Question, error) {
	data, err := g.generate(ctx, mockTestPrompt(topic, difficulty, numQuestions, description), mockTestSchema, 0.7)
	if err != nil {
		g.logger.Error("Mock test generation failed", "topic", topic, "error", err)
		return nil, fmt.Errorf("%w: failed to generate the mock test, the topic might be too specific", ErrGenerationFailed)
	}
	return decodeMockTest(data)
}

func (g *Gemini) GenerateRoadmap(ctx context.Context, role string) (*models.Roadmap, error) {
	data, err := g.generate(ctx, roadmapPrompt(role), roadmapSchema, 0.6)
	if err != nil {
		g.logger.Error("Roadmap generation failed", "role", role, "error", err)
		return nil, fmt.Errorf("%w: failed to generate a roadmap for %q, the role might be too niche", ErrGenerationFailed, role)
	}
	return decodeRoadmap(data)
}

func (g *Gemini) GenerateInterviewQuestions(ctx context.Context, companyName, interviewRound string) ([]models.InterviewQuestion, error) {
	data, err := g.generate(ctx, interviewPrompt(companyName, interviewRound), interviewPrepSchema, 0.7)
	if err != nil {
		g.logger.Error("Interview question generation failed", "company", companyName, "error", err)
		return nil, fmt.Errorf("%w: failed to generate interview questions for %s", ErrGenerationFailed, companyName)
	}
	return decodeInterviewQuestions(data)
}

func (g *Gemini) generate(ctx context.Context, prompt string, schema *genai.Schema, temperature float32) ([]byte, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr(temperature),
	})
	if err != nil {
		return nil, err
	}

	return []byte(cleanJSON(resp.Text())), nil
}
