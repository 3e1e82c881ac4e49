package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CampusPrep-2025/placement-service/internal/models"
)

// cleanJSON strips the ```json fences the model sometimes wraps around its
// response despite the JSON response MIME type.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func decodeResumeFeedback(data []byte) (*models.ResumeFeedback, error) {
	var feedback models.ResumeFeedback
	if err := json.Unmarshal(data, &feedback); err != nil {
		return nil, fmt.Errorf("%w: unparseable resume feedback: %v", ErrGenerationFailed, err)
	}
	if feedback.ATSScore < 0 || feedback.ATSScore > 100 {
		return nil, fmt.Errorf("%w: ATS score %d out of range", ErrGenerationFailed, feedback.ATSScore)
	}
	if len(feedback.Strengths) == 0 || len(feedback.Weaknesses) == 0 || len(feedback.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: resume feedback is missing strengths, weaknesses or suggestions", ErrGenerationFailed)
	}
	return &feedback, nil
}

type mockTestEnvelope struct {
	Questions []models.Question `json:"questions"`
}

func decodeMockTest(data []byte) ([]models.Question, error) {
	var envelope mockTestEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: unparseable mock test: %v", ErrGenerationFailed, err)
	}
	if len(envelope.Questions) == 0 {
		return nil, fmt.Errorf("%w: mock test contains no questions", ErrGenerationFailed)
	}

	for i, q := range envelope.Questions {
		if q.QuestionText == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrGenerationFailed, i+1)
		}
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options, want 4", ErrGenerationFailed, i+1, len(q.Options))
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return nil, fmt.Errorf("%w: question %d correct answer is not among its options", ErrGenerationFailed, i+1)
		}
	}

	return envelope.Questions, nil
}

func decodeRoadmap(data []byte) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := json.Unmarshal(data, &roadmap); err != nil {
		return nil, fmt.Errorf("%w: unparseable roadmap: %v", ErrGenerationFailed, err)
	}
	if roadmap.Role == "" || len(roadmap.Steps) == 0 {
		return nil, fmt.Errorf("%w: roadmap is missing role or steps", ErrGenerationFailed)
	}

	// The model does not emit completion state; every step starts open.
	for i := range roadmap.Steps {
		roadmap.Steps[i].Completed = false
	}

	return &roadmap, nil
}

type interviewEnvelope struct {
	Questions []models.InterviewQuestion `json:"questions"`
}

func decodeInterviewQuestions(data []byte) ([]models.InterviewQuestion, error) {
	var envelope interviewEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: unparseable interview questions: %v", ErrGenerationFailed, err)
	}
	if len(envelope.Questions) == 0 {
		return nil, fmt.Errorf("%w: no interview questions returned", ErrGenerationFailed)
	}
	for i, q := range envelope.Questions {
		if q.Question == "" || q.Answer == "" {
			return nil, fmt.Errorf("%w: interview question %d is incomplete", ErrGenerationFailed, i+1)
		}
	}
	return envelope.Questions, nil
}

func contains(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}
