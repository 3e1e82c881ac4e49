package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  {\"a\":1}\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanJSON(tt.in))
		})
	}
}

func TestDecodeResumeFeedback(t *testing.T) {
	valid := []byte(`{
		"atsScore": 72,
		"strengths": ["clear structure"],
		"weaknesses": ["no metrics"],
		"suggestions": ["quantify impact"]
	}`)

	feedback, err := decodeResumeFeedback(valid)
	require.NoError(t, err)
	assert.Equal(t, 72, feedback.ATSScore)
	assert.Equal(t, []string{"clear structure"}, feedback.Strengths)

	_, err = decodeResumeFeedback([]byte(`{"atsScore": 120, "strengths": ["a"], "weaknesses": ["b"], "suggestions": ["c"]}`))
	assert.ErrorIs(t, err, ErrGenerationFailed)

	_, err = decodeResumeFeedback([]byte(`{"atsScore": 50, "strengths": [], "weaknesses": ["b"], "suggestions": ["c"]}`))
	assert.ErrorIs(t, err, ErrGenerationFailed)

	_, err = decodeResumeFeedback([]byte(`not json`))
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestDecodeMockTest(t *testing.T) {
	valid := []byte(`{"questions":[{
		"questionText": "What does SQL stand for?",
		"options": ["Structured Query Language", "Simple Query Language", "Sequential Query Language", "Standard Query Language"],
		"correctAnswer": "Structured Query Language",
		"explanation": "SQL is the standard language for relational databases."
	}]}`)

	questions, err := decodeMockTest(valid)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Structured Query Language", questions[0].CorrectAnswer)

	// Correct answer not among the options
	invalid := []byte(`{"questions":[{
		"questionText": "q",
		"options": ["a", "b", "c", "d"],
		"correctAnswer": "e",
		"explanation": "x"
	}]}`)
	_, err = decodeMockTest(invalid)
	assert.ErrorIs(t, err, ErrGenerationFailed)

	// Wrong option count
	invalid = []byte(`{"questions":[{
		"questionText": "q",
		"options": ["a", "b"],
		"correctAnswer": "a",
		"explanation": "x"
	}]}`)
	_, err = decodeMockTest(invalid)
	assert.ErrorIs(t, err, ErrGenerationFailed)

	_, err = decodeMockTest([]byte(`{"questions": []}`))
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestDecodeRoadmap(t *testing.T) {
	valid := []byte(`{
		"role": "Backend Engineer",
		"steps": [
			{"title": "Learn Go", "description": "Work through the language basics.",
			 "resources": [{"name": "Tour of Go", "url": "https://go.dev/tour"}],
			 "completed": true}
		]
	}`)

	roadmap, err := decodeRoadmap(valid)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", roadmap.Role)
	require.Len(t, roadmap.Steps, 1)
	// Completion state always starts false, whatever the model claims.
	assert.False(t, roadmap.Steps[0].Completed)

	_, err = decodeRoadmap([]byte(`{"role": "", "steps": []}`))
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestDecodeInterviewQuestions(t *testing.T) {
	valid := []byte(`{"questions":[
		{"question": "Tell me about yourself.", "answer": "Structure around skills and goals."}
	]}`)

	questions, err := decodeInterviewQuestions(valid)
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	_, err = decodeInterviewQuestions([]byte(`{"questions":[{"question": "", "answer": ""}]}`))
	assert.ErrorIs(t, err, ErrGenerationFailed)

	_, err = decodeInterviewQuestions([]byte(`{"questions":[]}`))
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}

func TestPromptsCarryRequestDetails(t *testing.T) {
	p := mockTestPrompt("Operating Systems", "Hard", 12, "Focus on scheduling")
	assert.Contains(t, p, "Operating Systems")
	assert.Contains(t, p, "Hard")
	assert.Contains(t, p, "Generate exactly 12 questions")
	assert.Contains(t, p, "Focus on scheduling")

	p = mockTestPrompt("DBMS", "Easy", 5, "")
	assert.NotContains(t, p, "Test Description")

	p = roadmapPrompt("Data Analyst")
	assert.Contains(t, p, `"Data Analyst"`)
	assert.Contains(t, p, "between 4 and 6")

	p = interviewPrompt("Acme", "Technical")
	assert.Contains(t, p, "Acme")
	assert.Contains(t, p, `"Technical"`)
}
