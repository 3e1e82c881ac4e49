package models

// Shapes produced by the content generator. JSON keys follow the generator's
// response schemas, so generated payloads unmarshal directly into these types
// and round-trip unchanged through the user document.

// Roadmap is an ordered learning plan for a target job role. A user's
// roadmaps are unique by role.
type Roadmap struct {
	Role  string        `json:"role"`
	Steps []RoadmapStep `json:"steps"`
}

type RoadmapStep struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Resources   []Resource `json:"resources"`
	Completed   bool       `json:"completed"`
}

type Resource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Question is a generated multiple-choice question with exactly four options.
type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// InterviewQuestion pairs a realistic interview question with an ideal answer.
type InterviewQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ResumeFeedback is the generator's critique of a resume.
type ResumeFeedback struct {
	ATSScore    int      `json:"atsScore"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
}
