package generator

import "google.golang.org/genai"

// Response schemas handed to the model alongside each prompt. The model is
// asked for JSON conforming to these shapes; decode.go still validates the
// result because the model can return degenerate payloads.

var resumeFeedbackSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"atsScore": {
			Type:        genai.TypeInteger,
			Description: "An Applicant Tracking System (ATS) score out of 100 for the resume. Higher is better.",
		},
		"strengths": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of 3-4 key strengths of the resume.",
		},
		"weaknesses": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of 3-4 key weaknesses or areas for improvement.",
		},
		"suggestions": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of 3-4 actionable suggestions to improve the resume.",
		},
	},
	Required: []string{"atsScore", "strengths", "weaknesses", "suggestions"},
}

var questionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questionText": {
			Type:        genai.TypeString,
			Description: "The text of the multiple-choice question.",
		},
		"options": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "An array of 4 strings representing the possible answers.",
		},
		"correctAnswer": {
			Type:        genai.TypeString,
			Description: "The string of the correct answer from the options array.",
		},
		"explanation": {
			Type:        genai.TypeString,
			Description: "A brief but clear explanation of why the correct answer is right.",
		},
	},
	Required: []string{"questionText", "options", "correctAnswer", "explanation"},
}

var mockTestSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type:  genai.TypeArray,
			Items: questionSchema,
		},
	},
	Required: []string{"questions"},
}

var resourceSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name": {
			Type:        genai.TypeString,
			Description: "The descriptive name of the online resource.",
		},
		"url": {
			Type:        genai.TypeString,
			Description: "The full URL to the resource.",
		},
	},
	Required: []string{"name", "url"},
}

var roadmapStepSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "A concise, actionable title for this step.",
		},
		"description": {
			Type:        genai.TypeString,
			Description: "A detailed description of what the student needs to learn or accomplish in this step.",
		},
		"resources": {
			Type:        genai.TypeArray,
			Items:       resourceSchema,
			Description: "A list of 2-3 relevant online resources to help with this step.",
		},
	},
	Required: []string{"title", "description", "resources"},
}

var roadmapSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"role": {
			Type:        genai.TypeString,
			Description: "The job role this roadmap is for.",
		},
		"steps": {
			Type:        genai.TypeArray,
			Items:       roadmapStepSchema,
			Description: "A list of 4 to 6 steps that make up the roadmap.",
		},
	},
	Required: []string{"role", "steps"},
}

var interviewQuestionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"question": {
			Type:        genai.TypeString,
			Description: "The interview question text.",
		},
		"answer": {
			Type:        genai.TypeString,
			Description: "A detailed, ideal answer for the interview question.",
		},
	},
	Required: []string{"question", "answer"},
}

var interviewPrepSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"questions": {
			Type:        genai.TypeArray,
			Items:       interviewQuestionSchema,
			Description: "A list of 5 to 7 interview questions.",
		},
	},
	Required: []string{"questions"},
}
