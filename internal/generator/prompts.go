package generator

import (
	"fmt"
	"strings"
)

func resumePrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString("Analyze the following resume text and provide feedback. ")
	b.WriteString("Act as an expert tech recruiter and career coach. Be critical but constructive. ")
	b.WriteString("Evaluate it for clarity, impact, and keyword optimization for an Applicant Tracking System (ATS).\n\n")
	b.WriteString("Resume Text:\n---\n")
	b.WriteString(resumeText)
	b.WriteString("\n---\n")
	return b.String()
}

func mockTestPrompt(topic, difficulty string, numQuestions int, description string) string {
	var b strings.Builder
	b.WriteString("Create a multiple-choice mock test for a college student preparing for placements.\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Number of Questions: %d\n", numQuestions)
	if description != "" {
		fmt.Fprintf(&b, "Test Description: %s\n", description)
	}
	b.WriteString("\nInstructions:\n")
	fmt.Fprintf(&b, "1. Generate exactly %d questions.\n", numQuestions)
	b.WriteString("2. Each question must have exactly 4 options.\n")
	b.WriteString("3. Ensure the questions are relevant to the topic, difficulty level, and description provided.\n")
	b.WriteString("4. Provide a clear explanation for each correct answer.\n")
	return b.String()
}

func roadmapPrompt(role string) string {
	var b strings.Builder
	b.WriteString("Act as an expert career coach for college students. ")
	fmt.Fprintf(&b, "Generate a detailed, step-by-step roadmap for a student preparing for a %q role in the tech industry.\n\n", role)
	b.WriteString("Instructions:\n")
	fmt.Fprintf(&b, "1. The 'role' in the response should exactly match the provided role: %q.\n", role)
	b.WriteString("2. Generate between 4 and 6 distinct, logical steps for the roadmap.\n")
	b.WriteString("3. For each step, provide a clear 'title', a helpful 'description', and a list of 2-3 real, high-quality online 'resources'.\n")
	b.WriteString("4. Ensure the resource URLs are valid and directly relevant to the step's content.\n")
	return b.String()
}

func interviewPrompt(companyName, interviewRound string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Act as a senior hiring manager at %s.\n", companyName)
	fmt.Fprintf(&b, "Generate a list of 5 to 7 realistic interview questions for a college student applying for a tech role (like Software Engineer or Data Analyst) during the %q round.\n\n", interviewRound)
	b.WriteString("For each question, provide a detailed, well-explained ideal answer. ")
	b.WriteString("The answer should guide the student on how to structure their response, what key points to hit, and what demonstrates a strong candidate.\n")
	return b.String()
}
