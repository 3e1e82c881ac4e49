package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRequest struct {
	Role       string `validate:"omitempty,user_role"`
	Difficulty string `validate:"omitempty,difficulty_level"`
	Count      int    `validate:"omitempty,question_count"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     testRequest
		wantErr bool
	}{
		{name: "valid student role", req: testRequest{Role: "student"}},
		{name: "valid admin role", req: testRequest{Role: "admin"}},
		{name: "invalid role", req: testRequest{Role: "teacher"}, wantErr: true},
		{name: "valid difficulty", req: testRequest{Difficulty: "Medium"}},
		{name: "invalid difficulty", req: testRequest{Difficulty: "medium"}, wantErr: true},
		{name: "valid question count", req: testRequest{Count: 10}},
		{name: "question count too high", req: testRequest{Count: 31}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
