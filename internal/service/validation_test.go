package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/vehicle-inspection/internal/dto"
)

func strPtr(s string) *string { return &s }
func uintPtr(v uint) *uint    { return &v }

func yesAnswer(urls ...string) dto.AnswerSubmitDTO {
	return dto.AnswerSubmitDTO{QuestionID: uintPtr(1), Answer: "YES", Description: strPtr("dent on the door"), PhotoURLs: urls}
}

func TestValidateCreateInspectionRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateInspectionRequestDTO
		wantMsg string
	}{
		{
			name:    "blank car id wins over empty answers",
			req:     dto.CreateInspectionRequestDTO{CarID: "   "},
			wantMsg: "Car ID cannot be null or empty",
		},
		{
			name:    "no answers",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1"},
			wantMsg: "Answers cannot be null or empty",
		},
		{
			name:    "missing question id",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{{Answer: "NO"}}},
			wantMsg: "Question ID cannot be null",
		},
		{
			name:    "blank answer",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{{QuestionID: uintPtr(1), Answer: " "}}},
			wantMsg: "Answer cannot be null or empty",
		},
		{
			name:    "unknown answer value",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{{QuestionID: uintPtr(1), Answer: "MAYBE"}}},
			wantMsg: "Answer must be YES or NO",
		},
		{
			name: "yes without description",
			req: dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{
				{QuestionID: uintPtr(1), Answer: "YES", Description: strPtr("  "), PhotoURLs: []string{"a.jpg"}},
			}},
			wantMsg: "Description is required for YES answers",
		},
		{
			name:    "yes without photos",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{yesAnswer()}},
			wantMsg: "At least one photo is required for YES answers",
		},
		{
			name:    "yes with four photos",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{yesAnswer("a", "b", "c", "d")}},
			wantMsg: "Maximum 3 photos allowed per answer",
		},
		{
			name:    "yes with blank photo url",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{yesAnswer("a.jpg", " ")}},
			wantMsg: "Photo URL cannot be null or empty",
		},
		{
			name: "first invalid answer is reported",
			req: dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{
				{QuestionID: uintPtr(1), Answer: "NO"},
				{QuestionID: uintPtr(2), Answer: "YES"},
				{Answer: "NO"},
			}},
			wantMsg: "Description is required for YES answers",
		},
		{
			name:    "car id too long",
			req:     dto.CreateInspectionRequestDTO{CarID: strings.Repeat("x", 101), Answers: []dto.AnswerSubmitDTO{{QuestionID: uintPtr(1), Answer: "NO"}}},
			wantMsg: "Car ID cannot exceed 100 characters",
		},
		{
			name: "description too long",
			req: dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{
				{QuestionID: uintPtr(1), Answer: "NO", Description: strPtr(strings.Repeat("d", 1001))},
			}},
			wantMsg: "Description cannot exceed 1000 characters",
		},
		{
			name:    "photo url too long",
			req:     dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{yesAnswer(strings.Repeat("u", 501))}},
			wantMsg: "Photo URL cannot exceed 500 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateInspectionRequest(tt.req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *ValidationError, got %v", err)
			}
			if vErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", vErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateCreateInspectionRequest_Valid(t *testing.T) {
	req := dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{
		{QuestionID: uintPtr(1), Answer: "no", PhotoURLs: []string{"ignored.jpg"}},
		{QuestionID: uintPtr(2), Answer: "Yes", Description: strPtr("scratch"), PhotoURLs: []string{"a.jpg", "b.jpg", "c.jpg"}},
		{QuestionID: uintPtr(3), Answer: "NO"},
	}}
	if err := ValidateCreateInspectionRequest(req); err != nil {
		t.Errorf("Expected valid request, got %v", err)
	}
}

func TestValidationErrorField(t *testing.T) {
	err := ValidateCreateInspectionRequest(dto.CreateInspectionRequestDTO{CarID: "CAR-1", Answers: []dto.AnswerSubmitDTO{
		{QuestionID: uintPtr(1), Answer: "NO"},
		yesAnswer("a.jpg", ""),
	}})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %v", err)
	}
	if vErr.Field != "answers[1].photoUrls[1]" || vErr.Rule != RulePhotoURL {
		t.Errorf("Unexpected field/rule: %s/%s", vErr.Field, vErr.Rule)
	}
}
