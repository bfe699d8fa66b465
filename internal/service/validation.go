package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lshigami/vehicle-inspection/internal/dto"
	"github.com/lshigami/vehicle-inspection/internal/model"
)

const MaxPhotosPerAnswer = 3

// Validation rule identifiers carried by ValidationError.Rule.
const (
	RuleRequired     = "required"
	RuleAnswerValue  = "answer_value"
	RuleDescription  = "description_required"
	RulePhotoMissing = "photo_required"
	RulePhotoLimit   = "photo_limit"
	RulePhotoURL     = "photo_url"
	RuleMaxLength    = "max_length"
)

var validate = validator.New()

// ValidateCreateInspectionRequest checks a submission rule by rule and returns the
// first violation. Length limits are checked last, after every business rule.
func ValidateCreateInspectionRequest(req dto.CreateInspectionRequestDTO) error {
	if strings.TrimSpace(req.CarID) == "" {
		return newValidationError("carId", RuleRequired, "Car ID cannot be null or empty")
	}
	if len(req.Answers) == 0 {
		return newValidationError("answers", RuleRequired, "Answers cannot be null or empty")
	}
	for i, answer := range req.Answers {
		if err := validateAnswer(i, answer); err != nil {
			return err
		}
	}
	return validateLengths(req)
}

func validateAnswer(i int, answer dto.AnswerSubmitDTO) error {
	field := func(name string) string { return fmt.Sprintf("answers[%d].%s", i, name) }

	if answer.QuestionID == nil {
		return newValidationError(field("questionId"), RuleRequired, "Question ID cannot be null")
	}
	if strings.TrimSpace(answer.Answer) == "" {
		return newValidationError(field("answer"), RuleRequired, "Answer cannot be null or empty")
	}
	value, ok := model.ParseAnswerType(answer.Answer)
	if !ok {
		return newValidationError(field("answer"), RuleAnswerValue, "Answer must be YES or NO")
	}
	if value != model.AnswerYes {
		return nil
	}

	if answer.Description == nil || strings.TrimSpace(*answer.Description) == "" {
		return newValidationError(field("description"), RuleDescription, "Description is required for YES answers")
	}
	if len(answer.PhotoURLs) == 0 {
		return newValidationError(field("photoUrls"), RulePhotoMissing, "At least one photo is required for YES answers")
	}
	if len(answer.PhotoURLs) > MaxPhotosPerAnswer {
		return newValidationError(field("photoUrls"), RulePhotoLimit, fmt.Sprintf("Maximum %d photos allowed per answer", MaxPhotosPerAnswer))
	}
	for j, url := range answer.PhotoURLs {
		if strings.TrimSpace(url) == "" {
			return newValidationError(fmt.Sprintf("answers[%d].photoUrls[%d]", i, j), RulePhotoURL, "Photo URL cannot be null or empty")
		}
	}
	return nil
}

func validateLengths(req dto.CreateInspectionRequestDTO) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return newValidationError(fe.Namespace(), RuleMaxLength,
		fmt.Sprintf("%s cannot exceed %s characters", fieldLabel(fe.StructField()), fe.Param()))
}

func fieldLabel(structField string) string {
	switch {
	case structField == "CarID":
		return "Car ID"
	case strings.HasPrefix(structField, "PhotoURLs"):
		return "Photo URL"
	default:
		return structField
	}
}
