package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"github.com/lshigami/vehicle-inspection/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const maxQuestionTextLength = 500

// DefaultQuestions is the checklist installed into an empty catalog.
var DefaultQuestions = []string{
	"Is there any damage on the vehicle body (dents, scratches)?",
	"Are there any cracks or chips on the windshield or windows?",
	"Is there any visible damage to the tires or rims?",
	"Are any exterior lights (headlights, brake lights, indicators) broken?",
	"Are there any fluid leaks under the vehicle?",
	"Is there any damage or staining on the interior upholstery?",
	"Are any dashboard warning lights on?",
	"Are any mandatory items missing (spare tire, jack, warning triangle)?",
	"Is there any damage to the side mirrors?",
	"Are there any unusual noises while the engine is running?",
}

// AdminQuestionService maintains the checklist catalog.
type AdminQuestionService interface {
	CreateQuestion(ctx context.Context, text string) (*model.Question, error)
	UpdateQuestion(ctx context.Context, id uint, text string) (*model.Question, error)
	ToggleQuestionStatus(ctx context.Context, id uint) (*model.Question, error)
	ReorderQuestion(ctx context.Context, id uint, newOrderIndex int) (*model.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
	SeedDefaultQuestions(ctx context.Context) (int, error)
}

type adminQuestionService struct {
	repo repository.QuestionRepository
	db   *gorm.DB
}

func NewAdminQuestionService(repo repository.QuestionRepository, db *gorm.DB) AdminQuestionService {
	return &adminQuestionService{repo: repo, db: db}
}

func validateQuestionText(text string) error {
	if strings.TrimSpace(text) == "" {
		return newValidationError("questionText", RuleRequired, "Question text cannot be blank")
	}
	if len([]rune(text)) > maxQuestionTextLength {
		return newValidationError("questionText", RuleMaxLength, fmt.Sprintf("Question text cannot exceed %d characters", maxQuestionTextLength))
	}
	return nil
}

func (s *adminQuestionService) findQuestion(ctx context.Context, repo repository.QuestionRepository, id uint) (*model.Question, error) {
	question, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Question", ID: id}
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return question, nil
}

// CreateQuestion appends an active question after the current last position.
func (s *adminQuestionService) CreateQuestion(ctx context.Context, text string) (*model.Question, error) {
	if err := validateQuestionText(text); err != nil {
		return nil, err
	}

	var question model.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		maxIndex, err := repo.MaxOrderIndex(ctx)
		if err != nil {
			return fmt.Errorf("error reading max order index: %w", err)
		}
		question = model.Question{
			QuestionText: strings.TrimSpace(text),
			OrderIndex:   maxIndex + 1,
			IsActive:     true,
		}
		return repo.Create(ctx, &question)
	})
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: transaction failed")
		return nil, mapWriteError(err)
	}
	log.Info().Uint("questionID", question.ID).Int("orderIndex", question.OrderIndex).Msg("Created new question")
	return &question, nil
}

func (s *adminQuestionService) UpdateQuestion(ctx context.Context, id uint, text string) (*model.Question, error) {
	if err := validateQuestionText(text); err != nil {
		return nil, err
	}
	question, err := s.findQuestion(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	question.QuestionText = strings.TrimSpace(text)
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: repository error")
		return nil, mapWriteError(err)
	}
	log.Info().Uint("questionID", id).Msg("Updated question")
	return question, nil
}

func (s *adminQuestionService) ToggleQuestionStatus(ctx context.Context, id uint) (*model.Question, error) {
	question, err := s.findQuestion(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	question.IsActive = !question.IsActive
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("ToggleQuestionStatus: repository error")
		return nil, mapWriteError(err)
	}
	log.Info().Uint("questionID", id).Bool("active", question.IsActive).Msg("Toggled question status")
	return question, nil
}

// ReorderQuestion moves a question to newOrderIndex and shifts the active questions
// in between by one position.
func (s *adminQuestionService) ReorderQuestion(ctx context.Context, id uint, newOrderIndex int) (*model.Question, error) {
	if newOrderIndex < 1 {
		return nil, newValidationError("orderIndex", RuleRequired, "Order index must be at least 1")
	}

	var question *model.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		q, err := s.findQuestion(ctx, repo, id)
		if err != nil {
			return err
		}
		question = q
		oldOrderIndex := q.OrderIndex
		if oldOrderIndex == newOrderIndex {
			log.Debug().Uint("questionID", id).Int("orderIndex", newOrderIndex).Msg("Question already at order index")
			return nil
		}

		// Park the question outside the valid range while the others move.
		q.OrderIndex = 0
		if err := repo.Update(ctx, q); err != nil {
			return err
		}
		if newOrderIndex < oldOrderIndex {
			err = repo.ShiftActiveOrderIndexes(ctx, newOrderIndex, oldOrderIndex-1, 1)
		} else {
			err = repo.ShiftActiveOrderIndexes(ctx, oldOrderIndex+1, newOrderIndex, -1)
		}
		if err != nil {
			return err
		}
		q.OrderIndex = newOrderIndex
		if err := repo.Update(ctx, q); err != nil {
			return err
		}
		log.Info().Uint("questionID", id).Int("from", oldOrderIndex).Int("to", newOrderIndex).Msg("Reordered question")
		return nil
	})
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, err
		}
		log.Error().Err(err).Uint("questionID", id).Msg("ReorderQuestion: transaction failed")
		return nil, mapWriteError(err)
	}
	return question, nil
}

// DeleteQuestion soft deletes by deactivating; answers keep referencing the row.
func (s *adminQuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	question, err := s.findQuestion(ctx, s.repo, id)
	if err != nil {
		return err
	}
	question.IsActive = false
	if err := s.repo.Update(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("DeleteQuestion: repository error")
		return mapWriteError(err)
	}
	log.Info().Uint("questionID", id).Msg("Soft deleted question")
	return nil
}

// SeedDefaultQuestions installs DefaultQuestions when the catalog is empty and
// reports how many were created.
func (s *adminQuestionService) SeedDefaultQuestions(ctx context.Context) (int, error) {
	created := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		existing, err := repo.MaxOrderIndex(ctx)
		if err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}
		for i, text := range DefaultQuestions {
			q := model.Question{QuestionText: text, OrderIndex: i + 1, IsActive: true}
			if err := repo.Create(ctx, &q); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("SeedDefaultQuestions: transaction failed")
		return 0, fmt.Errorf("error seeding questions: %w", err)
	}
	return created, nil
}

func mapWriteError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
