package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"github.com/lshigami/vehicle-inspection/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionService is the read side of the checklist catalog.
type QuestionService interface {
	ListActiveQuestions(ctx context.Context) ([]model.Question, error)
	ListAllQuestions(ctx context.Context) ([]model.Question, error)
	GetQuestionByID(ctx context.Context, id uint) (*model.Question, error)
	GetQuestionByOrderIndex(ctx context.Context, orderIndex int) (*model.Question, error)
	SearchQuestions(ctx context.Context, text string) ([]model.Question, error)
	CountActiveQuestions(ctx context.Context) (int64, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) ListActiveQuestions(ctx context.Context) ([]model.Question, error) {
	questions, err := s.repo.FindAllActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListActiveQuestions: repository error")
		return nil, fmt.Errorf("error fetching active questions: %w", err)
	}
	log.Debug().Int("count", len(questions)).Msg("Found active questions")
	return questions, nil
}

func (s *questionService) ListAllQuestions(ctx context.Context) ([]model.Question, error) {
	questions, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListAllQuestions: repository error")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}
	return questions, nil
}

func (s *questionService) GetQuestionByID(ctx context.Context, id uint) (*model.Question, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Uint("questionID", id).Msg("Question not found")
			return nil, &NotFoundError{Resource: "Question", ID: id}
		}
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return question, nil
}

func (s *questionService) GetQuestionByOrderIndex(ctx context.Context, orderIndex int) (*model.Question, error) {
	question, err := s.repo.FindByOrderIndex(ctx, orderIndex)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Question with order index", ID: orderIndex}
		}
		return nil, fmt.Errorf("error fetching question at order index %d: %w", orderIndex, err)
	}
	return question, nil
}

// SearchQuestions matches active questions by text, ignoring case. Blank text
// returns the whole active checklist.
func (s *questionService) SearchQuestions(ctx context.Context, text string) ([]model.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.ListActiveQuestions(ctx)
	}
	questions, err := s.repo.FindActiveByTextContaining(ctx, text)
	if err != nil {
		log.Error().Err(err).Str("text", text).Msg("SearchQuestions: repository error")
		return nil, fmt.Errorf("error searching questions: %w", err)
	}
	return questions, nil
}

func (s *questionService) CountActiveQuestions(ctx context.Context) (int64, error) {
	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting active questions: %w", err)
	}
	return count, nil
}
