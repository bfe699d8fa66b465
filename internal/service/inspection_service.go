package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/vehicle-inspection/internal/dto"
	"github.com/lshigami/vehicle-inspection/internal/metrics"
	"github.com/lshigami/vehicle-inspection/internal/model"
	"github.com/lshigami/vehicle-inspection/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const inspectionCreatedMessage = "Inspection created successfully"

// InspectionService serves checklists for cars and persists checklist submissions.
type InspectionService interface {
	GetInspectionQuestions(ctx context.Context, carID string) (*dto.InspectionQuestionsResponseDTO, error)
	CreateInspection(ctx context.Context, req dto.CreateInspectionRequestDTO) (*dto.CreateInspectionResponseDTO, error)
	GetInspectionByID(ctx context.Context, inspectionID uint) (*dto.InspectionDetailDTO, error)
	GetInspectionsByCarID(ctx context.Context, carID string) (*dto.CarInspectionHistoryDTO, error)
	GetInspectionStats(ctx context.Context, inspectionID uint) (*dto.InspectionStatsDTO, error)
}

type inspectionService struct {
	questionRepo   repository.QuestionRepository
	inspectionRepo repository.InspectionRepository
	answerRepo     repository.AnswerRepository
	photoRepo      repository.PhotoRepository
	metrics        *metrics.Metrics
	db             *gorm.DB // transaction boundary for both the read and the write path
	now            func() time.Time
}

func NewInspectionService(
	questionRepo repository.QuestionRepository,
	inspectionRepo repository.InspectionRepository,
	answerRepo repository.AnswerRepository,
	photoRepo repository.PhotoRepository,
	m *metrics.Metrics,
	db *gorm.DB,
) InspectionService {
	return &inspectionService{
		questionRepo:   questionRepo,
		inspectionRepo: inspectionRepo,
		answerRepo:     answerRepo,
		photoRepo:      photoRepo,
		metrics:        m,
		db:             db,
		now:            time.Now,
	}
}

// txRepos bundles the repositories bound to one transaction.
type txRepos struct {
	questions   repository.QuestionRepository
	inspections repository.InspectionRepository
	answers     repository.AnswerRepository
	photos      repository.PhotoRepository
}

func (s *inspectionService) bind(tx *gorm.DB) txRepos {
	return txRepos{
		questions:   s.questionRepo.WithTx(tx),
		inspections: s.inspectionRepo.WithTx(tx),
		answers:     s.answerRepo.WithTx(tx),
		photos:      s.photoRepo.WithTx(tx),
	}
}

// findReferenceInspection prefers the car's latest draft over its latest completed
// inspection. A nil result means the car was never inspected.
func findReferenceInspection(ctx context.Context, repo repository.InspectionRepository, carID string) (*model.Inspection, error) {
	draft, err := repo.FindLatestByCarAndStatus(ctx, carID, model.InspectionStatusInProgress)
	if err == nil {
		return draft, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	completed, err := repo.FindLatestByCarAndStatus(ctx, carID, model.InspectionStatusCompleted)
	if err == nil {
		return completed, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return nil, err
}

// GetInspectionQuestions returns the active checklist for a car with the answers of
// its reference inspection attached as previous answers.
func (s *inspectionService) GetInspectionQuestions(ctx context.Context, carID string) (*dto.InspectionQuestionsResponseDTO, error) {
	log.Debug().Str("carID", carID).Msg("Getting inspection questions")

	var (
		questions       []model.Question
		reference       *model.Inspection
		previousAnswers = make(map[uint]model.Answer)
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.bind(tx)

		var err error
		questions, err = repos.questions.FindAllActive(ctx)
		if err != nil {
			return fmt.Errorf("error fetching active questions: %w", err)
		}
		reference, err = findReferenceInspection(ctx, repos.inspections, carID)
		if err != nil {
			return fmt.Errorf("error looking up reference inspection: %w", err)
		}
		if reference == nil {
			return nil
		}
		answers, err := repos.answers.FindByInspectionIDWithPhotos(ctx, reference.ID)
		if err != nil {
			return fmt.Errorf("error fetching answers of inspection %d: %w", reference.ID, err)
		}
		for _, answer := range answers {
			previousAnswers[answer.QuestionID] = answer
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("carID", carID).Msg("GetInspectionQuestions: transaction failed")
		return nil, err
	}

	resp := &dto.InspectionQuestionsResponseDTO{
		CarID:                 carID,
		Questions:             make([]dto.QuestionResponseDTO, 0, len(questions)),
		HasPreviousInspection: reference != nil,
	}
	referenceKind := "none"
	if reference != nil {
		id := reference.ID
		status := string(reference.Status)
		createdAt := reference.CreatedAt
		resp.InspectionID = &id
		resp.Status = &status
		resp.LastInspectionDate = &createdAt
		referenceKind = strings.ToLower(status)
		log.Debug().Str("carID", carID).Uint("inspectionID", id).Time("createdAt", createdAt).Msg("Found previous inspection")
	}

	for _, question := range questions {
		var item dto.QuestionResponseDTO
		if err := copier.Copy(&item, &question); err != nil {
			log.Error().Err(err).Uint("questionID", question.ID).Msg("GetInspectionQuestions: failed to copy question to DTO")
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		if previous, ok := previousAnswers[question.ID]; ok {
			item.PreviousAnswer = toPreviousAnswer(previous)
		}
		resp.Questions = append(resp.Questions, item)
	}

	s.metrics.ObserveChecklist(referenceKind)
	log.Info().Str("carID", carID).Int("questions", len(questions)).Bool("hasPreviousInspection", resp.HasPreviousInspection).
		Msg("Retrieved inspection questions")
	return resp, nil
}

// toPreviousAnswer projects a stored answer as carried-forward context. Its photos
// belong to an earlier inspection, so none of them is new.
func toPreviousAnswer(answer model.Answer) *dto.PreviousAnswerDTO {
	photos := make([]dto.PhotoInfoDTO, 0, len(answer.Photos))
	for _, photo := range answer.Photos {
		photos = append(photos, dto.PhotoInfoDTO{URL: photo.PhotoURL, IsNew: false})
	}
	return &dto.PreviousAnswerDTO{
		Answer:      string(answer.Answer),
		Description: answer.Description,
		Photos:      photos,
	}
}

// CreateInspection validates a checklist submission and stores it as one completed
// inspection, reusing the car's IN_PROGRESS inspection when there is one.
func (s *inspectionService) CreateInspection(ctx context.Context, req dto.CreateInspectionRequestDTO) (*dto.CreateInspectionResponseDTO, error) {
	started := s.now()
	log.Debug().Str("carID", req.CarID).Int("answers", len(req.Answers)).Msg("Creating inspection")

	if err := ValidateCreateInspectionRequest(req); err != nil {
		log.Warn().Err(err).Str("carID", req.CarID).Msg("CreateInspection: invalid request")
		s.metrics.ObserveSubmission(metrics.OutcomeValidation, 0)
		return nil, err
	}

	var (
		inspection    *model.Inspection
		answerValues  []model.AnswerType
		photosCreated int
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := s.bind(tx)

		existing, err := repos.inspections.FindLatestByCarAndStatus(ctx, req.CarID, model.InspectionStatusInProgress)
		switch {
		case err == nil:
			inspection = existing
			log.Debug().Uint("inspectionID", existing.ID).Msg("Found an existing IN_PROGRESS inspection, updating it")
		case errors.Is(err, repository.ErrNotFound):
			inspection = &model.Inspection{
				CarID:          req.CarID,
				InspectionDate: s.now(),
				Status:         model.InspectionStatusInProgress,
			}
			if err := repos.inspections.Create(ctx, inspection); err != nil {
				return fmt.Errorf("failed to create inspection record: %w", err)
			}
			log.Debug().Uint("inspectionID", inspection.ID).Msg("No IN_PROGRESS inspection found, created a new one")
		default:
			return fmt.Errorf("error looking up draft inspection: %w", err)
		}

		for _, answerReq := range req.Answers {
			answer, created, err := s.processAnswer(ctx, repos, inspection.ID, answerReq)
			if err != nil {
				return err
			}
			answerValues = append(answerValues, answer.Answer)
			photosCreated += created
		}

		inspection.MarkAsCompleted()
		if err := repos.inspections.Update(ctx, inspection); err != nil {
			return fmt.Errorf("failed to mark inspection %d as completed: %w", inspection.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.failSubmission(req.CarID, err)
	}

	for _, value := range answerValues {
		s.metrics.ObserveAnswer(string(value))
	}
	s.metrics.ObservePhotos(photosCreated)
	s.metrics.ObserveSubmission(metrics.OutcomeSuccess, s.now().Sub(started))

	log.Info().Uint("inspectionID", inspection.ID).Str("carID", req.CarID).Int("answers", len(answerValues)).
		Int("photos", photosCreated).Msg("Successfully created inspection")

	return &dto.CreateInspectionResponseDTO{
		InspectionID: inspection.ID,
		CarID:        inspection.CarID,
		Status:       string(inspection.Status),
		CreatedAt:    inspection.CreatedAt,
		Message:      inspectionCreatedMessage,
	}, nil
}

func (s *inspectionService) failSubmission(carID string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		log.Warn().Err(err).Str("carID", carID).Msg("CreateInspection: referenced entity not found")
		s.metrics.ObserveSubmission(metrics.OutcomeNotFound, 0)
		return err
	case errors.Is(err, repository.ErrDuplicate):
		log.Warn().Err(err).Str("carID", carID).Msg("CreateInspection: concurrent submission for the same car")
		s.metrics.ObserveSubmission(metrics.OutcomeConflict, 0)
		return fmt.Errorf("%w: another inspection for car %s is being processed", ErrConflict, carID)
	default:
		log.Error().Err(err).Str("carID", carID).Msg("CreateInspection: transaction failed")
		s.metrics.ObserveSubmission(metrics.OutcomeError, 0)
		return err
	}
}

// processAnswer upserts the answer for (inspection, question) and attaches the
// submitted photos of a YES answer. Photos already on the answer are kept and URLs it
// already carries are skipped; every other submitted URL becomes one photo. It returns
// the number of photos created.
func (s *inspectionService) processAnswer(ctx context.Context, repos txRepos, inspectionID uint, req dto.AnswerSubmitDTO) (*model.Answer, int, error) {
	questionID := *req.QuestionID
	value, _ := model.ParseAnswerType(req.Answer)

	answer, err := repos.answers.FindByInspectionAndQuestion(ctx, inspectionID, questionID)
	switch {
	case err == nil:
		answer.Answer = value
		answer.Description = req.Description
		if err := repos.answers.Update(ctx, answer); err != nil {
			return nil, 0, fmt.Errorf("failed to update answer %d: %w", answer.ID, err)
		}
		log.Debug().Uint("answerID", answer.ID).Msg("Updated existing answer")
	case errors.Is(err, repository.ErrNotFound):
		if _, err := repos.questions.FindByID(ctx, questionID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, 0, &NotFoundError{Resource: "Question", ID: questionID}
			}
			return nil, 0, fmt.Errorf("error fetching question %d: %w", questionID, err)
		}
		answer = &model.Answer{
			InspectionID: inspectionID,
			QuestionID:   questionID,
			Answer:       value,
			Description:  req.Description,
		}
		if err := repos.answers.Create(ctx, answer); err != nil {
			return nil, 0, fmt.Errorf("failed to create answer for question %d: %w", questionID, err)
		}
	default:
		return nil, 0, fmt.Errorf("error looking up answer for question %d: %w", questionID, err)
	}

	if !answer.IsYes() || len(req.PhotoURLs) == 0 {
		return answer, 0, nil
	}

	existing, err := repos.photos.FindByAnswerID(ctx, answer.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("error fetching photos of answer %d: %w", answer.ID, err)
	}
	stored := make(map[string]bool, len(existing))
	for _, photo := range existing {
		stored[photo.PhotoURL] = true
	}
	var photos []model.Photo
	for _, url := range req.PhotoURLs {
		url = strings.TrimSpace(url)
		if stored[url] {
			continue
		}
		photos = append(photos, model.Photo{AnswerID: answer.ID, PhotoURL: url, IsNew: true})
	}
	if err := repos.photos.CreateBatch(ctx, photos); err != nil {
		return nil, 0, fmt.Errorf("failed to save photos for answer %d: %w", answer.ID, err)
	}
	log.Debug().Int("photos", len(photos)).Uint("answerID", answer.ID).Msg("Saved photos for answer")
	return answer, len(photos), nil
}

func (s *inspectionService) findInspection(ctx context.Context, inspectionID uint) (*model.Inspection, error) {
	inspection, err := s.inspectionRepo.FindByID(ctx, inspectionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn().Uint("inspectionID", inspectionID).Msg("Inspection not found")
			return nil, &NotFoundError{Resource: "Inspection", ID: inspectionID}
		}
		log.Error().Err(err).Uint("inspectionID", inspectionID).Msg("Failed to fetch inspection")
		return nil, fmt.Errorf("error fetching inspection %d: %w", inspectionID, err)
	}
	return inspection, nil
}

func (s *inspectionService) GetInspectionByID(ctx context.Context, inspectionID uint) (*dto.InspectionDetailDTO, error) {
	inspection, err := s.findInspection(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	count, err := s.answerRepo.CountByInspectionID(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("error counting answers of inspection %d: %w", inspectionID, err)
	}
	return &dto.InspectionDetailDTO{
		InspectionID:   inspection.ID,
		CarID:          inspection.CarID,
		Status:         string(inspection.Status),
		InspectionDate: inspection.InspectionDate,
		CreatedAt:      inspection.CreatedAt,
		AnswerCount:    count,
	}, nil
}

func (s *inspectionService) GetInspectionsByCarID(ctx context.Context, carID string) (*dto.CarInspectionHistoryDTO, error) {
	inspections, err := s.inspectionRepo.FindAllByCarID(ctx, carID)
	if err != nil {
		log.Error().Err(err).Str("carID", carID).Msg("GetInspectionsByCarID: repository error")
		return nil, fmt.Errorf("error fetching inspections for car %s: %w", carID, err)
	}
	history := &dto.CarInspectionHistoryDTO{
		CarID:            carID,
		TotalInspections: len(inspections),
		Inspections:      make([]dto.InspectionSummaryItemDTO, 0, len(inspections)),
	}
	for _, inspection := range inspections {
		history.Inspections = append(history.Inspections, dto.InspectionSummaryItemDTO{
			InspectionID:   inspection.ID,
			Status:         string(inspection.Status),
			InspectionDate: inspection.InspectionDate,
			CreatedAt:      inspection.CreatedAt,
		})
	}
	log.Debug().Str("carID", carID).Int("count", len(inspections)).Msg("Found inspections for car")
	return history, nil
}

// GetInspectionStats counts the answers by value and the photos by origin.
func (s *inspectionService) GetInspectionStats(ctx context.Context, inspectionID uint) (*dto.InspectionStatsDTO, error) {
	inspection, err := s.findInspection(ctx, inspectionID)
	if err != nil {
		return nil, err
	}
	counts, err := s.answerRepo.CountByInspectionGroupedByAnswer(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("error counting answers of inspection %d: %w", inspectionID, err)
	}
	photoStats, err := s.photoRepo.StatsByInspectionID(ctx, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("error counting photos of inspection %d: %w", inspectionID, err)
	}

	stats := &dto.InspectionStatsDTO{
		InspectionID:   inspection.ID,
		CarID:          inspection.CarID,
		Status:         string(inspection.Status),
		TotalPhotos:    photoStats.Total,
		NewPhotos:      photoStats.NewCount,
		PreviousPhotos: photoStats.PreviousCount,
	}
	for _, c := range counts {
		switch c.Answer {
		case model.AnswerYes:
			stats.YesAnswers = c.Count
		case model.AnswerNo:
			stats.NoAnswers = c.Count
		}
		stats.AnsweredQuestions += c.Count
	}
	return stats, nil
}
