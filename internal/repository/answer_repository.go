package repository

import (
	"context"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"gorm.io/gorm"
)

// AnswerCount is one row of the per-value answer statistics of an inspection.
type AnswerCount struct {
	Answer model.AnswerType
	Count  int64
}

type AnswerRepository interface {
	WithTx(tx *gorm.DB) AnswerRepository
	Create(ctx context.Context, answer *model.Answer) error
	Update(ctx context.Context, answer *model.Answer) error
	FindByInspectionAndQuestion(ctx context.Context, inspectionID, questionID uint) (*model.Answer, error)
	FindByInspectionIDWithPhotos(ctx context.Context, inspectionID uint) ([]model.Answer, error)
	CountByInspectionID(ctx context.Context, inspectionID uint) (int64, error)
	CountByInspectionGroupedByAnswer(ctx context.Context, inspectionID uint) ([]AnswerCount, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) WithTx(tx *gorm.DB) AnswerRepository {
	return &answerRepository{db: tx}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return translate(r.db.WithContext(ctx).Omit("Question", "Photos").Create(answer).Error)
}

func (r *answerRepository) Update(ctx context.Context, answer *model.Answer) error {
	return translate(r.db.WithContext(ctx).Omit("Question", "Photos").Save(answer).Error)
}

func (r *answerRepository) FindByInspectionAndQuestion(ctx context.Context, inspectionID, questionID uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.db.WithContext(ctx).
		Where("inspection_id = ? AND question_id = ?", inspectionID, questionID).
		First(&answer).Error
	if err != nil {
		return nil, translate(err)
	}
	return &answer, nil
}

func (r *answerRepository) FindByInspectionIDWithPhotos(ctx context.Context, inspectionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("inspection_photos.id ASC")
		}).
		Where("inspection_id = ?", inspectionID).
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *answerRepository) CountByInspectionID(ctx context.Context, inspectionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Answer{}).Where("inspection_id = ?", inspectionID).Count(&count).Error
	return count, err
}

func (r *answerRepository) CountByInspectionGroupedByAnswer(ctx context.Context, inspectionID uint) ([]AnswerCount, error) {
	var rows []AnswerCount
	err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Select("answer, COUNT(*) AS count").
		Where("inspection_id = ?", inspectionID).
		Group("answer").
		Scan(&rows).Error
	return rows, err
}
