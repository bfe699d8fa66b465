package repository

import (
	"context"
	"strings"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	WithTx(tx *gorm.DB) QuestionRepository
	Create(ctx context.Context, question *model.Question) error
	Update(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindAllActive(ctx context.Context) ([]model.Question, error)
	FindAll(ctx context.Context) ([]model.Question, error)
	FindActiveByTextContaining(ctx context.Context, text string) ([]model.Question, error)
	FindByOrderIndex(ctx context.Context, orderIndex int) (*model.Question, error)
	MaxOrderIndex(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int64, error)
	ShiftActiveOrderIndexes(ctx context.Context, from, to, delta int) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) WithTx(tx *gorm.DB) QuestionRepository {
	return &questionRepository{db: tx}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Create(question).Error)
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Save(question).Error)
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindAllActive(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Order("order_index ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindActiveByTextContaining(ctx context.Context, text string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND LOWER(question_text) LIKE ?", true, "%"+strings.ToLower(text)+"%").
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByOrderIndex(ctx context.Context, orderIndex int) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Where("order_index = ?", orderIndex).First(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) MaxOrderIndex(ctx context.Context) (int, error) {
	var max int
	err := r.db.WithContext(ctx).Model(&model.Question{}).Select("COALESCE(MAX(order_index), 0)").Scan(&max).Error
	return max, err
}

func (r *questionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// ShiftActiveOrderIndexes adds delta to the order index of every active question whose
// index lies in [from, to]. The shift goes through negative values so the unique index
// on order_index never sees two rows with the same value.
func (r *questionRepository) ShiftActiveOrderIndexes(ctx context.Context, from, to, delta int) error {
	db := r.db.WithContext(ctx)
	err := db.Model(&model.Question{}).
		Where("is_active = ? AND order_index BETWEEN ? AND ?", true, from, to).
		Update("order_index", gorm.Expr("-(order_index + ?)", delta)).Error
	if err != nil {
		return translate(err)
	}
	return translate(db.Model(&model.Question{}).
		Where("order_index < 0").
		Update("order_index", gorm.Expr("-order_index")).Error)
}
