package repository

import (
	"context"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"gorm.io/gorm"
)

// PhotoStats splits the photos of an inspection by their IsNew flag.
type PhotoStats struct {
	Total         int64
	NewCount      int64
	PreviousCount int64
}

type PhotoRepository interface {
	WithTx(tx *gorm.DB) PhotoRepository
	CreateBatch(ctx context.Context, photos []model.Photo) error
	FindByAnswerID(ctx context.Context, answerID uint) ([]model.Photo, error)
	StatsByInspectionID(ctx context.Context, inspectionID uint) (*PhotoStats, error)
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) WithTx(tx *gorm.DB) PhotoRepository {
	return &photoRepository{db: tx}
}

func (r *photoRepository) CreateBatch(ctx context.Context, photos []model.Photo) error {
	if len(photos) == 0 {
		return nil
	}
	return translate(r.db.WithContext(ctx).Create(&photos).Error)
}

func (r *photoRepository) FindByAnswerID(ctx context.Context, answerID uint) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).Where("answer_id = ?", answerID).Order("id ASC").Find(&photos).Error
	return photos, err
}

func (r *photoRepository) inspectionScope(ctx context.Context, inspectionID uint) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Photo{}).
		Joins("JOIN inspection_answers ON inspection_answers.id = inspection_photos.answer_id").
		Where("inspection_answers.inspection_id = ?", inspectionID)
}

func (r *photoRepository) StatsByInspectionID(ctx context.Context, inspectionID uint) (*PhotoStats, error) {
	var stats PhotoStats
	err := r.inspectionScope(ctx, inspectionID).
		Select("COUNT(*) AS total, " +
			"COALESCE(SUM(CASE WHEN inspection_photos.is_new THEN 1 ELSE 0 END), 0) AS new_count, " +
			"COALESCE(SUM(CASE WHEN inspection_photos.is_new THEN 0 ELSE 1 END), 0) AS previous_count").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
