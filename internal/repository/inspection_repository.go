package repository

import (
	"context"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"gorm.io/gorm"
)

type InspectionRepository interface {
	WithTx(tx *gorm.DB) InspectionRepository
	Create(ctx context.Context, inspection *model.Inspection) error
	Update(ctx context.Context, inspection *model.Inspection) error
	FindByID(ctx context.Context, id uint) (*model.Inspection, error)
	FindLatestByCarAndStatus(ctx context.Context, carID string, status model.InspectionStatus) (*model.Inspection, error)
	FindAllByCarID(ctx context.Context, carID string) ([]model.Inspection, error)
}

type inspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) WithTx(tx *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: tx}
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *model.Inspection) error {
	// Answers are written through AnswerRepository, never by association.
	return translate(r.db.WithContext(ctx).Omit("Answers").Create(inspection).Error)
}

func (r *inspectionRepository) Update(ctx context.Context, inspection *model.Inspection) error {
	return translate(r.db.WithContext(ctx).Omit("Answers").Save(inspection).Error)
}

func (r *inspectionRepository) FindByID(ctx context.Context, id uint) (*model.Inspection, error) {
	var inspection model.Inspection
	if err := r.db.WithContext(ctx).First(&inspection, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inspection, nil
}

// FindLatestByCarAndStatus returns the most recently created inspection of the car in
// the given status. Ties on created_at fall back to the higher id.
func (r *inspectionRepository) FindLatestByCarAndStatus(ctx context.Context, carID string, status model.InspectionStatus) (*model.Inspection, error) {
	var inspection model.Inspection
	err := r.db.WithContext(ctx).
		Where("car_id = ? AND status = ?", carID, status).
		Order("created_at DESC").
		Order("id DESC").
		First(&inspection).Error
	if err != nil {
		return nil, translate(err)
	}
	return &inspection, nil
}

func (r *inspectionRepository) FindAllByCarID(ctx context.Context, carID string) ([]model.Inspection, error) {
	var inspections []model.Inspection
	err := r.db.WithContext(ctx).
		Where("car_id = ?", carID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&inspections).Error
	return inspections, err
}
