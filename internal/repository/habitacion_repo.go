package repository

import (
	"context"

	"moteldb/internal/dto"
	"moteldb/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitacionRepository interface {
	Create(ctx context.Context, h *model.Habitacion) error
	// CreateTx inserts inside tx so the duplicate-numero check and the insert
	// share one transaction.
	CreateTx(tx *gorm.DB, h *model.Habitacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Habitacion, error)
	FindByNumero(ctx context.Context, numero int) (*model.Habitacion, error)
	FindByNumeroTx(tx *gorm.DB, numero int) (*model.Habitacion, error)
	List(ctx context.Context, filter dto.HabitacionFilter) ([]model.Habitacion, error)
	Update(ctx context.Context, h *model.Habitacion) error
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	DB() *gorm.DB
}

type habitacionRepo struct{ db *gorm.DB }

func NewHabitacionRepository(db *gorm.DB) HabitacionRepository { return &habitacionRepo{db: db} }

func (r *habitacionRepo) DB() *gorm.DB { return r.db }

func (r *habitacionRepo) Create(ctx context.Context, h *model.Habitacion) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *habitacionRepo) CreateTx(tx *gorm.DB, h *model.Habitacion) error {
	return tx.Create(h).Error
}

func (r *habitacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Habitacion, error) {
	var h model.Habitacion
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	return &h, err
}

func (r *habitacionRepo) FindByNumero(ctx context.Context, numero int) (*model.Habitacion, error) {
	var h model.Habitacion
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&h).Error
	return &h, err
}

func (r *habitacionRepo) FindByNumeroTx(tx *gorm.DB, numero int) (*model.Habitacion, error) {
	var h model.Habitacion
	err := tx.Where("numero = ?", numero).First(&h).Error
	return &h, err
}

func (r *habitacionRepo) List(ctx context.Context, filter dto.HabitacionFilter) ([]model.Habitacion, error) {
	var habitaciones []model.Habitacion
	q := r.db.WithContext(ctx).Model(&model.Habitacion{})
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Activa != nil {
		q = q.Where("activa = ?", *filter.Activa)
	}
	err := q.Order("numero ASC").Find(&habitaciones).Error
	return habitaciones, err
}

func (r *habitacionRepo) Update(ctx context.Context, h *model.Habitacion) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *habitacionRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Habitacion{}).Where("id = ?", id).Update("estado", estado).Error
}
