package repository

import (
	"context"

	"moteldb/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServicioRepository interface {
	Create(ctx context.Context, s *model.Servicio) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error)
	// FindByIDTx is the catalog price lookup used inside the checkout
	// transaction.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Servicio, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Servicio, error)
	List(ctx context.Context, incluirInactivos bool) ([]model.Servicio, error)
	Update(ctx context.Context, s *model.Servicio) error
}

type servicioRepo struct{ db *gorm.DB }

func NewServicioRepository(db *gorm.DB) ServicioRepository { return &servicioRepo{db: db} }

func (r *servicioRepo) Create(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *servicioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *servicioRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Servicio, error) {
	var s model.Servicio
	err := tx.First(&s, "id = ?", id).Error
	return &s, err
}

func (r *servicioRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Servicio, error) {
	var s model.Servicio
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&s).Error
	return &s, err
}

func (r *servicioRepo) List(ctx context.Context, incluirInactivos bool) ([]model.Servicio, error) {
	var servicios []model.Servicio
	q := r.db.WithContext(ctx).Model(&model.Servicio{})
	if !incluirInactivos {
		q = q.Where("activo = true")
	}
	err := q.Order("nombre ASC").Find(&servicios).Error
	return servicios, err
}

func (r *servicioRepo) Update(ctx context.Context, s *model.Servicio) error {
	return r.db.WithContext(ctx).Save(s).Error
}
