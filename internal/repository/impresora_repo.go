package repository

import (
	"context"

	"moteldb/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImpresoraRepository interface {
	Create(ctx context.Context, i *model.Impresora) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Impresora, error)
	// FindDefecto returns the default printer, used by the receipt worker.
	FindDefecto(ctx context.Context) (*model.Impresora, error)
	List(ctx context.Context) ([]model.Impresora, error)
	Update(ctx context.Context, i *model.Impresora) error
	// ClearDefecto unsets the default flag on every printer; setting a new
	// default runs it first so at most one printer is the default.
	ClearDefecto(ctx context.Context) error
}

type impresoraRepo struct{ db *gorm.DB }

func NewImpresoraRepository(db *gorm.DB) ImpresoraRepository { return &impresoraRepo{db: db} }

func (r *impresoraRepo) Create(ctx context.Context, i *model.Impresora) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *impresoraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Impresora, error) {
	var i model.Impresora
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	return &i, err
}

func (r *impresoraRepo) FindDefecto(ctx context.Context) (*model.Impresora, error) {
	var i model.Impresora
	err := r.db.WithContext(ctx).Where("defecto = true AND activa = true").First(&i).Error
	return &i, err
}

func (r *impresoraRepo) List(ctx context.Context) ([]model.Impresora, error) {
	var impresoras []model.Impresora
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&impresoras).Error
	return impresoras, err
}

func (r *impresoraRepo) Update(ctx context.Context, i *model.Impresora) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *impresoraRepo) ClearDefecto(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&model.Impresora{}).
		Where("defecto = true").Update("defecto", false).Error
}
