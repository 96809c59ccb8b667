package repository

import (
	"context"
	"time"

	"moteldb/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogoRepository groups the small fixed catalogs (stay types, VAT rates,
// payment methods, exchange rates) behind one interface — each is a handful of
// rows with identical access patterns.
type CatalogoRepository interface {
	CreateTipoEstadia(ctx context.Context, t *model.TipoEstadia) error
	FindTipoEstadiaPorCodigo(ctx context.Context, codigo string) (*model.TipoEstadia, error)
	ListTiposEstadia(ctx context.Context) ([]model.TipoEstadia, error)
	UpdateTipoEstadia(ctx context.Context, t *model.TipoEstadia) error

	CreateTipoIVA(ctx context.Context, t *model.TipoIVA) error
	ListTiposIVA(ctx context.Context) ([]model.TipoIVA, error)
	UpdateTipoIVA(ctx context.Context, t *model.TipoIVA) error

	CreateMetodoPago(ctx context.Context, m *model.MetodoPago) error
	FindMetodoPagoPorCodigo(ctx context.Context, codigo string) (*model.MetodoPago, error)
	ListMetodosPago(ctx context.Context) ([]model.MetodoPago, error)
	UpdateMetodoPago(ctx context.Context, m *model.MetodoPago) error

	CreateTipoCambio(ctx context.Context, t *model.TipoCambio) error
	FindTipoCambio(ctx context.Context, moneda string, fecha time.Time) (*model.TipoCambio, error)
	ListTiposCambio(ctx context.Context, moneda string) ([]model.TipoCambio, error)

	FindPorID(ctx context.Context, dest interface{}, id uuid.UUID) error
}

type catalogoRepo struct{ db *gorm.DB }

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository { return &catalogoRepo{db: db} }

func (r *catalogoRepo) CreateTipoEstadia(ctx context.Context, t *model.TipoEstadia) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *catalogoRepo) FindTipoEstadiaPorCodigo(ctx context.Context, codigo string) (*model.TipoEstadia, error) {
	var t model.TipoEstadia
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&t).Error
	return &t, err
}

func (r *catalogoRepo) ListTiposEstadia(ctx context.Context) ([]model.TipoEstadia, error) {
	var tipos []model.TipoEstadia
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&tipos).Error
	return tipos, err
}

func (r *catalogoRepo) UpdateTipoEstadia(ctx context.Context, t *model.TipoEstadia) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *catalogoRepo) CreateTipoIVA(ctx context.Context, t *model.TipoIVA) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *catalogoRepo) ListTiposIVA(ctx context.Context) ([]model.TipoIVA, error) {
	var tipos []model.TipoIVA
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&tipos).Error
	return tipos, err
}

func (r *catalogoRepo) UpdateTipoIVA(ctx context.Context, t *model.TipoIVA) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *catalogoRepo) CreateMetodoPago(ctx context.Context, m *model.MetodoPago) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *catalogoRepo) FindMetodoPagoPorCodigo(ctx context.Context, codigo string) (*model.MetodoPago, error) {
	var m model.MetodoPago
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&m).Error
	return &m, err
}

func (r *catalogoRepo) ListMetodosPago(ctx context.Context) ([]model.MetodoPago, error) {
	var metodos []model.MetodoPago
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&metodos).Error
	return metodos, err
}

func (r *catalogoRepo) UpdateMetodoPago(ctx context.Context, m *model.MetodoPago) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *catalogoRepo) CreateTipoCambio(ctx context.Context, t *model.TipoCambio) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *catalogoRepo) FindTipoCambio(ctx context.Context, moneda string, fecha time.Time) (*model.TipoCambio, error) {
	var t model.TipoCambio
	err := r.db.WithContext(ctx).
		Where("moneda = ? AND fecha <= ?", moneda, fecha).
		Order("fecha DESC").
		First(&t).Error
	return &t, err
}

func (r *catalogoRepo) ListTiposCambio(ctx context.Context, moneda string) ([]model.TipoCambio, error) {
	var tipos []model.TipoCambio
	q := r.db.WithContext(ctx).Model(&model.TipoCambio{})
	if moneda != "" {
		q = q.Where("moneda = ?", moneda)
	}
	err := q.Order("fecha DESC").Limit(90).Find(&tipos).Error
	return tipos, err
}

func (r *catalogoRepo) FindPorID(ctx context.Context, dest interface{}, id uuid.UUID) error {
	return r.db.WithContext(ctx).First(dest, "id = ?", id).Error
}
