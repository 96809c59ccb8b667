package repository

import (
	"context"

	"moteldb/internal/dto"
	"moteldb/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservaRepository interface {
	CreateTx(tx *gorm.DB, r *model.Reserva) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error)
	// FindByIDForUpdateTx takes a SELECT ... FOR UPDATE row lock so two
	// concurrent checkouts of the same reservation serialize on the store.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Reserva, error)
	UpdateTx(tx *gorm.DB, r *model.Reserva) error
	CreateServicioTx(tx *gorm.DB, s *model.ReservaServicio) error
	CreatePagoTx(tx *gorm.DB, p *model.Pago) error
	FindActivaPorHabitacion(ctx context.Context, habitacionID uuid.UUID) (*model.Reserva, error)
	List(ctx context.Context, filter dto.ReservaFilter) ([]model.Reserva, int64, error)
	DB() *gorm.DB
}

type reservaRepo struct{ db *gorm.DB }

func NewReservaRepository(db *gorm.DB) ReservaRepository { return &reservaRepo{db: db} }

func (r *reservaRepo) DB() *gorm.DB { return r.db }

func (r *reservaRepo) CreateTx(tx *gorm.DB, res *model.Reserva) error {
	return tx.Create(res).Error
}

func (r *reservaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).
		Preload("Habitacion").Preload("Cliente").
		Preload("Servicios").Preload("Servicios.Servicio").Preload("Pagos").
		First(&res, "id = ?", id).Error
	return &res, err
}

func (r *reservaRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Reserva, error) {
	var res model.Reserva
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&res, "id = ?", id).Error
	return &res, err
}

func (r *reservaRepo) UpdateTx(tx *gorm.DB, res *model.Reserva) error {
	return tx.Save(res).Error
}

func (r *reservaRepo) CreateServicioTx(tx *gorm.DB, s *model.ReservaServicio) error {
	return tx.Create(s).Error
}

func (r *reservaRepo) CreatePagoTx(tx *gorm.DB, p *model.Pago) error {
	return tx.Create(p).Error
}

func (r *reservaRepo) FindActivaPorHabitacion(ctx context.Context, habitacionID uuid.UUID) (*model.Reserva, error) {
	var res model.Reserva
	err := r.db.WithContext(ctx).
		Where("habitacion_id = ? AND estado = ?", habitacionID, model.ReservaActiva).
		First(&res).Error
	return &res, err
}

func (r *reservaRepo) List(ctx context.Context, filter dto.ReservaFilter) ([]model.Reserva, int64, error) {
	var reservas []model.Reserva
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Reserva{})
	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(check_in) = ?", filter.Fecha)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Habitacion").Preload("Cliente").Preload("Servicios").
		Order("check_in DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&reservas).Error
	return reservas, total, err
}
