package repository

import (
	"context"

	"moteldb/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// estadosCerrados are the closed-equivalent estado spellings found in
// historical data. Mirrors model.NormalizarEstadoJornada; the SQL filter and
// the Go normalization must stay in sync.
var estadosCerrados = []string{"cerrada", "cerrado", "cancelada", "cancelado", "finalizada", "finalizado"}

type JornadaRepository interface {
	// Definitions
	CreateDefinicion(ctx context.Context, j *model.Jornada) error
	FindDefinicionByID(ctx context.Context, id uuid.UUID) (*model.Jornada, error)
	ListDefiniciones(ctx context.Context) ([]model.Jornada, error)
	UpdateDefinicion(ctx context.Context, j *model.Jornada) error

	// Occurrences
	CreateAbierta(ctx context.Context, j *model.JornadaAbierta) error
	FindAbiertaByID(ctx context.Context, id uuid.UUID) (*model.JornadaAbierta, error)
	// FindUltimaAbierta returns the open occurrence with the highest
	// secuencia, or gorm.ErrRecordNotFound when none is open.
	FindUltimaAbierta(ctx context.Context) (*model.JornadaAbierta, error)
	UpdateAbierta(ctx context.Context, j *model.JornadaAbierta) error
	// SumPagosPorMetodo aggregates payments taken between the jornada's
	// apertura and now, grouped by metodo.
	SumPagosPorMetodo(ctx context.Context, j *model.JornadaAbierta) (map[string]decimal.Decimal, int64, error)
}

type jornadaRepo struct{ db *gorm.DB }

func NewJornadaRepository(db *gorm.DB) JornadaRepository { return &jornadaRepo{db: db} }

func (r *jornadaRepo) CreateDefinicion(ctx context.Context, j *model.Jornada) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jornadaRepo) FindDefinicionByID(ctx context.Context, id uuid.UUID) (*model.Jornada, error) {
	var j model.Jornada
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	return &j, err
}

func (r *jornadaRepo) ListDefiniciones(ctx context.Context) ([]model.Jornada, error) {
	var jornadas []model.Jornada
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&jornadas).Error
	return jornadas, err
}

func (r *jornadaRepo) UpdateDefinicion(ctx context.Context, j *model.Jornada) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jornadaRepo) CreateAbierta(ctx context.Context, j *model.JornadaAbierta) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jornadaRepo) FindAbiertaByID(ctx context.Context, id uuid.UUID) (*model.JornadaAbierta, error) {
	var j model.JornadaAbierta
	err := r.db.WithContext(ctx).Preload("Jornada").First(&j, "id = ?", id).Error
	return &j, err
}

func (r *jornadaRepo) FindUltimaAbierta(ctx context.Context) (*model.JornadaAbierta, error) {
	var j model.JornadaAbierta
	err := r.db.WithContext(ctx).Preload("Jornada").
		Where("LOWER(TRIM(estado)) NOT IN ?", estadosCerrados).
		Order("secuencia DESC").
		First(&j).Error
	return &j, err
}

func (r *jornadaRepo) UpdateAbierta(ctx context.Context, j *model.JornadaAbierta) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jornadaRepo) SumPagosPorMetodo(ctx context.Context, j *model.JornadaAbierta) (map[string]decimal.Decimal, int64, error) {
	type fila struct {
		Metodo string
		Total  decimal.Decimal
		N      int64
	}
	var filas []fila
	err := r.db.WithContext(ctx).Model(&model.Pago{}).
		Select("metodo, SUM(monto) AS total, COUNT(*) AS n").
		Where("fecha >= ?", j.Apertura).
		Group("metodo").
		Scan(&filas).Error
	if err != nil {
		return nil, 0, err
	}
	sums := make(map[string]decimal.Decimal, len(filas))
	var pagos int64
	for _, f := range filas {
		sums[f.Metodo] = f.Total
		pagos += f.N
	}
	return sums, pagos, nil
}
