package repository

import (
	"context"

	"moteldb/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository runs the aggregate reads behind the front-desk panel.
// Every call goes to the store — no caching, the store is the only
// consistency authority.
type DashboardRepository interface {
	CountHabitacionesPorEstado(ctx context.Context) (map[string]int64, error)
	CountReservasHoy(ctx context.Context) (int64, error)
	CountReservasActivas(ctx context.Context) (int64, error)
	SumPagosHoy(ctx context.Context) (decimal.Decimal, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) CountHabitacionesPorEstado(ctx context.Context) (map[string]int64, error) {
	type fila struct {
		Estado string
		N      int64
	}
	var filas []fila
	err := r.db.WithContext(ctx).Model(&model.Habitacion{}).
		Select("estado, COUNT(*) AS n").
		Where("activa = true").
		Group("estado").
		Scan(&filas).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(filas))
	for _, f := range filas {
		counts[f.Estado] = f.N
	}
	return counts, nil
}

func (r *dashboardRepo) CountReservasHoy(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reserva{}).
		Where("DATE(check_in) = CURRENT_DATE").
		Count(&n).Error
	return n, err
}

func (r *dashboardRepo) CountReservasActivas(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Reserva{}).
		Where("estado = ?", model.ReservaActiva).
		Count(&n).Error
	return n, err
}

func (r *dashboardRepo) SumPagosHoy(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Pago{}).
		Select("SUM(monto)").
		Where("DATE(fecha) = CURRENT_DATE").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
