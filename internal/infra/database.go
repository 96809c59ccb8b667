package infra

import (
	"fmt"

	"moteldb/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate.
// The returned *gorm.DB owns the single shared pool for the process; it is
// injected into every repository from the composition root — no package-level
// globals hold a handle.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Habitacion{},
		&model.Cliente{},
		&model.Servicio{},
		&model.TipoEstadia{},
		&model.TipoIVA{},
		&model.MetodoPago{},
		&model.TipoCambio{},
		&model.Impresora{},
		&model.Jornada{},
		&model.JornadaAbierta{},
		&model.Reserva{},
		&model.ReservaServicio{},
		&model.Pago{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := normalizarEstadosJornada(db); err != nil {
		return nil, fmt.Errorf("normalizar estados jornada: %w", err)
	}

	return db, nil
}

// normalizarEstadosJornada rewrites historical free-text estados in
// jornadas_abiertas ("cerrado", "Cancelada", "FINALIZADO", ...) into the
// Abierta/Cerrada enumeration. Idempotent; runs on every startup.
func normalizarEstadosJornada(db *gorm.DB) error {
	return db.Exec(`
		UPDATE jornada_abiertas
		   SET estado = 'Cerrada'
		 WHERE LOWER(TRIM(estado)) IN
		       ('cerrada','cerrado','cancelada','cancelado','finalizada','finalizado')
		   AND estado <> 'Cerrada'`).Error
}
