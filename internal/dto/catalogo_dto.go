package dto

import "github.com/shopspring/decimal"

// ─── Servicios ───────────────────────────────────────────────────────────────

type CrearServicioRequest struct {
	Codigo      string          `json:"codigo"      validate:"required,min=2,max=10"`
	Nombre      string          `json:"nombre"      validate:"required"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"      validate:"required"`
	TipoIVAID   *string         `json:"tipo_iva_id" validate:"omitempty,uuid"`
}

type ActualizarServicioRequest struct {
	Nombre      *string          `json:"nombre"`
	Descripcion *string          `json:"descripcion"`
	Precio      *decimal.Decimal `json:"precio"`
	Activo      *bool            `json:"activo"`
}

type ServicioResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Activo      bool            `json:"activo"`
}

// ─── Tipos de estadía ────────────────────────────────────────────────────────

type CrearTipoEstadiaRequest struct {
	Codigo  string `json:"codigo"   validate:"required,min=2,max=10"`
	Nombre  string `json:"nombre"   validate:"required"`
	PorHora bool   `json:"por_hora"`
}

type TipoEstadiaResponse struct {
	ID      string `json:"id"`
	Codigo  string `json:"codigo"`
	Nombre  string `json:"nombre"`
	PorHora bool   `json:"por_hora"`
	Activo  bool   `json:"activo"`
}

// ─── Tipos de IVA ────────────────────────────────────────────────────────────

type CrearTipoIVARequest struct {
	Codigo   string          `json:"codigo"   validate:"required,min=1,max=10"`
	Nombre   string          `json:"nombre"   validate:"required"`
	Alicuota decimal.Decimal `json:"alicuota" validate:"required"`
}

type TipoIVAResponse struct {
	ID       string          `json:"id"`
	Codigo   string          `json:"codigo"`
	Nombre   string          `json:"nombre"`
	Alicuota decimal.Decimal `json:"alicuota"`
	Activo   bool            `json:"activo"`
}

// ─── Métodos de pago ─────────────────────────────────────────────────────────

type CrearMetodoPagoRequest struct {
	Codigo string `json:"codigo" validate:"required,min=2,max=10"`
	Nombre string `json:"nombre" validate:"required"`
}

type MetodoPagoResponse struct {
	ID     string `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}

// ─── Tipos de cambio ─────────────────────────────────────────────────────────

type CrearTipoCambioRequest struct {
	Moneda string          `json:"moneda" validate:"required,len=3"`
	Cambio decimal.Decimal `json:"cambio" validate:"required"`
	Fecha  string          `json:"fecha"  validate:"required,datetime=2006-01-02"`
}

type TipoCambioResponse struct {
	ID     string          `json:"id"`
	Moneda string          `json:"moneda"`
	Cambio decimal.Decimal `json:"cambio"`
	Fecha  string          `json:"fecha"`
}
