package dto

import "github.com/shopspring/decimal"

// Checkout wire shapes. Field names mirror the existing front-desk client,
// which speaks camelCase on this endpoint.

type ServicioAdicionalRequest struct {
	ServicioID string `json:"serviceId" validate:"required,uuid"`
	Cantidad   int    `json:"quantity"  validate:"required,min=1"`
}

type CheckoutRequest struct {
	// ServiciosAdicionales are processed in the order supplied; lines whose
	// serviceId is unknown are skipped without error (documented behavior).
	ServiciosAdicionales []ServicioAdicionalRequest `json:"additionalServices" validate:"omitempty,dive"`
	MetodoPago           string                     `json:"paymentMethod"      validate:"required"`
}

type PagoResponse struct {
	ID     string          `json:"id"`
	Monto  decimal.Decimal `json:"monto"`
	Metodo string          `json:"metodo"`
	Fecha  string          `json:"fecha"`
}

type CheckoutResponse struct {
	ReservaID  string          `json:"reservationId"`
	TotalFinal decimal.Decimal `json:"finalTotal"`
	Pago       PagoResponse    `json:"payment"`
}
