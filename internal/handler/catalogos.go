package handler

import (
	"net/http"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogosHandler serves the sellable-service catalog and the fixed
// catalogs (stay types, VAT rates, payment methods, exchange rates).
type CatalogosHandler struct{ svc service.CatalogoService }

func NewCatalogosHandler(svc service.CatalogoService) *CatalogosHandler {
	return &CatalogosHandler{svc: svc}
}

// ── Servicios ────────────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearServicio(c *gin.Context) {
	var req dto.CrearServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearServicio(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ObtenerServicio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerServicio(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) ListarServicios(c *gin.Context) {
	incluirInactivos := c.Query("incluir_inactivos") == "true"
	resp, err := h.svc.ListarServicios(c.Request.Context(), incluirInactivos)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogosHandler) ActualizarServicio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	var req dto.ActualizarServicioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarServicio(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Tipos de estadía ─────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearTipoEstadia(c *gin.Context) {
	var req dto.CrearTipoEstadiaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTipoEstadia(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarTiposEstadia(c *gin.Context) {
	resp, err := h.svc.ListarTiposEstadia(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Tipos de IVA ─────────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearTipoIVA(c *gin.Context) {
	var req dto.CrearTipoIVARequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTipoIVA(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarTiposIVA(c *gin.Context) {
	resp, err := h.svc.ListarTiposIVA(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Métodos de pago ──────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearMetodoPago(c *gin.Context) {
	var req dto.CrearMetodoPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearMetodoPago(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarMetodosPago(c *gin.Context) {
	resp, err := h.svc.ListarMetodosPago(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Tipos de cambio ──────────────────────────────────────────────────────────

func (h *CatalogosHandler) CrearTipoCambio(c *gin.Context) {
	var req dto.CrearTipoCambioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearTipoCambio(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogosHandler) ListarTiposCambio(c *gin.Context) {
	resp, err := h.svc.ListarTiposCambio(c.Request.Context(), c.Query("moneda"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
