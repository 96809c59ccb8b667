package handler

import (
	"net/http"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/middleware"
	"moteldb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JornadasHandler struct{ svc service.JornadaService }

func NewJornadasHandler(svc service.JornadaService) *JornadasHandler {
	return &JornadasHandler{svc: svc}
}

// EstadoActual godoc
// @Summary      Consultar jornada activa
// @Description  Indica si hay una jornada abierta. El front deshabilita cobros cuando no la hay.
// @Tags         jornadas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.JornadaActivaResponse
// @Failure      500 {object} apierror.ErrorBody
// @Router       /v1/jornadas/activa [get]
func (h *JornadasHandler) EstadoActual(c *gin.Context) {
	resp, err := h.svc.EstadoActual(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Abrir godoc
// @Summary      Abrir jornada
// @Description  Abre una jornada de trabajo. A lo sumo una jornada abierta a la vez.
// @Tags         jornadas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AbrirJornadaRequest true "Jornada a abrir"
// @Success      201 {object} dto.JornadaAbiertaResponse
// @Failure      400 {object} apierror.ErrorBody
// @Router       /v1/jornadas/abrir [post]
func (h *JornadasHandler) Abrir(c *gin.Context) {
	var req dto.AbrirJornadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, _ := uuid.Parse(claims.UserID)

	resp, err := h.svc.Abrir(c.Request.Context(), usuarioID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Cerrar godoc
// @Summary      Cerrar jornada
// @Description  Cierra la jornada abierta y devuelve el resumen de cobros por metodo de pago.
// @Tags         jornadas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                  true "UUID de la jornada abierta"
// @Param        body body dto.CerrarJornadaRequest true "Observaciones"
// @Success      200 {object} dto.ResumenJornadaResponse
// @Failure      400 {object} apierror.ErrorBody
// @Router       /v1/jornadas/{id}/cerrar [post]
func (h *JornadasHandler) Cerrar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	var req dto.CerrarJornadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cerrar(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Definiciones de jornada (catalogo) ───────────────────────────────────────

func (h *JornadasHandler) CrearDefinicion(c *gin.Context) {
	var req dto.CrearJornadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearDefinicion(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JornadasHandler) ListarDefiniciones(c *gin.Context) {
	resp, err := h.svc.ListarDefiniciones(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JornadasHandler) ActualizarDefinicion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	var req dto.ActualizarJornadaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarDefinicion(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
