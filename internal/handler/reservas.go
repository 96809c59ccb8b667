package handler

import (
	"net/http"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservasHandler struct{ svc service.ReservaService }

func NewReservasHandler(svc service.ReservaService) *ReservasHandler {
	return &ReservasHandler{svc: svc}
}

// Checkout godoc
// @Summary      Cerrar una reserva (checkout)
// @Description  Calcula el total final (base + servicios adicionales), registra el pago y deja la habitacion en limpieza. Requiere jornada abierta. Todo-o-nada.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string              true "UUID de la reserva"
// @Param        body body dto.CheckoutRequest true "Servicios adicionales y metodo de pago"
// @Success      200  {object} apierror.SuccessBody{data=dto.CheckoutResponse}
// @Failure      400  {object} apierror.ErrorBody
// @Failure      403  {object} apierror.ErrorBody
// @Failure      404  {object} apierror.ErrorBody
// @Router       /v1/reservas/{id}/checkout [post]
func (h *ReservasHandler) Checkout(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, apierror.NewSuccess(resp))
}

// Crear godoc
// @Summary      Registrar check-in
// @Description  Crea una reserva sobre una habitacion disponible y la marca ocupada. Registra al cliente si su documento no existe.
// @Tags         reservas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearReservaRequest true "Datos del check-in"
// @Success      201  {object} dto.ReservaResponse
// @Failure      400  {object} apierror.ErrorBody
// @Router       /v1/reservas [post]
func (h *ReservasHandler) Crear(c *gin.Context) {
	var req dto.CrearReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReservasHandler) Cancelar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservasHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar returns a paginated, filtered list of reservations.
func (h *ReservasHandler) Listar(c *gin.Context) {
	var filter dto.ReservaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
