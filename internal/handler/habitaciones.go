package handler

import (
	"net/http"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HabitacionesHandler struct{ svc service.HabitacionService }

func NewHabitacionesHandler(svc service.HabitacionService) *HabitacionesHandler {
	return &HabitacionesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear habitacion
// @Description  Registra una habitacion. El numero es unico; el chequeo corre dentro de la misma transaccion que el alta.
// @Tags         habitaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearHabitacionRequest true "Datos de la habitacion"
// @Success      201 {object} dto.HabitacionResponse
// @Failure      400 {object} apierror.ErrorBody
// @Router       /v1/habitaciones [post]
func (h *HabitacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearHabitacionRequest
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

func (h *HabitacionesHandler) ObtenerPorID(c *gin.Context) {
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

func (h *HabitacionesHandler) Listar(c *gin.Context) {
	var filter dto.HabitacionFilter
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

func (h *HabitacionesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	var req dto.ActualizarHabitacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HabitacionesHandler) Desactivar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
