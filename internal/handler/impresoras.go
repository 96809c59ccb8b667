package handler

import (
	"net/http"

	"moteldb/internal/apierror"
	"moteldb/internal/dto"
	"moteldb/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ImpresorasHandler struct{ svc service.ImpresoraService }

func NewImpresorasHandler(svc service.ImpresoraService) *ImpresorasHandler {
	return &ImpresorasHandler{svc: svc}
}

func (h *ImpresorasHandler) Crear(c *gin.Context) {
	var req dto.CrearImpresoraRequest
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

func (h *ImpresorasHandler) ObtenerPorID(c *gin.Context) {
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

func (h *ImpresorasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ImpresorasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	var req dto.ActualizarImpresoraRequest
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

// MarcarDefecto sets a printer as the default. At most one printer holds
// the flag at any time.
func (h *ImpresorasHandler) MarcarDefecto(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewBody("ID invalido"))
		return
	}
	resp, err := h.svc.MarcarDefecto(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
