package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/magicvilla/villa-api/internal/api/dto"
	"github.com/magicvilla/villa-api/internal/patch"
	"github.com/magicvilla/villa-api/internal/service"
	"github.com/magicvilla/villa-api/internal/utils"
	"github.com/magicvilla/villa-api/pkg/logger"
)

//go:generate mockery --name VillaService --output ../mocks
type VillaService interface {
	List(ctx context.Context) ([]dto.VillaDTO, error)
	GetByID(ctx context.Context, id int) (*dto.VillaDTO, error)
	CreateMany(ctx context.Context, villas []dto.VillaDTO) (*dto.CreateVillasResponse, error)
	Update(ctx context.Context, villa dto.VillaDTO) error
	PartialUpdate(ctx context.Context, id int, doc patch.Document) error
	Delete(ctx context.Context, id int) error
}

type VillaHandler struct {
	*BaseHandler
	service VillaService
	logger  *logger.Logger
}

func NewVillaHandler(service VillaService, logger *logger.Logger) *VillaHandler {
	return &VillaHandler{service: service, logger: logger}
}

// GetAllVilla returns every stored villa; an empty store yields an empty
// array, not an error.
func (h *VillaHandler) GetAllVilla(c *gin.Context) {
	ctx := h.RequestCtx(c)
	h.logger.Info("Getting all villas", zap.String("request_id", utils.GetRequestIDFromContext(ctx)))

	villas, err := h.service.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, villas)
}

func (h *VillaHandler) GetVillaById(c *gin.Context) {
	id, ok := h.villaID(c)
	if !ok {
		return
	}

	villa, err := h.service.GetByID(h.RequestCtx(c), id)
	if errors.Is(err, service.ErrVillaNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Villa not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, villa)
}

// CreateVillas takes an array of villas and answers 200 with the
// created/existing split even when every name already exists.
func (h *VillaHandler) CreateVillas(c *gin.Context) {
	var villas []dto.VillaDTO
	if err := c.ShouldBindJSON(&villas); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if villas == nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "request body is required"})
		return
	}

	resp, err := h.service.CreateMany(h.RequestCtx(c), villas)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *VillaHandler) DeleteVilla(c *gin.Context) {
	id, ok := h.villaID(c)
	if !ok {
		return
	}

	err := h.service.Delete(h.RequestCtx(c), id)
	if errors.Is(err, service.ErrVillaNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Villa not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VillaHandler) UpdateVilla(c *gin.Context) {
	var villa dto.VillaDTO
	if err := c.ShouldBindJSON(&villa); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if villa.Id == 0 {
		h.logger.Warn("Rejecting villa update without an id")
		c.JSON(http.StatusBadRequest, dto.Error{Error: "villa id is required"})
		return
	}

	err := h.service.Update(h.RequestCtx(c), villa)
	if errors.Is(err, service.ErrVillaNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Villa not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VillaHandler) UpdatePartialVilla(c *gin.Context) {
	id, ok := h.villaID(c)
	if !ok {
		return
	}

	var doc patch.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if doc == nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "patch document is required"})
		return
	}

	err := h.service.PartialUpdate(h.RequestCtx(c), id, doc)
	if errors.Is(err, service.ErrVillaNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: "Villa not found"})
		return
	}
	if errors.Is(err, service.ErrValidation) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// villaID parses the id path parameter; zero or unparsable ids are
// rejected before any store access.
func (h *VillaHandler) villaID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		h.logger.Warn("Invalid villa id", zap.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, dto.Error{Error: "invalid villa id"})
		return 0, false
	}
	return id, true
}
