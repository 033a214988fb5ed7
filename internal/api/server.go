package api

import (
	"github.com/gin-gonic/gin"

	"github.com/magicvilla/villa-api/internal/middleware"
	"github.com/magicvilla/villa-api/internal/service"
	"github.com/magicvilla/villa-api/pkg/logger"
)

type Server struct {
	villa      *VillaHandler
	requestID  *middleware.RequestIDMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	villaService *service.VillaService,
	requestID *middleware.RequestIDMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
) *Server {
	return &Server{
		villa:      NewVillaHandler(villaService, logger),
		requestID:  requestID,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

// SetupRoutes registers the villa operations on the given group. The
// group carries the fixed route prefix; paths here are the operation
// names of the public contract.
func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.requestID.Attach())
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max
	api.Use(s.validation.ValidateContentType("application/json", "application/json-patch+json"))
	api.Use(s.rateLimit.GlobalRateLimit())

	api.GET("/GetAllVilla", s.villa.GetAllVilla)
	api.GET("/GetVillaById/:id", s.villa.GetVillaById)
	api.POST("/CreateVillas", s.villa.CreateVillas)
	api.DELETE("/DeleteVilla/:id", s.villa.DeleteVilla)
	api.PUT("/UpdateVilla", s.villa.UpdateVilla)
	api.PATCH("/UpdatePartialVilla/:id", s.villa.UpdatePartialVilla)
}
