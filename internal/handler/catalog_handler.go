package handler

import (
	"net/http"
	"strconv"

	"cloudshop/internal/catalog"
	"cloudshop/internal/model"
	"cloudshop/internal/pricing"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the server tier catalog and price quotes
type CatalogHandler struct {
	rates pricing.Rates
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(rates pricing.Rates) *CatalogHandler {
	return &CatalogHandler{rates: rates}
}

func (h *CatalogHandler) ListServers(c *gin.Context) {
	okData(c, catalog.Tiers())
}

func (h *CatalogHandler) GetServer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid server id")
		return
	}

	tier, ok := catalog.ByID(id)
	if !ok {
		fail(c, http.StatusNotFound, "server configuration not found")
		return
	}
	okData(c, tier)
}

func (h *CatalogHandler) Calculate(c *gin.Context) {
	var req model.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "cpu, memory, disk, bandwidth, ports and months are required")
		return
	}

	quote := pricing.Calculate(model.ServerConfig{
		CPU:       req.CPU,
		Memory:    req.Memory,
		Disk:      req.Disk,
		Bandwidth: req.Bandwidth,
		Ports:     req.Ports,
	}, req.Months, h.rates)
	okData(c, quote)
}

// RegisterCatalogRoutes registers the public catalog and quote routes
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET("/servers", h.ListServers)
	rg.GET("/servers/:id", h.GetServer)
	rg.POST("/calculate", h.Calculate)
}
