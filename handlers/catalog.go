package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	catalogRepo "dispatchly/database/repository/catalog"
	"dispatchly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the reference data the wizard steps select from.
// Company-wide lists (products, services, crew) are cached in Redis; per-
// customer lookups go straight to the database.
type CatalogHandler struct {
	Repo   catalogRepo.CatalogRepository
	Logger *zap.Logger
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Repo: repo, Logger: logger}
}

// SearchCustomers does a name search for the customer step's typeahead.
func (h *CatalogHandler) SearchCustomers(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "25"), 10, 64)

	customers, err := h.Repo.SearchCustomers(c.Request.Context(), query, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// GetContacts lists a customer's contacts.
func (h *CatalogHandler) GetContacts(c *gin.Context) {
	contacts, err := h.Repo.GetContacts(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to get contacts", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// GetServiceLocations lists a customer's saved service locations.
func (h *CatalogHandler) GetServiceLocations(c *gin.Context) {
	locations, err := h.Repo.GetServiceLocations(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to get service locations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// GetProducts lists the rentable product catalog.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	h.cachedList(c, "products", func(ctx context.Context) (interface{}, error) {
		return h.Repo.GetProducts(ctx)
	})
}

// GetUnits lists the trackable units of one product.
func (h *CatalogHandler) GetUnits(c *gin.Context) {
	units, err := h.Repo.GetUnits(c.Request.Context(), c.Param("productID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to get inventory units", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"units": units})
}

// GetServices lists the offerable services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	h.cachedList(c, "services", func(ctx context.Context) (interface{}, error) {
		return h.Repo.GetServices(ctx)
	})
}

// GetDrivers lists drivers for the crew step.
func (h *CatalogHandler) GetDrivers(c *gin.Context) {
	h.cachedList(c, "drivers", func(ctx context.Context) (interface{}, error) {
		return h.Repo.GetDrivers(ctx)
	})
}

// GetVehicles lists vehicles for the crew step.
func (h *CatalogHandler) GetVehicles(c *gin.Context) {
	h.cachedList(c, "vehicles", func(ctx context.Context) (interface{}, error) {
		return h.Repo.GetVehicles(ctx)
	})
}

// GetSettings returns the tenant-level defaults the wizard reads.
func (h *CatalogHandler) GetSettings(c *gin.Context) {
	settings, err := h.Repo.GetSettings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to get settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// cachedList serves a company-wide list through the Redis cache.
func (h *CatalogHandler) cachedList(c *gin.Context, name string, load func(ctx context.Context) (interface{}, error)) {
	ctx := c.Request.Context()
	cacheClient := utils.GetCacheClient()
	key := utils.CatalogCachePrefix + name

	if cacheClient != nil {
		if cached, err := cacheClient.Get(ctx, key).Result(); err == nil {
			var payload interface{}
			if json.Unmarshal([]byte(cached), &payload) == nil {
				c.JSON(http.StatusOK, gin.H{name: payload})
				return
			}
		}
	}

	list, err := load(ctx)
	if err != nil {
		h.Logger.Error("catalog lookup failed", zap.String("list", name), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to get "+name, err.Error())
		return
	}

	if cacheClient != nil {
		if data, merr := json.Marshal(list); merr == nil {
			_ = cacheClient.Set(ctx, key, data, utils.CatalogCacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, gin.H{name: list})
}
