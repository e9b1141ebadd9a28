package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samridhisinghh987188/saas-contract-dashboard/pkg/logger"
	"github.com/samridhisinghh987188/saas-contract-dashboard/service"
)

type ContractHandler struct {
	store           *service.ContractStore
	defaultPageSize int
}

func NewContractHandler(store *service.ContractStore, defaultPageSize int) *ContractHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = service.DefaultPageSize
	}
	return &ContractHandler{store: store, defaultPageSize: defaultPageSize}
}

// List returns contract summaries. Without query parameters the full
// list is returned in store order; search/status/risk/page/page_size
// run the filter engine server-side, with totals reported in headers.
func (h *ContractHandler) List(c *gin.Context) {
	contracts, err := h.store.List(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "failed to list contracts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contracts"})
		return
	}

	criteria := service.Criteria{
		Search: c.Query("search"),
		Status: c.DefaultQuery("status", service.FilterAll),
		Risk:   c.DefaultQuery("risk", service.FilterAll),
	}

	if !h.hasFilterParams(c) {
		c.JSON(http.StatusOK, contracts)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	if pageSize <= 0 {
		pageSize = h.defaultPageSize
	}

	result := service.Apply(contracts, criteria, page, pageSize)

	c.Header("X-Total-Count", strconv.Itoa(result.TotalMatched))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
	c.JSON(http.StatusOK, result.Contracts)
}

func (h *ContractHandler) hasFilterParams(c *gin.Context) bool {
	for _, key := range []string{"search", "status", "risk", "page", "page_size"} {
		if _, ok := c.GetQuery(key); ok {
			return true
		}
	}
	return false
}

// Get returns the full detail record for one contract.
func (h *ContractHandler) Get(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.store.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contract not found"})
			return
		}
		logger.Error(c.Request.Context(), "failed to fetch contract detail", "contract_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contract"})
		return
	}

	c.JSON(http.StatusOK, detail)
}
