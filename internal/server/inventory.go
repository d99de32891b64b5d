package server

import (
	"net/http"
	"strings"

	inventorydomain "github.com/allbikes/dealerdesk/internal/inventory/domain"
	"github.com/allbikes/dealerdesk/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListMotorcycles(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Condition   string `form:"condition"`
		Featured    string `form:"is_featured"`
		MinPrice    string `form:"min_price"`
		MaxPrice    string `form:"max_price"`
		MinYear     string `form:"min_year"`
		MaxYear     string `form:"max_year"`
		MinEngineCC string `form:"min_engine_size"`
		MaxEngineCC string `form:"max_engine_size"`
		Ordering    string `form:"ordering"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	// Invalid filter values are dropped, not rejected. A bad featured
	// flag simply means no featured constraint.
	featured, err := parseOptionalBool(query.Featured)
	featuredOnly := err == nil && featured != nil && *featured

	resp, listErr := s.inventorySvc.List(c.Request.Context(), inventorydomain.ListRequest{
		Pagination:   query.Pagination,
		Condition:    query.Condition,
		FeaturedOnly: featuredOnly,
		MinPrice:     query.MinPrice,
		MaxPrice:     query.MaxPrice,
		MinYear:      query.MinYear,
		MaxYear:      query.MaxYear,
		MinEngineCC:  query.MinEngineCC,
		MaxEngineCC:  query.MaxEngineCC,
		Ordering:     query.Ordering,
	})
	if listErr != nil {
		AbortWithError(c, listErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetMotorcycleBySlug(c *gin.Context) {
	item, err := s.inventorySvc.GetBySlug(c.Request.Context(), strings.TrimSpace(c.Param("slug")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) CreateMotorcycle(c *gin.Context) {
	var req inventorydomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	item, err := s.inventorySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (s *Server) GetMotorcycleByID(c *gin.Context) {
	item, err := s.inventorySvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) UpdateMotorcycle(c *gin.Context) {
	var req inventorydomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.ID = strings.TrimSpace(c.Param("id"))

	item, err := s.inventorySvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) DeleteMotorcycle(c *gin.Context) {
	if err := s.inventorySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isInventoryValidationError(err error) bool {
	switch err {
	case inventorydomain.ErrInvalidID,
		inventorydomain.ErrInvalidMake,
		inventorydomain.ErrInvalidModel,
		inventorydomain.ErrInvalidYear,
		inventorydomain.ErrInvalidPrice,
		inventorydomain.ErrInvalidCondition,
		inventorydomain.ErrInvalidStatus,
		inventorydomain.ErrInvalidTransmission,
		inventorydomain.ErrInvalidStockNumber,
		inventorydomain.ErrInvalidPageToken:
		return true
	default:
		return false
	}
}
