package server

import (
	"net/http"
	"strings"

	jobtypedomain "github.com/allbikes/dealerdesk/internal/jobtype/domain"
	"github.com/gin-gonic/gin"
)

type createJobTypeRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"is_active"`
}

type updateJobTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"is_active"`
}

func (s *Server) CreateJobType(c *gin.Context) {
	var req createJobTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.jobTypeSvc.Create(c.Request.Context(), jobtypedomain.CreateRequest{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListJobTypes(c *gin.Context) {
	var query struct {
		Active string `form:"is_active"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	active, err := parseOptionalBool(query.Active)
	if err != nil {
		AbortWithError(c, newValidationError("is_active", "invalid_is_active", "invalid is_active"))
		return
	}

	resp, err := s.jobTypeSvc.List(c.Request.Context(), jobtypedomain.ListRequest{Active: active})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetJobTypeByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.jobTypeSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateJobType(c *gin.Context) {
	var req updateJobTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.jobTypeSvc.Update(c.Request.Context(), jobtypedomain.UpdateRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteJobType(c *gin.Context) {
	if err := s.jobTypeSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func isJobTypeValidationError(err error) bool {
	switch err {
	case jobtypedomain.ErrInvalidName,
		jobtypedomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
