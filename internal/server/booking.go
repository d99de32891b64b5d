package server

import (
	"net/http"
	"strconv"
	"strings"

	bookingdomain "github.com/allbikes/dealerdesk/internal/booking/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateBooking(c *gin.Context) {
	var req bookingdomain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.bookingSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if result.Outcome == bookingdomain.StatusSuccess {
		c.JSON(http.StatusCreated, result.Response)
		return
	}
	c.JSON(http.StatusInternalServerError, result.Response)
}

func (s *Server) ListBookingJobTypes(c *gin.Context) {
	jobTypes, err := s.bookingSvc.JobTypes(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobTypes)
}

func (s *Server) ListUnavailableDays(c *gin.Context) {
	inDays := 0
	if raw := strings.TrimSpace(c.Query("in_days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, newValidationError("in_days", "invalid_in_days", "invalid in_days"))
			return
		}
		inDays = parsed
	}

	resp, err := s.bookingSvc.UnavailableDays(c.Request.Context(), inDays)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func isBookingValidationError(err error) bool {
	switch err {
	case bookingdomain.ErrInvalidPageToken,
		bookingdomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}
