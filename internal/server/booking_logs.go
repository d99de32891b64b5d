package server

import (
	"net/http"
	"strings"

	bookingdomain "github.com/allbikes/dealerdesk/internal/booking/domain"
	"github.com/allbikes/dealerdesk/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListBookingLogs(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Status        string `form:"status"`
		CustomerEmail string `form:"customer_email"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.bookingSvc.ListLogs(c.Request.Context(), bookingdomain.ListLogsRequest{
		Pagination:    query.Pagination,
		Status:        strings.TrimSpace(query.Status),
		CustomerEmail: strings.TrimSpace(query.CustomerEmail),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
