package server

import (
	"net/http"
	"strings"

	"github.com/allbikes/dealerdesk/internal/auth"
	"github.com/gin-gonic/gin"
)

func (s *Server) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	resp, err := s.authSvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
