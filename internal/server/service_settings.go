package server

import (
	"net/http"

	settingsdomain "github.com/allbikes/dealerdesk/internal/servicesettings/domain"
	"github.com/gin-gonic/gin"
)

// PublicServiceSettings exposes the booking policy to the public site.
// A dealership that never configured settings gets a 404, not defaults.
func (s *Server) PublicServiceSettings(c *gin.Context) {
	settings, err := s.settingsSvc.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

// AdminServiceSettings get-or-creates the singleton so the admin UI
// always has a row to edit.
func (s *Server) AdminServiceSettings(c *gin.Context) {
	settings, err := s.settingsSvc.Load(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func (s *Server) UpdateServiceSettings(c *gin.Context) {
	var req settingsdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	settings, err := s.settingsSvc.Update(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func isSettingsValidationError(err error) bool {
	switch err {
	case settingsdomain.ErrInvalidAdvanceNotice,
		settingsdomain.ErrInvalidDropOffTime,
		settingsdomain.ErrInvalidDropOffWindow:
		return true
	default:
		return false
	}
}
