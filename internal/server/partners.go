package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// handleListPartners returns partners matching optional category and
// keyword query filters.
func (s *Server) handleListPartners(c *gin.Context) {
	category := c.Query("category")
	keyword := c.Query("keyword")

	list := s.catalog.Filter(category, keyword)
	c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)})
}

// handlePartnerCategories returns the distinct partner categories.
func (s *Server) handlePartnerCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.catalog.Categories()})
}

// handleGetPartner returns a single partner by id.
func (s *Server) handleGetPartner(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 제휴업체 ID입니다.")
		return
	}

	partner, ok := s.catalog.Get(partnerID)
	if !ok {
		errorJSON(c, http.StatusNotFound, "제휴업체를 찾을 수 없습니다.")
		return
	}

	c.JSON(http.StatusOK, partner)
}

// handlePartnerLocation resolves a partner's coordinates. A null location
// means the position is unknown; the frontend falls back to the default
// map center.
func (s *Server) handlePartnerLocation(c *gin.Context) {
	partnerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "잘못된 제휴업체 ID입니다.")
		return
	}

	partner, ok := s.catalog.Get(partnerID)
	if !ok {
		errorJSON(c, http.StatusNotFound, "제휴업체를 찾을 수 없습니다.")
		return
	}

	coords, err := s.resolver.ResolvePartner(c.Request.Context(), partner)
	if err != nil {
		errorJSON(c, http.StatusServiceUnavailable, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": partner.ID, "location": coords})
}

type geocodeRequest struct {
	Address string `json:"address" binding:"required"`
	Name    string `json:"name"`
}

// handleGeocode resolves an arbitrary free-text address.
func (s *Server) handleGeocode(c *gin.Context) {
	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "주소를 입력해주세요.")
		return
	}

	coords, err := s.resolver.Resolve(c.Request.Context(), req.Address, req.Name)
	if err != nil {
		errorJSON(c, http.StatusServiceUnavailable, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": coords})
}
