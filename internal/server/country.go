package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	countrydomain "github.com/smallbiznis/atlas/internal/country/domain"
	"github.com/smallbiznis/atlas/internal/country/projection"
)

func (s *Server) CreateCountry(c *gin.Context) {
	var req countrydomain.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	country, err := s.countrySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": projection.Project(country)})
}

func (s *Server) ListCountries(c *gin.Context) {
	countries, err := s.countrySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": projection.ProjectAll(countries)})
}

func (s *Server) GetCountryByUID(c *gin.Context) {
	uid := strings.TrimSpace(c.Param("uid"))

	country, err := s.countrySvc.GetByUID(c.Request.Context(), uid)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": projection.Project(country)})
}
