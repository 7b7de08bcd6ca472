package httpapi

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	appExpert "dropout-risk-api/internal/application/expert"
	expertDomain "dropout-risk-api/internal/domain/expert"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Student Dropout Risk Detector API",
		"status":  "running",
	})
}

func (s *Server) handleDropoutRisk(c *gin.Context) {
	var facts expertDomain.Facts
	if err := c.ShouldBindJSON(&facts); err != nil || len(facts) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing request body", "error_code": errCodeBadRequest})
		return
	}

	res, err := s.assessUC.Execute(c.Request.Context(), facts)
	if err != nil {
		if errors.Is(err, appExpert.ErrInsufficientFacts) {
			msg := fmt.Sprintf("At least %d facts are required", s.assessUC.MinFacts())
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg, "error_code": errCodeBadRequest})
			return
		}
		log.Printf("[Expert] assessment failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "expert rules unavailable", "error_code": errCodeKnowledgeLoad})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (s *Server) handleFacts(c *gin.Context) {
	facts, err := s.factsUC.Execute(c.Request.Context())
	if err != nil {
		log.Printf("[Expert] facts listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "fact definitions unavailable", "error_code": errCodeKnowledgeLoad})
		return
	}

	// Serialized by hand through FactList so the source key order survives;
	// gin's map-based JSON rendering would scramble it.
	data, err := facts.MarshalJSON()
	if err != nil {
		log.Printf("[Expert] facts serialization failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "fact definitions unavailable", "error_code": errCodeInternal})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (s *Server) handleRules(c *gin.Context) {
	rules, err := s.rulesUC.Execute(c.Request.Context())
	if err != nil {
		log.Printf("[Expert] rules listing failed user_id=%s: %v", currentUserID(c), err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "expert rules unavailable", "error_code": errCodeKnowledgeLoad})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(rules),
		"rules":   rules,
	})
}
