package handlers

import (
	"fmt"
	"net/http"

	"github.com/Conceptual-Machines/rug-loom/internal/models"
	"github.com/Conceptual-Machines/rug-loom/internal/rug"
	"github.com/gin-gonic/gin"
)

// ToggleMotif handles POST /api/v1/motifs/toggle. The selection never becomes empty.
func ToggleMotif(c *gin.Context) {
	var req models.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := rug.MotifByID(req.ID); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %q", rug.ErrUnknownMotif, req.ID)})
		return
	}
	for _, id := range req.Selected {
		if _, ok := rug.MotifByID(id); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%v: %q", rug.ErrUnknownMotif, id)})
			return
		}
	}

	next := rug.NewMotifSelection(req.Selected...).Toggle(req.ID)
	c.JSON(http.StatusOK, models.ToggleResponse{Selected: next.IDs()})
}
