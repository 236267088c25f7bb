package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store string
}

func NewHealthHandler(store string) *HealthHandler {
	return &HealthHandler{store: store}
}

// HealthCheck reports that the server is up and which table store it serves
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"store":  h.store,
	})
}
