package config

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sabithapaulraj/AlphaGraph/pkg/core/agent"
)

type Response struct {
	ActiveProvider string   `json:"active_provider"`
	Available      []string `json:"available"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	AgentMgr *agent.Manager
}

// NewHandler creates a new config handler
func NewHandler(agentMgr *agent.Manager) *Handler {
	return &Handler{
		AgentMgr: agentMgr,
	}
}

// Register mounts the config routes on the given group.
func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/config", h.Config)
	r.POST("/config/switch", h.Switch)
}

func (h *Handler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		ActiveProvider: h.AgentMgr.GetActiveProvider(),
		Available:      []string{"gemini", "deepseek"},
	})
}

// Switch changes the global provider. Analysis calls resolve their provider
// through the manager, so the switch takes effect on the next request.
func (h *Handler) Switch(c *gin.Context) {
	var req SwitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.AgentMgr.SetGlobalProvider(req.Provider); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Switched to " + req.Provider})
}
