package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkurnia/tabledesk/engine"
	"github.com/dkurnia/tabledesk/utils"
)

type AnalyticsController struct {
	Engine *engine.Engine
}

func NewAnalyticsController(eng *engine.Engine) *AnalyticsController {
	return &AnalyticsController{Engine: eng}
}

// GetDashboardStats -> the full analytics snapshot, recomputed from
// current state on every call.
func (ac *AnalyticsController) GetDashboardStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Dashboard statistics", ac.Engine.Dashboard())
}
