package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dkurnia/tabledesk/config"
	"github.com/dkurnia/tabledesk/engine"
	"github.com/dkurnia/tabledesk/router"
	"github.com/dkurnia/tabledesk/store"
	"github.com/dkurnia/tabledesk/utils"
)

func main() {
	cfg := config.Load()
	utils.InitLogger(cfg.LogLevel)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	st := store.New()
	st.Replace(store.DefaultFloor(time.Now()), nil)
	eng := engine.New(st)

	r := router.SetupRouter(eng, cfg.CORSOrigin)

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
