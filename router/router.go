package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dkurnia/tabledesk/controllers"
	"github.com/dkurnia/tabledesk/engine"
	"github.com/dkurnia/tabledesk/middlewares"
)

func SetupRouter(eng *engine.Engine, corsOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(corsOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	tableCtrl := controllers.NewTableController(eng)
	reservationCtrl := controllers.NewReservationController(eng)
	analyticsCtrl := controllers.NewAnalyticsController(eng)

	mutate := middlewares.NewMutationRateLimiter()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// FLOOR PLAN
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)
	r.POST("/tables", mutate, tableCtrl.CreateTable)
	r.PATCH("/tables/:table_id", mutate, tableCtrl.UpdateTableStatus)
	r.DELETE("/tables/:table_id", mutate, tableCtrl.DeleteTable)
	r.POST("/tables/:table_id/seat", mutate, tableCtrl.SeatWalkIn)

	// Slot lookups for the booking forms
	r.GET("/availability", tableCtrl.GetAvailableTables)
	r.GET("/availability/conflict", reservationCtrl.CheckConflict)
	r.GET("/time-slots", reservationCtrl.GetTimeSlots)

	// RESERVATIONS
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	r.POST("/reservations", mutate, reservationCtrl.CreateReservation)
	r.PATCH("/reservations/:reservation_id", mutate, reservationCtrl.UpdateReservation)
	r.PATCH("/reservations/:reservation_id/status", mutate, reservationCtrl.UpdateReservationStatus)
	r.DELETE("/reservations/:reservation_id", mutate, reservationCtrl.DeleteReservation)

	// ANALYTICS
	r.GET("/dashboard/stats", analyticsCtrl.GetDashboardStats)

	// Live screen updates
	r.GET("/ws/:screen", controllers.ScreenHandler)

	return r
}
