package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dkurnia/tabledesk/engine"
	"github.com/dkurnia/tabledesk/events"
	"github.com/dkurnia/tabledesk/models"
	"github.com/dkurnia/tabledesk/utils"
)

type TableController struct {
	Engine *engine.Engine
}

func NewTableController(eng *engine.Engine) *TableController {
	return &TableController{Engine: eng}
}

// GetAllTables -> the floor plan, optionally filtered by ?status=.
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables := tc.Engine.Tables(c.Query("status"))
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail of one table.
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.Engine.FindTable(c.Param("table_id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// GetAvailableTables -> tables free for a party at the given slot.
func (tc *TableController) GetAvailableTables(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = tc.Engine.Today()
	}
	timeOfDay := c.Query("time")
	if timeOfDay == "" {
		utils.RespondError(c, http.StatusBadRequest, errMissingQuery("time"))
		return
	}
	partySize := 1
	if raw := c.Query("party_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondError(c, http.StatusBadRequest, errBadQuery("party_size"))
			return
		}
		partySize = n
	}

	tables := tc.Engine.AvailableTables(date, timeOfDay, partySize, c.Query("exclude_reservation"))
	utils.RespondJSON(c, http.StatusOK, "Available tables", tables)
}

// CreateTable -> add a table to the floor.
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		Number   int `json:"number" binding:"required"`
		Seats    int `json:"seats" binding:"required"`
		Position struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		} `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Engine.CreateTable(req.Number, req.Seats, models.Position{X: req.Position.X, Y: req.Position.Y})
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableCreate,
		Data: map[string]interface{}{
			"table": table,
			"stats": tc.Engine.Dashboard(),
		},
	})

	utils.InfoLogger.Printf("New table created: #%d (%d seats)", table.Number, table.Seats)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTableStatus -> manual floor transition (free / cleaned / seat
// the reserved party).
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table, err := tc.Engine.ChangeTableStatus(c.Param("table_id"), body.Status)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableUpdate,
		Data: map[string]interface{}{
			"table": table,
			"stats": tc.Engine.Dashboard(),
		},
	})

	utils.InfoLogger.Printf("Table #%d status changed to %s", table.Number, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

// SeatWalkIn -> seat a walk-in party at a free table.
func (tc *TableController) SeatWalkIn(c *gin.Context) {
	var body struct {
		PartySize int `json:"party_size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, table, err := tc.Engine.SeatWalkIn(c.Param("table_id"), body.PartySize)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventWalkInSeated,
		Data: map[string]interface{}{
			"table":       table,
			"reservation": reservation,
			"stats":       tc.Engine.Dashboard(),
		},
	})

	utils.InfoLogger.Printf("Walk-in party of %d seated at table #%d", reservation.PartySize, table.Number)
	utils.RespondJSON(c, http.StatusCreated, "Walk-in seated", gin.H{
		"table":       table,
		"reservation": reservation,
	})
}

// DeleteTable -> remove a table from the floor.
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	if err := tc.Engine.DeleteTable(tableID); err != nil {
		respondEngineError(c, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventTableDelete,
		Data: map[string]interface{}{
			"table_id": tableID,
			"stats":    tc.Engine.Dashboard(),
		},
	})

	utils.InfoLogger.Printf("Table %s deleted", tableID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": tableID})
}
