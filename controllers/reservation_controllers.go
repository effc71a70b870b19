package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkurnia/tabledesk/engine"
	"github.com/dkurnia/tabledesk/events"
	"github.com/dkurnia/tabledesk/models"
	"github.com/dkurnia/tabledesk/utils"
)

type ReservationController struct {
	Engine *engine.Engine
}

func NewReservationController(eng *engine.Engine) *ReservationController {
	return &ReservationController{Engine: eng}
}

type reservationRequest struct {
	TableID         string `json:"table_id" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	Phone           string `json:"phone"`
	PartySize       int    `json:"party_size" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

func (req reservationRequest) input() engine.ReservationInput {
	return engine.ReservationInput{
		TableID:         req.TableID,
		GuestName:       req.GuestName,
		Phone:           req.Phone,
		PartySize:       req.PartySize,
		Date:            req.Date,
		Time:            req.Time,
		SpecialRequests: req.SpecialRequests,
	}
}

// reservationRow pairs a reservation with the display label of its
// table; orphaned table references resolve to a sentinel.
type reservationRow struct {
	Reservation models.Reservation
	TableNumber string
}

// GetAllReservations -> ledger in booking order; ?search= filters by
// guest name or phone.
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations := rc.Engine.Reservations(c.Query("search"))
	tables := rc.Engine.Tables("")

	rows := make([]reservationRow, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, reservationRow{
			Reservation: r,
			TableNumber: engine.TableLabel(tables, r.TableID),
		})
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", rows)
}

// GetReservationByID -> one reservation.
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := rc.Engine.FindReservation(c.Param("reservation_id"))
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// CheckConflict -> would this (table, date, time) slot double-book?
func (rc *ReservationController) CheckConflict(c *gin.Context) {
	tableID := c.Query("table_id")
	date := c.Query("date")
	timeOfDay := c.Query("time")
	if tableID == "" || date == "" || timeOfDay == "" {
		utils.RespondError(c, http.StatusBadRequest, errMissingQuery("table_id, date, time"))
		return
	}

	conflict := rc.Engine.CheckConflict(tableID, date, timeOfDay, c.Query("exclude_reservation"))
	utils.RespondJSON(c, http.StatusOK, "Conflict check", gin.H{"conflict": conflict})
}

// GetTimeSlots -> the half-hour booking grid the forms offer.
func (rc *ReservationController) GetTimeSlots(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Booking time slots", engine.BookingSlots)
}

// CreateReservation -> book a slot; rejected with 409 when the table is
// already booked for that date and time.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Engine.CreateReservation(req.input())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	rc.broadcast(events.EventReservationCreate, reservation)
	utils.InfoLogger.Printf("Reservation %s created for %s on %s %s", reservation.ID, reservation.GuestName, reservation.Date, reservation.Time)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created successfully", reservation)
}

// UpdateReservation -> edit the booking fields.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Engine.UpdateReservation(c.Param("reservation_id"), req.input())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	rc.broadcast(events.EventReservationUpdate, reservation)
	utils.InfoLogger.Printf("Reservation %s updated", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// UpdateReservationStatus -> move a reservation through its lifecycle.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Engine.SetReservationStatus(c.Param("reservation_id"), body.Status)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	rc.broadcast(events.EventReservationUpdate, reservation)
	utils.InfoLogger.Printf("Reservation %s status changed to %s", reservation.ID, reservation.Status)
	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}

// DeleteReservation -> remove a reservation from the ledger.
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id := c.Param("reservation_id")
	if err := rc.Engine.DeleteReservation(id); err != nil {
		respondEngineError(c, err)
		return
	}

	events.Broadcast(events.Message{
		Event: events.EventReservationDelete,
		Data: map[string]interface{}{
			"reservation_id": id,
			"tables":         rc.Engine.Tables(""),
			"stats":          rc.Engine.Dashboard(),
		},
	})

	utils.InfoLogger.Printf("Reservation %s deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"id": id})
}

// broadcast pushes the changed reservation together with the
// reconciled floor and fresh stats to every screen.
func (rc *ReservationController) broadcast(event string, reservation models.Reservation) {
	events.Broadcast(events.Message{
		Event: event,
		Data: map[string]interface{}{
			"reservation": reservation,
			"tables":      rc.Engine.Tables(""),
			"stats":       rc.Engine.Dashboard(),
		},
	})
}
