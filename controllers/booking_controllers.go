package controllers

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/lifecycle"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/models"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/policy"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

var (
	bookingDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	bookingTimeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

type BookingController struct {
	DB *gorm.DB
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{DB: db}
}

// CreateBooking reserves a table for the caller.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	var req struct {
		PartySize int    `json:"party_size"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	if req.PartySize < 1 {
		utils.RespondError(c, utils.ValidationError("party_size must be >= 1"))
		return
	}
	if !bookingDateRe.MatchString(req.Date) {
		utils.RespondError(c, utils.ValidationError("date must be YYYY-MM-DD"))
		return
	}
	if !bookingTimeRe.MatchString(req.Time) {
		utils.RespondError(c, utils.ValidationError("time must be HH:MM (24-hour)"))
		return
	}

	booking := models.Booking{
		UserID:    actorID,
		PartySize: req.PartySize,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		Status:    string(lifecycle.BookingPending),
	}

	if err := bc.DB.Create(&booking).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d created by user %d for %s %s", booking.ID, actorID, booking.Date, booking.Time)

	utils.RespondJSON(c, http.StatusCreated, "Booking created", booking)
}

// GetMyBookings -> the caller's bookings, newest first.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	var bookings []models.Booking
	if err := bc.DB.Where("user_id = ?", actorID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My bookings", bookings)
}

// GetAllBookings -> staff/admin listing, newest first.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	_, actorRole, ok := currentActor(c)
	if !ok || !actorRole.Elevated() {
		utils.RespondError(c, utils.ForbiddenError("staff or admin access required"))
		return
	}

	var bookings []models.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// UpdateBooking patches the mutable fields (party size, date, time,
// notes). Status is deliberately not accepted here; it only moves through
// UpdateBookingStatus so the transition table cannot be bypassed.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("booking_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid booking id"))
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("booking not found"))
		return
	}

	if !policy.CanAct(actorRole, actorID, booking.UserID, policy.ActionUpdate) {
		utils.RespondError(c, utils.ForbiddenError("not your booking"))
		return
	}

	var req struct {
		PartySize *int    `json:"party_size"`
		Date      *string `json:"date"`
		Time      *string `json:"time"`
		Notes     *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	if req.PartySize != nil {
		if *req.PartySize < 1 {
			utils.RespondError(c, utils.ValidationError("party_size must be >= 1"))
			return
		}
		booking.PartySize = *req.PartySize
	}
	if req.Date != nil {
		if !bookingDateRe.MatchString(*req.Date) {
			utils.RespondError(c, utils.ValidationError("date must be YYYY-MM-DD"))
			return
		}
		booking.Date = *req.Date
	}
	if req.Time != nil {
		if !bookingTimeRe.MatchString(*req.Time) {
			utils.RespondError(c, utils.ValidationError("time must be HH:MM (24-hour)"))
			return
		}
		booking.Time = *req.Time
	}
	if req.Notes != nil {
		booking.Notes = *req.Notes
	}

	if err := bc.DB.Save(&booking).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking updated", booking)
}

// UpdateBookingStatus moves a booking through the transition table. Staff
// and admin only; a cancelled booking is locked for good.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok || !policy.CanAct(actorRole, actorID, 0, policy.ActionSetStatus) {
		utils.RespondError(c, utils.ForbiddenError("staff or admin access required"))
		return
	}

	id, err := strconv.Atoi(c.Param("booking_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid booking id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	newStatus, ok := lifecycle.ParseBookingStatus(input.Status)
	if !ok {
		utils.RespondError(c, utils.ValidationError("unknown booking status '%s'", input.Status))
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("booking not found"))
		return
	}

	from, _ := lifecycle.ParseBookingStatus(booking.Status)
	if err := lifecycle.CanTransitionBooking(from, newStatus); err != nil {
		utils.RespondError(c, err)
		return
	}

	booking.Status = string(newStatus)
	if err := bc.DB.Save(&booking).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Booking %d moved %s -> %s by user %d", booking.ID, from, newStatus, actorID)

	utils.RespondJSON(c, http.StatusOK, "Booking status updated", booking)
}

// DeleteBooking removes a booking. Unlike orders, the owner may delete at
// any status; that asymmetry lives in the policy table, not here.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("booking_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid booking id"))
		return
	}

	var booking models.Booking
	if err := bc.DB.First(&booking, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("booking not found"))
		return
	}

	status, _ := lifecycle.ParseBookingStatus(booking.Status)
	if !policy.CanDelete(policy.EntityBooking, actorRole, actorID, booking.UserID, status.Terminal()) {
		utils.RespondError(c, utils.ForbiddenError("not your booking"))
		return
	}

	if err := bc.DB.Delete(&booking).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking deleted", gin.H{"booking_id": id})
}
