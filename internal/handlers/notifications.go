package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// NotificationHandler handles medication reminder requests.
type NotificationHandler struct{}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// timeOfDay pins a clock time onto today's date in local time.
func timeOfDay(hour, minute int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
}

// ForPatient returns all medication notifications for a specific patient.
func (h *NotificationHandler) ForPatient(c *gin.Context) {
	patientID := c.Param("patientId")
	notifications := []models.Notification{
		{
			ID:             "notif-123456",
			PatientID:      patientID,
			PrescriptionID: "pres-123456",
			MedicineID:     "med-1",
			MedicineName:   "Lisinopril 10mg",
			ScheduledTime:  timeOfDay(8, 0),
			Status:         models.NotificationTaken,
			IsRead:         false,
		},
		{
			ID:             "notif-234567",
			PatientID:      patientID,
			PrescriptionID: "pres-123456",
			MedicineID:     "med-2",
			MedicineName:   "Hydrochlorothiazide 12.5mg",
			ScheduledTime:  timeOfDay(8, 0),
			Status:         models.NotificationPending,
			IsRead:         false,
		},
		{
			ID:             "notif-345678",
			PatientID:      patientID,
			PrescriptionID: "pres-123456",
			MedicineID:     "med-1",
			MedicineName:   "Lisinopril 10mg",
			ScheduledTime:  timeOfDay(20, 0),
			Status:         models.NotificationPending,
			IsRead:         false,
		},
	}
	utils.Success(c, "Notifications retrieved successfully", notifications)
}

// NotificationUpdateRequest represents the request body for notification
// updates.
type NotificationUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=taken missed"`
	IsRead bool   `json:"isRead"`
}

// Update sets a notification's status and read flag and echoes it.
func (h *NotificationHandler) Update(c *gin.Context) {
	var req NotificationUpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	notification := models.Notification{
		ID:             c.Param("id"),
		PatientID:      "pat-123456",
		PrescriptionID: "pres-123456",
		MedicineID:     "med-1",
		MedicineName:   "Lisinopril 10mg",
		ScheduledTime:  timeOfDay(8, 0),
		Status:         req.Status,
		IsRead:         req.IsRead,
	}
	utils.Success(c, "Notification updated successfully", notification)
}

// Schedule returns the daily medication schedule for a patient.
func (h *NotificationHandler) Schedule(c *gin.Context) {
	schedule := models.MedicationSchedule{
		Patient: models.SchedulePatient{
			ID:   c.Param("patientId"),
			Name: "John Smith",
		},
		DailySchedule: []models.ScheduleSlot{
			{
				Time: "08:00",
				Medicines: []models.ScheduledMedicine{
					{MedicineID: "med-1", Name: "Lisinopril 10mg", Instructions: "Take with water"},
					{MedicineID: "med-2", Name: "Hydrochlorothiazide 12.5mg", Instructions: "Take with food"},
				},
			},
			{
				Time: "13:00",
				Medicines: []models.ScheduledMedicine{
					{MedicineID: "med-3", Name: "Metformin 500mg", Instructions: "Take with lunch"},
				},
			},
			{
				Time: "20:00",
				Medicines: []models.ScheduledMedicine{
					{MedicineID: "med-1", Name: "Lisinopril 10mg", Instructions: "Take with water"},
				},
			},
		},
	}
	utils.Success(c, "Medication schedule retrieved successfully", schedule)
}
