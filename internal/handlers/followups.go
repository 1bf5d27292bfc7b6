package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// FollowUpHandler handles follow-up appointment requests.
type FollowUpHandler struct{}

// NewFollowUpHandler creates a new FollowUpHandler.
func NewFollowUpHandler() *FollowUpHandler {
	return &FollowUpHandler{}
}

// List returns the follow-ups for the authenticated user.
func (h *FollowUpHandler) List(c *gin.Context) {
	followups := []models.FollowUp{
		{
			ID:             "follow-123456",
			PrescriptionID: "pres-123456",
			DoctorID:       "doc-12345678",
			PatientID:      "pat-12345678",
			ScheduledDate:  time.Date(2023, 5, 18, 10, 30, 0, 0, time.UTC),
			Status:         models.FollowUpScheduled,
			Notes:          "Review blood pressure readings",
		},
		{
			ID:             "follow-234567",
			PrescriptionID: "pres-789012",
			DoctorID:       "doc-87654321",
			PatientID:      "pat-12345678",
			ScheduledDate:  time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			Status:         models.FollowUpCompleted,
			Notes:          "Follow-up for upper respiratory infection. Patient has recovered.",
		},
	}
	utils.Success(c, "Follow-ups retrieved successfully", followups)
}

// ByDoctor returns all follow-ups for a specific doctor.
func (h *FollowUpHandler) ByDoctor(c *gin.Context) {
	doctorID := c.Param("doctorId")
	followups := []models.FollowUp{
		{
			ID:             "follow-123456",
			PrescriptionID: "pres-123456",
			DoctorID:       doctorID,
			PatientID:      "pat-12345678",
			ScheduledDate:  time.Date(2023, 5, 18, 10, 30, 0, 0, time.UTC),
			Status:         models.FollowUpScheduled,
			Notes:          "Review blood pressure readings",
		},
		{
			ID:             "follow-234567",
			PrescriptionID: "pres-456789",
			DoctorID:       doctorID,
			PatientID:      "pat-87654321",
			ScheduledDate:  time.Date(2023, 5, 20, 14, 0, 0, 0, time.UTC),
			Status:         models.FollowUpScheduled,
			Notes:          "Follow-up for cardiac arrhythmia",
		},
	}
	utils.Success(c, "Follow-ups retrieved successfully", followups)
}

// Due returns the doctor's follow-ups falling due within the next week.
func (h *FollowUpHandler) Due(c *gin.Context) {
	doctorID := c.Param("doctorId")
	followups := []models.FollowUp{
		{
			ID:             "follow-123456",
			PrescriptionID: "pres-123456",
			DoctorID:       doctorID,
			PatientID:      "pat-12345678",
			PatientName:    "John Smith",
			ScheduledDate:  time.Now().AddDate(0, 0, 2),
			Status:         models.FollowUpScheduled,
			Notes:          "Review blood pressure readings",
		},
		{
			ID:             "follow-234567",
			PrescriptionID: "pres-456789",
			DoctorID:       doctorID,
			PatientID:      "pat-87654321",
			PatientName:    "Emma Wilson",
			ScheduledDate:  time.Now().AddDate(0, 0, 5),
			Status:         models.FollowUpScheduled,
			Notes:          "Follow-up for cardiac arrhythmia",
		},
	}
	utils.Success(c, "Due follow-ups retrieved successfully", followups)
}

// ByPatient returns all follow-ups for a specific patient.
func (h *FollowUpHandler) ByPatient(c *gin.Context) {
	patientID := c.Param("patientId")
	followups := []models.FollowUp{
		{
			ID:             "follow-123456",
			PrescriptionID: "pres-123456",
			DoctorID:       "doc-12345678",
			DoctorName:     "Dr. Sarah Williams",
			PatientID:      patientID,
			ScheduledDate:  time.Date(2023, 5, 18, 10, 30, 0, 0, time.UTC),
			Status:         models.FollowUpScheduled,
			Notes:          "Review blood pressure readings",
		},
		{
			ID:             "follow-234567",
			PrescriptionID: "pres-789012",
			DoctorID:       "doc-87654321",
			DoctorName:     "Dr. Michael Chen",
			PatientID:      patientID,
			ScheduledDate:  time.Date(2023, 4, 10, 9, 0, 0, 0, time.UTC),
			Status:         models.FollowUpCompleted,
			Notes:          "Follow-up for upper respiratory infection",
		},
	}
	utils.Success(c, "Follow-ups retrieved successfully", followups)
}

// FollowUpUpdateRequest represents the request body for follow-up updates.
type FollowUpUpdateRequest struct {
	Status        string     `json:"status" binding:"required,oneof=completed rescheduled missed"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	Notes         string     `json:"notes"`
}

// Update sets a follow-up's status, and optionally its date and notes,
// then echoes the record.
func (h *FollowUpHandler) Update(c *gin.Context) {
	var req FollowUpUpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	followup := models.FollowUp{
		ID:             c.Param("id"),
		PrescriptionID: "pres-123456",
		DoctorID:       "doc-12345678",
		PatientID:      "pat-12345678",
		ScheduledDate:  time.Date(2023, 5, 18, 10, 30, 0, 0, time.UTC),
		Status:         req.Status,
		Notes:          "Review blood pressure readings",
	}
	if req.ScheduledDate != nil {
		followup.ScheduledDate = *req.ScheduledDate
	}
	if req.Notes != "" {
		followup.Notes = req.Notes
	}

	utils.Success(c, "Follow-up updated successfully", followup)
}
