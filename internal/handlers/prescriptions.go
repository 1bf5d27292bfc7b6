package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"medscribe-server/internal/ids"
	"medscribe-server/internal/middleware"
	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// PrescriptionHandler handles prescription resource requests.
type PrescriptionHandler struct{}

// NewPrescriptionHandler creates a new PrescriptionHandler.
func NewPrescriptionHandler() *PrescriptionHandler {
	return &PrescriptionHandler{}
}

func demoSummaries() []models.PrescriptionSummary {
	return []models.PrescriptionSummary{
		{
			ID:             "pres-123456",
			Doctor:         "Dr. Sarah Williams",
			Specialization: "Cardiologist",
			Date:           time.Date(2023, 4, 18, 0, 0, 0, 0, time.UTC),
			Condition:      "Hypertension",
			Status:         models.PrescriptionActive,
			Medicines:      []string{"Lisinopril 10mg", "Hydrochlorothiazide 12.5mg"},
		},
		{
			ID:             "pres-789012",
			Doctor:         "Dr. Michael Chen",
			Specialization: "General Practitioner",
			Date:           time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			Condition:      "Upper Respiratory Infection",
			Status:         models.PrescriptionCompleted,
			Medicines:      []string{"Amoxicillin 500mg", "Guaifenesin 400mg"},
		},
	}
}

// List returns the prescriptions for the authenticated user.
func (h *PrescriptionHandler) List(c *gin.Context) {
	utils.Success(c, "Prescriptions retrieved successfully", demoSummaries())
}

// PrescriptionCreateRequest represents the request body for creating a
// prescription.
type PrescriptionCreateRequest struct {
	PatientID          string                        `json:"patientId" binding:"required"`
	DiseaseDescription string                        `json:"diseaseDescription" binding:"required"`
	Medicines          []models.PrescriptionMedicine `json:"medicines" binding:"required"`
	FollowUpDate       *time.Time                    `json:"followUpDate"`
	Advice             string                        `json:"advice"`
}

// Create builds a prescription from the request body. The prescribing
// doctor is the caller's identity; the record is echoed and discarded.
func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req PrescriptionCreateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prescription := models.Prescription{
		ID:                 ids.New(ids.KindPrescription),
		DoctorID:           middleware.CallerID(c),
		PatientID:          req.PatientID,
		Date:               time.Now(),
		DiseaseDescription: req.DiseaseDescription,
		Medicines:          req.Medicines,
		FollowUpDate:       req.FollowUpDate,
		Advice:             req.Advice,
		Status:             models.PrescriptionActive,
	}

	utils.Created(c, "Prescription created successfully", prescription)
}

func demoMedicines() []models.PrescriptionMedicine {
	return []models.PrescriptionMedicine{
		{
			ID:           "med-1",
			Name:         "Lisinopril 10mg",
			Dosage:       "1",
			Timing:       "morning",
			Instructions: "Take with or without food",
		},
		{
			ID:           "med-2",
			Name:         "Hydrochlorothiazide 12.5mg",
			Dosage:       "1",
			Timing:       "morning",
			Instructions: "Take with food",
		},
	}
}

// Get returns prescription details by ID.
func (h *PrescriptionHandler) Get(c *gin.Context) {
	followUp := time.Date(2023, 5, 18, 0, 0, 0, 0, time.UTC)
	prescription := models.Prescription{
		ID:                 c.Param("id"),
		DoctorID:           "doc-12345678",
		PatientID:          "pat-12345678",
		Date:               time.Date(2023, 4, 18, 0, 0, 0, 0, time.UTC),
		DiseaseDescription: "Hypertension",
		Medicines:          demoMedicines(),
		FollowUpDate:       &followUp,
		Advice:             "Reduce salt intake. Monitor blood pressure daily.",
		Status:             models.PrescriptionActive,
	}
	utils.Success(c, "Prescription retrieved successfully", prescription)
}

// PrescriptionUpdateRequest represents the request body for updating a
// prescription. Dates arrive as strings and are parsed leniently.
type PrescriptionUpdateRequest struct {
	PatientID          string                        `json:"patientId"`
	Date               string                        `json:"date"`
	DiseaseDescription string                        `json:"diseaseDescription"`
	Medicines          []models.PrescriptionMedicine `json:"medicines"`
	FollowUpDate       string                        `json:"followUpDate"`
	Advice             string                        `json:"advice"`
	Status             string                        `json:"status"`
}

// Update merges the submitted fields over defaults and echoes the result.
// An unparsable date falls back to now; an unparsable follow-up date to
// thirty days out; a missing follow-up date stays unset.
func (h *PrescriptionHandler) Update(c *gin.Context) {
	var req PrescriptionUpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		date = time.Now()
	}

	var followUpDate *time.Time
	if req.FollowUpDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.FollowUpDate)
		if err != nil {
			parsed = time.Now().AddDate(0, 0, 30)
		}
		followUpDate = &parsed
	}

	prescription := models.Prescription{
		ID:                 c.Param("id"),
		DoctorID:           middleware.CallerID(c),
		PatientID:          "pat-12345678",
		Date:               date,
		DiseaseDescription: "Hypertension",
		Medicines:          demoMedicines()[:1],
		FollowUpDate:       followUpDate,
		Advice:             req.Advice,
		Status:             models.PrescriptionActive,
	}
	if req.PatientID != "" {
		prescription.PatientID = req.PatientID
	}
	if req.DiseaseDescription != "" {
		prescription.DiseaseDescription = req.DiseaseDescription
	}
	if req.Medicines != nil {
		prescription.Medicines = req.Medicines
	}
	if req.Status != "" {
		prescription.Status = req.Status
	}

	utils.Success(c, "Prescription updated successfully", prescription)
}

// ByDoctor returns all prescriptions written by a specific doctor.
func (h *PrescriptionHandler) ByDoctor(c *gin.Context) {
	prescriptions := []models.PrescriptionSummary{
		{
			ID:             "pres-123456",
			Doctor:         "Dr. Sarah Williams",
			Specialization: "Cardiologist",
			Date:           time.Date(2023, 4, 18, 0, 0, 0, 0, time.UTC),
			Condition:      "Hypertension",
			Status:         models.PrescriptionActive,
			Medicines:      []string{"Lisinopril 10mg", "Hydrochlorothiazide 12.5mg"},
		},
		{
			ID:             "pres-456789",
			Doctor:         "Dr. Sarah Williams",
			Specialization: "Cardiologist",
			Date:           time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			Condition:      "Cardiac Arrhythmia",
			Status:         models.PrescriptionActive,
			Medicines:      []string{"Metoprolol 25mg"},
		},
	}
	utils.Success(c, "Prescriptions retrieved successfully", prescriptions)
}

// ByPatient returns all prescriptions for a specific patient.
func (h *PrescriptionHandler) ByPatient(c *gin.Context) {
	utils.Success(c, "Prescriptions retrieved successfully", demoSummaries())
}
