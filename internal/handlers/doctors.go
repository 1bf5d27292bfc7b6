package handlers

import (
	"github.com/gin-gonic/gin"

	"medscribe-server/internal/ids"
	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// DoctorHandler handles doctor resource requests with fixed demo records.
type DoctorHandler struct{}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler() *DoctorHandler {
	return &DoctorHandler{}
}

// List returns all doctors.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors := []models.Doctor{
		{
			ID:             "doc-12345678",
			Name:           "Dr. Sarah Williams",
			Email:          "sarah.williams@medscribe.com",
			Specialization: "Cardiologist",
			PhoneNumber:    "123-456-7890",
		},
		{
			ID:             "doc-87654321",
			Name:           "Dr. Michael Chen",
			Email:          "michael.chen@medscribe.com",
			Specialization: "General Practitioner",
			PhoneNumber:    "987-654-3210",
		},
	}
	utils.Success(c, "Doctors retrieved successfully", doctors)
}

// Get returns doctor details by ID.
func (h *DoctorHandler) Get(c *gin.Context) {
	doctor := models.Doctor{
		ID:             c.Param("id"),
		Name:           "Dr. Sarah Williams",
		Email:          "sarah.williams@medscribe.com",
		Specialization: "Cardiologist",
		PhoneNumber:    "123-456-7890",
	}
	utils.Success(c, "Doctor retrieved successfully", doctor)
}

// DoctorUpdateRequest represents the request body for doctor updates.
// Every field is optional; omitted fields keep their current value.
type DoctorUpdateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"omitempty,email"`
	Specialization string `json:"specialization"`
	PhoneNumber    string `json:"phoneNumber"`
}

// Update merges the submitted fields over the stored doctor record and
// echoes the result. The update itself is discarded.
func (h *DoctorHandler) Update(c *gin.Context) {
	var req DoctorUpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		ID:             c.Param("id"),
		Name:           "Dr. Sarah Williams",
		Email:          "sarah.williams@medscribe.com",
		Specialization: "Cardiologist",
		PhoneNumber:    "123-456-7890",
	}
	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.PhoneNumber != "" {
		doctor.PhoneNumber = req.PhoneNumber
	}

	utils.Success(c, "Doctor updated successfully", doctor)
}

// Delete removes a doctor.
func (h *DoctorHandler) Delete(c *gin.Context) {
	utils.NoContent(c)
}

// Patients returns all patients of a specific doctor.
func (h *DoctorHandler) Patients(c *gin.Context) {
	patients := []models.Patient{
		{
			ID:     ids.New(ids.KindPatient),
			Name:   "John Smith",
			Email:  "john.smith@example.com",
			Age:    45,
			Gender: "male",
		},
		{
			ID:     ids.New(ids.KindPatient),
			Name:   "Emma Wilson",
			Email:  "emma.wilson@example.com",
			Age:    32,
			Gender: "female",
		},
	}
	utils.Success(c, "Patients retrieved successfully", patients)
}
