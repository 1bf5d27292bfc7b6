package handlers

import (
	"github.com/gin-gonic/gin"

	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// PatientHandler handles patient resource requests with fixed demo records.
type PatientHandler struct{}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler() *PatientHandler {
	return &PatientHandler{}
}

// List returns all patients.
func (h *PatientHandler) List(c *gin.Context) {
	patients := []models.Patient{
		{
			ID:     "pat-12345678",
			Name:   "John Smith",
			Email:  "john.smith@example.com",
			Age:    45,
			Gender: "male",
		},
		{
			ID:     "pat-87654321",
			Name:   "Emma Wilson",
			Email:  "emma.wilson@example.com",
			Age:    32,
			Gender: "female",
		},
	}
	utils.Success(c, "Patients retrieved successfully", patients)
}

// Get returns patient details by ID.
func (h *PatientHandler) Get(c *gin.Context) {
	patient := models.Patient{
		ID:     c.Param("id"),
		Name:   "John Smith",
		Email:  "john.smith@example.com",
		Age:    45,
		Gender: "male",
	}
	utils.Success(c, "Patient retrieved successfully", patient)
}

// PatientUpdateRequest represents the request body for patient updates.
// Age is a pointer so an explicit zero can be told apart from an omitted
// field.
type PatientUpdateRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Age    *int   `json:"age"`
	Gender string `json:"gender"`
}

// Update merges the submitted fields over the stored patient record and
// echoes the result.
func (h *PatientHandler) Update(c *gin.Context) {
	var req PatientUpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	patient := models.Patient{
		ID:     c.Param("id"),
		Name:   "John Smith",
		Email:  "john.smith@example.com",
		Age:    45,
		Gender: "male",
	}
	if req.Name != "" {
		patient.Name = req.Name
	}
	if req.Email != "" {
		patient.Email = req.Email
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	if req.Gender != "" {
		patient.Gender = req.Gender
	}

	utils.Success(c, "Patient updated successfully", patient)
}

// Delete removes a patient.
func (h *PatientHandler) Delete(c *gin.Context) {
	utils.NoContent(c)
}
