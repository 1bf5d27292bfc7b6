package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"medscribe-server/internal/ids"
	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// HealthTipHandler handles health tip resource requests.
type HealthTipHandler struct{}

// NewHealthTipHandler creates a new HealthTipHandler.
func NewHealthTipHandler() *HealthTipHandler {
	return &HealthTipHandler{}
}

// List returns all health tips.
func (h *HealthTipHandler) List(c *gin.Context) {
	tips := []models.HealthTip{
		{
			ID:                 "tip-123456",
			Title:              "Managing Hypertension",
			Content:            "Regular exercise and reduced salt intake can help manage hypertension. Aim for at least 30 minutes of moderate exercise most days of the week.",
			Category:           "cardiovascular",
			CreatedDate:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			RelevantConditions: []string{"hypertension", "heart disease"},
		},
		{
			ID:                 "tip-234567",
			Title:              "Diabetic Diet Tips",
			Content:            "Include complex carbohydrates like whole grains, fruits, and vegetables in your diet. Monitor your carbohydrate intake and try to eat at consistent times each day.",
			Category:           "diabetes",
			CreatedDate:        time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC),
			RelevantConditions: []string{"diabetes", "obesity"},
		},
		{
			ID:                 "tip-345678",
			Title:              "Respiratory Health",
			Content:            "Avoid smoke and air pollutants. Keep indoor spaces well-ventilated and consider using an air purifier if you have asthma or allergies.",
			Category:           "respiratory",
			CreatedDate:        time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			RelevantConditions: []string{"asthma", "COPD", "allergies"},
		},
	}
	utils.Success(c, "Health tips retrieved successfully", tips)
}

// HealthTipCreateRequest represents the request body for creating a
// health tip.
type HealthTipCreateRequest struct {
	Title              string   `json:"title" binding:"required"`
	Content            string   `json:"content" binding:"required"`
	Category           string   `json:"category" binding:"required"`
	RelevantConditions []string `json:"relevantConditions"`
}

// Create builds a health tip from the request body and echoes it.
func (h *HealthTipHandler) Create(c *gin.Context) {
	var req HealthTipCreateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	conditions := req.RelevantConditions
	if conditions == nil {
		conditions = []string{}
	}
	tip := models.HealthTip{
		ID:                 ids.New(ids.KindHealthTip),
		Title:              req.Title,
		Content:            req.Content,
		Category:           req.Category,
		CreatedDate:        time.Now(),
		RelevantConditions: conditions,
	}

	utils.Created(c, "Health tip created successfully", tip)
}

// Get returns health tip details by ID.
func (h *HealthTipHandler) Get(c *gin.Context) {
	tip := models.HealthTip{
		ID:                 c.Param("id"),
		Title:              "Managing Hypertension",
		Content:            "Regular exercise and reduced salt intake can help manage hypertension. Aim for at least 30 minutes of moderate exercise most days of the week.",
		Category:           "cardiovascular",
		CreatedDate:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
		RelevantConditions: []string{"hypertension", "heart disease"},
	}
	utils.Success(c, "Health tip retrieved successfully", tip)
}

// ForPatient returns the health tips relevant for a specific patient.
func (h *HealthTipHandler) ForPatient(c *gin.Context) {
	tips := []models.HealthTip{
		{
			ID:                 "tip-123456",
			Title:              "Managing Hypertension",
			Content:            "Regular exercise and reduced salt intake can help manage hypertension. Aim for at least 30 minutes of moderate exercise most days of the week.",
			Category:           "cardiovascular",
			CreatedDate:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			RelevantConditions: []string{"hypertension", "heart disease"},
		},
		{
			ID:                 "tip-234567",
			Title:              "Stress Management",
			Content:            "Practicing mindfulness meditation for 10-15 minutes daily can help reduce stress and lower blood pressure.",
			Category:           "mental health",
			CreatedDate:        time.Date(2023, 4, 16, 0, 0, 0, 0, time.UTC),
			RelevantConditions: []string{"hypertension", "anxiety"},
		},
	}
	utils.Success(c, "Health tips retrieved successfully", tips)
}
