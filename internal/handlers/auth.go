package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"medscribe-server/internal/config"
	"medscribe-server/internal/ids"
	"medscribe-server/internal/models"
	"medscribe-server/internal/utils"
)

// AuthHandler handles authentication-related requests. No credentials are
// verified or stored: the user record is fabricated from the submitted
// email and the request always succeeds.
type AuthHandler struct {
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the response body for successful authentication.
type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        interface{} `json:"user"`
}

// Login issues an access token for any email/password pair. An email
// containing "doctor" yields a doctor identity, anything else a patient.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user := models.User{
		ID:    ids.New(ids.KindUser),
		Email: req.Email,
	}
	if strings.Contains(req.Email, "doctor") {
		user.Name = "Dr. Sarah Williams"
		user.Role = models.RoleDoctor
	} else {
		user.Name = "John Smith"
		user.Role = models.RolePatient
	}

	accessToken, err := utils.GenerateAccessToken(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Success(c, "Login successful", TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		User:        user,
	})
}

// DoctorRegisterRequest represents the request body for doctor registration.
type DoctorRegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
	PhoneNumber    string `json:"phoneNumber" binding:"required"`
}

// RegisteredDoctor is the doctor identity echoed after registration.
type RegisteredDoctor struct {
	models.User
	Specialization string `json:"specialization"`
	PhoneNumber    string `json:"phoneNumber"`
}

// RegisterDoctor issues a token for a newly described doctor identity.
// The submitted record is echoed back and then discarded.
func (h *AuthHandler) RegisterDoctor(c *gin.Context) {
	var req DoctorRegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	registered := RegisteredDoctor{
		User: models.User{
			ID:    ids.New(ids.KindUser),
			Email: req.Email,
			Name:  req.Name,
			Role:  models.RoleDoctor,
		},
		Specialization: req.Specialization,
		PhoneNumber:    req.PhoneNumber,
	}

	accessToken, err := utils.GenerateAccessToken(&registered.User, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Created(c, "Doctor registered successfully", TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		User:        registered,
	})
}

// PatientRegisterRequest represents the request body for patient registration.
type PatientRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
}

// RegisteredPatient is the patient identity echoed after registration.
type RegisteredPatient struct {
	models.User
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// RegisterPatient issues a token for a newly described patient identity.
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req PatientRegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	registered := RegisteredPatient{
		User: models.User{
			ID:    ids.New(ids.KindUser),
			Email: req.Email,
			Name:  req.Name,
			Role:  models.RolePatient,
		},
		Age:    req.Age,
		Gender: req.Gender,
	}

	accessToken, err := utils.GenerateAccessToken(&registered.User, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token: "+err.Error())
		return
	}

	utils.Created(c, "Patient registered successfully", TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		User:        registered,
	})
}
