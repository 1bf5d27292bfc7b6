package models

// Doctor represents a doctor in the system
type Doctor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	PhoneNumber    string `json:"phoneNumber"`
}
