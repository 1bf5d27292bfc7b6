package models

import "time"

// Prescription status values
const (
	PrescriptionActive    = "active"
	PrescriptionCompleted = "completed"
)

// PrescriptionMedicine is a medicine line on a prescription. Dosage is a
// count per day or "sos"; timing is e.g. "morning" or "before_meal".
type PrescriptionMedicine struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Timing       string `json:"timing"`
	Instructions string `json:"instructions,omitempty"`
}

// Prescription is the full prescription record. Foreign keys are copied
// through verbatim; no existence checks are made.
type Prescription struct {
	ID                 string                 `json:"id"`
	DoctorID           string                 `json:"doctorId"`
	PatientID          string                 `json:"patientId"`
	Date               time.Time              `json:"date"`
	DiseaseDescription string                 `json:"diseaseDescription"`
	Medicines          []PrescriptionMedicine `json:"medicines"`
	FollowUpDate       *time.Time             `json:"followUpDate,omitempty"`
	Advice             string                 `json:"advice"`
	Status             string                 `json:"status"`
}

// PrescriptionSummary is the condensed listing shape.
type PrescriptionSummary struct {
	ID             string    `json:"id"`
	Doctor         string    `json:"doctor"`
	Specialization string    `json:"specialization"`
	Date           time.Time `json:"date"`
	Condition      string    `json:"condition"`
	Status         string    `json:"status"`
	Medicines      []string  `json:"medicines"`
}
