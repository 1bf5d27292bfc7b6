package models

import "time"

// Follow-up status values
const (
	FollowUpScheduled   = "scheduled"
	FollowUpCompleted   = "completed"
	FollowUpRescheduled = "rescheduled"
	FollowUpMissed      = "missed"
)

// FollowUp is a follow-up appointment tied to a prescription. DoctorName
// and PatientName are only populated on the views that display them.
type FollowUp struct {
	ID             string    `json:"id"`
	PrescriptionID string    `json:"prescriptionId"`
	DoctorID       string    `json:"doctorId"`
	DoctorName     string    `json:"doctorName,omitempty"`
	PatientID      string    `json:"patientId"`
	PatientName    string    `json:"patientName,omitempty"`
	ScheduledDate  time.Time `json:"scheduledDate"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes"`
}
