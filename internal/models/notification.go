package models

import "time"

// Notification status values
const (
	NotificationPending = "pending"
	NotificationTaken   = "taken"
	NotificationMissed  = "missed"
)

// Notification is a medication reminder for a patient.
type Notification struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patientId"`
	PrescriptionID string    `json:"prescriptionId"`
	MedicineID     string    `json:"medicineId"`
	MedicineName   string    `json:"medicineName"`
	ScheduledTime  time.Time `json:"scheduledTime"`
	Status         string    `json:"status"`
	IsRead         bool      `json:"isRead"`
}

// ScheduledMedicine is one medicine inside a schedule slot.
type ScheduledMedicine struct {
	MedicineID   string `json:"medicineId"`
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
}

// ScheduleSlot groups the medicines taken at one time of day.
type ScheduleSlot struct {
	Time      string              `json:"time"`
	Medicines []ScheduledMedicine `json:"medicines"`
}

// SchedulePatient is the compact patient reference on a schedule.
type SchedulePatient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MedicationSchedule is a patient's daily medication plan.
type MedicationSchedule struct {
	Patient       SchedulePatient `json:"patient"`
	DailySchedule []ScheduleSlot  `json:"dailySchedule"`
}
