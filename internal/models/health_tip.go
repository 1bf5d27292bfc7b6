package models

import "time"

// HealthTip represents a health tip published for patients
type HealthTip struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	Category           string    `json:"category"`
	CreatedDate        time.Time `json:"createdDate"`
	RelevantConditions []string  `json:"relevantConditions"`
}
