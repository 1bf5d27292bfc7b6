// Package ids generates the prefixed identifiers shared by every MedScribe
// entity. An identifier is "<prefix>-<token>" where the prefix names the
// entity kind and the token is drawn from a process-wide random source.
// Uniqueness is only meaningful within a single process lifetime.
package ids

import "github.com/google/uuid"

// Kind names an entity family.
type Kind string

const (
	KindUser         Kind = "user"
	KindDoctor       Kind = "doctor"
	KindPatient      Kind = "patient"
	KindPrescription Kind = "prescription"
	KindMedicine     Kind = "medicine"
	KindHealthTip    Kind = "healthTip"
	KindNotification Kind = "notification"
	KindFollowUp     Kind = "followUp"
)

var prefixes = map[Kind]string{
	KindUser:         "usr",
	KindDoctor:       "doc",
	KindPatient:      "pat",
	KindPrescription: "pres",
	KindMedicine:     "med",
	KindHealthTip:    "tip",
	KindNotification: "notif",
	KindFollowUp:     "follow",
}

// Display-oriented kinds carry a short token; the rest keep the full UUID.
var tokenLengths = map[Kind]int{
	KindUser:         8,
	KindPrescription: 6,
	KindHealthTip:    6,
}

// New returns a fresh identifier for the given kind.
func New(kind Kind) string {
	token := uuid.New().String()
	if n, ok := tokenLengths[kind]; ok {
		token = token[:n]
	}
	return prefixes[kind] + "-" + token
}

// Prefix returns the identifier prefix used for kind, without the
// trailing separator.
func Prefix(kind Kind) string {
	return prefixes[kind]
}
