package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ── account settings ──

// UpdateProfileRequest full profile overwrite; omitted fields become empty.
type UpdateProfileRequest struct {
	FullName          string   `json:"fullname"            validate:"required"`
	Email             string   `json:"email"               validate:"required,email_shape"`
	USI               string   `json:"usi"                 validate:"required,usi"`
	Address           string   `json:"address"`
	Department        string   `json:"department"`
	Year              string   `json:"year"`
	Telephone         string   `json:"telephone"`
	EmergencyContact  string   `json:"emergency_contact"`
	Interest          string   `json:"interest"`
	AreasOfInterest   AreaList `json:"areas_of_interest"`
	LevelOfExperience string   `json:"level_of_experience"`
}

// AreaList areas of interest, decoded from either a JSON array of tags or a
// pre-joined string, and always held in the comma-joined stored form.
type AreaList string

// NewAreaList joins tags in the stored form.
func NewAreaList(tags []string) AreaList {
	return AreaList(strings.Join(tags, ","))
}

// UnmarshalJSON accepts null, "A,B" and ["A","B"].
func (a *AreaList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '[':
		var tags []string
		if err := json.Unmarshal(data, &tags); err != nil {
			return fmt.Errorf("areas_of_interest: %w", err)
		}
		*a = NewAreaList(tags)
		return nil
	default:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("areas_of_interest: %w", err)
		}
		*a = AreaList(s)
		return nil
	}
}

// ── responses ──

// UserProfile login payload; never carries the password hash.
type UserProfile struct {
	ID                int64  `json:"id"`
	FullName          string `json:"fullname"`
	Email             string `json:"email"`
	USI               string `json:"usi"`
	Address           string `json:"address"`
	Department        string `json:"department"`
	Year              string `json:"year"`
	Telephone         string `json:"telephone"`
	EmergencyContact  string `json:"emergency_contact"`
	Interest          string `json:"interest"`
	AreasOfInterest   string `json:"areas_of_interest"`
	LevelOfExperience string `json:"level_of_experience"`
}

// RegistrationSummary one row of the registrations listing
type RegistrationSummary struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	USI       string    `json:"usi"`
	CreatedAt time.Time `json:"created_at"`
}
