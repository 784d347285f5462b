package model

import "time"

// User registered club member, table ugcc_registration
type User struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"                                    json:"id"`
	FullName          string    `gorm:"column:fullname;type:varchar(255);not null"                  json:"fullname"`
	Email             string    `gorm:"type:varchar(255);not null;uniqueIndex:uk_ugcc_registration_email" json:"email"`
	USI               string    `gorm:"column:usi;type:varchar(10);not null;uniqueIndex:uk_ugcc_registration_usi" json:"usi"`
	PasswordHash      string    `gorm:"column:password;type:varchar(255);not null"                  json:"-"`
	Address           string    `gorm:"type:varchar(255);not null;default:''"                       json:"address"`
	Department        string    `gorm:"type:varchar(255);not null;default:''"                       json:"department"`
	Year              string    `gorm:"type:varchar(50);not null;default:''"                        json:"year"`
	Telephone         string    `gorm:"type:varchar(50);not null;default:''"                        json:"telephone"`
	EmergencyContact  string    `gorm:"type:varchar(255);not null;default:''"                       json:"emergency_contact"`
	Interest          string    `gorm:"type:varchar(1000);not null;default:''"                      json:"interest"`
	AreasOfInterest   string    `gorm:"type:varchar(1000);not null;default:''"                      json:"areas_of_interest"`
	LevelOfExperience string    `gorm:"type:varchar(100);not null;default:''"                       json:"level_of_experience"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime"                                     json:"created_at"`
}

// TableName fixed table name shared with the legacy schema
func (User) TableName() string { return "ugcc_registration" }

// ApplyProfile overwrites identity and profile fields from src.
// ID, PasswordHash and CreatedAt are left untouched.
func (u *User) ApplyProfile(src *User) {
	u.FullName = src.FullName
	u.Email = src.Email
	u.USI = src.USI
	u.Address = src.Address
	u.Department = src.Department
	u.Year = src.Year
	u.Telephone = src.Telephone
	u.EmergencyContact = src.EmergencyContact
	u.Interest = src.Interest
	u.AreasOfInterest = src.AreasOfInterest
	u.LevelOfExperience = src.LevelOfExperience
}
