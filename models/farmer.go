package models

import "gorm.io/gorm"

// Farmer is one master record captured in the field by an employee.
type Farmer struct {
	gorm.Model
	Name        string  `gorm:"not null"`
	Phone       string  `gorm:"size:16;index"`
	Crop        string  `gorm:"size:64"`
	LandAcres   float64
	VillageID   uint `gorm:"index;not null"`
	CollectedBy uint `gorm:"index;not null"` // users.id of the employee who registered the farmer
}
