package models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	gorm.Model
	EmployeeID string `gorm:"type:varchar(32);uniqueIndex;not null"` // public id, e.g. "ramesh48213"
	Email      string `gorm:"uniqueIndex;not null"`
	Password   string `gorm:"not null"`
	FullName   string
	Phone      string `gorm:"size:16"`
	Role       string `gorm:"size:16;not null;default:employee"` // "admin" | "manager" | "employee"
	ManagerID  *uint  `gorm:"index"`                             // direct manager, nil for admins/managers
	VillageID  *uint  `gorm:"index"`                             // assigned village, nil until posted
	Disabled   bool   `gorm:"default:false"`
}
