package models

import "gorm.io/gorm"

// State → District → Mandal → Village, the administrative hierarchy
// field staff are posted into and farmers are registered under.

type State struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null"`
}

type District struct {
	gorm.Model
	Name    string `gorm:"not null"`
	StateID uint   `gorm:"index;not null"`
}

type Mandal struct {
	gorm.Model
	Name       string `gorm:"not null"`
	DistrictID uint   `gorm:"index;not null"`
}

type Village struct {
	gorm.Model
	Name     string `gorm:"not null"`
	MandalID uint   `gorm:"index;not null"`
}
