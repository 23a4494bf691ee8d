// Package models contains database model definitions.
package models

// Setting represents a key/value configuration entry stored in the database.
type Setting struct {
	Key   string `gorm:"primaryKey;size:191" json:"key"`
	Value string `gorm:"type:text"           json:"value"`
}
