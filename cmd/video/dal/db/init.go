package db

import "gorm.io/gorm"

var DB *gorm.DB

// Init wires the shared database handle into this dal.
func Init(conn *gorm.DB) {
	DB = conn
}
