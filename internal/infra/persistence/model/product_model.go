// Package model holds the GORM-specific structs mapping domain entities to
// database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// Category and Tags are nullable: tags are stored comma-joined, NULL when
// the product carries none.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	ImageURL    string    `gorm:"column:image_url;type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Category    *string   `gorm:"type:varchar(255)"`
	Tags        *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
