package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is a single catalog item. SKU is unique and CategoryID must
// reference an existing category.
type Product struct {
	ID            string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	SKU           string                      `json:"sku" gorm:"type:varchar(64);uniqueIndex;not null"`
	Name          string                      `json:"name" gorm:"type:text;not null"`
	Description   string                      `json:"description" gorm:"type:text;not null"`
	Price         Price                       `json:"price" gorm:"type:decimal(10,2);not null"`
	Material      string                      `json:"material" gorm:"type:text;not null"`
	Weight        string                      `json:"weight" gorm:"type:text;not null"`
	CategoryID    string                      `json:"categoryId" gorm:"type:varchar(36);not null;index"`
	Category      *Category                   `json:"-" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Images        datatypes.JSONSlice[string] `json:"images" gorm:"not null"`
	IsActive      bool                        `json:"isActive" gorm:"not null;index"`
	StockQuantity int                         `json:"stockQuantity" gorm:"not null"`
	CreatedAt     time.Time                   `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	return nil
}

// ProductWithDetails is the read view served to the storefront: a product
// with its category and every platform link it owns.
type ProductWithDetails struct {
	Product
	Category      Category       `json:"category"`
	PlatformLinks []PlatformLink `json:"platformLinks"`
}
