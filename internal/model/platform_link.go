package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlatformLink is a purchase channel owned by one product. URL is nil for
// direct purchases.
type PlatformLink struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ProductID string    `json:"productId" gorm:"type:varchar(36);not null;index"`
	Product   *Product  `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Platform  Platform  `json:"platform" gorm:"type:varchar(16);not null"`
	URL       *string   `json:"url" gorm:"type:text"`
	IsActive  bool      `json:"isActive" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PlatformLink) TableName() string {
	return "platform_links"
}

func (l *PlatformLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
