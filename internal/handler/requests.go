package handler

import (
	"strings"

	"github.com/amd4k/ZHV/internal/model"
	"gorm.io/datatypes"
)

// CategoryRequest is the body of POST /api/categories
type CategoryRequest struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Code        string       `json:"code" validate:"required,alphanum,max=16"`
	Gender      model.Gender `json:"gender" validate:"required,gender"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
}

func (r *CategoryRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
}

func (r *CategoryRequest) toModel() *model.Category {
	return &model.Category{
		Name:        r.Name,
		Code:        r.Code,
		Gender:      r.Gender,
		Description: r.Description,
	}
}

// ProductRequest is the body of POST and PUT /api/products
type ProductRequest struct {
	SKU           string       `json:"sku" validate:"required,max=64"`
	Name          string       `json:"name" validate:"required,max=255"`
	Description   string       `json:"description" validate:"required"`
	Price         *model.Price `json:"price" validate:"required,price"`
	Material      string       `json:"material" validate:"required"`
	Weight        string       `json:"weight" validate:"required"`
	CategoryID    string       `json:"categoryId" validate:"required"`
	Images        []string     `json:"images" validate:"omitempty,dive,httpurl"`
	IsActive      *bool        `json:"isActive"`
	StockQuantity *int         `json:"stockQuantity" validate:"omitempty,min=0"`
}

func (r *ProductRequest) normalize() {
	r.SKU = strings.TrimSpace(r.SKU)
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Material = strings.TrimSpace(r.Material)
	r.Weight = strings.TrimSpace(r.Weight)
	r.CategoryID = strings.TrimSpace(r.CategoryID)
	for i, img := range r.Images {
		r.Images[i] = strings.TrimSpace(img)
	}
}

func (r *ProductRequest) toModel() *model.Product {
	p := &model.Product{
		SKU:         r.SKU,
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Material:    r.Material,
		Weight:      r.Weight,
		CategoryID:  r.CategoryID,
		Images:      datatypes.JSONSlice[string]{},
		IsActive:    true,
	}
	if len(r.Images) > 0 {
		p.Images = datatypes.JSONSlice[string](r.Images)
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
	if r.StockQuantity != nil {
		p.StockQuantity = *r.StockQuantity
	}
	return p
}

// PlatformLinkRequest is the body of the platform link write endpoints. On
// create the product comes from the path; on update an empty productId
// keeps the current owner.
type PlatformLinkRequest struct {
	ProductID string         `json:"productId"`
	Platform  model.Platform `json:"platform" validate:"required,platform"`
	URL       *string        `json:"url" validate:"omitempty,httpurl"`
	IsActive  *bool          `json:"isActive"`
}

func (r *PlatformLinkRequest) normalize() {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.Platform = model.Platform(strings.ToLower(strings.TrimSpace(string(r.Platform))))
	if r.URL != nil {
		u := strings.TrimSpace(*r.URL)
		if u == "" {
			r.URL = nil
		} else {
			r.URL = &u
		}
	}
}

func (r *PlatformLinkRequest) toModel() *model.PlatformLink {
	l := &model.PlatformLink{
		ProductID: r.ProductID,
		Platform:  r.Platform,
		URL:       r.URL,
		IsActive:  true,
	}
	if r.IsActive != nil {
		l.IsActive = *r.IsActive
	}
	return l
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
}
