package storage

import "github.com/amd4k/ZHV/internal/model"

type seedCategory struct {
	Name        string
	Code        string
	Gender      model.Gender
	Description string
}

type seedProduct struct {
	SKU           string
	Name          string
	Description   string
	Price         string
	Material      string
	Weight        string
	CategoryCode  string
	Images        []string
	StockQuantity int
}

type seedLink struct {
	Platform model.Platform
	IsActive bool
}

var seedCategories = []seedCategory{
	{Name: "Necklaces", Code: "NK", Gender: model.GenderWomen, Description: "Elegant necklaces for women"},
	{Name: "Earrings", Code: "ER", Gender: model.GenderWomen, Description: "Beautiful earrings collection"},
	{Name: "Jhumkas", Code: "JH", Gender: model.GenderWomen, Description: "Traditional jhumka designs"},
	{Name: "Rings", Code: "RG", Gender: model.GenderWomen, Description: "Stunning rings for every occasion"},
	{Name: "Bangles", Code: "BN", Gender: model.GenderWomen, Description: "Elegant bangles and bracelets"},
	{Name: "Jewelry Sets", Code: "ST", Gender: model.GenderWomen, Description: "Complete jewelry sets"},
	{Name: "Rings", Code: "MRG", Gender: model.GenderMen, Description: "Sophisticated rings for men"},
	{Name: "Bracelets", Code: "BR", Gender: model.GenderMen, Description: "Stylish bracelets for men"},
	{Name: "Chains", Code: "MNK", Gender: model.GenderMen, Description: "Premium chains and necklaces"},
}

var seedProducts = []seedProduct{
	{
		SKU:          "ZHV-NK-001",
		Name:         "Eternal Elegance Diamond Necklace",
		Description:  "A stunning 18K gold necklace featuring brilliant cut diamonds arranged in an intricate pattern. Perfect for special occasions and formal events.",
		Price:        "245000.00",
		Material:     "18K Gold, Diamonds",
		Weight:       "25.4g",
		CategoryCode: "NK",
		Images: []string{
			"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
			"https://images.unsplash.com/photo-1611652022419-a9419f74343d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
		},
		StockQuantity: 15,
	},
	{
		SKU:          "ZHV-ER-001",
		Name:         "Royal Ruby Drop Earrings",
		Description:  "Exquisite ruby drop earrings set in 18K white gold with diamond accents. A timeless piece that adds elegance to any outfit.",
		Price:        "185000.00",
		Material:     "18K White Gold, Rubies, Diamonds",
		Weight:       "12.8g",
		CategoryCode: "ER",
		Images: []string{
			"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
		},
		StockQuantity: 8,
	},
	{
		SKU:          "ZHV-JH-001",
		Name:         "Heritage Kundan Jhumkas",
		Description:  "Traditional kundan jhumkas with intricate gold work and pearl drops. A perfect blend of heritage and contemporary design.",
		Price:        "125000.00",
		Material:     "22K Gold, Kundan, Pearls",
		Weight:       "18.5g",
		CategoryCode: "JH",
		Images: []string{
			"https://images.unsplash.com/photo-1611652022419-a9419f74343d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
		},
		StockQuantity: 12,
	},
	{
		SKU:          "ZHV-RG-001",
		Name:         "Princess Cut Diamond Ring",
		Description:  "A magnificent solitaire ring featuring a 2-carat princess cut diamond set in platinum. Symbol of eternal love and commitment.",
		Price:        "350000.00",
		Material:     "Platinum, Diamond (2ct)",
		Weight:       "8.2g",
		CategoryCode: "RG",
		Images: []string{
			"https://images.unsplash.com/photo-1605100804763-247f67b3557e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
		},
		StockQuantity: 5,
	},
	{
		SKU:          "ZHV-BN-001",
		Name:         "Classic Gold Bangles Set",
		Description:  "Set of 4 classic gold bangles with traditional engravings. Perfect for daily wear and special occasions.",
		Price:        "95000.00",
		Material:     "22K Gold",
		Weight:       "45.6g",
		CategoryCode: "BN",
		Images: []string{
			"https://images.unsplash.com/photo-1611652022419-a9419f74343d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=800",
		},
		StockQuantity: 20,
	},
}

// meesho listings start disabled until the storefront is approved there.
var seedLinks = []seedLink{
	{Platform: model.PlatformAmazon, IsActive: true},
	{Platform: model.PlatformMyntra, IsActive: true},
	{Platform: model.PlatformFlipkart, IsActive: true},
	{Platform: model.PlatformMeesho, IsActive: false},
	{Platform: model.PlatformDirect, IsActive: true},
}
