package model

// Platform is a purchase channel a product can be bought through.
type Platform string

const (
	PlatformAmazon   Platform = "amazon"
	PlatformMyntra   Platform = "myntra"
	PlatformFlipkart Platform = "flipkart"
	PlatformMeesho   Platform = "meesho"
	PlatformDirect   Platform = "direct"
)

// PlatformInfo is the storefront display entry for a platform.
type PlatformInfo struct {
	Platform    Platform `json:"platform"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	RequiresURL bool     `json:"requiresUrl"`
}

var platformTable = []PlatformInfo{
	{Platform: PlatformAmazon, Label: "Amazon", Color: "#F97316", RequiresURL: true},
	{Platform: PlatformMyntra, Label: "Myntra", Color: "#EC4899", RequiresURL: true},
	{Platform: PlatformFlipkart, Label: "Flipkart", Color: "#3B82F6", RequiresURL: true},
	{Platform: PlatformMeesho, Label: "Meesho", Color: "#EF4444", RequiresURL: true},
	{Platform: PlatformDirect, Label: "Buy Directly", Color: "#D4AF37", RequiresURL: false},
}

// Platforms returns every supported platform in display order.
func Platforms() []PlatformInfo {
	out := make([]PlatformInfo, len(platformTable))
	copy(out, platformTable)
	return out
}

// Info looks up the display entry for p.
func (p Platform) Info() (PlatformInfo, bool) {
	for _, info := range platformTable {
		if info.Platform == p {
			return info, true
		}
	}
	return PlatformInfo{}, false
}

func (p Platform) Valid() bool {
	_, ok := p.Info()
	return ok
}

// RequiresURL is false only for direct purchases, which are handled in-store.
func (p Platform) RequiresURL() bool {
	info, ok := p.Info()
	return ok && info.RequiresURL
}

// Gender is the target audience of a category.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}
