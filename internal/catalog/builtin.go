package catalog

import "github.com/hyperjump/lapwise/internal/models"

const placeholderImage = "/placeholder.svg"

// Builtin returns a fresh copy of the built-in reference catalog.
func Builtin() []*models.LaptopSpec {
	return []*models.LaptopSpec{
		{
			ID:           "macbook-air-m2",
			Name:         `MacBook Air 13" with M2 Chip`,
			Brand:        "Apple",
			Price:        1099,
			Currency:     "$",
			Image:        placeholderImage,
			CPU:          "Apple M2 8-core CPU",
			RAM:          "8GB Unified Memory",
			Storage:      "256GB SSD",
			Screen:       `13.6" Liquid Retina (2560x1664)`,
			Battery:      "Up to 18 hours",
			Weight:       "2.7 lbs (1.24 kg)",
			OS:           "macOS Ventura",
			Rating:       4.8,
			ReviewCount:  1247,
			Seller:       "Apple Store",
			Availability: "In Stock",
			URL:          "https://apple.com/macbook-air",
		},
		{
			ID:           "dell-xps-13-plus",
			Name:         "Dell XPS 13 Plus",
			Brand:        "Dell",
			Price:        1299,
			Currency:     "$",
			Image:        placeholderImage,
			CPU:          "Intel Core i7-1260P",
			RAM:          "16GB LPDDR5",
			Storage:      "512GB PCIe NVMe SSD",
			Screen:       `13.4" FHD+ (1920x1200)`,
			Battery:      "Up to 12 hours",
			Weight:       "2.73 lbs (1.24 kg)",
			OS:           "Windows 11 Home",
			Rating:       4.5,
			ReviewCount:  892,
			Seller:       "Dell",
			Availability: "In Stock",
			URL:          "https://dell.com/xps-13-plus",
		},
		{
			ID:           "thinkpad-x1-carbon-gen-11",
			Name:         "Lenovo ThinkPad X1 Carbon Gen 11",
			Brand:        "Lenovo",
			Price:        1449,
			Currency:     "$",
			Image:        placeholderImage,
			CPU:          "Intel Core i7-1365U vPro",
			RAM:          "16GB LPDDR5",
			Storage:      "512GB PCIe Gen4 SSD",
			Screen:       `14" WUXGA (1920x1200) IPS`,
			Battery:      "Up to 15 hours",
			Weight:       "2.48 lbs (1.12 kg)",
			OS:           "Windows 11 Pro",
			Rating:       4.6,
			ReviewCount:  634,
			Seller:       "Lenovo",
			Availability: "In Stock",
			URL:          "https://lenovo.com/thinkpad-x1-carbon",
		},
		{
			ID:           "asus-zenbook-14",
			Name:         "ASUS ZenBook 14 OLED",
			Brand:        "ASUS",
			Price:        899,
			Currency:     "$",
			Image:        placeholderImage,
			CPU:          "AMD Ryzen 7 5825U",
			RAM:          "16GB DDR4",
			Storage:      "512GB PCIe SSD",
			Screen:       `14" OLED (2880x1800)`,
			Battery:      "Up to 13 hours",
			Weight:       "3.09 lbs (1.4 kg)",
			OS:           "Windows 11 Home",
			Rating:       4.3,
			ReviewCount:  423,
			Seller:       "ASUS",
			Availability: "In Stock",
			URL:          "https://asus.com/zenbook-14",
		},
		{
			ID:           "macbook-pro-14",
			Name:         `MacBook Pro 14" M2 Pro`,
			Brand:        "Apple",
			Price:        1999,
			Currency:     "$",
			Image:        placeholderImage,
			CPU:          "Apple M2 Pro 10-core CPU",
			RAM:          "16GB Unified Memory",
			Storage:      "512GB SSD",
			Screen:       `14.2" Liquid Retina XDR (3024x1964)`,
			Battery:      "Up to 18 hours",
			Weight:       "3.5 lbs (1.6 kg)",
			OS:           "macOS Ventura",
			Rating:       4.9,
			ReviewCount:  567,
			Seller:       "Apple Store",
			Availability: "In Stock",
			URL:          "https://apple.com/macbook-pro-14",
		},
		{
			ID:           "hp-spectre-x360",
			Name:         `HP Spectre x360 14"`,
			Brand:        "HP",
			Price:        1199,
			Currency:     "$",
			Image:        placeholderImage,
			CPU:          "Intel Core i7-1255U",
			RAM:          "16GB LPDDR4x",
			Storage:      "512GB PCIe NVMe SSD",
			Screen:       `13.5" OLED (3000x2000)`,
			Battery:      "Up to 11 hours",
			Weight:       "2.95 lbs (1.34 kg)",
			OS:           "Windows 11 Home",
			Rating:       4.4,
			ReviewCount:  298,
			Seller:       "HP",
			Availability: "In Stock",
			URL:          "https://hp.com/spectre-x360",
		},
	}
}
