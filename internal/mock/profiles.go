package mock

// Profile is the capability set a brand's mock laptops are drawn from.
type Profile struct {
	Brand    string
	CPUs     []string
	RAMs     []string
	Models   []string
	MinPrice int
	MaxPrice int
	Screen   string
	Battery  string
	Weight   string
	OS       string
	Image    string
}

var storages = []string{"256GB SSD", "512GB SSD", "1TB SSD"}

const (
	defaultMinPrice = 599
	defaultMaxPrice = 1499

	windowsScreen  = `14" FHD Display`
	windowsBattery = "Up to 8 hours"
	windowsWeight  = "3.2 lbs"
	windowsOS      = "Windows 11"
)

// fallbackBrand is the profile used for brands without one.
const fallbackBrand = "Dell"

var profiles = map[string]*Profile{
	"Apple": {
		Brand:    "Apple",
		CPUs:     []string{"Apple M2", "Apple M2 Pro", "Apple M2 Max"},
		RAMs:     []string{"8GB Unified Memory", "16GB Unified Memory", "32GB Unified Memory"},
		Models:   []string{"MacBook Air", `MacBook Pro 14"`, `MacBook Pro 16"`},
		MinPrice: 999,
		MaxPrice: 2499,
		Screen:   `13.6" Liquid Retina`,
		Battery:  "Up to 18 hours",
		Weight:   "2.7 lbs",
		OS:       "macOS",
		Image:    "https://store.storeimages.cdn-apple.com/4982/as-images.apple.com/is/macbook-air-midnight-select-20220606",
	},
	"Dell": {
		Brand:    "Dell",
		CPUs:     []string{"Intel Core i5-1340P", "Intel Core i7-1360P", "AMD Ryzen 7 7730U"},
		RAMs:     []string{"8GB DDR4", "16GB DDR4", "32GB DDR4"},
		Models:   []string{"XPS 13", "Inspiron 15", "Latitude 5530", "Precision 3570"},
		MinPrice: 599,
		MaxPrice: 1899,
		Image:    "https://i.dell.com/is/image/DellContent/content/dam/ss2/product-images/dell-client-products/notebooks/xps-notebooks/13-9315/media-gallery/xs9315-cnb-00000ff090-gy.psd",
	},
	"HP": {
		Brand:    "HP",
		CPUs:     []string{"Intel Core i5-1235U", "Intel Core i7-1355U", "AMD Ryzen 5 7530U"},
		RAMs:     []string{"8GB DDR4", "16GB DDR4", "32GB DDR4"},
		Models:   []string{"Pavilion 15", "Envy x360", "Spectre x360", "EliteBook 850"},
		MinPrice: 549,
		MaxPrice: 1699,
		Image:    "https://ssl-product-images.www8-hp.com/digmedialib/prodimg/lowres/c07929143.png",
	},
	"Lenovo": {
		Brand:    "Lenovo",
		CPUs:     []string{"Intel Core i5-1335U", "Intel Core i7-1365U", "AMD Ryzen 7 7730U"},
		RAMs:     []string{"8GB DDR4", "16GB DDR4", "32GB LPDDR5"},
		Models:   []string{"ThinkPad X1 Carbon", "IdeaPad 5", "Yoga 7i", "Legion 5"},
		MinPrice: 599,
		MaxPrice: 1799,
		Image:    "https://psref.lenovo.com/images/products/ThinkPad_X1_Carbon_Gen_11.png",
	},
	"ASUS": {
		Brand:    "ASUS",
		CPUs:     []string{"AMD Ryzen 7 7735HS", "Intel Core i7-1360P", "AMD Ryzen 9 7940HS"},
		RAMs:     []string{"8GB LPDDR5", "16GB LPDDR5", "32GB DDR5"},
		Models:   []string{"ZenBook 14", "VivoBook 15", "ROG Zephyrus G14", "TUF Gaming A15"},
		MinPrice: 549,
		MaxPrice: 1599,
		Image:    "https://dlcdnwebimgs.asus.com/gain/319D3969-6292-4C76-A571-C76C5B4EC1F1/w800/h450",
	},
	"Acer": {
		Brand:  "Acer",
		CPUs:   []string{"Intel Core i5-1335U", "Intel Core i7-13620H", "AMD Ryzen 5 7520U"},
		RAMs:   []string{"8GB DDR4", "16GB DDR4", "16GB LPDDR5"},
		Models: []string{"Swift Go 14", "Aspire 5", "Nitro 5", "Swift X"},
		Image:  "https://static.acer.com/up/Resource/Acer/Laptops/Swift_3/Images/20220321/Acer-Swift3-SF314-512-gallery-01.png",
	},
	"MSI": {
		Brand:  "MSI",
		CPUs:   []string{"Intel Core i7-13620H", "Intel Core i9-13900H", "AMD Ryzen 7 7840HS"},
		RAMs:   []string{"16GB DDR5", "32GB DDR5"},
		Models: []string{"Katana 15", "Stealth 16", "Prestige 14", "Cyborg 15"},
		Image:  "https://asset.msi.com/resize/image/global/product/product_1644834398c4c42fab070cf998d19362002869808d.png62405b38c58fe0f07fcef2367d8a9ba1/1024.png",
	},
	"Microsoft": {
		Brand:  "Microsoft",
		CPUs:   []string{"Intel Core i5-1335U", "Intel Core i7-1365U"},
		RAMs:   []string{"8GB LPDDR5x", "16GB LPDDR5x", "32GB LPDDR5x"},
		Models: []string{"Surface Laptop 5", "Surface Laptop Studio 2", "Surface Pro 9"},
		Image:  "https://img-prod-cms-rt-microsoft-com.akamaized.net/cms/api/am/imageFileData/RE4LqQX",
	},
	"Samsung": {
		Brand:  "Samsung",
		CPUs:   []string{"Intel Core i5-1340P", "Intel Core i7-1360P"},
		RAMs:   []string{"8GB LPDDR5", "16GB LPDDR5"},
		Models: []string{"Galaxy Book3 Pro", "Galaxy Book3 360", "Galaxy Book3 Ultra"},
	},
}

func init() {
	for _, p := range profiles {
		if p.MinPrice == 0 {
			p.MinPrice, p.MaxPrice = defaultMinPrice, defaultMaxPrice
		}
		if p.Screen == "" {
			p.Screen, p.Battery, p.Weight = windowsScreen, windowsBattery, windowsWeight
		}
		if p.OS == "" {
			p.OS = windowsOS
		}
		if p.Image == "" {
			p.Image = profiles[fallbackBrand].Image
		}
	}
}

// ProfileFor returns the profile for brand, or the fallback profile and false.
func ProfileFor(brand string) (*Profile, bool) {
	if p, ok := profiles[brand]; ok {
		return p, true
	}
	return profiles[fallbackBrand], false
}

// BrandImage returns the stock image for brand.
func BrandImage(brand string) string {
	p, _ := ProfileFor(brand)
	return p.Image
}
