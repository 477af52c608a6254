package extract

import "testing"

func TestBrandFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.hp.com/us-en/laptops", "HP"},
		{"https://shop.lenovo.com/thinkpad", "Lenovo"},
		{"https://apple.com/macbook-air", "Apple"},
		{"https://www.msi.com/Laptops", "MSI"},
		{"https://www.amazon.com/dp/1", ""},
		{"https://cheaphp.com/x", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		if got := BrandFromURL(tt.url); got != tt.want {
			t.Errorf("BrandFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestBrandFromContent(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"The new Dell XPS", "Dell"},
		{"asus zenbook", "ASUS"},
		{"Apple and Dell compared", "Apple"},
		{"Microsoft Surface Laptop", "Microsoft"},
		{"a generic notebook", ""},
		{"shipping options", ""},
	}
	for _, tt := range tests {
		if got := BrandFromContent(tt.content); got != tt.want {
			t.Errorf("BrandFromContent(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}

func TestSellerFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.amazon.com/dp/x", "Amazon"},
		{"https://www.bestbuy.com/site/x", "Best Buy"},
		{"https://www.newegg.com/p/x", "Newegg"},
		{"https://www.apple.com/macbook", "Apple Store"},
		{"https://www.dell.com/xps", "Dell"},
		{"https://www.microcenter.com/product/1", "microcenter"},
		{"garbage", "Online Retailer"},
	}
	for _, tt := range tests {
		if got := SellerFromURL(tt.url); got != tt.want {
			t.Errorf("SellerFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://apple.com/macbook-air", "macbook-air"},
		{"https://www.bestbuy.com/site/hp-spectre/6525.p?skuId=1", "6525-p"},
		{"https://www.amazon.com/dp/B0ABC/", "b0abc"},
		{"https://dell.com/", ""},
		{"Some_Laptop", "some-laptop"},
	}
	for _, tt := range tests {
		if got := IDFromURL(tt.url); got != tt.want {
			t.Errorf("IDFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestInferOS(t *testing.T) {
	tests := []struct {
		brand, name, want string
	}{
		{"Apple", "", "macOS"},
		{"", "MacBook Pro 14", "macOS"},
		{"Lenovo", "ThinkPad X1", "Windows 11"},
		{"", "", "Windows 11"},
	}
	for _, tt := range tests {
		if got := InferOS(tt.brand, tt.name); got != tt.want {
			t.Errorf("InferOS(%q, %q) = %q, want %q", tt.brand, tt.name, got, tt.want)
		}
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("<p>Hello&nbsp;<b>World</b></p>\n\n  again")
	if got != "Hello World again" {
		t.Errorf("CleanText = %q", got)
	}
}

func TestNormalizeBrand(t *testing.T) {
	if got := NormalizeBrand(" asus "); got != "ASUS" {
		t.Errorf("NormalizeBrand = %q, want ASUS", got)
	}
	if got := NormalizeBrand("Framework"); got != "Framework" {
		t.Errorf("NormalizeBrand = %q, want Framework", got)
	}
}

func TestBrandFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"MacBook Air 13-inch", "Apple"},
		{"Lenovo Yoga 7i", "Lenovo"},
		{"ThinkPad X1 Carbon Gen 11", "Lenovo"},
		{"XPS 15 9530", "Dell"},
		{"ZenBook 14 OLED", "ASUS"},
		{"Surface Laptop 5", "Microsoft"},
		{"Galaxy Book3 Pro", "Samsung"},
		{"Framework Laptop 13", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BrandFromName(tt.name); got != tt.want {
				t.Errorf("BrandFromName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
