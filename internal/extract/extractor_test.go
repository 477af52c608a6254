package extract

import (
	"testing"
)

const amazonPage = `<html><head><title>Dell XPS 13 Laptop - Amazon.com</title></head>
<body>
<span id="productTitle" class="a-size-large"> Dell XPS 13 Plus Laptop </span>
<span class="a-price">$1,299.00</span>
<p>Intel Core i7-1360P processor, 16GB LPDDR5 RAM, 512GB SSD, 13.4" FHD+ display 1920x1200</p>
<span>4.5 out of 5 stars</span>
</body></html>`

func TestExtract_amazon(t *testing.T) {
	r := Extract(amazonPage, "https://www.amazon.com/dp/B0B123")

	tests := []struct {
		field  Field
		value  string
		ruleID string
	}{
		{FieldName, "Dell XPS 13 Plus Laptop", "amazon.title.product"},
		{FieldBrand, "Dell", "brand.content"},
		{FieldPrice, "$1,299.00", "amazon.price.dollar"},
		{FieldCPU, "Intel Core i7-1360P", "generic.cpu.intel-core"},
		{FieldRAM, "16GB LPDDR5", "generic.ram.gb"},
		{FieldStorage, "512GB SSD", "generic.storage.ssd"},
		{FieldScreen, `13.4" (1920x1200)`, "generic.screen.inches"},
		{FieldRating, "4.5", "amazon.rating.out-of-5"},
	}
	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			m := r.Match(tt.field)
			if m == nil {
				t.Fatalf("no match for %s", tt.field)
			}
			if m.Value != tt.value {
				t.Errorf("value = %q, want %q", m.Value, tt.value)
			}
			if m.RuleID != tt.ruleID {
				t.Errorf("rule = %q, want %q", m.RuleID, tt.ruleID)
			}
		})
	}

	if r.Price != 1299 || r.Currency != "$" {
		t.Errorf("price = %v %q, want 1299 $", r.Price, r.Currency)
	}
	if r.Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", r.Rating)
	}
	if !r.Valid() {
		t.Error("Valid() = false, want true")
	}
	if r.FieldCount() != 8 {
		t.Errorf("FieldCount() = %d, want 8", r.FieldCount())
	}
}

func TestExtract_bestBuyCurrentPrice(t *testing.T) {
	content := `<h1 class="heading">HP Spectre x360 2-in-1 Laptop</h1>
<div>Was $1,499.99</div>
<div aria-label="current price">Your price: $1,199.99</div>`

	r := Extract(content, "https://www.bestbuy.com/site/hp-spectre/6525.p")
	if r.Name != "HP Spectre x360 2-in-1 Laptop" {
		t.Errorf("name = %q", r.Name)
	}
	if got := r.Match(FieldName).RuleID; got != "bestbuy.title.h1" {
		t.Errorf("name rule = %q, want bestbuy.title.h1", got)
	}
	if r.Price != 1199.99 {
		t.Errorf("price = %v, want 1199.99", r.Price)
	}
	if got := r.Match(FieldPrice).RuleID; got != "bestbuy.price.current" {
		t.Errorf("price rule = %q, want bestbuy.price.current", got)
	}
	if r.Brand != "HP" {
		t.Errorf("brand = %q, want HP", r.Brand)
	}
	if r.Has(FieldScreen) {
		t.Errorf("unexpected screen %q", r.Screen)
	}
}

func TestExtract_apple(t *testing.T) {
	content := `<h1>MacBook Air 13-inch with M2 chip</h1>
<p>From $1,099 or $91.58/mo.</p>
<p>Apple M2 chip with 8-core CPU</p>
<p>8GB unified memory</p>
<p>256GB SSD storage</p>`

	r := Extract(content, "https://www.apple.com/shop/buy-mac/macbook-air")
	want := map[Field]string{
		FieldName:    "MacBook Air 13-inch with M2 chip",
		FieldBrand:   "Apple",
		FieldCPU:     "Apple M2",
		FieldRAM:     "8GB unified memory",
		FieldStorage: "256GB SSD",
		FieldScreen:  `13"`,
	}
	for field, value := range want {
		m := r.Match(field)
		if m == nil {
			t.Errorf("%s: no match", field)
			continue
		}
		if m.Value != value {
			t.Errorf("%s = %q, want %q", field, m.Value, value)
		}
	}
	if got := r.Match(FieldBrand).RuleID; got != "apple.brand" {
		t.Errorf("brand rule = %q, want apple.brand", got)
	}
	if r.Price != 1099 || r.Match(FieldPrice).RuleID != "apple.price.from" {
		t.Errorf("price = %v via %q, want 1099 via apple.price.from", r.Price, r.Match(FieldPrice).RuleID)
	}
}

func TestExtract_plainText(t *testing.T) {
	r := Extract("Lenovo IdeaPad 5 with AMD Ryzen 7 5700U, 16 GB DDR4, 1TB NVMe, 15.6 inch display", "")

	if r.Brand != "Lenovo" || r.Match(FieldBrand).RuleID != "brand.content" {
		t.Errorf("brand = %q", r.Brand)
	}
	if r.CPU != "AMD Ryzen 7 5700U" {
		t.Errorf("cpu = %q", r.CPU)
	}
	if r.RAM != "16 GB DDR4" {
		t.Errorf("ram = %q", r.RAM)
	}
	if r.Storage != "1TB NVMe" {
		t.Errorf("storage = %q", r.Storage)
	}
	if r.Screen != `15.6"` {
		t.Errorf("screen = %q", r.Screen)
	}
	if r.Has(FieldName) || r.Has(FieldPrice) {
		t.Errorf("unexpected name %q or price %v", r.Name, r.Price)
	}
	if r.Valid() {
		t.Error("Valid() = true without a name")
	}
}

func TestExtract_currentPriceJSON(t *testing.T) {
	r := Extract(`{"name":"x","currentPrice": 749.99}`, "https://shop.example.com/laptop/1")
	if r.Price != 749.99 {
		t.Errorf("price = %v, want 749.99", r.Price)
	}
	if got := r.Match(FieldPrice).RuleID; got != "generic.price.current" {
		t.Errorf("price rule = %q", got)
	}
}

func TestExtract_noMatches(t *testing.T) {
	for _, content := range []string{"", "hello world", "<<<>>>&&;;", "$"} {
		r := Extract(content, "::not a url::")
		if !r.Empty() {
			t.Errorf("Extract(%q) = %+v, want empty", content, r.Matches)
		}
	}
}

func TestRetailerFor(t *testing.T) {
	e := NewExtractor()
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.amazon.co.uk/dp/1", "amazon"},
		{"https://www.bestbuy.com/site/1.p", "bestbuy"},
		{"https://www.newegg.com/p/1", "newegg"},
		{"https://www.apple.com/macbook-pro", "apple"},
		{"https://www.dell.com/en-us/shop", "dell"},
		{"https://www.example.com/laptop", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := ""
		if r := e.RetailerFor(tt.url); r != nil {
			got = r.ID
		}
		if got != tt.want {
			t.Errorf("RetailerFor(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"$1,299.00", 1299, true},
		{"899", 899, true},
		{"$2,499.", 2499, true},
		{"$0", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrice(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePrice(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
