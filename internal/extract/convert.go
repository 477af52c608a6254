package extract

import (
	"github.com/google/uuid"

	"github.com/hyperjump/lapwise/internal/models"
)

// NotSpecified fills string fields the extraction did not find.
const NotSpecified = "Not specified"

// ToSpec converts an extraction into a full LaptopSpec. Missing fields take
// "Not specified" defaults; OS and seller are inferred from brand, name and URL.
func ToSpec(r *Result, sourceURL string) *models.LaptopSpec {
	if r == nil {
		r = &Result{}
	}
	id := IDFromURL(sourceURL)
	if id == "" {
		id = uuid.NewString()
	}
	spec := &models.LaptopSpec{
		ID:           id,
		URL:          sourceURL,
		Name:         orDefault(r.Name, "Unknown Laptop"),
		Brand:        orDefault(r.Brand, "Unknown"),
		Price:        r.Price,
		Currency:     orDefault(r.Currency, "$"),
		CPU:          orDefault(r.CPU, NotSpecified),
		RAM:          orDefault(r.RAM, NotSpecified),
		Storage:      orDefault(r.Storage, NotSpecified),
		Screen:       orDefault(r.Screen, NotSpecified),
		Battery:      NotSpecified,
		Weight:       NotSpecified,
		OS:           InferOS(r.Brand, r.Name),
		Rating:       r.Rating,
		Seller:       SellerFromURL(sourceURL),
		Availability: "Available Online",
	}
	return spec
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
