package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/hyperjump/lapwise/internal/models"
)

// File is the YAML catalog layout.
type File struct {
	Laptops []*models.LaptopSpec `yaml:"laptops"`
}

// LoadFile reads a .yaml, .yml or .xlsx catalog.
func LoadFile(path string) ([]*models.LaptopSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(content)
	case ".xlsx":
		return ParseXLSX(content)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %q", ext)
	}
}

// ParseYAML decodes a catalog from YAML with a top-level "laptops" list.
func ParseYAML(content []byte) ([]*models.LaptopSpec, error) {
	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return normalize(f.Laptops)
}

// ParseXLSX decodes the first sheet of a workbook. The first row names the
// LaptopSpec fields; columns with unknown headers are ignored.
func ParseXLSX(content []byte) ([]*models.LaptopSpec, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catalog sheet %s has no data rows", sheets[0])
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	laptops := make([]*models.LaptopSpec, 0, len(rows)-1)
	for r, row := range rows[1:] {
		l := &models.LaptopSpec{}
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			if err := setField(l, header[i], strings.TrimSpace(cell)); err != nil {
				return nil, fmt.Errorf("row %d: %w", r+2, err)
			}
		}
		laptops = append(laptops, l)
	}
	return normalize(laptops)
}

func setField(l *models.LaptopSpec, column, value string) error {
	if value == "" {
		return nil
	}
	switch column {
	case "id":
		l.ID = value
	case "url":
		l.URL = value
	case "name":
		l.Name = value
	case "brand":
		l.Brand = value
	case "seller":
		l.Seller = value
	case "availability":
		l.Availability = value
	case "os":
		l.OS = value
	case "currency":
		l.Currency = value
	case "cpu":
		l.CPU = value
	case "gpu":
		l.GPU = value
	case "ram":
		l.RAM = value
	case "storage":
		l.Storage = value
	case "screen":
		l.Screen = value
	case "battery":
		l.Battery = value
	case "weight":
		l.Weight = value
	case "image":
		l.Image = value
	case "price", "rating":
		v, err := strconv.ParseFloat(strings.TrimPrefix(strings.ReplaceAll(value, ",", ""), "$"), 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q", column, value)
		}
		if column == "price" {
			l.Price = v
		} else {
			l.Rating = v
		}
	case "review_count":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid review_count %q", value)
		}
		l.ReviewCount = v
	}
	return nil
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// normalize fills IDs and currency and rejects entries missing a name, brand,
// cpu or ram.
func normalize(laptops []*models.LaptopSpec) ([]*models.LaptopSpec, error) {
	out := make([]*models.LaptopSpec, 0, len(laptops))
	seen := make(map[string]bool, len(laptops))
	for i, l := range laptops {
		if l == nil {
			continue
		}
		if !l.HasRequiredFields() {
			return nil, fmt.Errorf("catalog entry %d: name, brand, cpu and ram are required", i+1)
		}
		if l.ID == "" {
			l.ID = strings.Trim(slugRe.ReplaceAllString(strings.ToLower(l.Name), "-"), "-")
		}
		if seen[l.ID] {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i+1, l.ID)
		}
		seen[l.ID] = true
		if l.Currency == "" {
			l.Currency = "$"
		}
		if l.Price < 0 {
			l.Price = 0
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}
	return out, nil
}
