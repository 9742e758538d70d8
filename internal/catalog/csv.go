package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
)

var csvHeader = []string{"product_id", "name", "category", "price", "rating", "views", "purchases"}

// LoadCSV reads product rows from a CSV file with the header
// product_id,name,category,price,rating,views,purchases.
func LoadCSV(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses product rows from CSV data.
func ReadCSV(r io.Reader) ([]domain.Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected catalog header column %d: got %q, want %q", i, header[i], name)
		}
	}

	var products []domain.Product
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		product, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog row at line %d: %w", line, err)
		}
		products = append(products, product)
	}

	return products, nil
}

func parseRecord(record []string) (domain.Product, error) {
	price, err := strconv.ParseFloat(record[3], 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid price %q: %w", record[3], err)
	}
	rating, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid rating %q: %w", record[4], err)
	}
	views, err := strconv.Atoi(record[5])
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid views %q: %w", record[5], err)
	}
	purchases, err := strconv.Atoi(record[6])
	if err != nil {
		return domain.Product{}, fmt.Errorf("invalid purchases %q: %w", record[6], err)
	}

	if record[0] == "" {
		return domain.Product{}, fmt.Errorf("empty product_id")
	}
	if price < 0 {
		return domain.Product{}, fmt.Errorf("negative price %g", price)
	}
	if rating < 0 || rating > 5 {
		return domain.Product{}, fmt.Errorf("rating %g outside [0, 5]", rating)
	}
	if views < 0 || purchases < 0 {
		return domain.Product{}, fmt.Errorf("negative counter")
	}

	return domain.Product{
		ProductID: record[0],
		Name:      record[1],
		Category:  record[2],
		Price:     price,
		Rating:    rating,
		Views:     views,
		Purchases: purchases,
	}, nil
}
