package models

import "fmt"

type Statistics struct {
	Total       int     `json:"total_books"`
	PercentRead float64 `json:"percentage_read"`
}

// ComputeStatistics counts the books and the share of them marked Read.
// An empty collection is 0% read. The percentage is kept unrounded; Percent
// formats it for display.
func ComputeStatistics(books []Book) Statistics {
	total := len(books)
	if total == 0 {
		return Statistics{}
	}

	read := 0
	for _, b := range books {
		if b.IsRead() {
			read++
		}
	}

	return Statistics{
		Total:       total,
		PercentRead: float64(read) / float64(total) * 100,
	}
}

// Percent renders PercentRead with two decimals.
func (s Statistics) Percent() string {
	return fmt.Sprintf("%.2f", s.PercentRead)
}
