// Package clients groups a client's visit history for presentation.
package clients

import (
	"strings"
	"unicode"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

// fallbackLabel is the bucket for entries whose date can't be parsed into a
// month and year.
const fallbackLabel = "Reciente"

// fallbackHistory is shown for accounts with no recorded visits yet
// (demo/new clients), so the history screen is never blank.
var fallbackHistory = []models.ClientHistoryItem{
	{
		Date:   "14 Feb 2024",
		Type:   "Cena",
		Table:  "Mesa 5",
		Items:  []string{"Paella Valenciana", "Sangría"},
		Total:  64.90,
		Status: "Completado",
	},
	{
		Date:   "20 Ene 2024",
		Type:   "Almuerzo",
		Table:  "Mesa 2",
		Items:  []string{"Menú del día"},
		Total:  18.50,
		Status: "Completado",
	},
}

// ResolveHistory returns the client's own history, or the fallback seed
// list when the account has none.
func ResolveHistory(client models.Client) []models.ClientHistoryItem {
	if len(client.History) > 0 {
		return client.History
	}
	return fallbackHistory
}

// monthYearLabel extracts the "<Month> <Year>" bucket key from a free-text
// date like "14 Feb 2024" (second and third whitespace-delimited tokens).
// Empty string when the date does not carry a parseable month+year.
func monthYearLabel(date string) string {
	parts := strings.Fields(date)
	if len(parts) < 3 {
		return ""
	}
	for _, r := range parts[2] {
		if !unicode.IsDigit(r) {
			return "" // third token must be a year
		}
	}
	return parts[1] + " " + parts[2]
}

// Group buckets history entries by month and year. Bucket order is
// first-seen order in the input, not chronological; unparseable dates all
// land in the single "Reciente" bucket.
func Group(history []models.ClientHistoryItem) []models.GroupedHistory {
	var out []models.GroupedHistory
	index := map[string]int{}

	for _, entry := range history {
		label := monthYearLabel(entry.Date)
		if label == "" {
			label = fallbackLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, models.GroupedHistory{Label: label})
		}
		out[i].Entries = append(out[i].Entries, entry)
	}
	return out
}

// Totals sums the history's spend and counts its entries.
func Totals(history []models.ClientHistoryItem) (total float64, count int) {
	for _, entry := range history {
		total += entry.Total
	}
	return total, len(history)
}
