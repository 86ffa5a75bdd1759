// Package seed supplies the bootstrap collections: either from a JSON data
// file or from the built-in demo menu when no file is configured.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gosimple/slug"

	"github.com/CiaphasC/l-Elite-Gastro-sub001/internal/models"
)

// Data is the shape of the seed file.
type Data struct {
	Inventory     []models.InventoryItem `json:"inventory"`
	KitchenOrders []models.KitchenOrder  `json:"kitchenOrders"`
	Clients       []models.Client        `json:"clients"`
	SalesHistory  []models.SalesRecord   `json:"salesHistory"`
}

// Load reads the seed file at path. An empty path returns the built-in
// defaults; a configured path that is missing or malformed is an error (a
// half-loaded state is worse than failing the boot).
func Load(path string) (Data, error) {
	if path == "" {
		return Defaults(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	fillImages(data.Inventory)
	return data, nil
}

// fillImages derives an image key from the item name for items the seed
// file left without one ("Paella Valenciana" -> "paella-valenciana").
func fillImages(items []models.InventoryItem) {
	for i := range items {
		if items[i].Img == "" {
			items[i].Img = slug.Make(items[i].Name)
		}
	}
}

// Defaults is the demo dataset the app boots with when no seed file is set.
func Defaults() Data {
	inventory := []models.InventoryItem{
		{ID: 1, Name: "Paella Valenciana", Category: "Arroces", Price: 18.50, Stock: 24, Unit: "raciones", Kind: models.KindDish},
		{ID: 2, Name: "Salmón a la Plancha", Category: "Pescados", Price: 16.00, Stock: 12, Unit: "raciones", Kind: models.KindDish},
		{ID: 3, Name: "Tarta de Queso", Category: "Postres", Price: 6.50, Stock: 8, Unit: "porciones", Kind: models.KindDish},
		{ID: 4, Name: "Sangría", Category: "Bebidas", Price: 12.00, Stock: 30, Unit: "jarras", Kind: models.KindDish},
		{ID: 5, Name: "Aceite de Oliva", Category: "Despensa", Price: 9.80, Stock: 6, Unit: "l", Kind: models.KindIngredient},
		{ID: 6, Name: "Azafrán", Category: "Despensa", Price: 4.20, Stock: 15, Unit: "g", Kind: models.KindIngredient},
	}
	fillImages(inventory)

	return Data{
		Inventory: inventory,
		Clients: []models.Client{
			{
				ID: 1, Name: "Elena Ruiz", Visits: 9, Spent: 420.80, VIP: true,
				History: []models.ClientHistoryItem{
					{Date: "14 Feb 2024", Type: "Cena", Table: "Mesa 5", Items: []string{"Paella Valenciana", "Sangría"}, Total: 64.90, Status: "Completado"},
					{Date: "02 Feb 2024", Type: "Almuerzo", Table: "Mesa 3", Items: []string{"Salmón a la Plancha"}, Total: 22.40, Status: "Completado"},
					{Date: "20 Ene 2024", Type: "Cena", Table: "Mesa 5", Items: []string{"Menú degustación"}, Total: 81.00, Status: "Completado"},
				},
			},
			{ID: 2, Name: "Marco Díaz", Visits: 2, Spent: 58.20},
			{ID: 3, Name: "Lucía Romero", Visits: 6, Spent: 310.00, VIP: true},
		},
		KitchenOrders: []models.KitchenOrder{},
		SalesHistory:  []models.SalesRecord{},
	}
}
