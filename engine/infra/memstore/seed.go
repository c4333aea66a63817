package memstore

import "github.com/indiepages/indiepages/engine/shop"

// Seed returns a small demo data set for the memory driver.
func Seed() []shop.Shop {
	return []shop.Shop{
		{ID: 1, Name: "Powell's Books", Region: "Oregon", Locality: "Portland", Live: true},
		{ID: 2, Name: "Oak Books", Region: "Colorado", Locality: "Denver", Live: true},
		{ID: 3, Name: "The Reader's Nook", Region: "California", Locality: "San Francisco", Live: true},
		{ID: 4, Name: "Village Books", Region: "Washington", Locality: "Bellingham", Live: true},
		{ID: 5, Name: "Librairie Saint-Jean", Region: "Quebec", Locality: "Montreal", Live: true},
		{ID: 6, Name: "Closed Chapter", Region: "Maine", Locality: "Portland", Live: false},
	}
}
