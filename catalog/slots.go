package catalog

import (
	"sort"

	"shopadmin/models"
)

// UpsertSlot sets the URL of the image in slot, appending a new entry when
// the product has none for it. Other slots are left alone. The returned
// index points at the entry that was written.
func UpsertSlot(images []models.ProductImage, slot int, url string) ([]models.ProductImage, int) {
	for i := range images {
		if images[i].Slot == slot {
			images[i].URL = url
			return images, i
		}
	}
	return append(images, models.ProductImage{Slot: slot, URL: url}), len(images)
}

func sortedSlots(images map[int]string) []int {
	slots := make([]int, 0, len(images))
	for s := range images {
		slots = append(slots, s)
	}
	sort.Ints(slots)
	return slots
}
