// Package t2048 adapts the 2048 rule engine to the platform: it turns input
// frames into queued swipes, animates the engine's events and renders the
// board into a core.Screen.
package t2048

import "github.com/vovakirdan/tui-2048/internal/registry"

// Variant is a board size and winning tile offered as a separate game.
type Variant struct {
	ID          string
	Title       string
	Description string
	Dimension   int // 0 takes the configured dimension
	Threshold   int // 0 takes the configured threshold
}

// Variants lists every playable board, classic first.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Description: "Classic board, as configured"},
	{ID: "2048-mini", Title: "2048 Mini", Description: "3x3 board, reach 256", Dimension: 3, Threshold: 256},
	{ID: "2048-big", Title: "2048 Big", Description: "5x5 board, reach 4096", Dimension: 5, Threshold: 4096},
	{ID: "2048-huge", Title: "2048 Huge", Description: "6x6 board, reach 8192", Dimension: 6, Threshold: 8192},
}

// VariantByID returns the variant with the given ID.
func VariantByID(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantIDs returns the IDs of all variants in menu order.
func VariantIDs() []string {
	ids := make([]string, len(Variants))
	for i, v := range Variants {
		ids[i] = v.ID
	}
	return ids
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
