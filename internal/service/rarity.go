package service

import "github.com/AryanAggarwal62/Spurhacks/internal/model"

type RarityWeight struct {
	Rarity model.Rarity
	Weight int
}

// RarityTable is an ordered weighted table resolved by a single uniform
// roll over [0, Total()). Weights are relative and need not sum to 100.
type RarityTable []RarityWeight

var DefaultRarityTable = RarityTable{
	{model.RarityCommon, 60},
	{model.RarityRare, 25},
	{model.RarityEpic, 10},
	{model.RarityLegendary, 5},
}

func (t RarityTable) Total() int {
	total := 0
	for _, w := range t {
		total += w.Weight
	}
	return total
}

// Pick maps a roll onto the cumulative weight ranges. A roll at or
// beyond Total() clamps to the last entry.
func (t RarityTable) Pick(roll int) model.Rarity {
	for _, w := range t {
		if roll < w.Weight {
			return w.Rarity
		}
		roll -= w.Weight
	}
	return t[len(t)-1].Rarity
}
