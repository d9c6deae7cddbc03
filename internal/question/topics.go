package question

import "math/rand/v2"

// topicTable holds the curated thematic variants per part and position.
// A variant is picked at random each time a question is requested, so two
// subjects (or two sessions) rarely see the same question shape at the
// same point in the test.
var topicTable = map[Part][PositionsPerPart][]string{
	PartNumbers: {
		{"single-digit addition", "counting forward", "number comparison"},
		{"two-digit addition", "simple multiplication", "number patterns"},
		{"subtraction with borrowing", "skip counting", "place value"},
		{"multi-step arithmetic", "division with remainders", "estimation"},
		{"fraction comparison", "mixed operations", "percentage of a quantity"},
	},
	PartLogic: {
		{"odd one out", "simple sequences", "everyday sorting"},
		{"number sequences", "if-then reasoning", "ordering by size"},
		{"letter patterns", "family relations puzzle", "simple deduction"},
		{"analogies", "two-step word problems", "calendar reasoning"},
		{"multi-step deduction", "seating arrangement", "rate and time reasoning"},
	},
	PartShapes: {
		{"shape naming", "counting sides", "everyday object shapes"},
		{"counting corners", "comparing sizes", "symmetry spotting"},
		{"shape rotation", "mirror images", "composing shapes"},
		{"paper folding", "hidden shapes", "3D solids from faces"},
		{"pattern completion", "spatial sequences", "cube counting"},
	},
}

// pickTopic selects a random topic seed for the given part and position.
// Position is 1-based.
func pickTopic(part Part, position int) string {
	variants, ok := topicTable[part]
	if !ok || position < 1 || position > PositionsPerPart {
		return ""
	}
	options := variants[position-1]
	return options[rand.IntN(len(options))]
}
