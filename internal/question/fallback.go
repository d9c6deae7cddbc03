package question

// fallbackEntry is one statically authored question/answer pair.
type fallbackEntry struct {
	Text    string
	Choices []string
	Answer  string
}

// fallbackTable guarantees bounded-latency delivery when the generative
// backend is unavailable or unparsable. It must cover every
// (part, difficulty, position) combination: the provider treats a missing
// entry as a programming error, and TestFallbackCoverage enforces full
// coverage for all 3 parts x 3 difficulties x 5 positions.
var fallbackTable = map[Part]map[Difficulty][PositionsPerPart]fallbackEntry{
	PartNumbers: {
		DifficultyEasy: {
			{Text: "What is 2 + 3?", Choices: []string{"4", "5", "6", "7"}, Answer: "B"},
			{Text: "What is 7 - 4?", Choices: []string{"3", "4", "2", "5"}, Answer: "A"},
			{Text: "Which number is the largest?", Choices: []string{"12", "21", "19", "15"}, Answer: "B"},
			{Text: "What is 5 + 6?", Choices: []string{"10", "12", "11", "13"}, Answer: "C"},
			{Text: "What number comes next: 2, 4, 6, ...?", Choices: []string{"7", "8", "9", "10"}, Answer: "B"},
		},
		DifficultyMedium: {
			{Text: "What is 23 + 19?", Choices: []string{"41", "42", "43", "44"}, Answer: "B"},
			{Text: "What is 6 x 7?", Choices: []string{"42", "36", "48", "40"}, Answer: "A"},
			{Text: "What is 81 - 27?", Choices: []string{"56", "52", "54", "58"}, Answer: "C"},
			{Text: "Which number is closest to 100?", Choices: []string{"89", "103", "110", "95"}, Answer: "B"},
			{Text: "What number comes next: 5, 10, 20, 40, ...?", Choices: []string{"60", "70", "80", "100"}, Answer: "C"},
		},
		DifficultyHard: {
			{Text: "What is 144 divided by 12?", Choices: []string{"11", "12", "13", "14"}, Answer: "B"},
			{Text: "What is 15% of 200?", Choices: []string{"15", "20", "30", "35"}, Answer: "C"},
			{Text: "Which fraction is the largest?", Choices: []string{"1/3", "2/5", "1/2", "3/8"}, Answer: "C"},
			{Text: "What is 17 x 6?", Choices: []string{"96", "102", "108", "112"}, Answer: "B"},
			{Text: "What number comes next: 1, 1, 2, 3, 5, 8, ...?", Choices: []string{"11", "12", "13", "14"}, Answer: "C"},
		},
	},
	PartLogic: {
		DifficultyEasy: {
			{Text: "Which one does not belong: apple, banana, carrot, cherry?", Answer: "carrot"},
			{Text: "What day comes next: Monday, Tuesday, Wednesday, ...?", Answer: "Thursday"},
			{Text: "All cats have tails. Tom is a cat. Does Tom have a tail?", Answer: "yes"},
			{Text: "What number comes next: 1, 2, 3, 4, ...?", Answer: "5"},
			{Text: "Anna is taller than Ben. Who is shorter?", Answer: "Ben"},
		},
		DifficultyMedium: {
			{Text: "What letter comes next in the pattern: A, C, E, G, ...?", Answer: "I"},
			{Text: "A farmer has 5 sheep and 3 more cows than sheep. How many cows are there?", Answer: "8"},
			{Text: "If yesterday was Friday, what day is tomorrow?", Answer: "Sunday"},
			{Text: "What number comes next: 2, 4, 8, 16, ...?", Answer: "32"},
			{Text: "Sara is older than Tim. Tim is older than Joe. Who is the youngest?", Answer: "Joe"},
		},
		DifficultyHard: {
			{Text: "What number comes next: 3, 6, 11, 18, 27, ...?", Answer: "38"},
			{Text: "A train leaves at 9:40 and arrives at 11:15. How many minutes does the journey take?", Answer: "95 minutes"},
			{Text: "In a race you overtake the runner in second place. What place are you in now?", Answer: "second"},
			{Text: "Two pencils cost 8 cents. How much do five pencils cost?", Answer: "20 cents"},
			{Text: "What number comes next: 1, 4, 9, 16, 25, ...?", Answer: "36"},
		},
	},
	PartShapes: {
		DifficultyEasy: {
			{Text: "How many sides does a triangle have?", Answer: "3"},
			{Text: "Which shape is perfectly round and has no corners?", Answer: "circle"},
			{Text: "How many sides does a square have?", Answer: "4"},
			{Text: "Which shape has four sides, with two long sides and two short sides?", Answer: "rectangle"},
			{Text: "How many corners does a rectangle have?", Answer: "4"},
		},
		DifficultyMedium: {
			{Text: "How many corners does a cube have?", Answer: "8"},
			{Text: "If you rotate a square by 90 degrees, what shape do you see?", Answer: "square"},
			{Text: "You cut a square along one diagonal. How many triangles do you get?", Answer: "2"},
			{Text: "Which shape has more sides, a square or a triangle?", Answer: "square"},
			{Text: "How many sides do two rectangles have in total?", Answer: "8"},
		},
		DifficultyHard: {
			{Text: "How many faces does a cube have?", Answer: "6"},
			{Text: "A square is cut along both of its diagonals. How many triangles are formed?", Answer: "4"},
			{Text: "How many edges does a triangular prism have?", Answer: "9"},
			{Text: "You fold a square sheet of paper in half twice. How many layers of paper are there?", Answer: "4"},
			{Text: "How many small squares make up a 3 by 3 grid?", Answer: "9"},
		},
	},
}

// fallbackFor returns the static question for the given slot. Position is
// 1-based. Returns ok=false only on an out-of-range request, which no
// schedule-driven caller can produce.
func fallbackFor(part Part, difficulty Difficulty, position int) (*Question, bool) {
	byDifficulty, ok := fallbackTable[part]
	if !ok {
		return nil, false
	}
	entries, ok := byDifficulty[difficulty]
	if !ok || position < 1 || position > PositionsPerPart {
		return nil, false
	}
	entry := entries[position-1]

	q := &Question{
		Part:       part,
		Difficulty: difficulty,
		Position:   position,
		Kind:       KindFor(part),
		Text:       entry.Text,
		Answer:     entry.Answer,
		Fallback:   true,
	}
	if len(entry.Choices) > 0 {
		q.Choices = append([]string(nil), entry.Choices...)
	}
	return q, true
}
