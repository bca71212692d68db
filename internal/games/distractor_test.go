package games

import "testing"

func TestDistractors_FourDistinctIncludingCorrect(t *testing.T) {
	g := NewGeneratorWithSeed(6)
	for i := 0; i < 1000; i++ {
		correct := float64(g.rng.Intn(200) - 50)
		opts := g.Distractors(correct, false)

		if len(opts) != OptionCount {
			t.Fatalf("trial %d: %d options, want %d", i, len(opts), OptionCount)
		}
		seen := map[float64]bool{}
		for _, o := range opts {
			if seen[o] {
				t.Fatalf("trial %d: duplicate option %v in %v", i, o, opts)
			}
			seen[o] = true
		}
		if !seen[correct] {
			t.Fatalf("trial %d: correct %v missing from %v", i, correct, opts)
		}
	}
}

func TestDistractors_DecimalMode(t *testing.T) {
	g := NewGeneratorWithSeed(7)
	for i := 0; i < 1000; i++ {
		correct := round2(g.rng.Float64() * 20)
		opts := g.Distractors(correct, true)

		if len(opts) != OptionCount {
			t.Fatalf("trial %d: %d options, want %d", i, len(opts), OptionCount)
		}
		for _, o := range opts {
			if round2(o) != o {
				t.Fatalf("trial %d: option %v not rounded to 2 decimals", i, o)
			}
			// 干扰项距正确答案不超过 1.1 / Wrong options stay within 1.1
			if o != correct && (o < correct-1.1 || o > correct+1.1) {
				t.Fatalf("trial %d: option %v too far from %v", i, o, correct)
			}
		}
	}
}
