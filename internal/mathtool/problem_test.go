package mathtool

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestGenerate_ArithmeticEasyOperandRange(t *testing.T) {
	g := NewGeneratorWithSeed(1)

	for i := 0; i < 1000; i++ {
		p := g.Generate(TopicArithmetic, DifficultyEasy)

		var a, b int
		var op string
		if _, err := fmt.Sscanf(p.Question, "What is %d %s %d?", &a, &op, &b); err != nil {
			t.Fatalf("question %q did not scan: %v", p.Question, err)
		}
		if a < 1 || a > 20 || b < 1 || b > 20 {
			t.Fatalf("easy operands %d, %d out of [1,20] in %q", a, b, p.Question)
		}

		// 除法答案乘回除数应在 0.01 内还原被除数
		// Division answers re-multiplied by the divisor recover the
		// dividend within 0.01
		if op == "÷" {
			ans, err := strconv.ParseFloat(p.Answer, 64)
			if err != nil {
				t.Fatalf("division answer %q did not parse: %v", p.Answer, err)
			}
			if diff := math.Abs(ans*float64(b) - float64(a)); diff > 0.01*float64(b) {
				t.Fatalf("%q: %s × %d differs from %d by %v", p.Question, p.Answer, b, a, diff)
			}
		}
	}
}

func TestGenerate_ArithmeticCeilingPerDifficulty(t *testing.T) {
	cases := []struct {
		difficulty Difficulty
		ceiling    int
	}{
		{DifficultyEasy, 20},
		{DifficultyMedium, 100},
		{DifficultyHard, 1000},
	}

	for _, tc := range cases {
		g := NewGeneratorWithSeed(7)
		for i := 0; i < 200; i++ {
			p := g.Generate(TopicArithmetic, tc.difficulty)
			var a, b int
			var op string
			if _, err := fmt.Sscanf(p.Question, "What is %d %s %d?", &a, &op, &b); err != nil {
				t.Fatalf("question %q did not scan: %v", p.Question, err)
			}
			if a > tc.ceiling || b > tc.ceiling {
				t.Fatalf("%s operands %d, %d exceed ceiling %d", tc.difficulty, a, b, tc.ceiling)
			}
		}
	}
}

func TestGenerate_AlgebraSolutionChecks(t *testing.T) {
	g := NewGeneratorWithSeed(2)

	for i := 0; i < 1000; i++ {
		p := g.Generate(TopicAlgebra, DifficultyMedium)

		var coef, constant, rhs int
		if _, err := fmt.Sscanf(p.Question, "Solve for x: %dx + %d = %d", &coef, &constant, &rhs); err != nil {
			t.Fatalf("question %q did not scan: %v", p.Question, err)
		}
		var x float64
		if _, err := fmt.Sscanf(p.Answer, "x = %f", &x); err != nil {
			t.Fatalf("answer %q did not scan: %v", p.Answer, err)
		}

		// 代回原方程应在 0.01 内成立 / Substituting back holds within 0.01
		// (the answer is rounded to 2 decimals, so allow the rounding to
		// scale with the coefficient)
		if diff := math.Abs(float64(coef)*x + float64(constant) - float64(rhs)); diff > 0.01*float64(coef) {
			t.Fatalf("%q: substituting %v leaves residual %v", p.Question, x, diff)
		}
	}
}

func TestGenerate_GeometryAndCalculusShapes(t *testing.T) {
	g := NewGeneratorWithSeed(3)

	for i := 0; i < 100; i++ {
		geo := g.Generate(TopicGeometry, DifficultyEasy)
		var side int
		if _, err := fmt.Sscanf(geo.Question, "What is the area of a square with side length %d?", &side); err != nil {
			t.Fatalf("geometry question %q did not scan: %v", geo.Question, err)
		}
		if side < 1 || side > 20 {
			t.Fatalf("square side %d out of [1,20]", side)
		}
		if want := fmt.Sprintf("%d square units", side*side); geo.Answer != want {
			t.Fatalf("geometry answer=%q, want %q", geo.Answer, want)
		}

		calc := g.Generate(TopicCalculus, DifficultyHard)
		var power int
		if _, err := fmt.Sscanf(calc.Question, "Find the derivative of f(x) = x^%d", &power); err != nil {
			t.Fatalf("calculus question %q did not scan: %v", calc.Question, err)
		}
		if power < 2 || power > 6 {
			t.Fatalf("power %d out of [2,6]", power)
		}
		if want := fmt.Sprintf("f'(x) = %dx^%d", power, power-1); calc.Answer != want {
			t.Fatalf("calculus answer=%q, want %q", calc.Answer, want)
		}
	}
}

func TestGenerate_StatisticsMean(t *testing.T) {
	g := NewGeneratorWithSeed(4)

	for i := 0; i < 200; i++ {
		p := g.Generate(TopicStatistics, DifficultyMedium)

		listPart := strings.TrimPrefix(p.Question, "Find the mean of: ")
		parts := strings.Split(listPart, ", ")
		if len(parts) != 5 {
			t.Fatalf("question %q should list 5 values", p.Question)
		}
		sum := 0
		for _, part := range parts {
			v, err := strconv.Atoi(part)
			if err != nil {
				t.Fatalf("value %q did not parse: %v", part, err)
			}
			if v < 1 || v > 50 {
				t.Fatalf("value %d out of [1,50]", v)
			}
			sum += v
		}

		want := fmt.Sprintf("%.2f", float64(sum)/5)
		if p.Answer != want {
			t.Fatalf("mean answer=%q, want %q", p.Answer, want)
		}
	}
}

func TestBatchSizes(t *testing.T) {
	g := NewGeneratorWithSeed(5)

	if got := len(g.Practice(TopicArithmetic, DifficultyEasy)); got != PracticeCount {
		t.Fatalf("Practice size=%d, want %d", got, PracticeCount)
	}
	if got := len(g.Quiz(TopicAlgebra, DifficultyMedium, 12)); got != 12 {
		t.Fatalf("Quiz size=%d, want 12", got)
	}
	if got := len(g.Quiz(TopicAlgebra, DifficultyMedium, 0)); got != DefaultQuizSize {
		t.Fatalf("Quiz size=%d for invalid count, want default %d", got, DefaultQuizSize)
	}
	if got := len(g.Quiz(TopicAlgebra, DifficultyMedium, 99)); got != MaxQuizSize {
		t.Fatalf("Quiz size=%d for oversized count, want %d", got, MaxQuizSize)
	}
}

func TestGenerate_FreshIdentifiers(t *testing.T) {
	g := NewGeneratorWithSeed(6)

	a := g.Generate(TopicGeometry, DifficultyEasy)
	b := g.Generate(TopicGeometry, DifficultyEasy)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("problem identifiers must be fresh per instance: %q vs %q", a.ID, b.ID)
	}
}
