package games

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// GameType 游戏类型 / GameType identifies one of the four games
type GameType string

const (
	GameArithmetic     GameType = "arithmetic"
	GameFractions      GameType = "fractions"
	GameDecimals       GameType = "decimals"
	GameMultiplication GameType = "multiplication"
)

// GameTypes 按界面顺序排列的游戏 / GameTypes in UI order
func GameTypes() []GameType {
	return []GameType{GameArithmetic, GameFractions, GameDecimals, GameMultiplication}
}

// Question 一道选择题，生成后不可变。Options 恰有 4 项且包含正确答案。
// Question is one multiple-choice question, immutable once generated.
// Options holds exactly 4 values including the correct answer.
type Question struct {
	Prompt  string
	Answer  float64
	Options []float64
	Decimal bool
}

// Generator 按游戏类型生成题目与干扰项
// Generator produces questions and distractors per game type
type Generator struct {
	rng *rand.Rand
}

// NewGenerator 创建生成器 / NewGenerator creates a generator
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewGeneratorWithSeed 创建可复现的生成器，用于测试
// NewGeneratorWithSeed creates a reproducible generator for tests
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Question 生成一道题目 / Question generates one question
func (g *Generator) Question(t GameType) Question {
	var q Question
	switch t {
	case GameFractions:
		q = g.fractions()
	case GameDecimals:
		q = g.decimals()
	case GameMultiplication:
		q = g.multiplication()
	default:
		q = g.arithmetic()
	}
	q.Options = g.Distractors(q.Answer, q.Decimal)
	return q
}

func (g *Generator) arithmetic() Question {
	a := g.rng.Intn(50) + 1
	b := g.rng.Intn(50) + 1
	ops := []string{"+", "-", "×"}
	op := ops[g.rng.Intn(len(ops))]

	q := Question{Prompt: fmt.Sprintf("%d %s %d", a, op, b)}
	switch op {
	case "+":
		q.Answer = float64(a + b)
	case "-":
		q.Answer = float64(a - b)
	default:
		q.Answer = float64(a * b)
	}
	return q
}

func (g *Generator) fractions() Question {
	num1 := g.rng.Intn(10) + 1
	den := g.rng.Intn(10) + 1
	num2 := g.rng.Intn(10) + 1

	// 同分母相加，答案化为两位小数。干扰项按整数取整，只有 decimals
	// 游戏用小数偏移。
	// Same denominator, answer to 2 decimals. Distractors stay
	// integer-rounded; only the decimals game uses decimal offsets.
	return Question{
		Prompt: fmt.Sprintf("%d/%d + %d/%d", num1, den, num2, den),
		Answer: round2(float64(num1+num2) / float64(den)),
	}
}

func (g *Generator) decimals() Question {
	d1 := round1(g.rng.Float64() * 10)
	d2 := round1(g.rng.Float64() * 10)
	ops := []string{"+", "-"}
	op := ops[g.rng.Intn(len(ops))]

	q := Question{
		Prompt:  fmt.Sprintf("%.1f %s %.1f", d1, op, d2),
		Decimal: true,
	}
	if op == "+" {
		q.Answer = round2(d1 + d2)
	} else {
		q.Answer = round2(d1 - d2)
	}
	return q
}

func (g *Generator) multiplication() Question {
	a := g.rng.Intn(12) + 1
	b := g.rng.Intn(12) + 1
	return Question{
		Prompt: fmt.Sprintf("%d × %d", a, b),
		Answer: float64(a * b),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
