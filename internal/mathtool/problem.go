package mathtool

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Topic 题目主题 / Topic selects a problem recipe
type Topic string

const (
	TopicArithmetic Topic = "arithmetic"
	TopicAlgebra    Topic = "algebra"
	TopicGeometry   Topic = "geometry"
	TopicCalculus   Topic = "calculus"
	TopicStatistics Topic = "statistics"
)

// Topics 按界面顺序排列的主题 / Topics in UI order
func Topics() []Topic {
	return []Topic{TopicArithmetic, TopicAlgebra, TopicGeometry, TopicCalculus, TopicStatistics}
}

// Difficulty 难度等级。只有算术配方使用难度（操作数上限 20/100/1000），
// 其余配方记录难度但不消费，与来源行为保持一致。
// Difficulty level. Only the arithmetic recipe consults it (operand
// ceiling 20/100/1000); the other recipes record it without using it,
// matching the documented behavior.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties 按界面顺序排列的难度 / Difficulties in UI order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// 批量生成的固定与默认数量 / Batch sizes
const (
	PracticeCount   = 3
	DefaultQuizSize = 5
	MaxQuizSize     = 20
)

// Problem 一道生成的题目。临时对象：标识每次生成都不同，从不持久化。
// Problem is one generated problem. Ephemeral: the identifier is fresh
// per instance and problems are never persisted.
type Problem struct {
	ID         string
	Question   string
	Answer     string
	Steps      []string
	Topic      Topic
	Difficulty Difficulty
}

// Generator 按主题配方生成题目 / Generator produces problems per topic recipe
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

// Generate 生成一道题目，纯函数式，无持久化副作用
// Generate produces one problem; pure, no persisted effect
func (g *Generator) Generate(topic Topic, difficulty Difficulty) Problem {
	p := Problem{
		ID:         uuid.NewString(),
		Topic:      topic,
		Difficulty: difficulty,
	}

	switch topic {
	case TopicAlgebra:
		g.algebra(&p)
	case TopicGeometry:
		g.geometry(&p)
	case TopicCalculus:
		g.calculus(&p)
	case TopicStatistics:
		g.statistics(&p)
	default:
		g.arithmetic(&p, difficulty)
	}
	return p
}

// Practice 生成固定 3 道练习题 / Practice generates the fixed batch of 3
func (g *Generator) Practice(topic Topic, difficulty Difficulty) []Problem {
	return g.batch(topic, difficulty, PracticeCount)
}

// Quiz 生成一套测验，数量夹在 1..20，无效输入取默认 5。各题独立生成，
// 不做跨调用去重。
// Quiz generates a quiz batch, clamped to 1..20 with 5 as the default
// for invalid input. Problems are generated independently with no
// deduplication across calls.
func (g *Generator) Quiz(topic Topic, difficulty Difficulty, count int) []Problem {
	if count <= 0 {
		count = DefaultQuizSize
	}
	if count > MaxQuizSize {
		count = MaxQuizSize
	}
	return g.batch(topic, difficulty, count)
}

func (g *Generator) batch(topic Topic, difficulty Difficulty, count int) []Problem {
	out := make([]Problem, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, g.Generate(topic, difficulty))
	}
	return out
}

func operandCeiling(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return 20
	case DifficultyHard:
		return 1000
	default:
		return 100
	}
}

func (g *Generator) arithmetic(p *Problem, d Difficulty) {
	ceiling := operandCeiling(d)
	a := g.rng.Intn(ceiling) + 1
	b := g.rng.Intn(ceiling) + 1
	ops := []string{"+", "-", "×", "÷"}
	op := ops[g.rng.Intn(len(ops))]

	p.Question = fmt.Sprintf("What is %d %s %d?", a, op, b)
	switch op {
	case "+":
		p.Answer = fmt.Sprintf("%d", a+b)
		p.Steps = []string{fmt.Sprintf("Add %d + %d", a, b), "Result: " + p.Answer}
	case "-":
		p.Answer = fmt.Sprintf("%d", a-b)
		p.Steps = []string{fmt.Sprintf("Subtract %d - %d", a, b), "Result: " + p.Answer}
	case "×":
		p.Answer = fmt.Sprintf("%d", a*b)
		p.Steps = []string{fmt.Sprintf("Multiply %d × %d", a, b), "Result: " + p.Answer}
	default:
		p.Answer = fmt.Sprintf("%.2f", float64(a)/float64(b))
		p.Steps = []string{fmt.Sprintf("Divide %d ÷ %d", a, b), "Result: " + p.Answer}
	}
}

func (g *Generator) algebra(p *Problem) {
	coef := g.rng.Intn(10) + 1
	constant := g.rng.Intn(20) + 1
	rhs := g.rng.Intn(20) + 1

	// 解不保证是整数，按两位小数给出 / The solution need not be "nice"
	x := float64(rhs-constant) / float64(coef)
	p.Question = fmt.Sprintf("Solve for x: %dx + %d = %d", coef, constant, rhs)
	p.Answer = fmt.Sprintf("x = %.2f", x)
	p.Steps = []string{
		fmt.Sprintf("Given: %dx + %d = %d", coef, constant, rhs),
		fmt.Sprintf("Subtract %d from both sides: %dx = %d", constant, coef, rhs-constant),
		fmt.Sprintf("Divide by %d: %s", coef, p.Answer),
	}
}

func (g *Generator) geometry(p *Problem) {
	side := g.rng.Intn(20) + 1
	p.Question = fmt.Sprintf("What is the area of a square with side length %d?", side)
	p.Answer = fmt.Sprintf("%d square units", side*side)
	p.Steps = []string{
		"Formula: Area = side²",
		fmt.Sprintf("Area = %d²", side),
		"Area = " + p.Answer,
	}
}

func (g *Generator) calculus(p *Problem) {
	power := g.rng.Intn(5) + 2
	p.Question = fmt.Sprintf("Find the derivative of f(x) = x^%d", power)
	p.Answer = fmt.Sprintf("f'(x) = %dx^%d", power, power-1)
	p.Steps = []string{
		fmt.Sprintf("Given: f(x) = x^%d", power),
		"Apply power rule: d/dx[x^n] = nx^(n-1)",
		"Result: " + p.Answer,
	}
}

func (g *Generator) statistics(p *Problem) {
	data := make([]int, 5)
	sum := 0
	parts := make([]string, len(data))
	for i := range data {
		data[i] = g.rng.Intn(50) + 1
		sum += data[i]
		parts[i] = fmt.Sprintf("%d", data[i])
	}
	joined := strings.Join(parts, ", ")

	p.Question = "Find the mean of: " + joined
	p.Answer = fmt.Sprintf("%.2f", float64(sum)/float64(len(data)))
	p.Steps = []string{
		"Data: " + joined,
		fmt.Sprintf("Sum = %d", sum),
		fmt.Sprintf("Count = %d", len(data)),
		"Mean = Sum / Count = " + p.Answer,
	}
}
