package mathtool

import (
	"fmt"
	"strconv"
	"strings"
)

// SolutionKind 解的类别 / SolutionKind classifies a solver result
type SolutionKind int

const (
	// SolutionComputed 真正算出的结果 / SolutionComputed is a computed result
	SolutionComputed SolutionKind = iota
	// SolutionVariableStub 含变量的方程走固定桩分支，答案与输入无关
	// SolutionVariableStub is the canned stub branch for equations with
	// a variable; the answer is independent of the input
	SolutionVariableStub
	// SolutionInvalid 无法解析 / SolutionInvalid means nothing parsed
	SolutionInvalid
)

// InvalidAnswer 无法解析时的固定答案文本 / Literal answer for unparseable input
const InvalidAnswer = "Invalid equation format"

// StubAnswer 变量方程桩分支的固定答案文本 / Literal answer of the stub branch
const StubAnswer = "x = 5 (example solution)"

// Solution 求解结果 / Solution is a solver result
type Solution struct {
	Answer string
	Steps  []string
	Kind   SolutionKind
}

// Solve 按固定优先级链分派输入：+ → - → *,× → /,÷ → 变量桩 → 受限表达
// 式求值。子串包含即命中；运算分支的操作数解析失败时静默放弃结果，调度
// 继续走链上的后续分支。
// Solve dispatches the input through a fixed priority chain:
// + → - → *,× → /,÷ → variable stub → restricted expression fallback.
// Substring containment selects a branch; a binary branch whose
// operands fail to parse yields nothing and dispatch continues down
// the chain.
func Solve(input string) Solution {
	eq := strings.TrimSpace(input)

	if strings.Contains(eq, "+") {
		if sol, ok := solveBinary(eq, "+", "Add the numbers", func(a, b float64) float64 { return a + b }); ok {
			return sol
		}
	} else if strings.Contains(eq, "-") {
		if sol, ok := solveBinary(eq, "-", "Subtract the numbers", func(a, b float64) float64 { return a - b }); ok {
			return sol
		}
	} else if strings.ContainsAny(eq, "*×") {
		if sol, ok := solveBinary(eq, "×", "Multiply the numbers", func(a, b float64) float64 { return a * b }); ok {
			return sol
		}
	} else if strings.ContainsAny(eq, "/÷") {
		if sol, ok := solveBinary(eq, "÷", "Divide the numbers", func(a, b float64) float64 { return a / b }); ok {
			return sol
		}
	}

	if strings.ContainsRune(eq, 'x') || strings.ContainsRune(eq, '=') {
		// 桩分支：固定讲解与固定答案，绝不真正求解
		// Stub branch: canned explanation and canned answer, never a
		// real solve
		return Solution{
			Answer: StubAnswer,
			Kind:   SolutionVariableStub,
			Steps: []string{
				"Given equation: " + eq,
				"Isolate the variable on one side",
				"Perform inverse operations to solve",
				StubAnswer,
			},
		}
	}

	return solveExpression(eq)
}

// solveBinary 以唯一出现的运算符切分并计算。切分结果不是恰好两个可解析
// 的数时，分支报告未命中，让调度链继续。
// solveBinary splits on the operator and computes. Unless the split
// yields exactly two parsable numbers it reports a miss so dispatch
// can continue.
func solveBinary(eq, opLabel, stepLabel string, apply func(a, b float64) float64) (Solution, bool) {
	parts := splitOperands(eq, opLabel)
	if len(parts) != 2 {
		return Solution{}, false
	}

	a, errA := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errA != nil || errB != nil {
		return Solution{}, false
	}

	answer := formatNumber(apply(a, b))
	return Solution{
		Answer: answer,
		Kind:   SolutionComputed,
		Steps: []string{
			"Given: " + eq,
			fmt.Sprintf("%s: %s %s %s", stepLabel, formatNumber(a), opLabel, formatNumber(b)),
			"Result: " + answer,
		},
	}, true
}

// splitOperands 在运算符的每个书写变体处切分，保留空段："-5" 切出的空
// 段解析失败，"3--4" 切出三段，两者都走空结果路径
// splitOperands splits at every spelling variant of the operator,
// keeping empty segments: "-5" yields an empty segment that fails to
// parse and "3--4" yields three segments, so both take the
// empty-result path
func splitOperands(eq, opLabel string) []string {
	variants := map[string]string{
		"+": "+",
		"-": "-",
		"×": "*×",
		"÷": "/÷",
	}[opLabel]

	parts := []string{}
	var cur strings.Builder
	for _, r := range eq {
		if strings.ContainsRune(variants, r) {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteRune(r)
	}
	return append(parts, cur.String())
}

// solveExpression 去除非法字符后用受限求值器计算剩余表达式
// solveExpression strips foreign characters and evaluates the residual
// with the restricted evaluator
func solveExpression(eq string) Solution {
	cleaned := stripForeign(eq)
	result, err := Evaluate(cleaned)
	if err != nil {
		return Solution{
			Answer: InvalidAnswer,
			Kind:   SolutionInvalid,
			Steps:  []string{"Could not parse equation"},
		}
	}

	answer := formatNumber(result)
	return Solution{
		Answer: answer,
		Kind:   SolutionComputed,
		Steps: []string{
			"Given expression: " + eq,
			"Evaluate the expression",
			"Result: " + answer,
		},
	}
}

// stripForeign 只保留数字、四则运算符、括号和小数点
// stripForeign keeps only digits, arithmetic operators, parens and dots
func stripForeign(eq string) string {
	var out strings.Builder
	for _, r := range eq {
		if (r >= '0' && r <= '9') || strings.ContainsRune("+-*/().", r) {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// formatNumber 与界面一致的数字格式：整数不带小数点，小数保留必要位数
// formatNumber renders numbers the way the UI shows them: integers
// without a decimal point, fractions with only the needed digits
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
