package games

import "math"

// OptionCount 每题选项总数（1 个正确 + 3 个干扰项）
// OptionCount is the total options per question (1 correct + 3 wrong)
const OptionCount = 4

// maxDistractorDraws 随机抽取上限；命中上限后用确定性合成兜底，保证
// 对任何输入都在有界步数内结束
// maxDistractorDraws caps the random draws; past the cap deterministic
// synthesis fills the remaining slots so termination is bounded for
// any input
const maxDistractorDraws = 64

// Distractors 从正确答案出发合成干扰项：在 [-10, 9] 内均匀抽取偏移，
// 整数模式取整、小数模式按 0.1 缩放并保留两位；与已有值或正确答案相同
// 的候选被丢弃，凑满 4 个后随机洗牌。
// Distractors synthesizes wrong options around the correct answer:
// offsets drawn uniformly from [-10, 9], rounded in integer mode or
// scaled by 0.1 (to 2 decimals) in decimal mode. Candidates equal to
// an existing option or to the correct answer are rejected; the 4
// collected options are then shuffled.
func (g *Generator) Distractors(correct float64, decimal bool) []float64 {
	options := []float64{correct}

	for draws := 0; len(options) < OptionCount && draws < maxDistractorDraws; draws++ {
		offset := float64(g.rng.Intn(20) - 10)

		var candidate float64
		if decimal {
			candidate = round2(correct + offset*0.1)
		} else {
			candidate = round0(correct + offset)
		}
		if candidate == correct || contains(options, candidate) {
			continue
		}
		options = append(options, candidate)
	}

	// 兜底：顺序步进填满剩余空位 / Fallback: sequential steps fill the rest
	step := 1.0
	if decimal {
		step = 0.1
	}
	for next := correct + step; len(options) < OptionCount; next += step {
		candidate := next
		if decimal {
			candidate = round2(candidate)
		}
		if !contains(options, candidate) {
			options = append(options, candidate)
		}
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func contains(values []float64, v float64) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func round0(v float64) float64 {
	return math.Round(v)
}
