package games

import "math"

// 每局常量 / Per-round constants
const (
	QuestionsPerRound = 10
	PointsPerCorrect  = 10

	// AnswerTolerance 判分用近似相等容差，吸收两位小数舍入误差
	// AnswerTolerance is the near-equality margin used for scoring; it
	// absorbs the 2-decimal rounding of generated answers
	AnswerTolerance = 0.01
)

// Session 单局可变状态。同一时刻只有活动视图这一个写者，无需加锁。
// Session is the mutable per-round state. The active view is the only
// writer at any time, so no locking is needed.
type Session struct {
	Type     GameType
	Score    int
	Answered int
	Correct  int
	Elapsed  int
	Playing  bool
}

// NewSession 开始新的一局 / NewSession starts a round
func NewSession(t GameType) *Session {
	return &Session{Type: t, Playing: true}
}

// Submit 判分一次作答：按近似相等而非严格相等比较，答错不扣分。答完
// 第 10 题后本局结束。
// Submit scores one answer using near-equality rather than exact
// comparison; wrong answers score zero. The round ends after the 10th
// answer.
func (s *Session) Submit(selected, answer float64) bool {
	if !s.Playing {
		return false
	}

	correct := math.Abs(selected-answer) < AnswerTolerance
	s.Answered++
	if correct {
		s.Correct++
		s.Score += PointsPerCorrect
	}
	if s.Answered >= QuestionsPerRound {
		s.Playing = false
	}
	return correct
}

// Tick 计时一秒，仅在局内有效 / Tick counts one second while playing
func (s *Session) Tick() {
	if s.Playing {
		s.Elapsed++
	}
}

// Accuracy 返回正确率百分比 / Accuracy returns the percent correct
func (s *Session) Accuracy() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered) * 100
}
