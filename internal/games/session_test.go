package games

import "testing"

func TestSession_ScoringAndRoundEnd(t *testing.T) {
	s := NewSession(GameArithmetic)
	if !s.Playing {
		t.Fatalf("new session should be playing")
	}

	// 前 8 题答对，后 2 题答错 / 8 correct answers, then 2 wrong
	for i := 0; i < 8; i++ {
		if !s.Submit(42, 42) {
			t.Fatalf("answer %d should score", i)
		}
	}
	for i := 0; i < 2; i++ {
		if s.Submit(41, 42) {
			t.Fatalf("wrong answer should not score")
		}
	}

	if s.Playing {
		t.Fatalf("round should end after %d answers", QuestionsPerRound)
	}
	if s.Score != 80 {
		t.Fatalf("Score=%d, want 80", s.Score)
	}
	if s.Accuracy() != 80 {
		t.Fatalf("Accuracy=%v, want 80", s.Accuracy())
	}

	// 局已结束，继续作答无效 / Submissions after the round are ignored
	if s.Submit(42, 42) {
		t.Fatalf("submit after round end should be rejected")
	}
	if s.Score != 80 || s.Answered != QuestionsPerRound {
		t.Fatalf("state changed after round end: score=%d answered=%d", s.Score, s.Answered)
	}
}

func TestSession_NearEqualityTolerance(t *testing.T) {
	s := NewSession(GameDecimals)
	if !s.Submit(2.5000001, 2.5) {
		t.Fatalf("difference below tolerance should score")
	}
	if s.Submit(2.52, 2.5) {
		t.Fatalf("difference above tolerance should not score")
	}
}

func TestSession_TickOnlyWhilePlaying(t *testing.T) {
	s := NewSession(GameFractions)
	s.Tick()
	s.Tick()
	if s.Elapsed != 2 {
		t.Fatalf("Elapsed=%d, want 2", s.Elapsed)
	}

	for i := 0; i < QuestionsPerRound; i++ {
		s.Submit(1, 1)
	}
	s.Tick()
	if s.Elapsed != 2 {
		t.Fatalf("timer should stop when the round ends")
	}
}

func TestSession_AccuracyEmpty(t *testing.T) {
	s := NewSession(GameMultiplication)
	if s.Accuracy() != 0 {
		t.Fatalf("Accuracy with no answers should be 0")
	}
}
