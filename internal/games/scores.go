package games

import (
	"fmt"
	"os"

	"mathdesk/internal/collection"
	"mathdesk/internal/storage"
)

// HighScores 游戏类型到最佳分数的映射 / HighScores maps game type to best score
type HighScores map[GameType]int

// Scores 持有最高分映射并在更新时写回存储
// Scores owns the high-score map and writes it back on update
type Scores struct {
	repo   *collection.Repo[HighScores]
	scores HighScores
}

// NewScores 加载已保存的最高分，缺失的游戏补 0
// NewScores loads saved high scores, defaulting missing games to 0
func NewScores(store storage.Store) *Scores {
	repo := collection.NewRepo[HighScores](store, storage.CollectionHighScores)
	scores, _ := repo.Load()
	if scores == nil {
		scores = HighScores{}
	}
	for _, t := range GameTypes() {
		if _, ok := scores[t]; !ok {
			scores[t] = 0
		}
	}
	return &Scores{repo: repo, scores: scores}
}

// Best 返回某游戏的最高分 / Best returns the high score of one game
func (s *Scores) Best(t GameType) int {
	return s.scores[t]
}

// All 返回全部最高分 / All returns every high score
func (s *Scores) All() HighScores {
	return s.scores
}

// Record 单调更新：仅当新分数严格大于纪录时替换并持久化
// Record updates monotonically: the stored score is replaced and
// persisted only when the new score is strictly greater.
func (s *Scores) Record(t GameType, score int) bool {
	if score <= s.scores[t] {
		return false
	}
	s.scores[t] = score
	if err := s.repo.Save(s.scores); err != nil {
		fmt.Fprintf(os.Stderr, "mathdesk: %v\n", err)
	}
	return true
}
