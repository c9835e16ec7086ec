// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PairSource はペアがどの候補プールから選ばれたかを示します。
type PairSource string

const (
	SourceMistake PairSource = "mistake"
	SourceReview  PairSource = "review"
	SourceFresh   PairSource = "fresh"
)

// SessionPair はセッションで出題する (単語, 例文) の組です。
type SessionPair struct {
	Item     VocabularyItem  `json:"item"`
	Sentence ExampleSentence `json:"sentence"`
	Source   PairSource      `json:"source"`
}

// Key はペアの一意キーを返します。
func (p SessionPair) Key() PairKey {
	return PairKey{ItemID: p.Item.ItemID, SentenceID: p.Sentence.SentenceID}
}

// PairKey は (itemId, sentenceId) の組です。
type PairKey struct {
	ItemID     uuid.UUID
	SentenceID uuid.UUID
}

// SessionStatus はセッション計画の状態です。
type SessionStatus string

const (
	SessionReady    SessionStatus = "ready"
	SessionComplete SessionStatus = "complete" // 出題できる候補がない
)

// DailySessionPlan は1回分の学習セッションです。永続化はせず、作成後は変更しません。
type DailySessionPlan struct {
	Status       SessionStatus `json:"status"`
	DailyGoal    int           `json:"daily_goal"`
	Pairs        []SessionPair `json:"pairs"`
	MistakeCount int           `json:"mistake_count"`
	ReviewCount  int           `json:"review_count"`
	FreshCount   int           `json:"fresh_count"`
	ComposedAt   time.Time     `json:"composed_at"`
}

// IsComplete は出題対象が残っていないかを返します。
func (p *DailySessionPlan) IsComplete() bool {
	return p.Status == SessionComplete
}
