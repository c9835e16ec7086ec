// internal/model/record.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRecord は (単語, 例文) ペアごとの復習状態です。
// ペアにつき最大1件 (idx_record_pair)。レコードが無いペアは「新出」として扱います。
type ReviewRecord struct {
	RecordID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"record_id"`
	ItemID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_pair" json:"item_id"`
	SentenceID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_record_pair" json:"sentence_id"`
	Repetition         int       `gorm:"not null;default:0" json:"repetition"`
	EasinessFactor     float64   `gorm:"not null;default:2.5" json:"easiness_factor"`
	Interval           int       `gorm:"not null;default:0" json:"interval"`
	NextReview         time.Time `gorm:"not null;index" json:"next_review"`
	LastReview         time.Time `gorm:"not null" json:"last_review"`
	ConsecutiveCorrect int       `gorm:"not null;default:0" json:"consecutive_correct"`
	IsMistake          bool      `gorm:"not null;default:false;index" json:"is_mistake"`
	TotalReviews       int       `gorm:"not null;default:0" json:"total_reviews"`
	CorrectReviews     int       `gorm:"not null;default:0" json:"correct_reviews"`
	Version            int       `gorm:"not null;default:1" json:"version"` // 楽観的ロック用
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// 関連 (Preload用)
	Item     *VocabularyItem  `gorm:"foreignKey:ItemID;references:ItemID" json:"-"`
	Sentence *ExampleSentence `gorm:"foreignKey:SentenceID;references:SentenceID" json:"-"`
}

func (ReviewRecord) TableName() string {
	return "review_records"
}

// ReviewLog は採点1回ごとの履歴です。当日の統計に使います。
type ReviewLog struct {
	LogID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"log_id"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	SentenceID uuid.UUID `gorm:"type:uuid;not null" json:"sentence_id"`
	Quality    int       `gorm:"not null" json:"quality"`
	IsCorrect  bool      `gorm:"not null" json:"is_correct"`
	WasNew     bool      `gorm:"not null" json:"was_new"` // そのペアの初回採点か
	Interval   int       `gorm:"not null" json:"interval"`
	ReviewedAt time.Time `gorm:"not null;index" json:"reviewed_at"`
}

func (ReviewLog) TableName() string {
	return "review_logs"
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
type SubmitReviewRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required"`
	IsEasy    *bool `json:"is_easy,omitempty"`                        // 未指定なら「正解・難易度シグナルなし」
	Quality   *int  `json:"quality,omitempty" validate:"omitempty,min=0,max=5"` // 指定時は is_correct/is_easy からの導出より優先
}
