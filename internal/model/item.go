// internal/model/item.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyItem は見出し語とその主な意味を表します。
// 作成後は不変で、学習コアからは読み取り専用です。
type VocabularyItem struct {
	ItemID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"item_id"`
	Headword     string    `gorm:"not null;uniqueIndex" json:"headword"`
	Meaning      string    `gorm:"not null" json:"meaning"`
	PartOfSpeech *string   `gorm:"type:varchar(20)" json:"part_of_speech,omitempty"`
	Frequency    int       `gorm:"not null;default:0;index" json:"frequency"` // 過去問での出現回数 (新出語の優先度)
	CreatedAt    time.Time `json:"created_at"`

	// 関連 (Preload用)
	Sentences []ExampleSentence `gorm:"foreignKey:ItemID;references:ItemID" json:"sentences,omitempty"`
}

func (VocabularyItem) TableName() string {
	return "vocabulary_items"
}

// ExampleSentence は見出し語に紐づく例文です。出典情報は表示にのみ使います。
type ExampleSentence struct {
	SentenceID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"sentence_id"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	Text        string    `gorm:"not null" json:"text"`
	Translation string    `json:"translation"`
	Year        *int      `json:"year,omitempty"`
	Section     *string   `json:"section,omitempty"`
	Label       *string   `json:"label,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ExampleSentence) TableName() string {
	return "example_sentences"
}

// 単語作成リクエストDTO
type PostItemRequest struct {
	Headword     string  `json:"headword" validate:"required,max=100"`
	Meaning      string  `json:"meaning" validate:"required"`
	PartOfSpeech *string `json:"part_of_speech,omitempty" validate:"omitempty,max=20"`
	Frequency    int     `json:"frequency" validate:"min=0"`
}

// 例文追加リクエストDTO
type PostSentenceRequest struct {
	Text        string  `json:"text" validate:"required"`
	Translation string  `json:"translation"`
	Year        *int    `json:"year,omitempty" validate:"omitempty,min=1900,max=2100"`
	Section     *string `json:"section,omitempty"`
	Label       *string `json:"label,omitempty"`
}
