package learning

import (
	"fmt"

	"go_vocab_drill/internal/model"
)

// RehabilitationStreak は誤答フラグを外すのに必要な連続正解数です。
const RehabilitationStreak = 3

// MistakeState は誤答帳の状態です。復習間隔 (Recall) とは独立しています。
type MistakeState struct {
	IsMistake          bool `json:"is_mistake"`
	ConsecutiveCorrect int  `json:"consecutive_correct"`
}

// Validate は負の連続正解数を拒否します。
func (m MistakeState) Validate() error {
	if m.ConsecutiveCorrect < 0 {
		return fmt.Errorf("%w: consecutive correct %d must be non-negative", model.ErrInvalidInput, m.ConsecutiveCorrect)
	}
	return nil
}

// TrackMistake は1回の採点後の誤答フラグと連続正解数を返します。
//
// 誤答は常にフラグを立て、連続正解数を 0 に戻します。フラグ付きのペアは
// 連続3回正解した時点でフラグと連続正解数の両方がクリアされます。
func TrackMistake(prev MistakeState, isCorrect bool) MistakeState {
	if !isCorrect {
		return MistakeState{IsMistake: true, ConsecutiveCorrect: 0}
	}

	next := MistakeState{
		IsMistake:          prev.IsMistake,
		ConsecutiveCorrect: prev.ConsecutiveCorrect + 1,
	}
	if prev.IsMistake && next.ConsecutiveCorrect >= RehabilitationStreak {
		next.IsMistake = false
		next.ConsecutiveCorrect = 0
	}
	return next
}
