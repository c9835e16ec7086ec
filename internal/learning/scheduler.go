// Package learning は SuperMemo-2 ベースの復習スケジューラ、誤答トラッカー、
// 1日分のセッション構成を提供します。永続化やタイマーには関与しません。
package learning

import (
	"fmt"
	"math"
	"time"

	"go_vocab_drill/internal/model"
)

// Quality は想起の質 (0-5) です。
type Quality int

const (
	QualityBlackout  Quality = iota // 0: まったく覚えていない
	QualityWrong                    // 1: 誤答、思い出しにくい
	QualityRecalled                 // 2: 誤答だが答えを見て思い出した
	QualityHard                     // 3: 困難だが正解
	QualityHesitant                 // 4: ためらった後に正解
	QualityPerfect                  // 5: 完璧に想起
)

const (
	MinEasinessFactor     = 1.3
	DefaultEasinessFactor = 2.5
	// PassingQuality 未満は忘却 (lapse) として進捗をリセットします。
	PassingQuality = QualityHard
)

// Validate は quality が [0,5] に収まっているか検証します。Schedule 自体は検証しません。
func (q Quality) Validate() error {
	if q < QualityBlackout || q > QualityPerfect {
		return fmt.Errorf("%w: quality %d out of range [0,5]", model.ErrInvalidInput, int(q))
	}
	return nil
}

// Recall は SM-2 の漸化式が扱う状態です。
type Recall struct {
	Repetition     int     `json:"repetition"`
	EasinessFactor float64 `json:"easiness_factor"`
	Interval       int     `json:"interval"`
}

// NewRecall はレコードが存在しないペアの初期状態を返します。
func NewRecall() Recall {
	return Recall{Repetition: 0, EasinessFactor: DefaultEasinessFactor, Interval: 0}
}

// Validate は負のカウンタや下限未満のEFを拒否します (丸めは行わない)。
func (r Recall) Validate() error {
	switch {
	case r.Repetition < 0:
		return fmt.Errorf("%w: repetition %d must be non-negative", model.ErrInvalidInput, r.Repetition)
	case r.Interval < 0:
		return fmt.Errorf("%w: interval %d must be non-negative", model.ErrInvalidInput, r.Interval)
	case math.IsNaN(r.EasinessFactor) || r.EasinessFactor < MinEasinessFactor:
		return fmt.Errorf("%w: easiness factor %v must be >= %v", model.ErrInvalidInput, r.EasinessFactor, MinEasinessFactor)
	}
	return nil
}

// ScheduleResult は採点後の状態と次回復習日時です。
type ScheduleResult struct {
	Recall
	NextReview time.Time `json:"next_review"`
}

// Schedule は採点結果から次の復習状態を計算します。
//
// EF は合否に関係なく毎回更新され、1.3 を下回りません。quality < 3 のときは
// 反復回数と間隔を 0 に戻します (当日中に再出題)。合格時の間隔は 1日, 6日, 以降は
// round(前回間隔 * 新しいEF) です。quality が [0,5] の範囲外の場合の結果は未定義です。
func Schedule(q Quality, prev Recall, now time.Time) ScheduleResult {
	lapse := float64(QualityPerfect - q)
	ef := math.Max(MinEasinessFactor, prev.EasinessFactor+(0.1-lapse*(0.08+lapse*0.02)))

	next := Recall{EasinessFactor: ef}
	if q < PassingQuality {
		next.Repetition = 0
		next.Interval = 0
	} else {
		next.Repetition = prev.Repetition + 1
		switch next.Repetition {
		case 1:
			next.Interval = 1
		case 2:
			next.Interval = 6
		default:
			next.Interval = int(math.Round(float64(prev.Interval) * ef))
		}
	}

	return ScheduleResult{
		Recall:     next,
		NextReview: now.AddDate(0, 0, next.Interval),
	}
}

// AnswerToQuality は正誤と任意の「簡単だった」シグナルを quality に変換します。
//
//	誤答                 -> 1
//	正解 + easy=true     -> 5
//	正解 + easy=false    -> 3
//	正解 + easy 未指定   -> 4
func AnswerToQuality(isCorrect bool, isEasy *bool) Quality {
	if !isCorrect {
		return QualityWrong
	}
	switch {
	case isEasy == nil:
		return QualityHesitant
	case *isEasy:
		return QualityPerfect
	default:
		return QualityHard
	}
}
