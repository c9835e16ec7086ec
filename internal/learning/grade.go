package learning

import (
	"errors"
	"time"

	"go_vocab_drill/internal/model"
)

// State はペアの復習状態全体です。呼び出し側は必ず既定値で埋めた State を渡します。
type State struct {
	Recall  Recall
	Mistake MistakeState
}

// DefaultState は未学習ペアの状態です。
func DefaultState() State {
	return State{Recall: NewRecall()}
}

// StateFromRecord はストアの境界で nil (レコードなし) を既定値に置き換えます。
func StateFromRecord(rec *model.ReviewRecord) State {
	if rec == nil {
		return DefaultState()
	}
	return State{
		Recall: Recall{
			Repetition:     rec.Repetition,
			EasinessFactor: rec.EasinessFactor,
			Interval:       rec.Interval,
		},
		Mistake: MistakeState{
			IsMistake:          rec.IsMistake,
			ConsecutiveCorrect: rec.ConsecutiveCorrect,
		},
	}
}

// Validate は保存済みの状態が壊れていないか確認します。
func (s State) Validate() error {
	return errors.Join(s.Recall.Validate(), s.Mistake.Validate())
}

// Outcome は1回の採点で得られる新しい状態です。
type Outcome struct {
	Quality   Quality
	IsCorrect bool
	Schedule  ScheduleResult
	Mistake   MistakeState
	GradedAt  time.Time
}

// Grade はスケジューラと誤答トラッカーを同じ採点に適用します。
func Grade(prev State, q Quality, isCorrect bool, now time.Time) Outcome {
	return Outcome{
		Quality:   q,
		IsCorrect: isCorrect,
		Schedule:  Schedule(q, prev.Recall, now),
		Mistake:   TrackMistake(prev.Mistake, isCorrect),
		GradedAt:  now,
	}
}

// ApplyTo は採点結果をレコードに書き込みます。
func (o Outcome) ApplyTo(rec *model.ReviewRecord) {
	rec.Repetition = o.Schedule.Repetition
	rec.EasinessFactor = o.Schedule.EasinessFactor
	rec.Interval = o.Schedule.Interval
	rec.NextReview = o.Schedule.NextReview
	rec.LastReview = o.GradedAt
	rec.IsMistake = o.Mistake.IsMistake
	rec.ConsecutiveCorrect = o.Mistake.ConsecutiveCorrect
	rec.TotalReviews++
	if o.IsCorrect {
		rec.CorrectReviews++
	}
}
