package learning

import (
	"math"

	"go_vocab_drill/internal/model"

	"github.com/google/uuid"
)

// 習得済みとみなす基準
const (
	MasteredRepetition = 3
	MasteredInterval   = 21
)

// SummarizeRecords は復習レコード全体を集計します。
func SummarizeRecords(records []model.ReviewRecord) model.RecordSummary {
	summary := model.RecordSummary{TotalRecords: len(records)}

	var intervalSum, intervalCount int
	for _, r := range records {
		if r.Interval > 0 {
			intervalSum += r.Interval
			intervalCount++
		}
		if r.Repetition >= MasteredRepetition && r.Interval >= MasteredInterval {
			summary.MasteredPairs++
		}
		if r.IsMistake {
			summary.MistakePairs++
		}
	}
	if intervalCount > 0 {
		summary.AverageInterval = roundTo1(float64(intervalSum) / float64(intervalCount))
	}
	return summary
}

// SummarizeDay は当日分の採点履歴を集計します。単語単位で重複を除きます。
func SummarizeDay(logs []model.ReviewLog) model.DaySummary {
	learned := make(map[uuid.UUID]struct{})
	reviewed := make(map[uuid.UUID]struct{})
	var correct int
	for _, l := range logs {
		if l.WasNew {
			learned[l.ItemID] = struct{}{}
		} else {
			reviewed[l.ItemID] = struct{}{}
		}
		if l.IsCorrect {
			correct++
		}
	}

	summary := model.DaySummary{
		LearnedToday:  len(learned),
		ReviewedToday: len(reviewed),
		GradedToday:   len(logs),
	}
	if len(logs) > 0 {
		summary.Accuracy = roundTo1(float64(correct) / float64(len(logs)) * 100)
	}
	return summary
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
