package model

// RecordSummary は復習レコード全体の集計です。
type RecordSummary struct {
	TotalRecords    int     `json:"total_records"`
	AverageInterval float64 `json:"average_interval"`
	MasteredPairs   int     `json:"mastered_pairs"`
	MistakePairs    int     `json:"mistake_pairs"`
}

// DaySummary は当日の採点履歴の集計です。
type DaySummary struct {
	LearnedToday  int     `json:"learned_today"`
	ReviewedToday int     `json:"reviewed_today"`
	GradedToday   int     `json:"graded_today"`
	Accuracy      float64 `json:"accuracy"` // パーセント (小数1桁)
}

// StatsResponse は統計APIのレスポンスDTO
type StatsResponse struct {
	TotalItems int64         `json:"total_items"`
	Records    RecordSummary `json:"records"`
	Today      DaySummary    `json:"today"`
}
