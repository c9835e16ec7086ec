package learning

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go_vocab_drill/internal/model"

	"github.com/google/uuid"
)

// MistakeSharePercent はセッションに占める誤答ペアの上限 (%) です。
const MistakeSharePercent = 20

// RecordStore はセッション構成と採点が参照するレコードストアです。
// 実装は一貫したスナップショットから読み取る必要があります。
type RecordStore interface {
	// GetRecord はペアのレコードを返します。レコードが無い場合は (nil, nil) です。
	GetRecord(ctx context.Context, itemID, sentenceID uuid.UUID) (*model.ReviewRecord, error)
	// CountMistakes は誤答フラグ付きのペア数を返します。
	CountMistakes(ctx context.Context) (int64, error)
	// ListMistakes は誤答フラグ付きのペアを期日に関係なく最大 limit 件返します。
	ListMistakes(ctx context.Context, limit int) ([]model.SessionPair, error)
	// ListDue は nextReview < dueBefore のペアを nextReview の昇順で最大 limit 件返します。
	ListDue(ctx context.Context, dueBefore time.Time, limit int) ([]model.SessionPair, error)
	// ListFresh はレコードが存在しないペアを出現頻度の降順 (同順位はランダム) で最大 limit 件返します。
	ListFresh(ctx context.Context, limit int) ([]model.SessionPair, error)
}

// Composer は1日分の学習セッションを組み立てます。
type Composer struct {
	mu  sync.Mutex // rng は並行利用できない
	rng *rand.Rand
	now func() time.Time
}

// ComposerOption は Composer の設定を変更します。
type ComposerOption func(*Composer)

// WithRand はシャッフルに使う乱数源を指定します (テスト用)。
func WithRand(rng *rand.Rand) ComposerOption {
	return func(c *Composer) { c.rng = rng }
}

// WithClock は「今日」の判定に使う時計を指定します。
func WithClock(now func() time.Time) ComposerOption {
	return func(c *Composer) { c.now = now }
}

func NewComposer(opts ...ComposerOption) *Composer {
	c := &Composer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MistakeQuota は floor(dailyGoal * 20%) と誤答総数の小さい方を返します。
func MistakeQuota(dailyGoal int, totalMistakes int64) int {
	quota := dailyGoal * MistakeSharePercent / 100
	if int64(quota) > totalMistakes {
		return int(totalMistakes)
	}
	return quota
}

// ComposeDailySession は誤答・期日到来・新出の各プールから最大 dailyGoal 件を選び、
// まとめてシャッフルした計画を返します。
//
// 候補が dailyGoal に満たない場合は少ないまま返し、水増しや重複はしません。
// 候補がまったく無い場合は Status が SessionComplete の計画を返します。
// ストアのエラーは model.ErrDependency でラップして返し、部分的な計画は作りません。
func (c *Composer) ComposeDailySession(ctx context.Context, store RecordStore, dailyGoal int) (*model.DailySessionPlan, error) {
	if dailyGoal <= 0 {
		return nil, fmt.Errorf("%w: daily goal must be positive, got %d", model.ErrInvalidInput, dailyGoal)
	}
	now := c.now()

	totalMistakes, err := store.CountMistakes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count mistakes: %w", model.ErrDependency, err)
	}
	quota := MistakeQuota(dailyGoal, totalMistakes)

	var mistakes []model.SessionPair
	if quota > 0 {
		mistakes, err = store.ListMistakes(ctx, quota)
		if err != nil {
			return nil, fmt.Errorf("%w: list mistakes: %w", model.ErrDependency, err)
		}
		mistakes = truncate(mistakes, quota)
	}

	remaining := dailyGoal - quota
	picked := make(map[model.PairKey]struct{}, dailyGoal)
	for _, p := range mistakes {
		picked[p.Key()] = struct{}{}
	}

	// 誤答ペアが期日到来していれば重複するので、その分だけ多めに取得して除外する
	var reviews []model.SessionPair
	if remaining > 0 {
		due, err := store.ListDue(ctx, StartOfNextDay(now), remaining+len(mistakes))
		if err != nil {
			return nil, fmt.Errorf("%w: list due records: %w", model.ErrDependency, err)
		}
		reviews = make([]model.SessionPair, 0, remaining)
		for _, p := range due {
			if len(reviews) == remaining {
				break
			}
			if _, dup := picked[p.Key()]; dup {
				continue
			}
			picked[p.Key()] = struct{}{}
			reviews = append(reviews, p)
		}
	}

	var fresh []model.SessionPair
	if shortfall := remaining - len(reviews); shortfall > 0 {
		fresh, err = store.ListFresh(ctx, shortfall)
		if err != nil {
			return nil, fmt.Errorf("%w: list fresh pairs: %w", model.ErrDependency, err)
		}
		fresh = truncate(fresh, shortfall)
	}

	pairs := make([]model.SessionPair, 0, len(mistakes)+len(reviews)+len(fresh))
	pairs = appendWithSource(pairs, mistakes, model.SourceMistake)
	pairs = appendWithSource(pairs, reviews, model.SourceReview)
	pairs = appendWithSource(pairs, fresh, model.SourceFresh)
	c.shuffle(pairs)

	plan := &model.DailySessionPlan{
		Status:       model.SessionReady,
		DailyGoal:    dailyGoal,
		Pairs:        pairs,
		MistakeCount: len(mistakes),
		ReviewCount:  len(reviews),
		FreshCount:   len(fresh),
		ComposedAt:   now,
	}
	if len(pairs) == 0 {
		plan.Status = model.SessionComplete
	}
	return plan, nil
}

// StartOfNextDay は t と同じロケーションでの翌日 0:00 を返します。
// nextReview がこれより前なら「今日が期日」とみなします。
func StartOfNextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}

func (c *Composer) shuffle(pairs []model.SessionPair) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})
}

func appendWithSource(dst, src []model.SessionPair, source model.PairSource) []model.SessionPair {
	for _, p := range src {
		p.Source = source
		dst = append(dst, p)
	}
	return dst
}

func truncate(pairs []model.SessionPair, n int) []model.SessionPair {
	if len(pairs) > n {
		return pairs[:n]
	}
	return pairs
}
