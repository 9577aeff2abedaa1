// Package chat assembles conversation history from paged network queries and
// bridges pushed messages onto relay streams.
package chat

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/im-relay/internal/model"
)

// History defaults.
const (
	DefaultPageSize      = 50
	DefaultMaxPages      = 10
	DefaultResolution    = time.Nanosecond
	DefaultHistoryWindow = 24 * time.Hour
)

// HistorySource returns one page of a conversation, newest first.
type HistorySource interface {
	MessageHistory(ctx context.Context, targetID string, q model.HistoryQuery) (model.HistoryPage, error)
}

// Aggregator walks history pages backwards from a watermark until it reaches
// the start time, the network reports no more pages, or MaxPages is hit.
type Aggregator struct {
	PageSize      int
	MaxPages      int
	Resolution    time.Duration // watermark step below the oldest message of a page
	DefaultWindow time.Duration // history depth when no start time is given

	Now    func() time.Time
	Logger *zap.Logger
}

// NewAggregator returns an Aggregator with default limits.
func NewAggregator(log *zap.Logger) *Aggregator {
	return &Aggregator{
		PageSize:      DefaultPageSize,
		MaxPages:      DefaultMaxPages,
		Resolution:    DefaultResolution,
		DefaultWindow: DefaultHistoryWindow,
		Logger:        log,
	}
}

// Fetch returns the messages of the conversation with target that are not
// older than start and not newer than watermark, oldest first. A zero start
// means DefaultWindow ago; a zero watermark starts from the newest message.
// Only a failed page query is an error; an empty result is not.
func (a *Aggregator) Fetch(ctx context.Context, src HistorySource, target string, start, watermark time.Time) ([]model.ChatMessage, error) {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	log := a.Logger
	if log == nil {
		log = zap.NewNop()
	}
	pageSize, maxPages, res := a.PageSize, a.MaxPages, a.Resolution
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if res <= 0 {
		res = DefaultResolution
	}

	if start.IsZero() {
		window := a.DefaultWindow
		if window <= 0 {
			window = DefaultHistoryWindow
		}
		start = now().Add(-window)
	}
	// A zero Before asks the network for its newest page.
	before := watermark

	var out []model.ChatMessage
	pages := 0
	for pages < maxPages && (before.IsZero() || !before.Before(start)) {
		page, err := src.MessageHistory(ctx, target, model.HistoryQuery{
			Start:    start,
			Before:   before,
			MaxCount: pageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("history page %d: %w", pages, err)
		}
		pages++
		if len(page.Messages) == 0 {
			break
		}

		oldest := page.Messages[0].Timestamp
		for _, m := range page.Messages {
			if m.Timestamp.Before(oldest) {
				oldest = m.Timestamp
			}
			if !m.Timestamp.Before(start) {
				out = append(out, m)
			}
		}
		if !page.MoreAvailable || oldest.Before(start) {
			break
		}
		next := oldest.Add(-res)
		if !before.IsZero() && !next.Before(before) {
			// The page did not move the watermark.
			break
		}
		before = next
	}
	if pages == maxPages {
		log.Debug("history page ceiling reached", zap.Int("pages", pages), zap.Int("messages", len(out)))
	}

	// Pages arrive newest first and their internal order is not guaranteed.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}
