package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"profitpilot/models"
	"profitpilot/utils"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WeeklyRevenue sums purchase cost over the trailing 30 days of data,
// grouped by ISO week. The window anchors on the newest timestamp in the
// table rather than the wall clock, so a historical dataset still reports.
func (e *Engine) WeeklyRevenue() ([]models.WeeklyRevenue, error) {
	var newest Purchase
	err := e.db.Order("timestamp desc").First(&newest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.WeeklyRevenue{}, nil
	}
	if err != nil {
		return nil, utils.NewStorageError("failed to find latest purchase", err)
	}

	var purchases []Purchase
	cutoff := newest.Timestamp.AddDate(0, 0, -30)
	err = e.db.Where("timestamp > ?", cutoff).Order("timestamp").Find(&purchases).Error
	if err != nil {
		return nil, utils.NewStorageError("failed to load recent purchases", err)
	}

	totals := map[string]float64{}
	for _, p := range purchases {
		year, week := p.Timestamp.ISOWeek()
		totals[fmt.Sprintf("%d-W%02d", year, week)] += p.Cost
	}

	weeks := make([]models.WeeklyRevenue, 0, len(totals))
	for week, revenue := range totals {
		weeks = append(weeks, models.WeeklyRevenue{Week: week, Revenue: revenue})
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })
	return weeks, nil
}

// InsightGenerator turns the weekly revenue numbers into a short
// management summary. Without an API key it falls back to a computed
// summary.
type InsightGenerator struct {
	client *openai.Client
	model  string
}

func NewInsightGenerator(apiKey string) *InsightGenerator {
	g := &InsightGenerator{model: openai.GPT4oMini}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

// Summarize produces a few sentences about the recent revenue trend.
func (g *InsightGenerator) Summarize(ctx context.Context, weeks []models.WeeklyRevenue) string {
	if g.client == nil {
		return fallbackSummary(weeks)
	}

	var sb strings.Builder
	for _, w := range weeks {
		fmt.Fprintf(&sb, "%s: $%.2f\n", w.Week, w.Revenue)
	}
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a business analyst. Summarize revenue trends in two or three sentences for a venue owner.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Weekly revenue for the last 30 days:\n" + sb.String(),
			},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		utils.GetLogger().Warn("revenue insight generation failed, using fallback", zap.Error(err))
		return fallbackSummary(weeks)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func fallbackSummary(weeks []models.WeeklyRevenue) string {
	if len(weeks) == 0 {
		return "No revenue recorded in the last 30 days."
	}
	var total float64
	best := weeks[0]
	for _, w := range weeks {
		total += w.Revenue
		if w.Revenue > best.Revenue {
			best = w
		}
	}
	avg := total / float64(len(weeks))
	return fmt.Sprintf(
		"Revenue over the last 30 days totalled $%.2f across %d weeks, averaging $%.2f per week. The strongest week was %s at $%.2f.",
		total, len(weeks), avg, best.Week, best.Revenue)
}
