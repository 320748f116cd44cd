package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"trust-engine/config"
	"trust-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

var (
	phonePattern = regexp.MustCompile(`\b\+?\d{1,3}[-.\s]?\(?\d{2,3}\)?[-.\s]?\d{3}[-.\s]?\d{3,4}\b`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Off-platform messaging app mentions.
	messagingAppPattern = regexp.MustCompile(`(?i)\b(whatsapp|telegram|signal|wechat|viber)\b`)
)

// ContentAnalyzer scores user-submitted message content for spam and
// off-platform contact sharing. Messaging actions only, no store access.
type ContentAnalyzer struct {
	cfg config.ContentHeuristics
	log zerolog.Logger
}

// NewContentAnalyzer creates a new ContentAnalyzer.
func NewContentAnalyzer(cfg config.FraudConfig, log zerolog.Logger) *ContentAnalyzer {
	return &ContentAnalyzer{cfg: cfg.Content, log: log}
}

func (a *ContentAnalyzer) Factor() domain.Factor { return domain.FactorContentRisk }

// Applies: messaging actions carrying content metadata only.
func (a *ContentAnalyzer) Applies(req *domain.CheckRequest) bool {
	if req.ActionType != domain.ActionMessaging {
		return false
	}
	content, ok := req.Metadata.String("content")
	return ok && content != ""
}

func (a *ContentAnalyzer) Analyze(_ context.Context, req *domain.CheckRequest) (int, []string) {
	content, _ := req.Metadata.String("content")
	lower := strings.ToLower(content)

	score := 0
	var reasons []string

	hits := 0
	for _, kw := range a.cfg.SpamKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	if hits >= a.cfg.SpamKeywordHits {
		score += a.cfg.SpamPenalty
		reasons = append(reasons, fmt.Sprintf("%d spam keywords detected", hits))
	}

	if phonePattern.MatchString(content) || emailPattern.MatchString(content) || messagingAppPattern.MatchString(content) {
		score += a.cfg.ContactPenalty
		reasons = append(reasons, "off-platform contact details shared")
	}

	for _, word := range a.cfg.ProfanityWords {
		if strings.Contains(lower, word) {
			score += a.cfg.ProfanityPenalty
			reasons = append(reasons, "inappropriate language detected")
			break
		}
	}

	if len(content) > a.cfg.MaxLength {
		score += a.cfg.LengthPenalty
		reasons = append(reasons, "message exceeds length limit")
	}

	if ratio := repetitionRatio(lower); ratio > a.cfg.RepetitionRatio {
		score += a.cfg.RepetitionPenalty
		reasons = append(reasons, "highly repetitive message content")
	}

	return domain.ClampScore(score), reasons
}

// repetitionRatio is the share of words that are repeats of an earlier
// word. Messages with fewer than four words are never flagged.
func repetitionRatio(content string) float64 {
	words := strings.Fields(content)
	if len(words) < 4 {
		return 0
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return 1 - float64(len(seen))/float64(len(words))
}
