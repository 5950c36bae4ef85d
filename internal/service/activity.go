package service

import (
	"fmt"
	"time"

	"github.com/BloggingApp/blog-api/internal/model"
)

const inactivityWindowDays = 30

// activityReport is the outcome of evaluating a user's post history.
// It is computed once per profile fetch; nothing here lives in the schema.
type activityReport struct {
	// HasPosts gates the inactivity block: with zero posts the last post
	// date is undefined, so the block flag is left alone entirely.
	HasPosts     bool
	IsInactive   bool
	LastPostDate string
	LastActive   string
	// Award is the tier the user should hold after this evaluation.
	// At exactly 10 posts no threshold fires and the current tier is kept.
	Award string
}

// evaluateActivity derives the inactivity flag, last-active bucket and award
// tier from the user's posts. Posts are expected in creation order; the last
// element is the most recent one.
func evaluateActivity(posts []model.Post, currentAward string, now time.Time) activityReport {
	report := activityReport{
		LastActive: "Never",
		Award:      awardFor(len(posts), currentAward),
	}

	if len(posts) == 0 {
		return report
	}

	lastPostDate := posts[len(posts)-1].CreatedAt
	daysSince := int(now.Sub(lastPostDate).Hours() / 24)

	report.HasPosts = true
	report.IsInactive = daysSince > inactivityWindowDays
	report.LastPostDate = lastPostDate.Format("Mon Jan 2 2006")

	switch {
	case daysSince <= 0:
		report.LastActive = "Today"
	case daysSince == 1:
		report.LastActive = "Yesterday"
	default:
		report.LastActive = fmt.Sprintf("%d days ago", daysSince)
	}

	return report
}

func awardFor(postCount int, currentAward string) string {
	award := currentAward
	if postCount < 10 {
		award = model.AwardBronze
	}
	if postCount > 10 {
		award = model.AwardSilver
	}
	if postCount > 20 {
		award = model.AwardGold
	}
	return award
}
