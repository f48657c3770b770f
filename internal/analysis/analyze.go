// Package analysis turns a report's survey responses into an archetype analysis.
package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

// TopKeywordLimit is the number of keywords kept in TopKeywords
const TopKeywordLimit = 5

// Analyze tallies answers and keywords across responses.
// It never fails: malformed answers and blank keywords are skipped.
func Analyze(responses []model.SurveyResponse) model.ReportAnalysis {
	scores := make(map[model.Archetype]int, len(model.Archetypes))
	for _, a := range model.Archetypes {
		scores[a] = 0
	}

	keywordCounts := make(map[string]int)
	var seen []string

	for _, resp := range responses {
		for i, answer := range resp.Answers {
			if i >= model.QuestionCount {
				break
			}
			if a, ok := model.ParseArchetype(answer); ok {
				scores[a]++
			}
		}

		for _, kw := range resp.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if _, ok := keywordCounts[kw]; !ok {
				seen = append(seen, kw)
			}
			keywordCounts[kw]++
		}
	}

	main := pickMax(scores, "")
	sub := pickMax(scores, main)

	total := len(responses)
	radar := make([]int, len(model.Archetypes))
	for i, a := range model.Archetypes {
		radar[i] = scores[a]
	}

	return model.ReportAnalysis{
		Scores:         scores,
		MainArchetype:  main,
		SubArchetype:   sub,
		MainPercentage: percentage(scores[main], total),
		SubPercentage:  percentage(scores[sub], total),
		RadarData:      radar,
		KeywordCounts:  keywordCounts,
		TopKeywords:    rankKeywords(seen, keywordCounts, TopKeywordLimit),
		TotalResponses: total,
	}
}

// pickMax returns the highest-scoring archetype other than exclude.
// Ties go to the earliest letter.
func pickMax(scores map[model.Archetype]int, exclude model.Archetype) model.Archetype {
	var best model.Archetype
	bestScore := -1
	for _, a := range model.Archetypes {
		if a == exclude {
			continue
		}
		if scores[a] > bestScore {
			best, bestScore = a, scores[a]
		}
	}
	return best
}

// percentage normalizes score against the maximum attainable score for total responses
func percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	max := float64(total * model.QuestionCount)
	p := int(math.Round(float64(score) / max * 100))
	if p > 100 {
		return 100
	}
	return p
}

// rankKeywords sorts by count descending, keeping first-seen order on ties
func rankKeywords(order []string, counts map[string]int, limit int) []model.KeywordStat {
	stats := make([]model.KeywordStat, 0, len(order))
	for _, kw := range order {
		stats = append(stats, model.KeywordStat{Keyword: kw, Count: counts[kw]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
