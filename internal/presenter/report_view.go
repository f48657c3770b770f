// Package presenter maps an analysis and the content table into display-ready views.
package presenter

import (
	"fmt"
	"time"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

var icons = map[model.Archetype]string{
	model.ArchetypeA: "🛡️",
	model.ArchetypeB: "🤗",
	model.ArchetypeC: "🎨",
	model.ArchetypeD: "⚡",
	model.ArchetypeE: "🔍",
	model.ArchetypeF: "🌟",
}

const defaultIcon = "👤"

// BuildReportView renders a report. The caller passes the time of analysis
// so the output is deterministic for a given input.
func BuildReportView(report *model.Report, analysis model.ReportAnalysis, content model.Content, now time.Time) *model.ReportView {
	return &model.ReportView{
		ReportID:     report.ID,
		Title:        fmt.Sprintf("%s님의 피드백 리포트", report.RequesterName),
		Main:         archetypeCard(analysis.MainArchetype, analysis.MainPercentage, content),
		Sub:          archetypeCard(analysis.SubArchetype, analysis.SubPercentage, content),
		Radar:        radarChart(analysis, content),
		KeywordCloud: keywordCloud(analysis.TopKeywords),
		Comment:      Comment(analysis.MainArchetype, analysis.SubArchetype, content),
		Statistics: model.ReportStatistics{
			TotalResponses: analysis.TotalResponses,
			AnalyzedAt:     now,
		},
	}
}

// ArchetypeName returns the display name of a, falling back to "타입 <L>"
func ArchetypeName(a model.Archetype, content model.Content) string {
	return content.Get(model.TypeNameKey(a), fmt.Sprintf("타입 %s", a))
}

// Comment looks up the narrative for the unordered pair {main, sub}.
// Missing pairs get a generic sentence naming both archetypes.
func Comment(main, sub model.Archetype, content model.Content) string {
	if c := content.Get(model.CommentKey(main, sub), ""); c != "" {
		return c
	}
	if c := content.Get(model.CommentKey(sub, main), ""); c != "" {
		return c
	}
	return fmt.Sprintf("당신은 %s의 특성과 %s의 매력을 동시에 가진 독특한 사람이군요!",
		ArchetypeName(main, content), ArchetypeName(sub, content))
}

func archetypeCard(a model.Archetype, percentage int, content model.Content) model.ArchetypeCard {
	icon, ok := icons[a]
	if !ok {
		icon = defaultIcon
	}
	return model.ArchetypeCard{
		Archetype:   a,
		Name:        ArchetypeName(a, content),
		Description: content.Get(model.TypeDescriptionKey(a), "설명을 불러올 수 없습니다."),
		Icon:        icon,
		Percentage:  percentage,
	}
}

func radarChart(analysis model.ReportAnalysis, content model.Content) model.RadarChart {
	labels := make([]string, 0, len(model.Archetypes))
	data := make([]int, 0, len(model.Archetypes))
	max := 0
	for _, a := range model.Archetypes {
		labels = append(labels, ArchetypeName(a, content))
		score := analysis.Scores[a]
		data = append(data, score)
		if score > max {
			max = score
		}
	}
	return model.RadarChart{Labels: labels, Data: data, ScaleMax: max + 1}
}

func keywordCloud(top []model.KeywordStat) []model.KeywordCloudItem {
	items := make([]model.KeywordCloudItem, 0, len(top))
	for i, k := range top {
		size := 4 - i
		if size < 1 {
			size = 1
		}
		items = append(items, model.KeywordCloudItem{Keyword: k.Keyword, Count: k.Count, Size: size})
	}
	return items
}
