package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

func testAnalysis() model.ReportAnalysis {
	return model.ReportAnalysis{
		Scores: map[model.Archetype]int{
			model.ArchetypeA: 2, model.ArchetypeB: 0, model.ArchetypeC: 7,
			model.ArchetypeD: 4, model.ArchetypeE: 1, model.ArchetypeF: 4,
		},
		MainArchetype:  model.ArchetypeC,
		SubArchetype:   model.ArchetypeD,
		MainPercentage: 39,
		SubPercentage:  22,
		TopKeywords: []model.KeywordStat{
			{Keyword: "창의적인", Count: 2}, {Keyword: "밝은", Count: 2},
			{Keyword: "독특한", Count: 1}, {Keyword: "자유로운", Count: 1},
			{Keyword: "유연한", Count: 1},
		},
		TotalResponses: 2,
	}
}

func TestBuildReportViewWithContent(t *testing.T) {
	report := &model.Report{ID: "r1", RequesterName: "민지"}
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	view := BuildReportView(report, testAnalysis(), DefaultContent(), now)

	assert.Equal(t, "r1", view.ReportID)
	assert.Equal(t, "민지님의 피드백 리포트", view.Title)
	assert.Equal(t, "창의적인 아티스트", view.Main.Name)
	assert.Equal(t, "🎨", view.Main.Icon)
	assert.Equal(t, 39, view.Main.Percentage)
	assert.Equal(t, "긍정의 에너자이저", view.Sub.Name)
	assert.Equal(t, 22, view.Sub.Percentage)
	assert.Equal(t, "창의적 영감과 긍정적 에너지로 주변을 밝게 만드는 아티스트입니다.", view.Comment)
	assert.Equal(t, 2, view.Statistics.TotalResponses)
	assert.Equal(t, now, view.Statistics.AnalyzedAt)

	assert.Equal(t, []int{2, 0, 7, 4, 1, 4}, view.Radar.Data)
	assert.Equal(t, 8, view.Radar.ScaleMax)
	require.Len(t, view.Radar.Labels, 6)
	assert.Equal(t, "든든한 리더", view.Radar.Labels[0])

	sizes := make([]int, 0, len(view.KeywordCloud))
	for _, item := range view.KeywordCloud {
		sizes = append(sizes, item.Size)
	}
	assert.Equal(t, []int{4, 3, 2, 1, 1}, sizes)
}

func TestBuildReportViewWithoutContent(t *testing.T) {
	report := &model.Report{ID: "r2", RequesterName: "Sam"}

	view := BuildReportView(report, testAnalysis(), model.Content{}, time.Time{})

	assert.Equal(t, "타입 C", view.Main.Name)
	assert.Equal(t, "설명을 불러올 수 없습니다.", view.Main.Description)
	assert.Equal(t, "당신은 타입 C의 특성과 타입 D의 매력을 동시에 가진 독특한 사람이군요!", view.Comment)
}

func TestCommentIsUnorderedPair(t *testing.T) {
	content := model.Content{"comment_B_E": "조언자"}

	assert.Equal(t, "조언자", Comment(model.ArchetypeB, model.ArchetypeE, content))
	assert.Equal(t, "조언자", Comment(model.ArchetypeE, model.ArchetypeB, content))
}

func TestCommentFallbackUsesNames(t *testing.T) {
	content := model.Content{"type_A_name": "리더", "type_F_name": "탐험가"}

	assert.Equal(t, "당신은 탐험가의 특성과 리더의 매력을 동시에 가진 독특한 사람이군요!",
		Comment(model.ArchetypeF, model.ArchetypeA, content))
}

func TestEmptyKeywordCloud(t *testing.T) {
	analysis := testAnalysis()
	analysis.TopKeywords = []model.KeywordStat{}

	view := BuildReportView(&model.Report{}, analysis, nil, time.Time{})

	assert.NotNil(t, view.KeywordCloud)
	assert.Empty(t, view.KeywordCloud)
}
