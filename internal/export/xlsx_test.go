package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/outliner-coach/letmeknowme/internal/analysis"
	"github.com/outliner-coach/letmeknowme/internal/model"
)

func TestWriteReportXLSX(t *testing.T) {
	report := &model.Report{
		ID:            "r1",
		RequesterName: "도윤",
		Responses: []model.SurveyResponse{
			{
				Answers:     []string{"C", "C", "C", "D", "D", "A", "C", "B", "C"},
				Keywords:    []string{"창의적인", "밝은", "독특한"},
				SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			},
			{
				Answers:  []string{"C", "D"},
				Keywords: []string{"창의적인"},
			},
		},
	}
	result := analysis.Analyze(report.Responses)
	content := model.Content{"type_C_name": "창의적인 아티스트"}

	var buf bytes.Buffer
	require.NoError(t, WriteReportXLSX(&buf, report, result, content))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetScores, SheetKeywords, SheetResponses}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Requester", "도윤"}, summary[0])
	assert.Equal(t, []string{"Main archetype", "창의적인 아티스트"}, summary[3])

	scores, err := f.GetRows(SheetScores)
	require.NoError(t, err)
	require.Len(t, scores, 7)
	assert.Equal(t, []string{"C", "창의적인 아티스트", "6"}, scores[3])

	keywords, err := f.GetRows(SheetKeywords)
	require.NoError(t, err)
	assert.Equal(t, []string{"창의적인", "2"}, keywords[1])

	responses, err := f.GetRows(SheetResponses)
	require.NoError(t, err)
	require.Len(t, responses, 3)
	assert.Equal(t, "2025-06-01T12:00:00Z", responses[1][1])
	assert.Equal(t, "창의적인, 밝은, 독특한", responses[1][11])
	assert.Equal(t, "창의적인", responses[2][11])
}
