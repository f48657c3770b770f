package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

func TestBuildSurveyFormFallbacks(t *testing.T) {
	report := &model.Report{ID: "r1", RequesterName: "지수"}

	form := BuildSurveyForm(report, model.Content{"q2_text": "갈등이 생기면?", "q2_choice_C": "새로운 방법을 찾는다"})

	assert.Equal(t, "지수님에 대한 설문", form.Title)
	require.Len(t, form.Questions, model.QuestionCount)
	assert.Equal(t, "질문 1", form.Questions[0].Text)
	assert.Equal(t, "q1", form.Questions[0].Key)
	assert.Equal(t, "갈등이 생기면?", form.Questions[1].Text)
	require.Len(t, form.Questions[1].Choices, 6)
	assert.Equal(t, "선택지 A", form.Questions[1].Choices[0].Text)
	assert.Equal(t, "새로운 방법을 찾는다", form.Questions[1].Choices[2].Text)
	assert.Equal(t, model.ArchetypeF, form.Questions[8].Choices[5].Value)
	assert.Equal(t, DefaultKeywords, form.Keywords)
	assert.Equal(t, model.KeywordCount, form.KeywordLimit)
}

func TestKeywordsParsing(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Keywords(model.Content{model.KeyKeywordList: `["a","b"]`}))
	assert.Equal(t, DefaultKeywords, Keywords(model.Content{model.KeyKeywordList: `not json`}))
	assert.Equal(t, DefaultKeywords, Keywords(model.Content{model.KeyKeywordList: `[]`}))
	assert.Len(t, Keywords(DefaultContent()), len(defaultKeywordCatalog))
}
