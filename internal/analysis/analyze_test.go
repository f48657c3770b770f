package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

func TestAnalyzeEmptyInput(t *testing.T) {
	result := Analyze(nil)

	assert.Equal(t, 0, result.TotalResponses)
	for _, a := range model.Archetypes {
		assert.Equal(t, 0, result.Scores[a], "score for %s", a)
	}
	assert.Equal(t, model.ArchetypeA, result.MainArchetype)
	assert.Equal(t, model.ArchetypeB, result.SubArchetype)
	assert.Equal(t, 0, result.MainPercentage)
	assert.Equal(t, 0, result.SubPercentage)
	assert.NotNil(t, result.TopKeywords)
	assert.Empty(t, result.TopKeywords)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, result.RadarData)
}

func TestAnalyzeSampleReport(t *testing.T) {
	result := Analyze(sampleResponses())

	require.Equal(t, 5, result.TotalResponses)
	assert.Equal(t, 31, result.Scores[model.ArchetypeA])
	assert.Equal(t, 14, result.Scores[model.ArchetypeB])
	assert.Equal(t, model.ArchetypeA, result.MainArchetype)
	assert.Equal(t, model.ArchetypeB, result.SubArchetype)
	// 31/45 and 14/45
	assert.Equal(t, 69, result.MainPercentage)
	assert.Equal(t, 31, result.SubPercentage)

	require.NotEmpty(t, result.TopKeywords)
	assert.Equal(t, model.KeywordStat{Keyword: "든든한", Count: 2}, result.TopKeywords[0])
	assert.Equal(t, model.KeywordStat{Keyword: "신뢰할 수 있는", Count: 2}, result.TopKeywords[1])
	assert.Equal(t, model.KeywordStat{Keyword: "신중한", Count: 1}, result.TopKeywords[2])
	assert.Len(t, result.TopKeywords, TopKeywordLimit)
}

func TestAnalyzeTieBreakPrefersEarlierLetter(t *testing.T) {
	first := blankAnswers()
	first[0] = "C"
	second := blankAnswers()
	second[0] = "C"
	third := blankAnswers()
	third[0] = "A"

	result := Analyze([]model.SurveyResponse{{Answers: first}, {Answers: second}, {Answers: third}})

	assert.Equal(t, 1, result.Scores[model.ArchetypeA])
	assert.Equal(t, 2, result.Scores[model.ArchetypeC])
	assert.Equal(t, model.ArchetypeC, result.MainArchetype)
	assert.Equal(t, model.ArchetypeA, result.SubArchetype)
}

func TestAnalyzeTiedScoresPickAlphabetically(t *testing.T) {
	result := Analyze([]model.SurveyResponse{
		{Answers: []string{"F", "E", "D", "C", "B", "A"}},
	})

	assert.Equal(t, model.ArchetypeA, result.MainArchetype)
	assert.Equal(t, model.ArchetypeB, result.SubArchetype)
}

func TestAnalyzeToleratesMalformedAnswers(t *testing.T) {
	responses := []model.SurveyResponse{
		{Answers: []string{"", "G", "a", " B ", "AB", "C"}},
		{Answers: nil, Keywords: []string{"성실한"}},
		{Answers: []string{"D", "D", "D", "D", "D", "D", "D", "D", "D", "D", "D"}},
	}

	var result model.ReportAnalysis
	require.NotPanics(t, func() { result = Analyze(responses) })

	assert.Equal(t, 0, result.Scores[model.ArchetypeA])
	// padded letters are not valid answers
	assert.Equal(t, 0, result.Scores[model.ArchetypeB])
	assert.Equal(t, 1, result.Scores[model.ArchetypeC])
	// answers past the ninth slot are ignored
	assert.Equal(t, 9, result.Scores[model.ArchetypeD])
	assert.Equal(t, 3, result.TotalResponses)
}

func TestAnalyzeSkipsWhitespacePaddedAnswers(t *testing.T) {
	responses := []model.SurveyResponse{
		{Answers: []string{" B ", "C\n", "\tA", "A"}},
	}

	result := Analyze(responses)

	assert.Equal(t, 1, result.Scores[model.ArchetypeA])
	assert.Equal(t, 0, result.Scores[model.ArchetypeB])
	assert.Equal(t, 0, result.Scores[model.ArchetypeC])

	sum := 0
	for _, v := range result.Scores {
		sum += v
	}
	assert.Equal(t, countValid(responses), sum)
}

func TestAnalyzeKeywordRanking(t *testing.T) {
	responses := []model.SurveyResponse{
		{Keywords: []string{"창의적"}},
		{Keywords: []string{"창의적"}},
		{Keywords: []string{"성실한"}},
	}

	result := Analyze(responses)

	require.NotEmpty(t, result.TopKeywords)
	assert.Equal(t, model.KeywordStat{Keyword: "창의적", Count: 2}, result.TopKeywords[0])
	assert.Equal(t, map[string]int{"창의적": 2, "성실한": 1}, result.KeywordCounts)
}

func TestAnalyzeKeywordsTrimmedAndCaseSensitive(t *testing.T) {
	responses := []model.SurveyResponse{
		{Keywords: []string{" Calm ", "calm", "", "   "}},
		{Keywords: []string{"Calm"}},
	}

	result := Analyze(responses)

	assert.Equal(t, map[string]int{"Calm": 2, "calm": 1}, result.KeywordCounts)
	assert.Equal(t, []model.KeywordStat{{Keyword: "Calm", Count: 2}, {Keyword: "calm", Count: 1}}, result.TopKeywords)
}

func TestAnalyzeKeywordTiesKeepFirstSeenOrder(t *testing.T) {
	responses := []model.SurveyResponse{
		{Keywords: []string{"g", "f", "e"}},
		{Keywords: []string{"d", "c", "b"}},
		{Keywords: []string{"a", "b"}},
	}

	result := Analyze(responses)

	got := make([]string, 0, len(result.TopKeywords))
	for _, k := range result.TopKeywords {
		got = append(got, k.Keyword)
	}
	assert.Equal(t, []string{"b", "g", "f", "e", "d"}, got)
}

func TestAnalyzeInvariants(t *testing.T) {
	cases := map[string][]model.SurveyResponse{
		"empty":  {},
		"sample": sampleResponses(),
		"single-letter": {
			{Answers: []string{"E", "E", "E", "E", "E", "E", "E", "E", "E"}},
		},
		"sparse": {
			{Answers: []string{"", "B", "", "Z"}},
			{Answers: blankAnswers()},
		},
	}

	for name, responses := range cases {
		t.Run(name, func(t *testing.T) {
			result := Analyze(responses)

			sum := 0
			for _, v := range result.Scores {
				sum += v
			}
			assert.Equal(t, countValid(responses), sum)
			assert.LessOrEqual(t, sum, model.QuestionCount*result.TotalResponses)
			assert.NotEqual(t, result.MainArchetype, result.SubArchetype)
			assert.GreaterOrEqual(t, result.MainPercentage, 0)
			assert.LessOrEqual(t, result.MainPercentage, 100)
			assert.GreaterOrEqual(t, result.SubPercentage, 0)
			assert.LessOrEqual(t, result.SubPercentage, 100)
		})
	}
}

func TestAnalyzeSingleArchetypeIsFullPercentage(t *testing.T) {
	result := Analyze([]model.SurveyResponse{
		{Answers: []string{"E", "E", "E", "E", "E", "E", "E", "E", "E"}},
	})

	assert.Equal(t, model.ArchetypeE, result.MainArchetype)
	assert.Equal(t, model.ArchetypeA, result.SubArchetype)
	assert.Equal(t, 100, result.MainPercentage)
	assert.Equal(t, 0, result.SubPercentage)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	responses := sampleResponses()

	first := Analyze(responses)
	second := Analyze(responses)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleResponses(), responses, "input must not be mutated")
}

func countValid(responses []model.SurveyResponse) int {
	n := 0
	for _, r := range responses {
		for i, a := range r.Answers {
			if i >= model.QuestionCount {
				break
			}
			if _, ok := model.ParseArchetype(a); ok {
				n++
			}
		}
	}
	return n
}
