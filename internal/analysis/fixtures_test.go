package analysis

import "github.com/outliner-coach/letmeknowme/internal/model"

// sampleResponses is a realistic five-respondent report used as a fixture.
// Production code never substitutes it for real input.
func sampleResponses() []model.SurveyResponse {
	return []model.SurveyResponse{
		{
			Answers:  []string{"A", "A", "B", "A", "B", "A", "A", "B", "A"},
			Keywords: []string{"신중한", "책임감 있는", "든든한"},
		},
		{
			Answers:  []string{"A", "B", "A", "A", "A", "B", "A", "A", "B"},
			Keywords: []string{"리더십 있는", "신뢰할 수 있는", "진지한"},
		},
		{
			Answers:  []string{"B", "A", "A", "B", "A", "A", "B", "A", "A"},
			Keywords: []string{"따뜻한", "배려심 깊은", "든든한"},
		},
		{
			Answers:  []string{"A", "A", "A", "A", "B", "A", "A", "A", "A"},
			Keywords: []string{"멘토 같은", "지혜로운", "성실한"},
		},
		{
			Answers:  []string{"A", "B", "B", "A", "A", "B", "A", "B", "A"},
			Keywords: []string{"신뢰할 수 있는", "성숙한", "차분한"},
		},
	}
}

func blankAnswers() []string {
	return make([]string, model.QuestionCount)
}
