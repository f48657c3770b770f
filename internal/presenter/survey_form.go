package presenter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

// DefaultKeywords is offered when the content table has no usable keyword_list
var DefaultKeywords = []string{
	"리더십", "책임감", "추진력", "공감능력", "배려심", "다정함",
	"창의력", "독창성", "심미안", "긍정적", "유머감각", "사교성",
	"분석력", "논리적", "효율성", "도전적", "자유로움", "호기심",
}

// BuildSurveyForm renders the nine questions and the keyword picker for a report
func BuildSurveyForm(report *model.Report, content model.Content) *model.SurveyForm {
	questions := make([]model.SurveyQuestion, 0, model.QuestionCount)
	for n := 1; n <= model.QuestionCount; n++ {
		choices := make([]model.Choice, 0, len(model.Archetypes))
		for _, a := range model.Archetypes {
			choices = append(choices, model.Choice{
				Value: a,
				Text:  content.Get(model.ChoiceTextKey(n, a), fmt.Sprintf("선택지 %s", a)),
			})
		}
		questions = append(questions, model.SurveyQuestion{
			Key:     fmt.Sprintf("q%d", n),
			Number:  n,
			Text:    content.Get(model.QuestionTextKey(n), fmt.Sprintf("질문 %d", n)),
			Choices: choices,
		})
	}

	return &model.SurveyForm{
		ReportID:      report.ID,
		RequesterName: report.RequesterName,
		Title:         fmt.Sprintf("%s님에 대한 설문", report.RequesterName),
		Questions:     questions,
		KeywordPrompt: content.Get(model.KeyQ10Text, fmt.Sprintf("%s님을 가장 잘 표현하는 키워드 %d개를 골라주세요.", report.RequesterName, model.KeywordCount)),
		Keywords:      Keywords(content),
		KeywordLimit:  model.KeywordCount,
	}
}

// Keywords parses the keyword_list JSON array, falling back to DefaultKeywords
func Keywords(content model.Content) []string {
	raw := strings.TrimSpace(content[model.KeyKeywordList])
	if raw == "" {
		return append([]string(nil), DefaultKeywords...)
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil || len(list) == 0 {
		return append([]string(nil), DefaultKeywords...)
	}
	return list
}
