package service

import (
	"fmt"
	"strings"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

// ValidateResponse checks a new submission: nine letters A-F (case-folded
// here only) and exactly three distinct non-empty keywords. Analysis does
// not depend on it, so stored legacy data never has to pass this.
func ValidateResponse(resp model.SurveyResponse) (model.SurveyResponse, error) {
	if len(resp.Answers) != model.QuestionCount {
		return resp, fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidResponse, model.QuestionCount, len(resp.Answers))
	}

	clean := model.SurveyResponse{
		Answers:     make([]string, 0, model.QuestionCount),
		Keywords:    make([]string, 0, model.KeywordCount),
		SubmittedAt: resp.SubmittedAt,
	}
	for i, a := range resp.Answers {
		letter, ok := model.ParseArchetype(strings.ToUpper(strings.TrimSpace(a)))
		if !ok {
			return resp, fmt.Errorf("%w: question %d needs an answer between A and F", ErrInvalidResponse, i+1)
		}
		clean.Answers = append(clean.Answers, string(letter))
	}

	if len(resp.Keywords) != model.KeywordCount {
		return resp, fmt.Errorf("%w: select exactly %d keywords", ErrInvalidResponse, model.KeywordCount)
	}
	seen := make(map[string]bool, len(resp.Keywords))
	for _, k := range resp.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			return resp, fmt.Errorf("%w: keywords must not be blank", ErrInvalidResponse)
		}
		if seen[k] {
			return resp, fmt.Errorf("%w: keyword %q selected twice", ErrInvalidResponse, k)
		}
		seen[k] = true
		clean.Keywords = append(clean.Keywords, k)
	}
	return clean, nil
}
