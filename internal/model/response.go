package model

import "time"

// SurveyResponse is one respondent's submission
type SurveyResponse struct {
	Answers     []string  `json:"answers" bson:"answers"`   // Q1-Q9, one letter each
	Keywords    []string  `json:"keywords" bson:"keywords"` // Q10, three labels
	SubmittedAt time.Time `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
}

// SubmitResponseRequest is the request body posted by the feedback form
type SubmitResponseRequest struct {
	Q1  string   `json:"q1"`
	Q2  string   `json:"q2"`
	Q3  string   `json:"q3"`
	Q4  string   `json:"q4"`
	Q5  string   `json:"q5"`
	Q6  string   `json:"q6"`
	Q7  string   `json:"q7"`
	Q8  string   `json:"q8"`
	Q9  string   `json:"q9"`
	Q10 []string `json:"q10"`
}

// ToResponse converts the form payload into a SurveyResponse
func (r *SubmitResponseRequest) ToResponse() SurveyResponse {
	return SurveyResponse{
		Answers:  []string{r.Q1, r.Q2, r.Q3, r.Q4, r.Q5, r.Q6, r.Q7, r.Q8, r.Q9},
		Keywords: append([]string(nil), r.Q10...),
	}
}
