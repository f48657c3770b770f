package model

import "time"

// Report is the feedback record for one requester
type Report struct {
	ID            string           `json:"id" bson:"_id"`
	RequesterName string           `json:"requesterName" bson:"requesterName"`
	Responses     []SurveyResponse `json:"responses" bson:"responses"`
	CreatedAt     time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt" bson:"updatedAt"`
}

// ResponseCount returns the number of submitted responses
func (r *Report) ResponseCount() int {
	return len(r.Responses)
}

// ReportSummary is the list view of a report
type ReportSummary struct {
	ID            string    `json:"id" bson:"_id"`
	RequesterName string    `json:"requesterName" bson:"requesterName"`
	ResponseCount int       `json:"responseCount" bson:"responseCount"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateReportResponse is returned after a report is created
type CreateReportResponse struct {
	ID             string `json:"id"`
	RequesterName  string `json:"requesterName"`
	FeedbackLink   string `json:"feedbackLink"`
	ResultLink     string `json:"resultLink"`
	RequesterToken string `json:"requesterToken"`
}

// ReportStatus tells the requester whether the report can be opened yet
type ReportStatus struct {
	ReportID      string `json:"reportId"`
	RequesterName string `json:"requesterName"`
	ResponseCount int    `json:"responseCount"`
	MinResponses  int    `json:"minResponses"`
	Remaining     int    `json:"remaining"`
	Ready         bool   `json:"ready"`
}
