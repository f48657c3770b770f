package model

import "time"

// ArchetypeCard is the rendered main or secondary archetype
type ArchetypeCard struct {
	Archetype   Archetype `json:"archetype"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Percentage  int       `json:"percentage"`
}

// RadarChart holds the six trait scores with their labels
type RadarChart struct {
	Labels   []string `json:"labels"`
	Data     []int    `json:"data"`
	ScaleMax int      `json:"scaleMax"`
}

// KeywordCloudItem is one tag in the keyword cloud
type KeywordCloudItem struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
	Size    int    `json:"size"` // 1-4, larger for higher ranks
}

// ReportStatistics is the footer of a report view
type ReportStatistics struct {
	TotalResponses int       `json:"totalResponses"`
	AnalyzedAt     time.Time `json:"analyzedAt"`
}

// ReportView is the fully rendered report sent to the result page
type ReportView struct {
	ReportID     string             `json:"reportId"`
	Title        string             `json:"title"`
	Main         ArchetypeCard      `json:"main"`
	Sub          ArchetypeCard      `json:"sub"`
	Radar        RadarChart         `json:"radar"`
	KeywordCloud []KeywordCloudItem `json:"keywordCloud"`
	Comment      string             `json:"comment"`
	Statistics   ReportStatistics   `json:"statistics"`
}

// Choice is one selectable option of a survey question
type Choice struct {
	Value Archetype `json:"value"`
	Text  string    `json:"text"`
}

// SurveyQuestion is one of the nine forced-choice questions
type SurveyQuestion struct {
	Key     string   `json:"key"` // e.g., "q1"
	Number  int      `json:"number"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices"`
}

// SurveyForm is everything the feedback page needs to render
type SurveyForm struct {
	ReportID      string           `json:"reportId"`
	RequesterName string           `json:"requesterName"`
	Title         string           `json:"title"`
	Questions     []SurveyQuestion `json:"questions"`
	KeywordPrompt string           `json:"keywordPrompt"`
	Keywords      []string         `json:"keywords"`
	KeywordLimit  int              `json:"keywordLimit"`
}
