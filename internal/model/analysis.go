package model

// KeywordStat is a keyword and how many respondents picked it
type KeywordStat struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// ReportAnalysis is the aggregate computed from a report's responses.
// It is never stored; every view recomputes it.
type ReportAnalysis struct {
	Scores         map[Archetype]int `json:"scores"`
	MainArchetype  Archetype         `json:"mainArchetype"`
	SubArchetype   Archetype         `json:"subArchetype"`
	MainPercentage int               `json:"mainPercentage"`
	SubPercentage  int               `json:"subPercentage"`
	RadarData      []int             `json:"radarData"` // A..F
	KeywordCounts  map[string]int    `json:"keywordCounts"`
	TopKeywords    []KeywordStat     `json:"topKeywords"`
	TotalResponses int               `json:"totalResponses"`
}
