package remote

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/repository"
)

// ReportStore implements repository.ReportRepo and repository.ContentRepo on top of the hosted store
type ReportStore struct {
	client *Client
}

var (
	_ repository.ReportRepo  = (*ReportStore)(nil)
	_ repository.ContentRepo = (*ReportStore)(nil)
)

// NewReportStore wraps a client
func NewReportStore(client *Client) *ReportStore {
	return &ReportStore{client: client}
}

// wireResponse accepts both the structured form and the legacy ten-slot form,
// where slot ten holds the comma-joined keywords.
type wireResponse struct {
	Answers     []string `json:"answers"`
	Keywords    []string `json:"keywords"`
	Responses   []string `json:"responses"`
	SubmittedAt string   `json:"submittedAt"`
}

func (w wireResponse) toModel() model.SurveyResponse {
	resp := model.SurveyResponse{
		Answers:     w.Answers,
		Keywords:    w.Keywords,
		SubmittedAt: parseTime(w.SubmittedAt),
	}
	if len(resp.Answers) == 0 && len(w.Responses) > 0 {
		slots := w.Responses
		if len(slots) > model.QuestionCount {
			resp.Keywords = splitKeywords(slots[model.QuestionCount])
			slots = slots[:model.QuestionCount]
		}
		resp.Answers = append([]string(nil), slots...)
	}
	return resp
}

type wireReport struct {
	ID                  string         `json:"id"`
	RequesterName       string         `json:"requesterName"`
	RequesterNameLegacy string         `json:"requester_name"`
	Responses           []wireResponse `json:"responses"`
	ResponseCount       int            `json:"responseCount"`
	CreatedAt           string         `json:"createdAt"`
}

func (w wireReport) name() string {
	if w.RequesterName != "" {
		return w.RequesterName
	}
	return w.RequesterNameLegacy
}

func (s *ReportStore) Create(ctx context.Context, report *model.Report) error {
	var created wireReport
	err := s.client.Post(ctx, "createReport", map[string]any{
		"id":            report.ID,
		"requesterName": report.RequesterName,
	}, &created)
	if err != nil {
		return err
	}
	if created.ID != "" {
		report.ID = created.ID
	}
	if t := parseTime(created.CreatedAt); !t.IsZero() {
		report.CreatedAt = t
	} else if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	return nil
}

func (s *ReportStore) GetByID(ctx context.Context, id string) (*model.Report, error) {
	var w wireReport
	err := s.client.Get(ctx, "getReport", url.Values{"id": {id}}, &w)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		ID:            id,
		RequesterName: w.name(),
		CreatedAt:     parseTime(w.CreatedAt),
		Responses:     make([]model.SurveyResponse, 0, len(w.Responses)),
	}
	for _, r := range w.Responses {
		report.Responses = append(report.Responses, r.toModel())
	}
	return report, nil
}

func (s *ReportStore) List(ctx context.Context, limit int) ([]*model.ReportSummary, error) {
	var items []wireReport
	if err := s.client.Get(ctx, "getReports", url.Values{"limit": {strconv.Itoa(limit)}}, &items); err != nil {
		return nil, err
	}

	summaries := make([]*model.ReportSummary, 0, len(items))
	for _, w := range items {
		count := w.ResponseCount
		if count == 0 {
			count = len(w.Responses)
		}
		summaries = append(summaries, &model.ReportSummary{
			ID:            w.ID,
			RequesterName: w.name(),
			ResponseCount: count,
			CreatedAt:     parseTime(w.CreatedAt),
		})
	}
	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

func (s *ReportStore) AddResponse(ctx context.Context, id string, response model.SurveyResponse) (int, error) {
	payload := map[string]any{
		"id": id,
		"data": map[string]any{
			"answers":  response.Answers,
			"keywords": response.Keywords,
		},
	}

	var result struct {
		ResponseCount int `json:"responseCount"`
	}
	err := s.client.Post(ctx, "submitResponse", payload, &result)
	if IsNotFound(err) {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if result.ResponseCount > 0 {
		return result.ResponseCount, nil
	}

	// older deployments acknowledge without a count
	report, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if report == nil {
		return 0, repository.ErrNotFound
	}
	return report.ResponseCount(), nil
}

// Get returns the content table
func (s *ReportStore) Get(ctx context.Context) (model.Content, error) {
	raw := map[string]any{}
	if err := s.client.Get(ctx, "getContent", nil, &raw); err != nil {
		return nil, err
	}

	content := make(model.Content, len(raw))
	for k, v := range raw {
		if str, ok := v.(string); ok {
			content[k] = str
		}
	}
	return content, nil
}

// Upsert writes content keys to the store
func (s *ReportStore) Upsert(ctx context.Context, content model.Content) error {
	return s.client.Post(ctx, "updateContent", map[string]any{"data": content}, nil)
}

func splitKeywords(joined string) []string {
	var out []string
	for _, k := range strings.Split(joined, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
