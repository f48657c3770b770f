package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/repository"
)

type memReportRepo struct {
	mu      sync.Mutex
	reports map[string]*model.Report
	listed  int
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[string]*model.Report)}
}

func (r *memReportRepo) Create(_ context.Context, report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *report
	r.reports[report.ID] = &cp
	return nil
}

func (r *memReportRepo) GetByID(_ context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *report
	cp.Responses = append([]model.SurveyResponse(nil), report.Responses...)
	return &cp, nil
}

func (r *memReportRepo) List(_ context.Context, limit int) ([]*model.ReportSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed++
	out := make([]*model.ReportSummary, 0, len(r.reports))
	for _, report := range r.reports {
		out = append(out, &model.ReportSummary{
			ID:            report.ID,
			RequesterName: report.RequesterName,
			ResponseCount: len(report.Responses),
			CreatedAt:     report.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memReportRepo) AddResponse(_ context.Context, id string, response model.SurveyResponse) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	report.Responses = append(report.Responses, response)
	return len(report.Responses), nil
}

type memRecent struct {
	summaries []*model.ReportSummary
	counts    map[string]int
	fail      bool
}

func newMemRecent() *memRecent {
	return &memRecent{counts: make(map[string]int)}
}

func (c *memRecent) Add(_ context.Context, summary *model.ReportSummary) error {
	if c.fail {
		return errors.New("redis down")
	}
	c.summaries = append([]*model.ReportSummary{summary}, c.summaries...)
	return nil
}

func (c *memRecent) SetResponseCount(_ context.Context, id string, count int) error {
	if c.fail {
		return errors.New("redis down")
	}
	c.counts[id] = count
	return nil
}

func (c *memRecent) List(_ context.Context, limit int) ([]*model.ReportSummary, error) {
	if c.fail {
		return nil, errors.New("redis down")
	}
	if len(c.summaries) == 0 {
		return nil, nil
	}
	if len(c.summaries) > limit {
		return c.summaries[:limit], nil
	}
	return c.summaries, nil
}

type memContentRepo struct {
	content model.Content
	gets    int
}

func (r *memContentRepo) Get(_ context.Context) (model.Content, error) {
	r.gets++
	out := make(model.Content, len(r.content))
	for k, v := range r.content {
		out[k] = v
	}
	return out, nil
}

func (r *memContentRepo) Upsert(_ context.Context, content model.Content) error {
	if r.content == nil {
		r.content = make(model.Content)
	}
	for k, v := range content {
		r.content[k] = v
	}
	return nil
}

type memContentCache struct {
	content model.Content
	fail    bool
}

func (c *memContentCache) Get(_ context.Context) (model.Content, error) {
	if c.fail {
		return nil, errors.New("redis down")
	}
	return c.content, nil
}

func (c *memContentCache) Set(_ context.Context, content model.Content) error {
	if c.fail {
		return errors.New("redis down")
	}
	c.content = content
	return nil
}

func (c *memContentCache) Invalidate(_ context.Context) error {
	c.content = nil
	return nil
}

type broadcast struct {
	reportID string
	msgType  string
	payload  interface{}
}

type recordingBroadcaster struct {
	events []broadcast
}

func (b *recordingBroadcaster) BroadcastToReport(reportID, msgType string, payload interface{}) {
	b.events = append(b.events, broadcast{reportID: reportID, msgType: msgType, payload: payload})
}
