package rest

import (
	"context"
	"sync"

	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/repository"
)

type memStore struct {
	mu      sync.Mutex
	reports map[string]*model.Report
	order   []string
	content model.Content
}

func newMemStore() *memStore {
	return &memStore{reports: make(map[string]*model.Report), content: model.Content{}}
}

func (s *memStore) Create(_ context.Context, report *model.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *report
	s.reports[report.ID] = &cp
	s.order = append([]string{report.ID}, s.order...)
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[id]
	if !ok {
		return nil, nil
	}
	cp := *report
	cp.Responses = append([]model.SurveyResponse(nil), report.Responses...)
	return &cp, nil
}

func (s *memStore) List(_ context.Context, limit int) ([]*model.ReportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.ReportSummary, 0, limit)
	for _, id := range s.order {
		if len(out) == limit {
			break
		}
		r := s.reports[id]
		out = append(out, &model.ReportSummary{ID: r.ID, RequesterName: r.RequesterName, ResponseCount: len(r.Responses), CreatedAt: r.CreatedAt})
	}
	return out, nil
}

func (s *memStore) AddResponse(_ context.Context, id string, response model.SurveyResponse) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	report, ok := s.reports[id]
	if !ok {
		return 0, repository.ErrNotFound
	}
	report.Responses = append(report.Responses, response)
	return len(report.Responses), nil
}

type memContent struct {
	mu      sync.Mutex
	content model.Content
}

func (c *memContent) Get(_ context.Context) (model.Content, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(model.Content, len(c.content))
	for k, v := range c.content {
		out[k] = v
	}
	return out, nil
}

func (c *memContent) Upsert(_ context.Context, content model.Content) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range content {
		c.content[k] = v
	}
	return nil
}

// noCache satisfies both cache interfaces with permanent misses
type noCache struct{}

func (noCache) Get(context.Context) (model.Content, error)                 { return nil, nil }
func (noCache) Set(context.Context, model.Content) error                   { return nil }
func (noCache) Invalidate(context.Context) error                           { return nil }
func (noCache) Add(context.Context, *model.ReportSummary) error            { return nil }
func (noCache) SetResponseCount(context.Context, string, int) error        { return nil }
func (noCache) List(context.Context, int) ([]*model.ReportSummary, error) { return nil, nil }
