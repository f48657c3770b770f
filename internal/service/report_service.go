package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/outliner-coach/letmeknowme/internal/analysis"
	"github.com/outliner-coach/letmeknowme/internal/cache"
	"github.com/outliner-coach/letmeknowme/internal/export"
	"github.com/outliner-coach/letmeknowme/internal/logger"
	"github.com/outliner-coach/letmeknowme/internal/metrics"
	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/presenter"
	"github.com/outliner-coach/letmeknowme/internal/repository"
)

// ReportOptions configures a ReportService
type ReportOptions struct {
	MinResponses  int
	PublicBaseURL string
}

// ReportService handles report creation, response collection and analysis
type ReportService struct {
	reportRepo  repository.ReportRepo
	recent      cache.RecentReports
	contentSvc  *ContentService
	authSvc     *AuthService
	metrics     *metrics.Metrics
	broadcaster Broadcaster
	opts        ReportOptions
	log         *logger.Logger
	now         func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repository.ReportRepo,
	recent cache.RecentReports,
	contentSvc *ContentService,
	authSvc *AuthService,
	m *metrics.Metrics,
	opts ReportOptions,
	log *logger.Logger,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		recent:     recent,
		contentSvc: contentSvc,
		authSvc:    authSvc,
		metrics:    m,
		opts:       opts,
		log:        log.Component("service.report"),
		now:        time.Now,
	}
}

// SetBroadcaster sets the live update broadcaster
func (s *ReportService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create creates a report for requesterName and returns its share links
func (s *ReportService) Create(ctx context.Context, requesterName string) (*model.CreateReportResponse, error) {
	name := strings.TrimSpace(requesterName)
	if name == "" {
		return nil, ErrInvalidName
	}

	report := &model.Report{
		ID:            uuid.New().String(),
		RequesterName: name,
		Responses:     []model.SurveyResponse{},
		CreatedAt:     s.now(),
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	token, err := s.authSvc.GenerateRequesterToken(report.ID)
	if err != nil {
		return nil, fmt.Errorf("sign requester token: %w", err)
	}

	if err := s.recent.Add(ctx, &model.ReportSummary{
		ID:            report.ID,
		RequesterName: report.RequesterName,
		CreatedAt:     report.CreatedAt,
	}); err != nil {
		s.log.WithError(err).Warn("recent index write failed")
	}

	s.metrics.ReportCreated()
	s.log.WithField("report_id", report.ID).Info("report created")

	return &model.CreateReportResponse{
		ID:             report.ID,
		RequesterName:  report.RequesterName,
		FeedbackLink:   s.link("feedback.html", url.Values{"id": {report.ID}}),
		ResultLink:     s.link("result.html", url.Values{"id": {report.ID}, "token": {token}}),
		RequesterToken: token,
	}, nil
}

// Get returns a report or ErrReportNotFound
func (s *ReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", id, err)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// List returns recent reports, newest first
func (s *ReportService) List(ctx context.Context, limit int) ([]*model.ReportSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	summaries, err := s.recent.List(ctx, limit)
	if err != nil {
		s.log.WithError(err).Warn("recent index read failed")
	}
	if len(summaries) > 0 {
		return summaries, nil
	}

	summaries, err = s.reportRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	for _, summary := range summaries {
		if err := s.recent.Add(ctx, summary); err != nil {
			s.log.WithError(err).Warn("recent index warm failed")
			break
		}
	}
	return summaries, nil
}

// Status reports how many responses a report has and whether it can be analyzed
func (s *ReportService) Status(ctx context.Context, id string) (*model.ReportStatus, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.status(report), nil
}

func (s *ReportService) status(report *model.Report) *model.ReportStatus {
	return s.statusFor(report.ID, report.RequesterName, report.ResponseCount())
}

func (s *ReportService) statusFor(id, requesterName string, count int) *model.ReportStatus {
	remaining := s.opts.MinResponses - count
	if remaining < 0 {
		remaining = 0
	}
	return &model.ReportStatus{
		ReportID:      id,
		RequesterName: requesterName,
		ResponseCount: count,
		MinResponses:  s.opts.MinResponses,
		Remaining:     remaining,
		Ready:         remaining == 0,
	}
}

// SurveyForm returns the question sheet shown to respondents
func (s *ReportService) SurveyForm(ctx context.Context, id string) (*model.SurveyForm, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.contentSvc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return presenter.BuildSurveyForm(report, content), nil
}

// Submit validates and stores one respondent's answers
func (s *ReportService) Submit(ctx context.Context, id string, resp model.SurveyResponse) (*model.ReportStatus, error) {
	clean, err := ValidateResponse(resp)
	if err != nil {
		s.metrics.ResponseRejected()
		return nil, err
	}
	clean.SubmittedAt = s.now()

	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.reportRepo.AddResponse(ctx, id, clean)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("add response to %s: %w", id, err)
	}

	if err := s.recent.SetResponseCount(ctx, id, count); err != nil {
		s.log.WithError(err).Warn("recent index update failed")
	}
	s.metrics.ResponseSubmitted()

	status := s.statusFor(id, report.RequesterName, count)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToReport(id, EventResponseReceived, status)
	}
	s.log.WithField("report_id", id).WithField("response_count", count).Info("response stored")
	return status, nil
}

// Analyze recomputes the analysis from the report's current responses
func (s *ReportService) Analyze(ctx context.Context, id string) (*model.Report, model.ReportAnalysis, error) {
	report, err := s.Get(ctx, id)
	if err != nil {
		return nil, model.ReportAnalysis{}, err
	}
	if report.ResponseCount() < s.opts.MinResponses {
		s.metrics.ObserveAnalysis("not_ready", 0)
		return report, model.ReportAnalysis{}, fmt.Errorf("%w: %d of %d", ErrNotEnoughResponses, report.ResponseCount(), s.opts.MinResponses)
	}

	start := time.Now()
	result := analysis.Analyze(report.Responses)
	s.metrics.ObserveAnalysis("ok", time.Since(start))
	return report, result, nil
}

// View renders the full report page
func (s *ReportService) View(ctx context.Context, id string) (*model.ReportView, error) {
	report, result, err := s.Analyze(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := s.contentSvc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return presenter.BuildReportView(report, result, content, s.now()), nil
}

// Export writes the report workbook to w
func (s *ReportService) Export(ctx context.Context, id string, w io.Writer) error {
	report, result, err := s.Analyze(ctx, id)
	if err != nil {
		return err
	}
	content, err := s.contentSvc.Get(ctx)
	if err != nil {
		return err
	}
	return export.WriteReportXLSX(w, report, result, content)
}

func (s *ReportService) link(page string, params url.Values) string {
	base := s.opts.PublicBaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + page + "?" + params.Encode()
}
