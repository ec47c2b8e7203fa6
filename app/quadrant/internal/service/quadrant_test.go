package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/biz"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/conf"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/insight"
)

type mockTableRepo struct {
	table *domain.Table
}

func (m *mockTableRepo) Table(ctx context.Context) (*domain.Table, error) {
	return m.table, nil
}

type fakeRenderer struct {
	err    error
	layout *domain.Layout
}

func (f *fakeRenderer) PNG(layout *domain.Layout) ([]byte, error) {
	f.layout = layout
	if f.err != nil {
		return nil, f.err
	}
	return []byte("png"), nil
}

type fakeInterpreter struct {
	snap *biz.Snapshot
}

func (f *fakeInterpreter) Interpret(ctx context.Context, snap *biz.Snapshot) (string, error) {
	f.snap = snap
	return "解读", nil
}

func observation(date time.Time, sentiment, attention float64) domain.Observation {
	readings := make(map[domain.Category]domain.Reading, len(domain.Categories))
	for _, c := range domain.Categories {
		readings[c] = domain.Reading{Sentiment: sentiment, Attention: attention}
	}
	return domain.Observation{Date: date, Readings: readings}
}

var (
	jan5 = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	jan6 = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
)

func newTestService(r ChartRenderer, in Interpreter) *QuadrantService {
	first := observation(jan5, 0.1, 0.2)
	first.Readings[domain.CategoryInterestRate] = domain.Reading{Sentiment: 0.4, Attention: 0.5}
	first.Readings[domain.CategoryTechnology] = domain.Reading{Sentiment: -0.2, Attention: 0.1}
	repo := &mockTableRepo{table: &domain.Table{
		Source:       "/data/index.xlsx",
		Observations: []domain.Observation{first, observation(jan6, -0.5, 0.9)},
	}}
	uc := biz.NewQuadrantUseCase(repo, log.DefaultLogger)
	return newQuadrantService(uc, r, in, &conf.Dashboard{ThresholdStep: 0.05}, log.DefaultLogger)
}

func TestQuadrantService_ListDates(t *testing.T) {
	s := newTestService(&fakeRenderer{}, nil)

	reply, err := s.ListDates(context.Background(), &ListDatesReq{})
	require.NoError(t, err)
	assert.Equal(t, &ListDatesReply{
		Dates:     []string{"2024-01-05", "2024-01-06"},
		Default:   "2024-01-06",
		Source:    "/data/index.xlsx",
		Threshold: ThresholdSetting{Min: 0, Max: 1, Step: 0.05, Default: 0.3},
	}, reply)
}

func TestQuadrantService_GetQuadrant(t *testing.T) {
	s := newTestService(&fakeRenderer{}, nil)

	reply, err := s.GetQuadrant(context.Background(), &QuadrantReq{Date: "2024-01-05"})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", reply.Date)
	assert.Equal(t, 0.3, reply.Threshold, "empty threshold falls back to default")
	require.Len(t, reply.Rows, len(domain.Categories))
	assert.Equal(t, DetailRow{Category: "利率", Sentiment: 0.4, Attention: 0.5, Quadrant: "Ⅰ - 市场强势信号"}, reply.Rows[0])
	assert.Equal(t, DetailRow{Category: "技术", Sentiment: -0.2, Attention: 0.1, Quadrant: "Ⅲ - 潜在风险未爆发"}, reply.Rows[8])
	assert.Equal(t, map[string]int{"Ⅰ": 1, "Ⅱ": 0, "Ⅲ": 1, "Ⅳ": 7}, reply.Counts)

	require.NotNil(t, reply.Layout)
	assert.Equal(t, "宏观风险象限图（日期: 2024-01-05）", reply.Layout.Title)
	assert.Equal(t, []Divider{{Orientation: "horizontal", Value: 0.3}, {Orientation: "vertical", Value: 0}}, reply.Layout.Dividers)
	assert.Len(t, reply.Layout.Points, len(domain.Categories))
	require.Len(t, reply.Layout.Annotations, 4)
	assert.Equal(t, "Ⅰ", reply.Layout.Annotations[0].Quadrant)
	assert.Equal(t, "市场强势信号 (Ⅰ)", reply.Layout.Annotations[0].Text)
}

func TestQuadrantService_GetQuadrantDefaults(t *testing.T) {
	s := newTestService(&fakeRenderer{}, nil)

	reply, err := s.GetQuadrant(context.Background(), &QuadrantReq{Threshold: " 0.95 "})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-06", reply.Date)
	assert.Equal(t, 0.95, reply.Threshold)
	assert.Equal(t, 9, reply.Counts["Ⅲ"])
}

func TestQuadrantService_BadRequests(t *testing.T) {
	s := newTestService(&fakeRenderer{}, nil)

	tests := []struct {
		name   string
		req    *QuadrantReq
		reason string
		code   int
	}{
		{name: "bad date", req: &QuadrantReq{Date: "05/01/2024"}, reason: "INVALID_DATE", code: 400},
		{name: "bad threshold", req: &QuadrantReq{Threshold: "high"}, reason: "INVALID_THRESHOLD", code: 400},
		{name: "threshold out of range", req: &QuadrantReq{Threshold: "1.5"}, reason: "INVALID_THRESHOLD", code: 400},
		{name: "unknown date", req: &QuadrantReq{Date: "2030-01-01"}, reason: "DATE_NOT_FOUND", code: 404},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.GetQuadrant(context.Background(), tt.req)
			require.Error(t, err)
			se := errors.FromError(err)
			assert.Equal(t, tt.reason, se.Reason)
			assert.Equal(t, int32(tt.code), se.Code)
		})
	}
}

func TestQuadrantService_GetChart(t *testing.T) {
	r := &fakeRenderer{}
	s := newTestService(r, nil)

	png, err := s.GetChart(context.Background(), &QuadrantReq{Date: "2024-01-05", Threshold: "0.4"})
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
	require.NotNil(t, r.layout)
	assert.Equal(t, 0.4, r.layout.Threshold)

	r.err = stderrors.New("no font")
	_, err = s.GetChart(context.Background(), &QuadrantReq{})
	assert.Equal(t, "RENDER_FAILED", errors.FromError(err).Reason)
}

func TestQuadrantService_GetInsight(t *testing.T) {
	_, err := newTestService(&fakeRenderer{}, nil).GetInsight(context.Background(), &QuadrantReq{})
	assert.True(t, errors.Is(err, insight.ErrDisabled))

	in := &fakeInterpreter{}
	reply, err := newTestService(&fakeRenderer{}, in).GetInsight(context.Background(), &QuadrantReq{Date: "2024-01-05"})
	require.NoError(t, err)
	assert.Equal(t, &InsightReply{Date: "2024-01-05", Threshold: 0.3, Text: "解读"}, reply)
	require.NotNil(t, in.snap)
	assert.Equal(t, jan5, in.snap.Date)
}

func TestNewQuadrantService_NilInterpreter(t *testing.T) {
	uc := biz.NewQuadrantUseCase(&mockTableRepo{table: &domain.Table{}}, log.DefaultLogger)
	s := NewQuadrantService(uc, nil, nil, &conf.Dashboard{}, log.DefaultLogger)

	assert.Nil(t, s.insight)
	_, err := s.GetInsight(context.Background(), &QuadrantReq{})
	assert.True(t, errors.Is(err, insight.ErrDisabled))
}
