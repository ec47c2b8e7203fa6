package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/biz"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/conf"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/insight"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/render"
)

// ChartRenderer 把布局绘制成图片
type ChartRenderer interface {
	PNG(layout *domain.Layout) ([]byte, error)
}

// Interpreter 生成象限解读
type Interpreter interface {
	Interpret(ctx context.Context, snap *biz.Snapshot) (string, error)
}

var (
	_ ChartRenderer = (*render.Renderer)(nil)
	_ Interpreter   = (*insight.Interpreter)(nil)
)

// QuadrantService 风险象限看板服务
type QuadrantService struct {
	uc        *biz.QuadrantUseCase
	renderer  ChartRenderer
	insight   Interpreter
	threshold ThresholdSetting
	log       *log.Helper
}

func NewQuadrantService(uc *biz.QuadrantUseCase, renderer *render.Renderer, in *insight.Interpreter, c *conf.Dashboard, logger log.Logger) *QuadrantService {
	var interp Interpreter
	if in != nil {
		interp = in
	}
	return newQuadrantService(uc, renderer, interp, c, logger)
}

func newQuadrantService(uc *biz.QuadrantUseCase, renderer ChartRenderer, in Interpreter, c *conf.Dashboard, logger log.Logger) *QuadrantService {
	return &QuadrantService{
		uc:       uc,
		renderer: renderer,
		insight:  in,
		threshold: ThresholdSetting{
			Min:     0,
			Max:     1,
			Step:    c.ThresholdStep,
			Default: c.GetDefaultThreshold(),
		},
		log: log.NewHelper(logger),
	}
}

func (s *QuadrantService) ListDates(ctx context.Context, _ *ListDatesReq) (*ListDatesReply, error) {
	dates, latest, err := s.uc.Dates(ctx)
	if err != nil {
		return nil, err
	}
	source, err := s.uc.Source(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]string, 0, len(dates))
	for _, d := range dates {
		list = append(list, d.Format(domain.DateLayout))
	}
	return &ListDatesReply{
		Dates:     list,
		Default:   latest.Format(domain.DateLayout),
		Source:    source,
		Threshold: s.threshold,
	}, nil
}

func (s *QuadrantService) GetQuadrant(ctx context.Context, req *QuadrantReq) (*QuadrantReply, error) {
	snap, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	rows := make([]DetailRow, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		rows = append(rows, DetailRow{
			Category:  string(r.Category),
			Sentiment: r.Sentiment,
			Attention: r.Attention,
			Quadrant:  r.QuadrantLabel(),
		})
	}
	counts := make(map[string]int, len(domain.Quadrants))
	for _, q := range domain.Quadrants {
		counts[q.Roman()] = snap.Counts[q]
	}

	return &QuadrantReply{
		Date:      snap.Layout.Date,
		Threshold: snap.Threshold,
		Layout:    toLayout(snap.Layout),
		Rows:      rows,
		Counts:    counts,
	}, nil
}

// GetChart 返回象限图 PNG
func (s *QuadrantService) GetChart(ctx context.Context, req *QuadrantReq) ([]byte, error) {
	snap, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	png, err := s.renderer.PNG(snap.Layout)
	if err != nil {
		s.log.WithContext(ctx).Errorf("绘制象限图失败: %v", err)
		return nil, errors.InternalServer("RENDER_FAILED", err.Error())
	}
	return png, nil
}

func (s *QuadrantService) GetInsight(ctx context.Context, req *QuadrantReq) (*InsightReply, error) {
	if s.insight == nil {
		return nil, insight.ErrDisabled
	}
	snap, err := s.snapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	text, err := s.insight.Interpret(ctx, snap)
	if err != nil {
		s.log.WithContext(ctx).Errorf("生成解读失败: %v", err)
		return nil, err
	}
	return &InsightReply{Date: snap.Layout.Date, Threshold: snap.Threshold, Text: text}, nil
}

func (s *QuadrantService) snapshot(ctx context.Context, req *QuadrantReq) (*biz.Snapshot, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	threshold, err := s.parseThreshold(req.Threshold)
	if err != nil {
		return nil, err
	}
	return s.uc.Snapshot(ctx, date, threshold)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, errors.BadRequest("INVALID_DATE", fmt.Sprintf("date %q must be YYYY-MM-DD", raw))
	}
	return t, nil
}

func (s *QuadrantService) parseThreshold(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.threshold.Default, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.BadRequest(biz.ErrInvalidThreshold.Reason, fmt.Sprintf("threshold %q is not a number", raw))
	}
	return v, nil
}

func toLayout(l *domain.Layout) *Layout {
	out := &Layout{
		Title:       l.Title,
		Date:        l.Date,
		Threshold:   l.Threshold,
		XAxis:       Axis{Name: l.XAxis.Name, Min: l.XAxis.Min, Max: l.XAxis.Max},
		YAxis:       Axis{Name: l.YAxis.Name, Min: l.YAxis.Min, Max: l.YAxis.Max},
		Dividers:    make([]Divider, 0, len(l.Dividers)),
		Points:      make([]Point, 0, len(l.Points)),
		Annotations: make([]Annotation, 0, len(l.Annotations)),
	}
	for _, d := range l.Dividers {
		out.Dividers = append(out.Dividers, Divider{Orientation: string(d.Orientation), Value: d.Value})
	}
	for _, p := range l.Points {
		out.Points = append(out.Points, Point{
			Label:     p.Label,
			Sentiment: p.Sentiment,
			Attention: p.Attention,
			OffsetX:   p.OffsetX,
			OffsetY:   p.OffsetY,
		})
	}
	for _, a := range l.Annotations {
		out.Annotations = append(out.Annotations, Annotation{
			Quadrant:  a.Quadrant.Roman(),
			Text:      a.Text,
			Sentiment: a.Sentiment,
			Attention: a.Attention,
		})
	}
	return out
}
