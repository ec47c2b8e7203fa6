package biz

import (
	"fmt"
	"time"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

const (
	sentimentMin = -1.0
	sentimentMax = 1.0
	attentionMin = 0.0
	// 关注度理论上限为 1，多留 0.1 给标签
	attentionMax = 1.1

	labelOffsetPx = 5.0
)

// BuildLayout 计算象限图的坐标轴、分隔线、散点与象限标注
func BuildLayout(date time.Time, points []domain.Point, threshold float64) *domain.Layout {
	day := date.Format(domain.DateLayout)
	layout := &domain.Layout{
		Title:     fmt.Sprintf("宏观风险象限图（日期: %s）", day),
		Date:      day,
		Threshold: threshold,
		XAxis:     domain.Axis{Name: "情绪值", Min: sentimentMin, Max: sentimentMax},
		YAxis:     domain.Axis{Name: "关注度", Min: attentionMin, Max: attentionMax},
		Dividers: []domain.Divider{
			{Orientation: domain.Horizontal, Value: threshold},
			{Orientation: domain.Vertical, Value: 0},
		},
		Points: make([]domain.LabeledPoint, 0, len(points)),
	}

	for _, p := range points {
		layout.Points = append(layout.Points, domain.LabeledPoint{
			Label:     string(p.Category),
			Sentiment: p.Sentiment,
			Attention: p.Attention,
			OffsetX:   labelOffsetPx,
			OffsetY:   labelOffsetPx,
		})
	}

	upper := (1 + threshold) / 2
	lower := threshold / 2
	layout.Annotations = []domain.Annotation{
		annotate(domain.QuadrantI, 0.5, upper),
		annotate(domain.QuadrantII, -0.5, upper),
		annotate(domain.QuadrantIII, -0.5, lower),
		annotate(domain.QuadrantIV, 0.5, lower),
	}
	return layout
}

func annotate(q domain.Quadrant, sentiment, attention float64) domain.Annotation {
	return domain.Annotation{
		Quadrant:  q,
		Text:      fmt.Sprintf("%s (%s)", q.Name(), q.Roman()),
		Sentiment: sentiment,
		Attention: attention,
	}
}
