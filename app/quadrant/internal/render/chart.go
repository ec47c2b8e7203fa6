package render

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/conf"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/metrics"
)

// 画布四周留白，用于把标签的像素偏移换算成坐标偏移
const (
	padTop    = 30
	padLeft   = 20
	padRight  = 30
	padBottom = 20
	// 坐标轴刻度与名称大致占用的宽高
	axisGutter = 60
)

var (
	pointColor   = drawing.ColorFromHex("7CB9E8").WithAlpha(153)
	dividerColor = drawing.ColorFromHex("808080").WithAlpha(128)
	gridColor    = drawing.ColorFromHex("808080").WithAlpha(77)
	labelColor   = drawing.ColorFromHex("333333")
	quadColor    = drawing.ColorFromHex("333333").WithAlpha(179)
)

// Renderer 把象限图布局绘制成 PNG
type Renderer struct {
	width  int
	height int
	font   *truetype.Font
}

// NewRenderer 创建绘图器。配置了字体文件时使用该字体，否则在系统中查找中文字体；
// 都没有时退回 go-chart 内置字体，图中的中文会显示为方框。
func NewRenderer(c *conf.Render, logger log.Logger) (*Renderer, error) {
	helper := log.NewHelper(logger)
	r := &Renderer{width: int(c.Width), height: int(c.Height)}

	if c.FontPath != "" {
		font, err := loadFont(c.FontPath)
		if err != nil {
			return nil, err
		}
		if !hasCJK(font) {
			helper.Warnf("字体 %s 不包含中文字形，图中的中文将无法显示", c.FontPath)
		}
		r.font = font
		return r, nil
	}

	path, font := discoverCJKFont(cjkFontCandidates, cjkFontDirs)
	if font == nil {
		helper.Warn("未找到中文字体，图中的中文将无法显示；请在 render.font_path 中配置 TrueType 中文字体")
		return r, nil
	}
	helper.Infof("使用中文字体: %s", path)
	r.font = font
	return r, nil
}

// PNG 绘制散点、分隔线、类别标签与象限标注
func (r *Renderer) PNG(layout *domain.Layout) ([]byte, error) {
	start := time.Now()
	defer func() {
		metrics.ChartRenderDuration.Observe(time.Since(start).Seconds())
	}()

	ch := chart.Chart{
		Title:  layout.Title,
		Width:  r.width,
		Height: r.height,
		Font:   r.font,
		TitleStyle: chart.Style{
			FontSize: 14,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: padTop, Left: padLeft, Right: padRight, Bottom: padBottom},
		},
		XAxis: chart.XAxis{
			Name:           layout.XAxis.Name,
			Range:          &chart.ContinuousRange{Min: layout.XAxis.Min, Max: layout.XAxis.Max},
			Ticks:          ticks(layout.XAxis.Min, layout.XAxis.Max, 0.25),
			GridMajorStyle: gridStyle(),
		},
		YAxis: chart.YAxis{
			Name:           layout.YAxis.Name,
			Range:          &chart.ContinuousRange{Min: layout.YAxis.Min, Max: layout.YAxis.Max},
			Ticks:          ticks(layout.YAxis.Min, layout.YAxis.Max, 0.1),
			GridMajorStyle: gridStyle(),
		},
	}

	for _, d := range layout.Dividers {
		ch.Series = append(ch.Series, r.divider(layout, d))
	}
	ch.Series = append(ch.Series, r.scatter(layout), r.pointLabels(layout), r.quadrantLabels(layout))

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) divider(layout *domain.Layout, d domain.Divider) chart.ContinuousSeries {
	s := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor:     dividerColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
	if d.Orientation == domain.Horizontal {
		s.XValues = []float64{layout.XAxis.Min, layout.XAxis.Max}
		s.YValues = []float64{d.Value, d.Value}
	} else {
		s.XValues = []float64{d.Value, d.Value}
		s.YValues = []float64{layout.YAxis.Min, layout.YAxis.Max}
	}
	return s
}

func (r *Renderer) scatter(layout *domain.Layout) chart.ContinuousSeries {
	s := chart.ContinuousSeries{
		Name: "risk",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    5,
			DotColor:    pointColor,
		},
		XValues: make([]float64, 0, len(layout.Points)),
		YValues: make([]float64, 0, len(layout.Points)),
	}
	for _, p := range layout.Points {
		s.XValues = append(s.XValues, p.Sentiment)
		s.YValues = append(s.YValues, p.Attention)
	}
	return s
}

func (r *Renderer) pointLabels(layout *domain.Layout) chart.AnnotationSeries {
	dx, dy := r.pixelToData(layout)
	s := chart.AnnotationSeries{
		Style: chart.Style{
			FontSize:    9,
			FontColor:   labelColor,
			FillColor:   drawing.ColorTransparent,
			StrokeColor: drawing.ColorTransparent,
		},
	}
	for _, p := range layout.Points {
		s.Annotations = append(s.Annotations, chart.Value2{
			XValue: p.Sentiment + p.OffsetX*dx,
			YValue: p.Attention + p.OffsetY*dy,
			Label:  p.Label,
		})
	}
	return s
}

func (r *Renderer) quadrantLabels(layout *domain.Layout) chart.AnnotationSeries {
	s := chart.AnnotationSeries{
		Style: chart.Style{
			FontSize:    8,
			FontColor:   quadColor,
			FillColor:   drawing.ColorTransparent,
			StrokeColor: drawing.ColorTransparent,
		},
	}
	for _, a := range layout.Annotations {
		s.Annotations = append(s.Annotations, chart.Value2{
			XValue: a.Sentiment,
			YValue: a.Attention,
			Label:  a.Text,
		})
	}
	return s
}

// pixelToData 每个像素对应的坐标长度
func (r *Renderer) pixelToData(layout *domain.Layout) (float64, float64) {
	plotW := float64(r.width - padLeft - padRight - axisGutter)
	plotH := float64(r.height - padTop - padBottom - axisGutter)
	if plotW <= 0 || plotH <= 0 {
		return 0, 0
	}
	return (layout.XAxis.Max - layout.XAxis.Min) / plotW, (layout.YAxis.Max - layout.YAxis.Min) / plotH
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor:     gridColor,
		StrokeWidth:     0.5,
		StrokeDashArray: []float64{1.0, 3.0},
	}
}

func ticks(min, max, step float64) []chart.Tick {
	n := int(math.Round((max - min) / step))
	out := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := min + float64(i)*step
		out = append(out, chart.Tick{Value: v, Label: fmt.Sprintf("%.2f", v)})
	}
	return out
}
