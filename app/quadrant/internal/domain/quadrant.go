package domain

import (
	"fmt"
	"time"
)

// DateLayout 页面与接口中日期的统一格式
const DateLayout = "2006-01-02"

// Category 风险类别
type Category string

const (
	CategoryInterestRate Category = "利率"
	CategoryGeopolitics  Category = "地缘政治"
	CategoryTechnology   Category = "技术"
	CategoryPolicy       Category = "政策"
	CategoryExchangeRate Category = "汇率"
	CategoryEnvironment  Category = "环境"
	CategorySociety      Category = "社会"
	CategoryRecession    Category = "衰退"
	CategoryInflation    Category = "通胀"
)

// Categories 固定的九个风险类别，顺序即图表与表格中的默认顺序
var Categories = []Category{
	CategoryInterestRate,
	CategoryGeopolitics,
	CategoryTechnology,
	CategoryPolicy,
	CategoryExchangeRate,
	CategoryEnvironment,
	CategorySociety,
	CategoryRecession,
	CategoryInflation,
}

// SentimentColumn 表格中该类别情绪值所在列
func (c Category) SentimentColumn() string { return string(c) + "_情绪" }

// AttentionColumn 表格中该类别关注度所在列
func (c Category) AttentionColumn() string { return string(c) + "_关注度" }

// Quadrant 象限
type Quadrant int

const (
	QuadrantI Quadrant = iota + 1
	QuadrantII
	QuadrantIII
	QuadrantIV
)

// Quadrants 全部象限，按罗马数字顺序
var Quadrants = []Quadrant{QuadrantI, QuadrantII, QuadrantIII, QuadrantIV}

// Roman 象限的罗马数字
func (q Quadrant) Roman() string {
	switch q {
	case QuadrantI:
		return "Ⅰ"
	case QuadrantII:
		return "Ⅱ"
	case QuadrantIII:
		return "Ⅲ"
	case QuadrantIV:
		return "Ⅳ"
	}
	return "?"
}

// Name 象限含义
func (q Quadrant) Name() string {
	switch q {
	case QuadrantI:
		return "市场强势信号"
	case QuadrantII:
		return "市场恐慌/风险警报"
	case QuadrantIII:
		return "潜在风险未爆发"
	case QuadrantIV:
		return "冷门利好"
	}
	return "未知象限"
}

// Label 表格中展示的象限标签，例如 "Ⅰ - 市场强势信号"
func (q Quadrant) Label() string {
	return q.Roman() + " - " + q.Name()
}

func (q Quadrant) String() string { return q.Label() }

// Reading 单个类别在某一天的读数
type Reading struct {
	Sentiment float64
	Attention float64
}

// Observation 某一天的全部指标，加载后不可修改
type Observation struct {
	Date     time.Time
	Readings map[Category]Reading
}

// Point 参与分类与绘图的 (类别, 情绪值, 关注度) 三元组
type Point struct {
	Category  Category
	Sentiment float64
	Attention float64
}

// Points 按固定类别顺序展开读数，缺少任一类别时报错
func (o *Observation) Points() ([]Point, error) {
	points := make([]Point, 0, len(Categories))
	for _, c := range Categories {
		r, ok := o.Readings[c]
		if !ok {
			return nil, fmt.Errorf("%s: missing reading for category %s", o.Date.Format(DateLayout), c)
		}
		points = append(points, Point{Category: c, Sentiment: r.Sentiment, Attention: r.Attention})
	}
	return points, nil
}

// Table 从表格加载的全部观测，按文件中的行顺序保存
type Table struct {
	Source       string
	Observations []Observation
}

// Dates 去重后的日期，按首次出现的顺序
func (t *Table) Dates() []time.Time {
	seen := make(map[time.Time]struct{}, len(t.Observations))
	dates := make([]time.Time, 0, len(t.Observations))
	for _, o := range t.Observations {
		if _, ok := seen[o.Date]; ok {
			continue
		}
		seen[o.Date] = struct{}{}
		dates = append(dates, o.Date)
	}
	return dates
}

// Latest 最近的日期，表为空时返回零值
func (t *Table) Latest() time.Time {
	var latest time.Time
	for _, o := range t.Observations {
		if o.Date.After(latest) {
			latest = o.Date
		}
	}
	return latest
}

// Day 把时间截断到 UTC 零点，作为日期比较的统一口径
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
