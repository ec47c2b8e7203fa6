package domain

// Axis 坐标轴
type Axis struct {
	Name string
	Min  float64
	Max  float64
}

// Orientation 分隔线方向
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Divider 象限分隔线，水平线的 Value 是关注度，垂直线的 Value 是情绪值
type Divider struct {
	Orientation Orientation
	Value       float64
}

// LabeledPoint 散点及其文字标签，偏移量单位为像素
type LabeledPoint struct {
	Label     string
	Sentiment float64
	Attention float64
	OffsetX   float64
	OffsetY   float64
}

// Annotation 象限说明文字，位于象限中心
type Annotation struct {
	Quadrant  Quadrant
	Text      string
	Sentiment float64
	Attention float64
}

// Layout 一次渲染所需的全部几何信息，交给绘图层使用
type Layout struct {
	Title       string
	Date        string
	Threshold   float64
	XAxis       Axis
	YAxis       Axis
	Dividers    []Divider
	Points      []LabeledPoint
	Annotations []Annotation
}

// DetailRow 风险指标详情表中的一行
type DetailRow struct {
	Category  Category
	Sentiment float64
	Attention float64
	Quadrant  Quadrant
}

// QuadrantLabel 所属象限列
func (r DetailRow) QuadrantLabel() string { return r.Quadrant.Label() }
