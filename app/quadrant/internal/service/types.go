package service

// ListDatesReq 可选日期查询参数（无字段）
type ListDatesReq struct{}

// ThresholdSetting 阈值滑块的取值范围与默认值
type ThresholdSetting struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

type ListDatesReply struct {
	Dates     []string         `json:"dates"`
	Default   string           `json:"default"`
	Source    string           `json:"source"`
	Threshold ThresholdSetting `json:"threshold"`
}

// QuadrantReq 日期为空时取最近一天，阈值为空时取配置的默认值
type QuadrantReq struct {
	Date      string `json:"date"`
	Threshold string `json:"threshold"`
}

type Axis struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

type Divider struct {
	Orientation string  `json:"orientation"`
	Value       float64 `json:"value"`
}

type Point struct {
	Label     string  `json:"label"`
	Sentiment float64 `json:"sentiment"`
	Attention float64 `json:"attention"`
	OffsetX   float64 `json:"offset_x"`
	OffsetY   float64 `json:"offset_y"`
}

type Annotation struct {
	Quadrant  string  `json:"quadrant"`
	Text      string  `json:"text"`
	Sentiment float64 `json:"sentiment"`
	Attention float64 `json:"attention"`
}

type Layout struct {
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Threshold   float64      `json:"threshold"`
	XAxis       Axis         `json:"x_axis"`
	YAxis       Axis         `json:"y_axis"`
	Dividers    []Divider    `json:"dividers"`
	Points      []Point      `json:"points"`
	Annotations []Annotation `json:"annotations"`
}

// DetailRow 风险指标详情表的一行
type DetailRow struct {
	Category  string  `json:"category"`
	Sentiment float64 `json:"sentiment"`
	Attention float64 `json:"attention"`
	Quadrant  string  `json:"quadrant"`
}

type QuadrantReply struct {
	Date      string         `json:"date"`
	Threshold float64        `json:"threshold"`
	Layout    *Layout        `json:"layout"`
	Rows      []DetailRow    `json:"rows"`
	Counts    map[string]int `json:"counts"`
}

type InsightReply struct {
	Date      string  `json:"date"`
	Threshold float64 `json:"threshold"`
	Text      string  `json:"text"`
}
