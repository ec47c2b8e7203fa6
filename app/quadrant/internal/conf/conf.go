package conf

// Bootstrap 服务启动配置
type Bootstrap struct {
	Server    *Server    `json:"server"`
	Data      *Data      `json:"data"`
	Dashboard *Dashboard `json:"dashboard"`
	Render    *Render    `json:"render"`
	Insight   *Insight   `json:"insight"`
	Log       *Log       `json:"log"`
}

type Server struct {
	Http *HTTP `json:"http"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

type Data struct {
	Workbook *Workbook `json:"workbook"`
}

// Workbook 指标表格的查找路径与读取方式
type Workbook struct {
	// Paths 按顺序尝试，第一个存在的文件生效；为空时使用默认查找路径
	Paths     []string `json:"paths"`
	Sheet     string   `json:"sheet"`
	CacheSize int32    `json:"cache_size"`
}

// DefaultAttentionThreshold 未配置时的关注度阈值
const DefaultAttentionThreshold = 0.3

// Dashboard 页面控件默认值
type Dashboard struct {
	// DefaultThreshold 为 nil 表示未配置，显式配置的 0 保留
	DefaultThreshold *float64 `json:"default_threshold"`
	ThresholdStep    float64  `json:"threshold_step"`
}

// GetDefaultThreshold 返回配置的默认阈值，未配置时为 DefaultAttentionThreshold
func (d *Dashboard) GetDefaultThreshold() float64 {
	if d == nil || d.DefaultThreshold == nil {
		return DefaultAttentionThreshold
	}
	return *d.DefaultThreshold
}

type Render struct {
	Width    int32  `json:"width"`
	Height   int32  `json:"height"`
	FontPath string `json:"font_path"`
}

// Insight 可选的 LLM 解读
type Insight struct {
	Enabled bool   `json:"enabled"`
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Model   string `json:"model"`
	Qps     int32  `json:"qps"`
	Rpm     int32  `json:"rpm"`
	Timeout string `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// ApplyDefaults 补齐配置文件中缺省的字段
func (b *Bootstrap) ApplyDefaults() {
	if b.Server == nil {
		b.Server = &Server{}
	}
	if b.Server.Http == nil {
		b.Server.Http = &HTTP{}
	}
	if b.Server.Http.Addr == "" {
		b.Server.Http.Addr = "0.0.0.0:8501"
	}
	if b.Data == nil {
		b.Data = &Data{}
	}
	if b.Data.Workbook == nil {
		b.Data.Workbook = &Workbook{}
	}
	if b.Data.Workbook.Sheet == "" {
		b.Data.Workbook.Sheet = "comp"
	}
	if b.Data.Workbook.CacheSize <= 0 {
		b.Data.Workbook.CacheSize = 8
	}
	if b.Dashboard == nil {
		b.Dashboard = &Dashboard{}
	}
	if b.Dashboard.DefaultThreshold == nil {
		t := DefaultAttentionThreshold
		b.Dashboard.DefaultThreshold = &t
	}
	if b.Dashboard.ThresholdStep <= 0 {
		b.Dashboard.ThresholdStep = 0.05
	}
	if b.Render == nil {
		b.Render = &Render{}
	}
	if b.Render.Width <= 0 {
		b.Render.Width = 1200
	}
	if b.Render.Height <= 0 {
		b.Render.Height = 800
	}
	if b.Insight == nil {
		b.Insight = &Insight{}
	}
	if b.Insight.Qps <= 0 {
		b.Insight.Qps = 1
	}
	if b.Insight.Rpm <= 0 {
		b.Insight.Rpm = 20
	}
	if b.Insight.Timeout == "" {
		b.Insight.Timeout = "60s"
	}
	if b.Log == nil {
		b.Log = &Log{}
	}
	if b.Log.Level == "" {
		b.Log.Level = "info"
	}
}
