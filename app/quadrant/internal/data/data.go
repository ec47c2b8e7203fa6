package data

import (
	"os"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/conf"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

// Data 数据层资源：解析出的表格路径与进程级缓存
type Data struct {
	path  string
	cache *TableCache
}

// NewData 查找并预加载指标表格。找不到文件或表格格式错误时返回错误，
// 服务随之停止启动。
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	paths := c.Workbook.Paths
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	path, err := ResolveWorkbook(paths)
	if err != nil {
		helper.Errorf("未能找到数据文件: %v", err)
		logWorkingDir(helper)
		return nil, nil, err
	}
	helper.Infof("找到文件路径: %s", path)

	sheet := c.Workbook.Sheet
	cache, err := NewTableCache(int(c.Workbook.CacheSize), func(p string) (*domain.Table, error) {
		return LoadWorkbook(p, sheet)
	})
	if err != nil {
		return nil, nil, err
	}

	d := &Data{path: path, cache: cache}
	table, err := d.Table()
	if err != nil {
		helper.Errorf("读取数据时出错：%v", err)
		logWorkingDir(helper)
		return nil, nil, err
	}
	helper.Infof("已加载 %d 行指标数据，%d 个日期", len(table.Observations), len(table.Dates()))

	cleanup := func() {
		helper.Info("closing the data resources")
	}
	return d, cleanup, nil
}

// Path 解析出的表格绝对路径
func (d *Data) Path() string { return d.path }

// Table 从缓存读取指标表，首次访问时加载
func (d *Data) Table() (*domain.Table, error) {
	return d.cache.Get(d.path)
}

func logWorkingDir(helper *log.Helper) {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	entries, err := os.ReadDir(wd)
	if err != nil {
		helper.Errorf("当前工作目录：%s", wd)
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	helper.Errorf("当前工作目录：%s 目录内容：%s", wd, strings.Join(names, ", "))
}
