package data

import (
	"fmt"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/metrics"
)

// LoadFunc 从文件路径加载指标表
type LoadFunc func(path string) (*domain.Table, error)

// TableCache 进程级的指标表缓存，以绝对路径为键，首次访问时加载，
// 进程重启前不会失效。加载失败不缓存。
type TableCache struct {
	entries *lru.Cache[string, *domain.Table]
	group   singleflight.Group
	load    LoadFunc
}

// NewTableCache 创建缓存，size 为最多保留的文件数
func NewTableCache(size int, load LoadFunc) (*TableCache, error) {
	entries, err := lru.New[string, *domain.Table](size)
	if err != nil {
		return nil, err
	}
	return &TableCache{entries: entries, load: load}, nil
}

// Get 返回 path 对应的指标表，并发的首次请求共享同一次加载
func (c *TableCache) Get(path string) (*domain.Table, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	if t, ok := c.entries.Get(key); ok {
		return t, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if t, ok := c.entries.Get(key); ok {
			return t, nil
		}
		start := time.Now()
		t, err := c.load(key)
		metrics.WorkbookLoadDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.WorkbookLoads.WithLabelValues("error").Inc()
			return nil, err
		}
		metrics.WorkbookLoads.WithLabelValues("ok").Inc()
		metrics.WorkbookObservations.Set(float64(len(t.Observations)))
		c.entries.Add(key, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	t, ok := v.(*domain.Table)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value %T", v)
	}
	return t, nil
}

// Len 当前缓存的文件数
func (c *TableCache) Len() int {
	return c.entries.Len()
}
