package biz

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/metrics"
)

// ErrInvalidThreshold 阈值不在 [0, 1] 内
var ErrInvalidThreshold = errors.BadRequest("INVALID_THRESHOLD", "threshold must be within [0, 1]")

// TableRepo 指标数据仓库接口
type TableRepo interface {
	// Table 返回已加载的完整指标表
	Table(ctx context.Context) (*domain.Table, error)
}

// Snapshot 一次交互（切换日期或阈值）计算出的全部结果
type Snapshot struct {
	Date      time.Time
	Threshold float64
	Points    []domain.Point
	Layout    *domain.Layout
	Rows      []domain.DetailRow
	Counts    map[domain.Quadrant]int
}

// QuadrantUseCase 风险象限业务逻辑
type QuadrantUseCase struct {
	repo TableRepo
	log  *log.Helper
}

// NewQuadrantUseCase 创建风险象限业务逻辑实例
func NewQuadrantUseCase(repo TableRepo, logger log.Logger) *QuadrantUseCase {
	return &QuadrantUseCase{repo: repo, log: log.NewHelper(logger)}
}

// Dates 返回可选日期以及默认日期（最近一天）
func (uc *QuadrantUseCase) Dates(ctx context.Context) ([]time.Time, time.Time, error) {
	table, err := uc.repo.Table(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	return table.Dates(), table.Latest(), nil
}

// Source 当前数据文件路径
func (uc *QuadrantUseCase) Source(ctx context.Context) (string, error) {
	table, err := uc.repo.Table(ctx)
	if err != nil {
		return "", err
	}
	return table.Source, nil
}

// Snapshot 选取日期 → 分类 → 布局 → 详情表。date 为零值时取最近一天。
func (uc *QuadrantUseCase) Snapshot(ctx context.Context, date time.Time, threshold float64) (*Snapshot, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		metrics.Snapshots.WithLabelValues("invalid").Inc()
		return nil, errors.BadRequest(ErrInvalidThreshold.Reason,
			fmt.Sprintf("threshold %v must be within [0, 1]", threshold))
	}

	table, err := uc.repo.Table(ctx)
	if err != nil {
		metrics.Snapshots.WithLabelValues("error").Inc()
		return nil, err
	}
	if date.IsZero() {
		date = table.Latest()
	}

	obs, err := SelectObservation(table, date)
	if err != nil {
		uc.log.WithContext(ctx).Warnf("所选日期无数据: %v", err)
		metrics.Snapshots.WithLabelValues("not_found").Inc()
		return nil, err
	}
	points, err := obs.Points()
	if err != nil {
		metrics.Snapshots.WithLabelValues("error").Inc()
		return nil, err
	}

	snap := &Snapshot{
		Date:      obs.Date,
		Threshold: threshold,
		Points:    points,
		Layout:    BuildLayout(obs.Date, points, threshold),
		Rows:      BuildDetailTable(points, threshold),
		Counts:    make(map[domain.Quadrant]int, len(domain.Quadrants)),
	}
	for _, row := range snap.Rows {
		snap.Counts[row.Quadrant]++
		metrics.QuadrantAssignments.WithLabelValues(row.Quadrant.Roman()).Inc()
	}
	metrics.Snapshots.WithLabelValues("ok").Inc()

	uc.log.WithContext(ctx).Debugf("象限计算完成: date=%s threshold=%.2f counts=%v",
		snap.Layout.Date, threshold, snap.Counts)
	return snap, nil
}
