package biz

import (
	"cmp"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

// displayPlaces 详情表数值保留的小数位
const displayPlaces = 3

// Round3 按十进制四舍五入（远离零）保留三位小数
func Round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(displayPlaces).InexactFloat64()
}

// BuildDetailTable 生成风险指标详情表。
// 排序使用原始值：关注度降序，其次情绪值降序，完全相同时保持类别顺序；
// 展示的数值保留三位小数。
func BuildDetailTable(points []domain.Point, threshold float64) []domain.DetailRow {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b domain.Point) int {
		if c := cmp.Compare(b.Attention, a.Attention); c != 0 {
			return c
		}
		return cmp.Compare(b.Sentiment, a.Sentiment)
	})

	rows := make([]domain.DetailRow, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, domain.DetailRow{
			Category:  p.Category,
			Sentiment: Round3(p.Sentiment),
			Attention: Round3(p.Attention),
			Quadrant:  Classify(p.Sentiment, p.Attention, threshold),
		})
	}
	return rows
}
