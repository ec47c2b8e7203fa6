package biz

import (
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

// ErrDateNotFound 表中没有所选日期的数据
var ErrDateNotFound = errors.NotFound("DATE_NOT_FOUND", "no observation for date")

// SelectObservation 返回所选日期的第一行数据；同一天有多行时只取第一行
func SelectObservation(table *domain.Table, date time.Time) (*domain.Observation, error) {
	day := domain.Day(date)
	if table != nil {
		for i := range table.Observations {
			if table.Observations[i].Date.Equal(day) {
				return &table.Observations[i], nil
			}
		}
	}
	return nil, errors.NotFound(ErrDateNotFound.Reason,
		fmt.Sprintf("no observation for date %s", day.Format(domain.DateLayout)))
}
