package biz

import (
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

func TestSelectObservation(t *testing.T) {
	d1 := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	table := &domain.Table{Observations: []domain.Observation{
		{Date: d1, Readings: map[domain.Category]domain.Reading{domain.CategoryInterestRate: {Sentiment: 0.1}}},
		{Date: d2, Readings: map[domain.Category]domain.Reading{domain.CategoryInterestRate: {Sentiment: 0.2}}},
		{Date: d2, Readings: map[domain.Category]domain.Reading{domain.CategoryInterestRate: {Sentiment: 0.3}}},
	}}

	obs, err := SelectObservation(table, d2)
	require.NoError(t, err)
	assert.Equal(t, 0.2, obs.Readings[domain.CategoryInterestRate].Sentiment, "first row of the day wins")

	// 带时分秒或其他时区的同一天也能匹配
	obs, err = SelectObservation(table, time.Date(2024, 1, 5, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, d1, obs.Date)
}

func TestSelectObservation_NotFound(t *testing.T) {
	table := &domain.Table{Observations: []domain.Observation{
		{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}}

	_, err := SelectObservation(table, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDateNotFound))
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "2023-12-31")

	_, err = SelectObservation(nil, time.Now())
	assert.True(t, errors.Is(err, ErrDateNotFound))
}
