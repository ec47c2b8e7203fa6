package data

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/data/datatest"
	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoadWorkbook(t *testing.T) {
	rows := []datatest.Row{
		datatest.Uniform(day(2024, 1, 5), 0.1, 0.2).With(domain.CategoryInterestRate, 0.4, 0.5),
		datatest.Uniform("2024-01-12", -0.3, 0.6).With(domain.CategoryTechnology, -0.2, 0.1),
	}
	path := datatest.WriteWorkbook(t, t.TempDir(), "comp", rows)

	table, err := LoadWorkbook(path, "comp")
	require.NoError(t, err)
	require.Len(t, table.Observations, 2)
	assert.Equal(t, path, table.Source)

	first := table.Observations[0]
	assert.True(t, first.Date.Equal(day(2024, 1, 5)), "serial date parsed: %v", first.Date)
	assert.Equal(t, domain.Reading{Sentiment: 0.4, Attention: 0.5}, first.Readings[domain.CategoryInterestRate])
	assert.Equal(t, domain.Reading{Sentiment: 0.1, Attention: 0.2}, first.Readings[domain.CategoryInflation])

	second := table.Observations[1]
	assert.True(t, second.Date.Equal(day(2024, 1, 12)), "text date parsed: %v", second.Date)
	assert.Equal(t, domain.Reading{Sentiment: -0.2, Attention: 0.1}, second.Readings[domain.CategoryTechnology])
	assert.Len(t, second.Readings, len(domain.Categories))
}

func TestLoadWorkbook_SkipsBlankRows(t *testing.T) {
	header := make([]interface{}, 0)
	for _, h := range datatest.Header() {
		header = append(header, h)
	}
	line := []interface{}{"2024/02/01"}
	for range domain.Categories {
		line = append(line, 0.5, 0.5)
	}
	path := datatest.WriteCells(t, t.TempDir(), "comp", [][]interface{}{header, {}, line})

	table, err := LoadWorkbook(path, "comp")
	require.NoError(t, err)
	require.Len(t, table.Observations, 1)
	assert.True(t, table.Observations[0].Date.Equal(day(2024, 2, 1)))
}

func TestLoadWorkbook_MissingColumns(t *testing.T) {
	header := []interface{}{"date", "利率_情绪"}
	path := datatest.WriteCells(t, t.TempDir(), "comp", [][]interface{}{header, {"2024-01-05", 0.1}})

	_, err := LoadWorkbook(path, "comp")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedWorkbook))
	assert.Contains(t, err.Error(), "利率_关注度")
	assert.Contains(t, err.Error(), "通胀_情绪")
}

func TestLoadWorkbook_MissingValue(t *testing.T) {
	row := datatest.Uniform(day(2024, 1, 5), 0.1, 0.2)
	delete(row.Readings, domain.CategoryPolicy)
	path := datatest.WriteWorkbook(t, t.TempDir(), "comp", []datatest.Row{row})

	_, err := LoadWorkbook(path, "comp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "政策_情绪")
}

func TestLoadWorkbook_NonNumeric(t *testing.T) {
	header := make([]interface{}, 0)
	for _, h := range datatest.Header() {
		header = append(header, h)
	}
	line := []interface{}{"2024-01-05", "abc"}
	for i := 0; i < len(domain.Categories)*2-1; i++ {
		line = append(line, 0.1)
	}
	path := datatest.WriteCells(t, t.TempDir(), "comp", [][]interface{}{header, line})

	_, err := LoadWorkbook(path, "comp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
	assert.Contains(t, err.Error(), "利率_情绪")
}

func TestLoadWorkbook_BadDate(t *testing.T) {
	path := datatest.WriteWorkbook(t, t.TempDir(), "comp", []datatest.Row{datatest.Uniform("not a date", 0.1, 0.2)})

	_, err := LoadWorkbook(path, "comp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
	assert.Contains(t, err.Error(), "column date")
}

func TestLoadWorkbook_MissingSheet(t *testing.T) {
	path := datatest.WriteWorkbook(t, t.TempDir(), "other", []datatest.Row{datatest.Uniform(day(2024, 1, 5), 0.1, 0.2)})

	_, err := LoadWorkbook(path, "comp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
}

func TestLoadWorkbook_NoDataRows(t *testing.T) {
	path := datatest.WriteWorkbook(t, t.TempDir(), "comp", nil)

	_, err := LoadWorkbook(path, "comp")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedWorkbook)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "0.4", want: 0.4},
		{raw: " -0.25 ", want: -0.25},
		{raw: "1", want: 1},
		{raw: "", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "+Inf", wantErr: true},
		{raw: "high", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseValue(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("45296", false)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 5), got)

	got, err = parseDate("45296.75", false)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 5), got, "time of day is dropped")

	got, err = parseDate("2024-03-15 00:00:00", false)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 15), got)

	_, err = parseDate("   ", false)
	assert.Error(t, err)
}
