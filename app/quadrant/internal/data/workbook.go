package data

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

// DateColumn 日期列的表头
const DateColumn = "date"

// ErrMalformedWorkbook 表格无法解析或缺少必要的列
var ErrMalformedWorkbook = errors.New("malformed workbook")

// LoadWorkbook 读取指定工作表，返回按行顺序排列的观测数据
func LoadWorkbook(path string, sheet string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrMalformedWorkbook, path, err)
	}
	defer f.Close()

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	// 读取原始值，日期单元格得到序列号而不是本地化后的显示文本
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrMalformedWorkbook, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrMalformedWorkbook, sheet)
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	table := &domain.Table{Source: path}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 表头占第 1 行
		if blankRow(row) {
			continue
		}
		obs, err := parseRow(row, rowNum, cols, date1904)
		if err != nil {
			return nil, err
		}
		table.Observations = append(table.Observations, *obs)
	}
	if len(table.Observations) == 0 {
		return nil, fmt.Errorf("%w: sheet %q has no data rows", ErrMalformedWorkbook, sheet)
	}
	return table, nil
}

// columns 每个必需列在表头中的位置
type columns struct {
	date      int
	sentiment map[domain.Category]int
	attention map[domain.Category]int
}

func mapColumns(header []string) (*columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
		}
		return i
	}

	cols := &columns{
		date:      lookup(DateColumn),
		sentiment: make(map[domain.Category]int, len(domain.Categories)),
		attention: make(map[domain.Category]int, len(domain.Categories)),
	}
	for _, c := range domain.Categories {
		cols.sentiment[c] = lookup(c.SentimentColumn())
		cols.attention[c] = lookup(c.AttentionColumn())
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s): %s", ErrMalformedWorkbook, strings.Join(missing, ", "))
	}
	return cols, nil
}

func parseRow(row []string, rowNum int, cols *columns, date1904 bool) (*domain.Observation, error) {
	date, err := parseDate(cell(row, cols.date), date1904)
	if err != nil {
		return nil, fmt.Errorf("%w: row %d column %s: %v", ErrMalformedWorkbook, rowNum, DateColumn, err)
	}

	obs := &domain.Observation{
		Date:     date,
		Readings: make(map[domain.Category]domain.Reading, len(domain.Categories)),
	}
	for _, c := range domain.Categories {
		s, err := parseValue(cell(row, cols.sentiment[c]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %v", ErrMalformedWorkbook, rowNum, c.SentimentColumn(), err)
		}
		a, err := parseValue(cell(row, cols.attention[c]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d column %s: %v", ErrMalformedWorkbook, rowNum, c.AttentionColumn(), err)
		}
		obs.Readings[c] = domain.Reading{Sentiment: s, Attention: a}
	}
	return obs, nil
}

// parseDate 支持 Excel 日期序列号与常见的文本日期格式
func parseDate(raw string, date1904 bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, err
		}
		return domain.Day(t), nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return time.Time{}, err
	}
	return domain.Day(t), nil
}

func parseValue(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return v, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
