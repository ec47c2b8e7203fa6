// Package datatest 构造测试用的指标表格
package datatest

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/iWorld-y/risk_quadrant/app/quadrant/internal/domain"
)

// Row 表格中的一行；Date 可以是 time.Time（写成 Excel 日期）或字符串
type Row struct {
	Date     interface{}
	Readings map[domain.Category]domain.Reading
}

// Header 完整的表头：date 与九个类别的情绪值、关注度列
func Header() []string {
	header := []string{"date"}
	for _, c := range domain.Categories {
		header = append(header, c.SentimentColumn(), c.AttentionColumn())
	}
	return header
}

// Uniform 所有类别使用相同读数的一行
func Uniform(date interface{}, sentiment, attention float64) Row {
	readings := make(map[domain.Category]domain.Reading, len(domain.Categories))
	for _, c := range domain.Categories {
		readings[c] = domain.Reading{Sentiment: sentiment, Attention: attention}
	}
	return Row{Date: date, Readings: readings}
}

// With 返回修改了某个类别读数的副本
func (r Row) With(c domain.Category, sentiment, attention float64) Row {
	readings := make(map[domain.Category]domain.Reading, len(r.Readings))
	for k, v := range r.Readings {
		readings[k] = v
	}
	readings[c] = domain.Reading{Sentiment: sentiment, Attention: attention}
	return Row{Date: r.Date, Readings: readings}
}

// WriteWorkbook 在 dir 下写入 index.xlsx，返回文件路径
func WriteWorkbook(t testing.TB, dir, sheet string, rows []Row) string {
	t.Helper()
	cells := make([][]interface{}, 0, len(rows)+1)
	header := make([]interface{}, 0, len(Header()))
	for _, h := range Header() {
		header = append(header, h)
	}
	cells = append(cells, header)
	for _, r := range rows {
		line := []interface{}{r.Date}
		for _, c := range domain.Categories {
			v, ok := r.Readings[c]
			if !ok {
				line = append(line, nil, nil)
				continue
			}
			line = append(line, v.Sentiment, v.Attention)
		}
		cells = append(cells, line)
	}
	return WriteCells(t, dir, sheet, cells)
}

// WriteCells 按行写入任意单元格内容
func WriteCells(t testing.TB, dir, sheet string, cells [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i, line := range cells {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		row := line
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			t.Fatalf("write row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(dir, "index.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}
