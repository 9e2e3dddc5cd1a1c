package service

import (
	"strconv"
	"unicode/utf8"

	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName      = "Applications"
	maxColumnWidth = 50
	headerColor    = "4472C4"
	dateLayout     = "2006-01-02 15:04:05"
)

var exportHeaders = []string{
	"ID", "Name", "Email", "Phone", "College", "Degree", "Passout Year",
	"Skills", "Position", "Status", "Applied Date", "Resume File",
}

func exportRow(a domain.Application) []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Name,
		a.Email,
		a.Phone,
		a.College,
		a.Degree,
		a.Year,
		a.Skills,
		a.Position,
		string(a.Status.OrDefault()),
		a.AppliedDate.Format(dateLayout),
		a.ResumeFile,
	}
}

// buildWorkbook 表头加粗白字蓝底，列宽按内容自适应，最多 50
func buildWorkbook(apps []domain.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, errors.Wrap(err, "设置 sheet 名称失败")
	}

	widths := make([]int, len(exportHeaders))
	if err := writeRow(f, 1, exportHeaders, widths); err != nil {
		return nil, err
	}
	for i, a := range apps {
		if err := writeRow(f, i+2, exportRow(a), widths); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "创建表头样式失败")
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err = f.SetCellStyle(sheetName, "A1", lastCol+"1", style); err != nil {
		return nil, errors.Wrap(err, "设置表头样式失败")
	}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err = f.SetColWidth(sheetName, col, col, float64(min(w+2, maxColumnWidth))); err != nil {
			return nil, errors.Wrap(err, "设置列宽失败")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "生成 Excel 失败")
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []string, widths []int) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
		widths[i] = max(widths[i], utf8.RuneCountInString(v))
	}
	return errors.Wrapf(f.SetSheetRow(sheetName, cell, &cells), "写入第 %d 行失败", row)
}
