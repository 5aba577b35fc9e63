package excel

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"supermart/internal/model"
)

const (
	// DefaultSheetName 默认工作表名称
	DefaultSheetName = "Supermarket Sales"

	// DateNumFmt 日期列显示格式
	DateNumFmt = "yyyy-mm-dd"

	headerFontColor = "#FFFFFF"
	headerFillColor = "#2E75B6"
	creator         = "salesgen"
)

// Exporter 销售数据工作簿导出器
type Exporter struct {
	sheetName string
}

// WriteResult 写入结果
type WriteResult struct {
	Path       string
	Rows       int
	Identifier string
}

// NewExporter 创建导出器
func NewExporter(sheetName string) *Exporter {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}
	return &Exporter{sheetName: sheetName}
}

// SheetName 返回工作表名称
func (e *Exporter) SheetName() string {
	return e.sheetName
}

// Export 将销售记录写入新工作簿，返回工作簿及其标识
func (e *Exporter) Export(records []*model.SalesRecord) (*excelize.File, string, error) {
	f := excelize.NewFile()
	sheet := e.sheetName
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), sheet); err != nil {
		_ = f.Close()
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	// 表头
	headers := model.SalesHeaders()
	headerRow := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		_ = f.Close()
		return nil, "", fmt.Errorf("write header: %w", err)
	}

	// 数据行，保持原生类型
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, "", err
		}
		row := r.Values()
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			_ = f.Close()
			return nil, "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := e.applyStyles(f, len(headers), len(records)); err != nil {
		_ = f.Close()
		return nil, "", err
	}

	id := uuid.New().String()
	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:     creator,
		Title:       sheet,
		Identifier:  id,
		Description: fmt.Sprintf("%d synthetic sales records", len(records)),
		Created:     time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		_ = f.Close()
		return nil, "", fmt.Errorf("set doc props: %w", err)
	}

	return f, id, nil
}

// applyStyles 设置表头样式、日期格式与列宽
func (e *Exporter) applyStyles(f *excelize.File, colCount, rowCount int) error {
	sheet := e.sheetName

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(colCount)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	if rowCount > 0 {
		dateFmt := DateNumFmt
		dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
		if err != nil {
			return fmt.Errorf("date style: %w", err)
		}
		dateCol, err := excelize.ColumnNumberToName(colCount)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, dateCol+"2", fmt.Sprintf("%s%d", dateCol, rowCount+1), dateStyle); err != nil {
			return fmt.Errorf("apply date style: %w", err)
		}
	}

	for i, c := range model.SalesColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.Width); err != nil {
			return fmt.Errorf("set width %s: %w", name, err)
		}
	}

	return nil
}

// WriteFile 导出并保存到 path（已存在则覆盖）
func (e *Exporter) WriteFile(records []*model.SalesRecord, path string) (*WriteResult, error) {
	f, id, err := e.Export(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}

	return &WriteResult{
		Path:       path,
		Rows:       len(records),
		Identifier: id,
	}, nil
}
