package excel

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/xuri/excelize/v2"
)

// Parser 销售数据工作簿读取器
type Parser struct {
	file  *excelize.File
	path  string
	sheet string
}

// NewParser 创建读取器
func NewParser() *Parser {
	return &Parser{}
}

// LoadFile 打开工作簿并定位活动工作表
func (p *Parser) LoadFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrRead, path)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	sheet := file.GetSheetName(file.GetActiveSheetIndex())
	if sheet == "" {
		if list := file.GetSheetList(); len(list) > 0 {
			sheet = list[0]
		}
	}
	if sheet == "" {
		_ = file.Close()
		return fmt.Errorf("%w: %s has no worksheet", ErrRead, path)
	}

	p.file = file
	p.path = path
	p.sheet = sheet
	return nil
}

// SheetName 活动工作表名称
func (p *Parser) SheetName() string {
	return p.sheet
}

// Identifier 工作簿标识（由导出器写入文档属性，可能为空）
func (p *Parser) Identifier() string {
	if p.file == nil {
		return ""
	}
	props, err := p.file.GetDocProps()
	if err != nil || props == nil {
		return ""
	}
	return props.Identifier
}

// Rows 读取全部行（含表头），单元格按显示格式转为字符串
func (p *Parser) Rows() ([][]string, error) {
	if p.file == nil {
		return nil, errors.New("no file loaded")
	}

	rows, err := p.file.GetRows(p.sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, p.path, err)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}

// Close 关闭文件
func (p *Parser) Close() error {
	if p.file != nil {
		err := p.file.Close()
		p.file = nil
		return err
	}
	return nil
}

// Load 读取 path 指向的工作簿，返回活动工作表的全部行
func Load(path string) ([][]string, error) {
	p := NewParser()
	if err := p.LoadFile(path); err != nil {
		return nil, err
	}
	defer func() { _ = p.Close() }()

	return p.Rows()
}
