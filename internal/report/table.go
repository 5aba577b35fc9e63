package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultTitle 表格标题
	DefaultTitle = "SUPERMARKET SALES DATA — WORLDWIDE"

	// EmptyNotice 工作簿没有数据时的提示
	EmptyNotice = "The Excel file is empty."

	// 输出格式
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// ErrUnknownFormat 不支持的输出格式
var ErrUnknownFormat = errors.New("unknown report format")

// Renderer 将工作簿行输出到 w
type Renderer interface {
	Write(w io.Writer, rows [][]string) error
}

// New 按格式创建渲染器
func New(format, title string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewTableRenderer(title), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(title), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownFormat, format, FormatText, FormatMarkdown)
	}
}

// TableRenderer 定宽文本表格
type TableRenderer struct {
	title string
	cond  *runewidth.Condition
}

// NewTableRenderer 创建文本表格渲染器
func NewTableRenderer(title string) *TableRenderer {
	if title == "" {
		title = DefaultTitle
	}
	// 固定按非东亚宽度计算，输出不随终端 locale 变化
	return &TableRenderer{
		title: title,
		cond:  &runewidth.Condition{EastAsianWidth: false},
	}
}

// Render 渲染为完整文本
func (r *TableRenderer) Render(rows [][]string) string {
	var b strings.Builder
	_ = r.Write(&b, rows)
	return b.String()
}

// Write 渲染并写入 w
func (r *TableRenderer) Write(w io.Writer, rows [][]string) error {
	if IsEmpty(rows) {
		_, err := fmt.Fprintln(w, EmptyNotice)
		return err
	}

	header, data := split(rows)
	widths := r.columnWidths(header, data)
	separator := r.separator(widths)

	lines := make([]string, 0, len(data)+8)
	lines = append(lines,
		"",
		r.center(r.title, r.cond.StringWidth(separator)),
		separator,
		r.formatRow(header, widths),
		separator,
	)
	for _, row := range data {
		lines = append(lines, r.formatRow(row, widths))
	}
	lines = append(lines,
		separator,
		"",
		summaryLine(len(data)),
	)

	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths 每列宽度 = 表头与所有数据单元格的最大显示宽度
func (r *TableRenderer) columnWidths(header []string, data [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = r.cond.StringWidth(h)
	}
	for _, row := range data {
		for i, cell := range row {
			if w := r.cond.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// separator 形如 +----------+---------+
func (r *TableRenderer) separator(widths []int) string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	return b.String()
}

// formatRow 左对齐并用竖线包围
func (r *TableRenderer) formatRow(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		padded[i] = r.cond.FillRight(cells[i], w)
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

// center 居中；左右空白不等时按 str.center 的规则分配
func (r *TableRenderer) center(s string, width int) string {
	sw := r.cond.StringWidth(s)
	if sw >= width {
		return s
	}
	marg := width - sw
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}

// IsEmpty 没有任何行，或只有表头
func IsEmpty(rows [][]string) bool {
	return len(rows) <= 1
}

// split 拆出表头和数据行，并把每行补齐到相同列数
func split(rows [][]string) ([]string, [][]string) {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	normalized := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, cols)
		copy(cells, row)
		normalized[i] = cells
	}
	return normalized[0], normalized[1:]
}

func summaryLine(count int) string {
	return fmt.Sprintf("Total sales records: %d", count)
}
