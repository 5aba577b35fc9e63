package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
)

// MarkdownRenderer Markdown 表格
type MarkdownRenderer struct {
	title string
}

// NewMarkdownRenderer 创建 Markdown 渲染器
func NewMarkdownRenderer(title string) *MarkdownRenderer {
	if title == "" {
		title = DefaultTitle
	}
	return &MarkdownRenderer{title: title}
}

// Write 渲染并写入 w
func (r *MarkdownRenderer) Write(w io.Writer, rows [][]string) error {
	if IsEmpty(rows) {
		_, err := fmt.Fprintln(w, EmptyNotice)
		return err
	}

	header, data := split(rows)

	md := markdown.NewMarkdown(w)
	md.H1(r.title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: header,
		Rows:   data,
	})
	md.PlainText("")
	md.PlainText(summaryLine(len(data)))

	return md.Build()
}
