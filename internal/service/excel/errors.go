package excel

import "errors"

// 工作簿读写错误类型，调用方使用 errors.Is 判断
var (
	// ErrWrite 目标文件无法创建或写入（权限、目录不存在、磁盘已满）
	ErrWrite = errors.New("cannot write spreadsheet")

	// ErrNotFound 源文件不存在
	ErrNotFound = errors.New("spreadsheet not found")

	// ErrRead 源文件不可读或不是有效的工作簿
	ErrRead = errors.New("cannot read spreadsheet")
)
