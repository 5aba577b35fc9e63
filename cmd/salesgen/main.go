// Package main provides the salesgen command.
//
// salesgen fabricates a workbook of synthetic supermarket sales records
// (100 rows by default) and writes it to supermarket_sales.xlsx.
//
// Usage:
//
//	salesgen
//	salesgen --rows 500 --file sales.xlsx
//	salesgen init
package main

func main() {
	Execute()
}
