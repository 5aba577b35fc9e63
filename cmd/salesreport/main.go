// Package main provides the salesreport command.
//
// salesreport opens the workbook written by salesgen and prints it as an
// aligned text table followed by the number of sales records.
//
// Usage:
//
//	salesreport
//	salesreport --file sales.xlsx --format markdown
package main

func main() {
	Execute()
}
