// Package report renders the rows of a sales workbook for the terminal.
//
// Two formats are available: a fixed-width text table framed with
// "+---+" separators, and a Markdown table. Both treat the first row as
// the header and every cell as an opaque display string.
package report
