package model

import "time"

// SalesRecord 一条销售记录（生成后不再修改）
type SalesRecord struct {
	OrderID    int       `json:"orderId"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	StoreName  string    `json:"storeName"`
	Category   string    `json:"category"`
	Product    string    `json:"product"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPriceUsd"`
	TotalSales float64   `json:"totalSalesUsd"`
	SaleDate   time.Time `json:"date"`
}

// Values 按列顺序返回原生类型的单元格值
func (r *SalesRecord) Values() []interface{} {
	return []interface{}{
		r.OrderID,
		r.Country,
		r.City,
		r.StoreName,
		r.Category,
		r.Product,
		r.Quantity,
		r.UnitPrice,
		r.TotalSales,
		r.SaleDate,
	}
}

// Column 表格列定义
type Column struct {
	Header string
	Width  float64 // Excel 显示宽度
}

// SalesColumns 工作表列（顺序即写入顺序）
var SalesColumns = [...]Column{
	{Header: "Order_ID", Width: 10},
	{Header: "Country", Width: 15},
	{Header: "City", Width: 18},
	{Header: "Store_Name", Width: 22},
	{Header: "Category", Width: 12},
	{Header: "Product", Width: 16},
	{Header: "Quantity", Width: 10},
	{Header: "Unit_Price_USD", Width: 16},
	{Header: "Total_Sales_USD", Width: 17},
	{Header: "Date", Width: 12},
}

// SalesHeaders 返回表头
func SalesHeaders() []string {
	headers := make([]string, 0, len(SalesColumns))
	for _, c := range SalesColumns {
		headers = append(headers, c.Header)
	}
	return headers
}
