package excel

import (
	"math"
	"math/rand/v2"
	"time"

	"supermart/internal/model"
)

// 随机取值范围（闭区间）
const (
	MinQuantity  = 1
	MaxQuantity  = 50
	MinUnitPrice = 0.50
	MaxUnitPrice = 25.00
)

// Generator 销售数据生成器
type Generator struct {
	rng *rand.Rand
}

// NewGenerator 创建生成器，seed 为 0 时使用当前时间
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate 生成 rowCount 条销售记录，OrderID 从 1 开始连续编号
func (g *Generator) Generate(ref *model.ReferenceTables, rowCount, year int) []*model.SalesRecord {
	if ref == nil || rowCount <= 0 || len(ref.Countries) == 0 || len(ref.Categories) == 0 {
		return []*model.SalesRecord{}
	}

	records := make([]*model.SalesRecord, 0, rowCount)
	for orderID := 1; orderID <= rowCount; orderID++ {
		// 先选国家，再从该国家中选城市和超市
		country := ref.Countries[g.rng.IntN(len(ref.Countries))]
		city := g.pick(country.Cities)
		store := g.pick(country.Stores)

		category := ref.Categories[g.rng.IntN(len(ref.Categories))]
		product := g.pick(category.Products)

		quantity := MinQuantity + g.rng.IntN(MaxQuantity-MinQuantity+1)
		// 先对单价取整，再用取整后的单价计算总额
		unitPrice := round2(g.randomInRange(MinUnitPrice, MaxUnitPrice))
		totalSales := round2(float64(quantity) * unitPrice)

		records = append(records, &model.SalesRecord{
			OrderID:    orderID,
			Country:    country.Name,
			City:       city,
			StoreName:  store,
			Category:   category.Name,
			Product:    product,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			TotalSales: totalSales,
			SaleDate:   g.randomDate(year),
		})
	}

	return records
}

// pick 均匀随机选择一个元素
func (g *Generator) pick(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[g.rng.IntN(len(values))]
}

// randomInRange 在范围内生成随机数
func (g *Generator) randomInRange(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

// randomDate 返回当年内的随机日期（含首尾两天）
func (g *Generator) randomDate(year int) time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, g.rng.IntN(days+1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
