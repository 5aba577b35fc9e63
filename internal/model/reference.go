package model

// CountryEntry 国家及其城市、连锁超市
type CountryEntry struct {
	Name   string
	Cities []string
	Stores []string
}

// CategoryEntry 品类及其商品
type CategoryEntry struct {
	Name     string
	Products []string
}

// ReferenceTables 生成数据用的静态查找表
// 顺序固定，保证相同种子下的抽样结果可复现。
type ReferenceTables struct {
	Countries  []CountryEntry
	Categories []CategoryEntry
}

// DefaultReferenceTables 返回默认查找表（每次调用返回新副本）
func DefaultReferenceTables() *ReferenceTables {
	return &ReferenceTables{
		Countries: []CountryEntry{
			{"USA", []string{"New York", "Los Angeles", "Chicago"}, []string{"Walmart", "Kroger", "Target"}},
			{"UK", []string{"London", "Manchester", "Birmingham"}, []string{"Tesco", "Sainsbury's", "Asda"}},
			{"Germany", []string{"Berlin", "Munich", "Hamburg"}, []string{"Aldi", "Lidl", "Rewe"}},
			{"France", []string{"Paris", "Lyon", "Marseille"}, []string{"Carrefour", "Leclerc", "Intermarché"}},
			{"Japan", []string{"Tokyo", "Osaka", "Kyoto"}, []string{"Aeon", "Ito-Yokado", "FamilyMart"}},
			{"Australia", []string{"Sydney", "Melbourne", "Brisbane"}, []string{"Woolworths", "Coles", "IGA"}},
			{"Brazil", []string{"Sao Paulo", "Rio de Janeiro", "Brasilia"}, []string{"Pao de Acucar", "Carrefour", "Extra"}},
			{"Canada", []string{"Toronto", "Vancouver", "Montreal"}, []string{"Loblaws", "Sobeys", "Metro"}},
			{"India", []string{"Mumbai", "Delhi", "Bangalore"}, []string{"Big Bazaar", "D-Mart", "Reliance Fresh"}},
			{"China", []string{"Beijing", "Shanghai", "Guangzhou"}, []string{"RT-Mart", "Hema", "Wumart"}},
			{"South Africa", []string{"Cape Town", "Johannesburg", "Durban"}, []string{"Shoprite", "Pick n Pay", "Checkers"}},
			{"Mexico", []string{"Mexico City", "Guadalajara", "Monterrey"}, []string{"Walmart", "Soriana", "Chedraui"}},
			{"UAE", []string{"Dubai", "Abu Dhabi", "Sharjah"}, []string{"Carrefour", "Lulu", "Spinneys"}},
			{"Italy", []string{"Rome", "Milan", "Naples"}, []string{"Esselunga", "Conad", "Coop"}},
			{"Russia", []string{"Moscow", "St. Petersburg", "Novosibirsk"}, []string{"Magnit", "X5 Retail", "Lenta"}},
		},
		Categories: []CategoryEntry{
			{"Produce", []string{"Apples", "Bananas", "Tomatoes", "Spinach", "Carrots"}},
			{"Dairy", []string{"Milk", "Cheese", "Yogurt", "Butter", "Eggs"}},
			{"Bakery", []string{"Bread", "Croissant", "Muffins", "Bagels", "Donuts"}},
			{"Meat", []string{"Chicken", "Beef", "Pork", "Lamb", "Salmon"}},
			{"Beverages", []string{"Orange Juice", "Water", "Coffee", "Tea", "Soda"}},
			{"Snacks", []string{"Chips", "Crackers", "Nuts", "Popcorn", "Cookies"}},
			{"Frozen", []string{"Ice Cream", "Frozen Pizza", "Frozen Veggies", "Fish Fingers", "Waffles"}},
			{"Household", []string{"Detergent", "Toilet Paper", "Shampoo", "Soap", "Tissue"}},
		},
	}
}

// Country 按名称查找国家
func (t *ReferenceTables) Country(name string) (CountryEntry, bool) {
	for _, c := range t.Countries {
		if c.Name == name {
			return c, true
		}
	}
	return CountryEntry{}, false
}

// Category 按名称查找品类
func (t *ReferenceTables) Category(name string) (CategoryEntry, bool) {
	for _, c := range t.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryEntry{}, false
}

// CitiesOf 返回国家下的城市
func (t *ReferenceTables) CitiesOf(country string) []string {
	c, _ := t.Country(country)
	return c.Cities
}

// StoresOf 返回国家下的连锁超市
func (t *ReferenceTables) StoresOf(country string) []string {
	c, _ := t.Country(country)
	return c.Stores
}

// ProductsOf 返回品类下的商品
func (t *ReferenceTables) ProductsOf(category string) []string {
	c, _ := t.Category(category)
	return c.Products
}
