package model

import "testing"

func TestDefaultReferenceTablesShape(t *testing.T) {
	ref := DefaultReferenceTables()
	if len(ref.Countries) != 15 {
		t.Fatalf("countries=%d, want 15", len(ref.Countries))
	}
	for _, c := range ref.Countries {
		if len(c.Cities) != 3 || len(c.Stores) != 3 {
			t.Fatalf("%s: cities=%d stores=%d, want 3/3", c.Name, len(c.Cities), len(c.Stores))
		}
	}
	if len(ref.Categories) != 8 {
		t.Fatalf("categories=%d, want 8", len(ref.Categories))
	}
	for _, c := range ref.Categories {
		if len(c.Products) != 5 {
			t.Fatalf("%s: products=%d, want 5", c.Name, len(c.Products))
		}
	}
}

func TestReferenceTablesLookup(t *testing.T) {
	ref := DefaultReferenceTables()

	if got := ref.CitiesOf("Japan"); len(got) != 3 || got[0] != "Tokyo" {
		t.Fatalf("CitiesOf(Japan)=%v", got)
	}
	if got := ref.StoresOf("France"); got[2] != "Intermarché" {
		t.Fatalf("StoresOf(France)=%v", got)
	}
	if got := ref.ProductsOf("Frozen"); got[1] != "Frozen Pizza" {
		t.Fatalf("ProductsOf(Frozen)=%v", got)
	}
	if got := ref.CitiesOf("Atlantis"); got != nil {
		t.Fatalf("CitiesOf(Atlantis)=%v, want nil", got)
	}
	if _, ok := ref.Category("Toys"); ok {
		t.Fatalf("Category(Toys) should not exist")
	}
}

func TestDefaultReferenceTablesIsFreshCopy(t *testing.T) {
	a := DefaultReferenceTables()
	a.Countries[0].Cities[0] = "Springfield"

	b := DefaultReferenceTables()
	if b.Countries[0].Cities[0] != "New York" {
		t.Fatalf("mutation leaked into new tables: %q", b.Countries[0].Cities[0])
	}
}

func TestSalesHeadersOrder(t *testing.T) {
	want := []string{"Order_ID", "Country", "City", "Store_Name", "Category", "Product", "Quantity", "Unit_Price_USD", "Total_Sales_USD", "Date"}
	got := SalesHeaders()
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("header[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}
