package aggregate

import (
	"fmt"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(supplier, warehouse, retail, transfers string) RawRow {
	return RawRow{
		ColSupplier:        supplier,
		ColWarehouseSales:  warehouse,
		ColRetailSales:     retail,
		ColRetailTransfers: transfers,
	}
}

func TestAggregate_MergesRowsForSameSupplier(t *testing.T) {
	rows := []RawRow{
		row("Acme", "10", "5", "0"),
		row("Acme", "3", "", "2"),
	}

	got := Aggregate(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Name)
	assert.Equal(t, "Acme", got[0].Label)
	assert.Equal(t, 13.0, got[0].WarehouseSales)
	assert.Equal(t, 5.0, got[0].RetailSales)
	assert.Equal(t, 2.0, got[0].RetailTransfers)
	assert.Equal(t, 20.0, got[0].Total)
}

func TestAggregate_EmptySupplierDropped(t *testing.T) {
	got := Aggregate([]RawRow{row("", "100", "100", "100")})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestAggregate_MissingSupplierDropped(t *testing.T) {
	rows := []RawRow{
		{ColWarehouseSales: "50"},
		row("Beta", "1", "1", "1"),
	}

	got := Aggregate(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "Beta", got[0].Name)
	assert.Equal(t, 3.0, got[0].Total)
}

func TestAggregate_EmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
	assert.Empty(t, Aggregate([]RawRow{}))
}

func TestAggregate_BadNumbersCountAsZero(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"text", "abc"},
		{"nan", "NaN"},
		{"inf", "Inf"},
		{"negative inf", "-Infinity"},
		{"trailing junk", "12abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate([]RawRow{row("Acme", tt.value, "4.5", "1.5")})

			require.Len(t, got, 1)
			assert.Equal(t, 0.0, got[0].WarehouseSales)
			assert.Equal(t, 4.5, got[0].RetailSales)
			assert.Equal(t, 1.5, got[0].RetailTransfers)
			assert.Equal(t, 6.0, got[0].Total)
		})
	}
}

func TestAggregate_MissingNumericColumns(t *testing.T) {
	got := Aggregate([]RawRow{{ColSupplier: "Acme", ColRetailSales: "7"}})

	require.Len(t, got, 1)
	assert.Equal(t, 7.0, got[0].Total)
}

func TestAggregate_WhitespaceAroundNumbers(t *testing.T) {
	got := Aggregate([]RawRow{row("Acme", " 2.25 ", "\t1", "-0.25")})

	require.Len(t, got, 1)
	assert.Equal(t, 3.0, got[0].Total)
}

func TestAggregate_KeyIsVerbatim(t *testing.T) {
	rows := []RawRow{
		row("acme", "1", "0", "0"),
		row("Acme", "2", "0", "0"),
		row("Acme ", "3", "0", "0"),
	}

	got := Aggregate(rows)

	require.Len(t, got, 3)
	assert.Equal(t, "Acme ", got[0].Name)
	assert.Equal(t, "Acme", got[1].Name)
	assert.Equal(t, "acme", got[2].Name)
}

func TestAggregate_TopFifteenOfTwenty(t *testing.T) {
	var rows []RawRow
	for i := 1; i <= 20; i++ {
		rows = append(rows, row(fmt.Sprintf("Supplier %02d", i), fmt.Sprint(i*10), "0", "0"))
	}

	got := Aggregate(rows)

	require.Len(t, got, TopN)
	for i, s := range got {
		want := 20 - i
		assert.Equal(t, fmt.Sprintf("Supplier %02d", want), s.Name)
		assert.Equal(t, float64(want*10), s.Total)
	}
}

func TestAggregate_TiesKeepFirstSeenOrder(t *testing.T) {
	rows := []RawRow{
		row("B", "5", "0", "0"),
		row("A", "5", "0", "0"),
		row("C", "9", "0", "0"),
	}

	got := Aggregate(rows)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestAggregate_LongNameLabel(t *testing.T) {
	name := "Great Lakes Wine & Spirits Distribution Co"
	got := Aggregate([]RawRow{row(name, "1", "1", "1")})

	require.Len(t, got, 1)
	assert.Equal(t, name, got[0].Name)
	assert.Equal(t, "Great Lakes Wine &…", got[0].Label)
}

func TestAggregate_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	suppliers := []string{"", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V"}
	values := []string{"", "x", "0", "1.5", "100", "-3", "2500.75", "NaN"}

	for iter := 0; iter < 50; iter++ {
		n := rng.Intn(200)
		rows := make([]RawRow, n)
		distinct := map[string]bool{}
		for i := range rows {
			s := suppliers[rng.Intn(len(suppliers))]
			if s != "" {
				distinct[s] = true
			}
			rows[i] = row(s,
				values[rng.Intn(len(values))],
				values[rng.Intn(len(values))],
				values[rng.Intn(len(values))])
		}

		got := Aggregate(rows)

		assert.LessOrEqual(t, len(got), TopN)
		assert.Equal(t, min(len(distinct), TopN), len(got))
		for i, s := range got {
			assert.NotEmpty(t, s.Name)
			assert.Equal(t, s.WarehouseSales+s.RetailSales+s.RetailTransfers, s.Total)
			if i > 0 {
				assert.GreaterOrEqual(t, got[i-1].Total, s.Total)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short", "Acme", "Acme"},
		{"exactly twenty", "ABCDEFGHIJKLMNOPQRST", "ABCDEFGHIJKLMNOPQRST"},
		{"twenty one", "ABCDEFGHIJKLMNOPQRSTU", "ABCDEFGHIJKLMNOPQR…"},
		{"multibyte", "Société Générale des Vins du Québec", "Société Générale d…"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Label(tt.in)
			assert.Equal(t, tt.want, got)
			if utf8.RuneCountInString(tt.in) > LabelMaxLen {
				assert.Equal(t, LabelKeepLen+1, utf8.RuneCountInString(got))
			}
		})
	}
}
