package register_repo

import (
	"strings"
	"testing"

	"gstbill/internal/domain/registers/stock"
)

func TestAdjustStockSQL(t *testing.T) {
	inc := adjustStockSQL(stock.DirectionIncrease)
	if !strings.Contains(inc, "current_stock + $1") {
		t.Errorf("increase must add, got:\n%s", inc)
	}

	dec := adjustStockSQL(stock.DirectionDecrease)
	if !strings.Contains(dec, "current_stock - $1") {
		t.Errorf("decrease must subtract, got:\n%s", dec)
	}

	for _, sql := range []string{inc, dec} {
		if !strings.Contains(sql, "deletion_mark = false") {
			t.Errorf("soft-deleted products must not receive stock deltas, got:\n%s", sql)
		}
	}
}
