package pricing

import "testing"

func TestCalculateTypicalOrder(t *testing.T) {
	// 2x 10000 + 1x 5000 below the free-delivery threshold
	q := Calculate([]Line{
		{UnitPrice: 10000, Qty: 2},
		{UnitPrice: 5000, Qty: 1},
	}, DefaultConfig)

	if q.Subtotal != 25000 {
		t.Fatalf("subtotal: want 25000, got %d", q.Subtotal)
	}
	if q.DeliveryFee != 3000 {
		t.Fatalf("delivery fee: want 3000, got %d", q.DeliveryFee)
	}
	if q.Tax != 2000 {
		t.Fatalf("tax: want 2000, got %d", q.Tax)
	}
	if q.Total != 30000 {
		t.Fatalf("total: want 30000, got %d", q.Total)
	}
}

func TestCalculateEmptyCart(t *testing.T) {
	q := Calculate(nil, DefaultConfig)
	if q != (Quote{}) {
		t.Fatalf("empty cart should quote all zeros, got %+v", q)
	}
}

func TestCalculateFreeDeliveryThreshold(t *testing.T) {
	// One peso under the threshold still pays the flat fee
	q := Calculate([]Line{{UnitPrice: 49999, Qty: 1}}, DefaultConfig)
	if q.DeliveryFee != 3000 {
		t.Fatalf("under threshold: want fee 3000, got %d", q.DeliveryFee)
	}
	// At the threshold delivery is free; the fee is tiered, not proportional
	q = Calculate([]Line{{UnitPrice: 50000, Qty: 1}}, DefaultConfig)
	if q.DeliveryFee != 0 {
		t.Fatalf("at threshold: want fee 0, got %d", q.DeliveryFee)
	}
}

func TestCalculateTaxRoundsHalfUp(t *testing.T) {
	// 131 * 8% = 10.48 -> 10; 132 * 8% = 10.56 -> 11; 125 * 8% = 10.0 exactly
	cases := []struct {
		subtotal int64
		tax      int64
	}{
		{131, 10},
		{132, 11},
		{125, 10},
		{25000, 2000},
	}
	for _, tc := range cases {
		q := Calculate([]Line{{UnitPrice: tc.subtotal, Qty: 1}}, DefaultConfig)
		if q.Tax != tc.tax {
			t.Fatalf("subtotal %d: want tax %d, got %d", tc.subtotal, tc.tax, q.Tax)
		}
	}
}

func TestCalculateInvariants(t *testing.T) {
	carts := [][]Line{
		{{UnitPrice: 1, Qty: 1}},
		{{UnitPrice: 14000, Qty: 3}, {UnitPrice: 6000, Qty: 2}},
		{{UnitPrice: 22000, Qty: 5}},
		{{UnitPrice: 0, Qty: 10}},
		{{UnitPrice: 5000, Qty: 0}, {UnitPrice: 5000, Qty: -1}},
	}
	for _, lines := range carts {
		q := Calculate(lines, DefaultConfig)
		if q.Total != q.Subtotal+q.DeliveryFee+q.Tax {
			t.Fatalf("total != subtotal+fee+tax: %+v", q)
		}
		if q.Total < q.Subtotal {
			t.Fatalf("total below subtotal: %+v", q)
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	lines := []Line{{UnitPrice: 14000, Qty: 2}}
	a := Calculate(lines, DefaultConfig)
	b := Calculate(lines, DefaultConfig)
	if a != b {
		t.Fatalf("repeated calls disagree: %+v vs %+v", a, b)
	}
}
