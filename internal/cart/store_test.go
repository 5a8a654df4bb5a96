package cart

import "testing"

func item(id string, price int64) Item {
	return Item{ProductID: id, Name: id, UnitPrice: price}
}

func TestAddMergesSameProduct(t *testing.T) {
	c := &Cart{}
	c.Add(item("pollo-frito", 14000), 1)
	c.Add(item("pollo-frito", 14000), 2)

	if c.Len() != 1 {
		t.Fatalf("want one merged line, got %d", c.Len())
	}
	if got := c.Quantity("pollo-frito"); got != 3 {
		t.Fatalf("want summed qty 3, got %d", got)
	}
}

func TestAddClampsBadQty(t *testing.T) {
	c := &Cart{}
	c.Add(item("jugo-lulo", 5000), 0)
	if got := c.Quantity("jugo-lulo"); got != 1 {
		t.Fatalf("qty 0 should add as 1, got %d", got)
	}
	c.Add(item("papas-criollas", 6000), -5)
	if got := c.Quantity("papas-criollas"); got != 1 {
		t.Fatalf("negative qty should add as 1, got %d", got)
	}
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	c := &Cart{}
	c.Add(item("pollo-asado", 22000), 2)
	c.SetQuantity("pollo-asado", 0)

	if c.Len() != 0 {
		t.Fatalf("line should be removed, got %d lines", c.Len())
	}
	if got := c.Quantity("pollo-asado"); got != 0 {
		t.Fatalf("removed id should report 0, got %d", got)
	}
}

func TestSetQuantityDirect(t *testing.T) {
	c := &Cart{}
	c.Add(item("pollo-frito", 14000), 1)
	c.SetQuantity("pollo-frito", 7)
	if got := c.Quantity("pollo-frito"); got != 7 {
		t.Fatalf("want 7, got %d", got)
	}
	// unknown id is a no-op
	c.SetQuantity("no-such", 3)
	if c.Len() != 1 {
		t.Fatalf("setting unknown id must not create a line")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := &Cart{}
	c.Add(item("pollo-frito", 14000), 1)
	c.Remove("no-such")
	if c.Len() != 1 {
		t.Fatalf("removing absent id must not touch other lines")
	}
	c.Remove("pollo-frito")
	if c.Len() != 0 {
		t.Fatalf("line not removed")
	}
}

func TestClearAndInsertionOrder(t *testing.T) {
	c := &Cart{}
	c.Add(item("b", 2), 1)
	c.Add(item("a", 1), 1)
	c.Add(item("b", 2), 1)

	items := c.Items()
	if len(items) != 2 || items[0].ProductID != "b" || items[1].ProductID != "a" {
		t.Fatalf("insertion order lost: %+v", items)
	}

	c.Clear()
	if c.Len() != 0 || c.Quantity("a") != 0 {
		t.Fatalf("clear left items behind")
	}
}

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore()
	s.With("sid-1", func(c *Cart) { c.Add(item("pollo-frito", 14000), 1) })
	s.With("sid-2", func(c *Cart) {
		if c.Len() != 0 {
			t.Fatalf("sessions must not share carts")
		}
	})
	s.Drop("sid-1")
	s.With("sid-1", func(c *Cart) {
		if c.Len() != 0 {
			t.Fatalf("dropped session kept its cart")
		}
	})
}
