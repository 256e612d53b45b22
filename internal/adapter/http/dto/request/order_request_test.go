package request

import "testing"

func TestCheckoutRequest_ToEntity(t *testing.T) {
	r := CheckoutRequest{
		CustomerName:    "Jo",
		CustomerEmail:   "a@b.com",
		ShippingAddress: "street 1",
		Items: []CheckoutItemRequest{
			{ProductID: "p-1", ProductName: "Boots", Quantity: 2, Price: 19.90, Size: "42"},
			{ProductID: "p-2", Quantity: 1, Price: 5},
		},
	}

	o := r.ToEntity()
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	if o.Items[0].ProductID != "p-1" || o.Items[0].Quantity != 2 || o.Items[0].Size != "42" {
		t.Fatalf("unexpected first item: %+v", o.Items[0])
	}
	// The total is never taken from the request payload.
	if o.TotalAmount != 0 {
		t.Fatalf("expected zero total before checkout, got %v", o.TotalAmount)
	}
	if o.Status != "" {
		t.Fatalf("expected empty status before checkout, got %q", o.Status)
	}
}
