package models

import "testing"

func TestTypeForStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Draft", TypeDraft},
		{"Saved", TypeActive},
		{"Sent", TypeActive},
		{"draft", TypeActive},
		{"", TypeActive},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := TypeForStatus(tt.status); got != tt.want {
				t.Errorf("TypeForStatus(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestEstimate_Total(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{"no items", nil, "0"},
		{"single laptop", []LineItem{{Quantity: 1, Price: 450}}, "450"},
		{"laptops and pens", []LineItem{{Quantity: 2, Price: 450}, {Quantity: 30, Price: 10}}, "1200"},
		{"cents stay exact", []LineItem{{Quantity: 3, Price: 0.1}}, "0.3"},
		{"zero quantity", []LineItem{{Quantity: 0, Price: 99.99}}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Estimate{LineItems: tt.items}
			if got := e.Total().String(); got != tt.want {
				t.Errorf("Total() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEstimate_CustomerName(t *testing.T) {
	if got := (Estimate{}).CustomerName(); got != "" {
		t.Errorf("CustomerName() without customer = %q, want empty", got)
	}
	e := Estimate{Customer: &Customer{Name: "Amal Perera"}}
	if got := e.CustomerName(); got != "Amal Perera" {
		t.Errorf("CustomerName() = %q, want Amal Perera", got)
	}
}
