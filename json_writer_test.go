package statement

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("b", 1)
		w.Append("a", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":1,"a":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", make(chan int))
		w.Append("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() succeeded, want an error")
		}
	})
}

func TestPosition_MarshalJSON(t *testing.T) {
	p := Position{
		Code: "2330", Name: "TSMC", SharesHeld: 10,
		AverageCost: decimal.RequireFromString("500.5"), TotalCost: 5000,
		MarketPrice: decimal.RequireFromString("600"), MarketValue: 6000,
	}
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"code":"2330","name":"TSMC","shares_held":10,"average_cost":"500.5","total_cost":5000,` +
		`"market_price":"600","market_value":6000,"unrealized_pl":1000,"return_pct":20}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestTransaction_MarshalJSON(t *testing.T) {
	tx := Transaction{
		Date: "2024/03/05", Kind: Buy, Name: "ABC", Shares: 1000,
		Price: decimal.RequireFromString("50.5"), Amount: 50500, Fee: 80,
	}
	got, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `{"date":"2024/03/05","kind":"buy","name":"ABC","shares":1000,"price":"50.5",` +
		`"amount":50500,"fee":80,"tax":0,"net_settlement":-50580}`
	if string(got) != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}
