package papertrade

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(175.50).Mul(Q(10)); !got.Equal(USD(1755)) {
		t.Errorf("175.50 * 10 = %s, want 1755.00", got)
	}
	if got := USD(3000).Div(Q(20)); !got.Equal(USD(150)) {
		t.Errorf("3000 / 20 = %s, want 150.00", got)
	}
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.10 + 0.20 = %s, want exactly 0.30", got)
	}
	if got := USD(180).Sub(USD(175.50)); !got.Equal(USD(4.50)) {
		t.Errorf("180 - 175.50 = %s, want 4.50", got)
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1755), "$1,755.00"},
		{USD(0.01), "$0.01"},
		{USD(-18.5), "-$18.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if got := USD(18).SignedString(); got != "+$18.00" {
		t.Errorf("SignedString() = %q, want +$18.00", got)
	}
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
}

func TestMoney_AddPanicsOnCurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD and EUR did not panic")
		}
	}()
	USD(1).Add(M(1, "EUR"))
}

func TestMoney_Round(t *testing.T) {
	if got := USD(175.505).Round(); !got.Equal(USD(175.51)) {
		t.Errorf("Round() = %s, want 175.51", got)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(USD(1755.5))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"1755.5"` {
		t.Errorf("Marshal() = %s, want \"1755.5\"", data)
	}
	var m Money
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !m.Equal(USD(1755.5)) {
		t.Errorf("round trip = %s, want 1755.50", m)
	}
}

func TestQuantity_IsInteger(t *testing.T) {
	if !Q(10).IsInteger() {
		t.Error("Q(10) should be integer")
	}
	if Q(1.5).IsInteger() {
		t.Error("Q(1.5) should not be integer")
	}
	if !Q(2.0).IsInteger() {
		t.Error("Q(2.0) should be integer")
	}
}

func TestPercentChange(t *testing.T) {
	if got := PercentChange(USD(175.50), USD(180)); !got.Equal(Percent(2.5641)) {
		t.Errorf("PercentChange = %s, want 2.56%%", got)
	}
	if got := PercentChange(USD(0), USD(180)); got != 0 {
		t.Errorf("PercentChange from zero = %s, want 0", got)
	}
}

func TestPercent_SignedString(t *testing.T) {
	if got := Percent(2.5).SignedString(); got != "+2.50%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(-1.2).SignedString(); got != "-1.20%" {
		t.Errorf("SignedString() = %q", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q", got)
	}
}
