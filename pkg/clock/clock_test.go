package clock

import (
	"errors"
	"testing"
	"time"
)

func TestRealProducesUTC(t *testing.T) {
	now, err := Real{}.Now()
	if err != nil {
		t.Fatalf("Real.Now() error: %v", err)
	}
	if now.IsZero() {
		t.Fatal("Real.Now() returned the zero time")
	}
	if now.Location() != time.UTC {
		t.Errorf("Real.Now() location = %v, want UTC", now.Location())
	}
}

func TestFixedIsFrozen(t *testing.T) {
	frozen := time.Date(2022, time.March, 27, 1, 0, 0, 0, time.UTC)
	clk := NewFixed(frozen)

	for i := 0; i < 3; i++ {
		got, err := clk.Now()
		if err != nil {
			t.Fatalf("Fixed.Now() error: %v", err)
		}
		if !got.Equal(frozen) {
			t.Errorf("Fixed.Now() call %d = %v, want %v", i+1, got, frozen)
		}
	}
}

func TestFuncSteps(t *testing.T) {
	base := time.Date(2023, time.January, 26, 0, 0, 0, 0, time.UTC)
	calls := 0
	clk := Func(func() (time.Time, error) {
		at := base.Add(time.Duration(calls) * 30 * time.Minute)
		calls++
		return at, nil
	})

	first, err := clk.Now()
	if err != nil {
		t.Fatalf("Func.Now() error: %v", err)
	}
	second, err := clk.Now()
	if err != nil {
		t.Fatalf("Func.Now() error: %v", err)
	}
	if got := second.Sub(first); got != 30*time.Minute {
		t.Errorf("stepped clock advanced %v, want 30m", got)
	}
}

func TestStuckFails(t *testing.T) {
	_, err := Stuck{}.Now()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Stuck.Now() = %v, want ErrUnavailable", err)
	}
}
