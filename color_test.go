package panzoom

import (
	"errors"
	"testing"
)

func TestColorAnimatorRoundTrip(t *testing.T) {
	c, err := NewColorAnimator("#336699", "linear", 100)
	if err != nil {
		t.Fatalf("NewColorAnimator error: %v", err)
	}
	if got := c.Value(); got != "#336699" {
		t.Errorf("Value = %q, want %q", got, "#336699")
	}
	if got := c.Target(); got != "#336699" {
		t.Errorf("Target = %q, want %q", got, "#336699")
	}
	if !c.HasEnded() {
		t.Error("new ColorAnimator should be at rest")
	}
}

func TestColorAnimatorOptionalHashPrefix(t *testing.T) {
	c, err := NewColorAnimator("336699", "linear", 100)
	if err != nil {
		t.Fatalf("NewColorAnimator error: %v", err)
	}
	if got := c.Value(); got != "#336699" {
		t.Errorf("Value = %q, want %q", got, "#336699")
	}
}

func TestColorAnimatorRejectsMalformedInput(t *testing.T) {
	bad := []string{"", "#fff", "33669", "#3366999", "zzzzzz", "#33669g"}
	for _, s := range bad {
		if _, err := NewColorAnimator(s, "linear", 100); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("NewColorAnimator(%q): error = %v, want ErrInvalidColor", s, err)
		}
	}

	c, _ := NewColorAnimator("#000000", "linear", 100)
	if err := c.SetTarget("nope"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetTarget: error = %v, want ErrInvalidColor", err)
	}
	if err := c.SetValue("#12"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetValue: error = %v, want ErrInvalidColor", err)
	}
}

func TestColorAnimatorAnimatesChannels(t *testing.T) {
	c, _ := NewColorAnimator("#000000", "linear", 100)
	if err := c.SetTarget("#0000ff"); err != nil {
		t.Fatalf("SetTarget error: %v", err)
	}
	c.Step(0) // anchors the timer

	c.Step(50)
	if c.HasEnded() {
		t.Fatal("should not be ended at halfway")
	}
	// Blue channel at 127.5 rounds to 128 = 0x80.
	if got := c.Value(); got != "#000080" {
		t.Errorf("Value at halfway = %q, want %q", got, "#000080")
	}

	c.Step(100)
	if !c.HasEnded() {
		t.Fatal("should be ended after full duration")
	}
	if got := c.Value(); got != "#0000ff" {
		t.Errorf("Value at end = %q, want %q", got, "#0000ff")
	}
}

func TestColorAnimatorLockstep(t *testing.T) {
	c, _ := NewColorAnimator("#102030", "linear", 100)
	c.SetTarget("#405060")
	c.Step(0)
	c.Step(30)

	// All three channels share one timeline: HasEnded only flips when the
	// last one lands.
	if c.HasEnded() {
		t.Error("ended mid-flight")
	}
	c.End()
	if !c.HasEnded() {
		t.Error("not ended after End")
	}
	if got := c.Value(); got != "#405060" {
		t.Errorf("Value after End = %q, want %q", got, "#405060")
	}
}

func TestColorAnimatorRetargetMidFlight(t *testing.T) {
	c, _ := NewColorAnimator("#000000", "linear", 100)
	c.SetTarget("#ffffff")
	c.Step(0)
	c.Step(50)

	before := c.Value()
	c.SetTarget("#000000")
	if c.Value() != before {
		t.Errorf("Value changed across retarget: %q -> %q", before, c.Value())
	}
}

func TestColorAnimatorSetValueSnaps(t *testing.T) {
	c, _ := NewColorAnimator("#000000", "linear", 100)
	c.SetTarget("#ffffff")
	c.Step(0)
	c.Step(25)

	if err := c.SetValue("#abcdef"); err != nil {
		t.Fatalf("SetValue error: %v", err)
	}
	if !c.HasEnded() || c.Value() != "#abcdef" || c.Target() != "#abcdef" {
		t.Errorf("after SetValue: value=%q target=%q ended=%v", c.Value(), c.Target(), c.HasEnded())
	}
}
