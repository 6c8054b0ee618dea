package render

import (
	"strings"
	"testing"
)

func TestProportional_SingleSpace(t *testing.T) {
	row := makeRow(
		makeRowFragment("Hello", 0.10, 0.1, 0.10, 0.02),
		makeRowFragment("World", 0.21, 0.1, 0.10, 0.02),
	)

	line := NewProportional().RenderRow(row)

	if line != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", line)
	}
}

func TestProportional_TouchingFragmentsConcatenated(t *testing.T) {
	// A token the recognizer split mid-word arrives as touching boxes
	row := makeRow(
		makeRowFragment("$", 0.70, 0.1, 0.02, 0.02),
		makeRowFragment("3.99", 0.72, 0.1, 0.08, 0.02),
	)

	line := NewProportional().RenderRow(row)

	if line != "$3.99" {
		t.Errorf("Expected '$3.99', got '%s'", line)
	}
}

func TestProportional_GapScaling(t *testing.T) {
	// Gap of 0.05 against median height 0.02: five space widths
	row := makeRow(
		makeRowFragment("Qty", 0.10, 0.1, 0.10, 0.02),
		makeRowFragment("2", 0.25, 0.1, 0.02, 0.02),
	)

	line := NewProportional().RenderRow(row)

	want := "Qty" + strings.Repeat(" ", 5) + "2"
	if line != want {
		t.Errorf("Expected '%s', got '%s'", want, line)
	}
}

func TestProportional_GapSpacesCapped(t *testing.T) {
	// A gap spanning most of the line must not explode into a huge run
	row := makeRow(
		makeRowFragment("Item", 0.00, 0.1, 0.05, 0.02),
		makeRowFragment("$9.99", 0.95, 0.1, 0.05, 0.02),
	)

	line := NewProportional().RenderRow(row)

	want := "Item" + strings.Repeat(" ", 10) + "$9.99"
	if line != want {
		t.Errorf("Expected at most 10 spaces, got '%s'", line)
	}
}

func TestProportional_ZeroHeightRow(t *testing.T) {
	row := makeRow(
		makeRowFragment("a", 0.10, 0.1, 0.05, 0),
		makeRowFragment("b", 0.30, 0.1, 0.05, 0),
	)

	line := NewProportional().RenderRow(row)

	if line != "a b" {
		t.Errorf("Expected 'a b', got '%s'", line)
	}
}

func TestProportional_OverlappingFragments(t *testing.T) {
	// Negative gap from overlapping boxes renders no separator
	row := makeRow(
		makeRowFragment("over", 0.10, 0.1, 0.20, 0.02),
		makeRowFragment("lap", 0.25, 0.1, 0.10, 0.02),
	)

	line := NewProportional().RenderRow(row)

	if line != "overlap" {
		t.Errorf("Expected 'overlap', got '%s'", line)
	}
}
