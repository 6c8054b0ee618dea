package layout

import "testing"

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"english", "Hello World", LTR},
		{"hebrew", "שלום עולם", RTL},
		{"arabic", "مرحبا", RTL},
		{"digits", "123.45", Neutral},
		{"punctuation", "---", Neutral},
		{"empty", "", Neutral},
		{"price", "$3.99", Neutral},
		{"mixed mostly hebrew", "item שלום עולם בדיקה", RTL},
		{"mixed mostly english", "Hello World שלום", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDirection(tt.text)
			if got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestCharDirection(t *testing.T) {
	if CharDirection('A') != LTR {
		t.Error("Expected 'A' to be LTR")
	}
	if CharDirection('א') != RTL {
		t.Error("Expected 'א' to be RTL")
	}
	if CharDirection('م') != RTL {
		t.Error("Expected 'م' to be RTL")
	}
	for _, r := range []rune{'7', '.', ' ', '$', '+'} {
		if CharDirection(r) != Neutral {
			t.Errorf("Expected %q to be Neutral", r)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if LTR.String() != "ltr" || RTL.String() != "rtl" || Neutral.String() != "neutral" {
		t.Error("Unexpected direction names")
	}
}
