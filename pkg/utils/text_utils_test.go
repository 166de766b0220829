package utils

import (
	"strings"
	"testing"
)

func TestFormatCookies(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.99, "0"},
		{12.5, "12"},
		{99.999, "99"},
		{1_000_000, "1000000"},
	}
	for _, tt := range tests {
		if got := FormatCookies(tt.in); got != tt.want {
			t.Errorf("FormatCookies(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{96, "96.0"},
		{2.25, "2.2"},
	}
	for _, tt := range tests {
		if got := FormatRate(tt.in); got != tt.want {
			t.Errorf("FormatRate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	source, err := LoadUIFontSource()
	if err != nil {
		t.Fatalf("LoadUIFontSource: %v", err)
	}
	font := NewFace(source, 16)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		wantLines int
	}{
		{"短文本不换行", "Double Cookies", 1000, 1},
		{"每个单词一行", "Your clicks are twice as powerful", 1, 6},
		{"空字符串", "", 100, 1},
		{"无字体不换行", "a b c", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) != tt.wantLines {
				t.Fatalf("got %d lines %q, want %d", len(lines), lines, tt.wantLines)
			}
		})
	}

	// 换行不丢失单词
	input := "Grandmas bake cookies for you every single second of the day"
	lines := WrapText(input, font, 150)
	if got := strings.Join(lines, " "); got != input {
		t.Errorf("rejoined text = %q, want %q", got, input)
	}
	for _, line := range lines {
		if strings.Contains(line, " ") && MeasureTextWidth(line, font) > 150 {
			t.Errorf("line %q exceeds max width", line)
		}
	}
}

func TestMeasureTextWidth(t *testing.T) {
	source, err := LoadUIFontSource()
	if err != nil {
		t.Fatalf("LoadUIFontSource: %v", err)
	}
	font := NewFace(source, 16)

	if MeasureTextWidth("", font) != 0 {
		t.Error("empty text should have zero width")
	}
	if MeasureTextWidth("abc", nil) != 0 {
		t.Error("nil font should have zero width")
	}
	if MeasureTextWidth("abcdef", font) <= MeasureTextWidth("abc", font) {
		t.Error("longer text should be wider")
	}
}
