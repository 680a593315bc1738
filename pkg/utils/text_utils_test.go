package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	font := newTestFace(t, 14)

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{"短文本不换行", "Ready!", 1000, 1},
		{"长文本自动换行", "Up to 10 pulls, duplicates are possible.", 120, 2},
		{"超长单词强制断行", "Supercalifragilisticexpialidocious", 40, 2},
		{"空文本", "", 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, font, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("期望至少 %d 行，实际得到 %d 行", tt.expectMin, len(lines))
			}

			for _, line := range lines {
				// 单个字符可能超宽，其他行都不能超过最大宽度
				if len([]rune(line)) > 1 && MeasureText(line, font) > tt.maxWidth {
					t.Errorf("行 %q 宽度 %.1f 超过 %.1f", line, MeasureText(line, font), tt.maxWidth)
				}
			}
		})
	}
}

// TestWrapTextKeepsWords 按空格断行时不拆开单词，也不丢失内容
func TestWrapTextKeepsWords(t *testing.T) {
	font := newTestFace(t, 14)
	input := "Up to 10 pulls, duplicates are possible."

	lines := WrapText(input, font, 150)
	if got := strings.Join(lines, " "); got != input {
		t.Errorf("Expected joined lines %q, got %q", input, got)
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		font     *text.GoTextFace
		maxWidth float64
		wantLen  int
	}{
		{"nil font", "Draw Plant", nil, 100, 1},
		{"zero maxWidth", "Draw Plant", &text.GoTextFace{Size: 22}, 0, 1},
		{"negative maxWidth", "Draw Plant", &text.GoTextFace{Size: 22}, -100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.font, tt.maxWidth)
			if len(lines) != tt.wantLen {
				t.Errorf("期望 %d 行，实际得到 %d 行", tt.wantLen, len(lines))
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	font := newTestFace(t, 14)

	if got := TruncateText("Peashooter", font, 1000); got != "Peashooter" {
		t.Errorf("Expected unchanged text, got %q", got)
	}

	got := TruncateText("Flag Zombie Extraordinaire", font, 60)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("Expected ellipsis, got %q", got)
	}
	if MeasureText(got, font) > 60 {
		t.Errorf("Truncated text %q still too wide", got)
	}

	if TruncateText("Wall-nut", nil, 1) != "Wall-nut" {
		t.Error("Expected nil font to leave text unchanged")
	}
}

func TestMeasureText(t *testing.T) {
	font := newTestFace(t, 14)
	if MeasureText("", font) != 0 || MeasureText("abc", nil) != 0 {
		t.Error("Expected zero width for empty text or nil font")
	}
	if MeasureText("Ready!", font) <= MeasureText("Ready", font) {
		t.Error("Expected longer text to be wider")
	}
}
