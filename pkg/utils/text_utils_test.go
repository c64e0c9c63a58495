package utils

import (
	"testing"
	"unicode/utf8"
)

// runeWidth 每个字符宽 1 像素
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth float64
		want     []string
	}{
		{"短文本不换行", "短文本", 10, []string{"短文本"}},
		{"在空格处断行", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"单词不被截断", "aaaa bbbb", 6, []string{"aaaa", "bbbb"}},
		{"超长单词强制断行", "aaaaaaaa", 3, []string{"aaa", "aaa", "aa"}},
		{"中文按字符断行", "豌豆射手第一道防线", 4, []string{"豌豆射手", "第一道防", "线"}},
		{"保留换行符", "a b\nc", 10, []string{"a b", "c"}},
		{"空行保留", "a\n\nb", 10, []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.maxWidth, runeWidth)
			if len(lines) != len(tt.want) {
				t.Fatalf("WrapText() = %q, 期望 %q", lines, tt.want)
			}
			for i := range lines {
				if lines[i] != tt.want[i] {
					t.Errorf("第 %d 行 = %q, 期望 %q", i+1, lines[i], tt.want[i])
				}
			}
		})
	}
}

// TestWrapTextEdgeCases 测试边界情况
func TestWrapTextEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		measure  func(string) float64
		maxWidth float64
		wantLen  int
	}{
		{"nil measure", "测试", nil, 100, 1},
		{"zero maxWidth", "测试", runeWidth, 0, 1},
		{"negative maxWidth", "测试", runeWidth, -100, 1},
		{"空文本", "", runeWidth, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, tt.maxWidth, tt.measure)
			if len(lines) != tt.wantLen {
				t.Errorf("期望 %d 行，实际得到 %d 行", tt.wantLen, len(lines))
			}
		})
	}
}
