package config

import (
	"testing"
)

// TestContentLeft 侧边栏折叠后内容区左移
func TestContentLeft(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		collapsed bool
		want      float64
	}{
		{"启用展开", true, false, SidebarWidth},
		{"启用折叠", true, true, 0},
		{"未启用", false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentLeft(tt.enabled, tt.collapsed); got != tt.want {
				t.Errorf("ContentLeft(%v, %v) = %v, 期望 %v", tt.enabled, tt.collapsed, got, tt.want)
			}
		})
	}
}

// TestTitleFontSize 标题字号随视口宽度缩放并有上下限
func TestTitleFontSize(t *testing.T) {
	tests := []struct {
		width float64
		want  float64
	}{
		{1920, TitleMaxFontSize},
		{800, 80},
		{100, SubtitleFontSize},
	}
	for _, tt := range tests {
		if got := TitleFontSize(tt.width); got != tt.want {
			t.Errorf("TitleFontSize(%v) = %v, 期望 %v", tt.width, got, tt.want)
		}
	}
}
