package utils

import (
	"strings"
	"unicode/utf8"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - maxWidth: 最大宽度（像素）
//   - measure: 测量一行文本宽度的函数
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 保留原文中的换行符
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
//   - 支持中文和英文混合文本
func WrapText(textStr string, maxWidth float64, measure func(string) float64) []string {
	if textStr == "" || measure == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, para := range strings.Split(textStr, "\n") {
		lines = append(lines, wrapLine(para, maxWidth, measure)...)
	}
	return lines
}

// wrapLine 对不含换行符的一段文本换行
func wrapLine(textStr string, maxWidth float64, measure func(string) float64) []string {
	// 如果文本宽度小于最大宽度，直接返回
	if measure(textStr) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	// 按字符遍历（支持多字节字符）
	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)
		textStr = textStr[size:]

		testLine := currentLine + char
		if measure(testLine) <= maxWidth {
			currentLine = testLine
			continue
		}

		// 单个字符就超宽，强制单独成行
		if currentLine == "" {
			lines = append(lines, char)
			continue
		}

		// 回退到当前行最后一个空格处断行，被截下的单词移到下一行
		if i := strings.LastIndexByte(currentLine, ' '); i > 0 && char != " " {
			lines = append(lines, strings.TrimSpace(currentLine[:i]))
			currentLine = currentLine[i+1:] + char
			continue
		}

		lines = append(lines, strings.TrimSpace(currentLine))
		currentLine = strings.TrimLeft(char, " ")
	}

	if currentLine = strings.TrimSpace(currentLine); currentLine != "" {
		lines = append(lines, currentLine)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
