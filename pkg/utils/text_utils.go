package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 换行规则:
//   - 在空格处断行
//   - 单个单词超过最大宽度时按字符强制断行
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureText(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""
	for _, word := range strings.Fields(textStr) {
		candidate := word
		if currentLine != "" {
			candidate = currentLine + " " + word
		}
		if MeasureText(candidate, font) <= maxWidth {
			currentLine = candidate
			continue
		}

		if currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = ""
		}

		// 单词本身超宽，按字符拆开
		for MeasureText(word, font) > maxWidth {
			head, rest := splitAtWidth(word, font, maxWidth)
			lines = append(lines, head)
			word = rest
		}
		currentLine = word
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// splitAtWidth 取出不超过 maxWidth 的最长前缀（至少一个字符）
func splitAtWidth(s string, font *text.GoTextFace, maxWidth float64) (head, rest string) {
	end := 0
	for end < len(s) {
		_, size := utf8.DecodeRuneInString(s[end:])
		if end > 0 && MeasureText(s[:end+size], font) > maxWidth {
			break
		}
		end += size
	}
	return s[:end], s[end:]
}

// TruncateText 文本超过最大宽度时截断并加省略号
func TruncateText(textStr string, font *text.GoTextFace, maxWidth float64) string {
	if font == nil || MeasureText(textStr, font) <= maxWidth {
		return textStr
	}

	const ellipsis = "…"
	runes := []rune(textStr)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if MeasureText(candidate, font) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// MeasureText 测量文本宽度
func MeasureText(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}
