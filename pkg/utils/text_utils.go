package utils

import (
	"strings"

	"github.com/decker502/spider/pkg/render"
)

// BreakStringIntoLines 将文本折行，使其大致不超过 maxWidth 像素
//
// 先根据测得的宽度估算需要的行数，然后每多一行就在剩余文本
// len/lines 位置（含）之前最后一个空格处切分一次。
// 空格保留在下一段的开头。这只是近似算法：
// 各行长度可能不均匀，单个很长的单词仍可能超出 maxWidth。
//
// 已经放得下的文本（或 maxWidth <= 0）原样返回。
// 如果切分点之前没有空格，则停止切分，剩余部分保持在同一行。
func BreakStringIntoLines(text string, maxWidth float64, font render.Font) string {
	if maxWidth <= 0 || font == nil {
		return text
	}
	width, _ := font.MeasureString(text)
	if width <= maxWidth {
		return text
	}

	var lines []string
	count := int(width/maxWidth) + 1
	for count > 1 {
		limit := len(text) / count
		index := strings.LastIndexByte(text[:limit+1], ' ')
		if index < 0 {
			break
		}
		lines = append(lines, text[:index])
		text = text[index:]
		count--
	}
	lines = append(lines, text)
	return strings.Join(lines, "\n")
}
