package utils

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadDefaultFontFace 使用内置 Go Regular 字体创建字体
func LoadDefaultFontFace(size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create default font source: %w", err)
	}
	return &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// VisibleTail 返回能放进 maxWidth 的文本末尾部分（输入框文本过长时显示最后输入的字符）
// 同时返回被裁掉的字符数，供插入符定位使用
func VisibleTail(textStr string, font *text.GoTextFace, maxWidth float64) (string, int) {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return textStr, 0
	}

	skipped := 0
	for measureTextWidth(textStr, font) > maxWidth && textStr != "" {
		_, size := utf8.DecodeRuneInString(textStr)
		textStr = textStr[size:]
		skipped++
	}
	return textStr, skipped
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	return measureTextWidth(textStr, font)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
