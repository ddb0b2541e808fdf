package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) factor() float64 {
	return m.session.Geometry.Factor(m.pointerX)
}

// canvasSize leaves the last terminal row for the status line.
func (m *model) canvasSize() (int, int) {
	width := m.width
	if width < 1 {
		width = 80
	}
	height := m.height - 1
	if height < 1 {
		height = 24
	}
	return width, height
}

func (m *model) canvas() *Canvas {
	width, height := m.canvasSize()
	c := NewCanvas(m.session.Geometry, width, height, m.background)
	m.session.Draw(c, m.factor())
	return c
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div"))
}

// normalizeSourceText turns clipboard content into plain text with '\n'
// line endings and no control characters besides tabs.
func normalizeSourceText(text string) string {
	switch {
	case isRTF(text):
		text = stripRTF(text)
	case isHTML(text):
		text = extractTextFromHTML(text)
	}

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range strings.ReplaceAll(text, "\r\n", "\n") {
		switch {
		case r == '\r':
			result.WriteRune('\n')
		case r == '\n' || r == '\t' || r >= 32:
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

func extractTextFromHTML(html string) string {
	var result strings.Builder
	result.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			result.WriteRune(r)
		}
	}
	return strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	).Replace(result.String())
}

// stripRTF drops groups braces and control words, keeping escaped
// literals and \par as a newline.
func stripRTF(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
		default:
			result.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		if next == '\\' || next == '{' || next == '}' {
			result.WriteRune(next)
			i++
			continue
		}
		start := i + 1
		for i+1 < len(runes) && isASCIILetter(runes[i+1]) {
			i++
		}
		word := string(runes[start : i+1])
		if word == "par" || word == "line" {
			result.WriteRune('\n')
		}
		for i+1 < len(runes) && (runes[i+1] == '-' || (runes[i+1] >= '0' && runes[i+1] <= '9')) {
			i++
		}
		if i+1 < len(runes) && runes[i+1] == ' ' {
			i++
		}
	}
	return result.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
