// Package chromaterm renders chroma token streams as tview color tags.
// It deliberately does not import tview: callers feed the result into any
// widget with dynamic colors enabled.
package chromaterm

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize tokenises text with the given lexer and wraps each token in
// [#rrggbb]…[-] tags using the named chroma style.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		entry := style.Get(token.Type)
		if entry.IsZero() || !entry.Colour.IsSet() {
			sb.WriteString(token.Value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String() + "]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeFile picks a lexer by file name and highlights data with it.
// When no lexer matches, or highlighting fails, it returns the plain text
// and false.
func ColorizeFile(fileName, styleName string, data []byte) (string, bool) {
	lexer := lexers.Match(fileName)
	if lexer == nil {
		return string(data), false
	}
	colorized, err := Colorize(string(data), styleName, lexer)
	if err != nil {
		return string(data), false
	}
	return colorized, true
}
