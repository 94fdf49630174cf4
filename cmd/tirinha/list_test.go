package cmd

import (
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/kerbaras/tirinha/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"short", "tira.jpg", "tira.jpg"},
		{"exact", "quadrinho-armandinho-hoje.jp", "quadrinho-armandinho-hoje.jp"},
		{"ascii", "quadrinho-armandinho-de-hoje-grande.jpg", "quadrinho-armandinho-de-h..."},
		{"multibyte", "quadrinho-níquel-nnnnnnáusea-do-dia.jpg", "quadrinho-níquel-nnnnnnáu..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateString(tt.input, 28)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, ansi.StringWidth(got), 28)
		})
	}
}

func TestStripTable(t *testing.T) {
	strips := data.NewStrips([]string{
		"https://img.example.com/quadrinhos/armandinho.jpg?w=1200",
		"https://img.example.com/quadrinhos/níquel-náusea.png",
	})

	view := stripTable(strips).View()

	assert.Contains(t, view, "armandinho.jpg")
	assert.Contains(t, view, "níquel-náusea.png")
	assert.True(t, utf8.ValidString(view))
}
