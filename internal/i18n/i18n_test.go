package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := GetTranslator()

	tests := []struct {
		name     string
		lang     string
		key      string
		expected string
	}{
		{"english box not found", "en", ErrKeyBoxNotFound, "No box matches the scanned barcode"},
		{"portuguese box not found", "pt", ErrKeyBoxNotFound, "Nenhuma caixa corresponde ao código de barras lido"},
		{"english barcode validation", "en", ErrKeyValidationBarcode, "Barcode must not be empty"},
		{"unknown language falls back to english", "fr", ErrKeyNotFound, "Resource not found"},
		{"empty language falls back to english", "", ErrKeyUnauthorized, "Authentication required"},
		{"regional variant", "pt-BR", ErrKeyInvalidRequest, "Requisição inválida"},
		{"unknown key returns key", "en", "error.nope", "error.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tr.Translate(tt.lang, tt.key))
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	assert.Equal(t, "en", ParseAcceptLanguage(""))
	assert.Equal(t, "pt", ParseAcceptLanguage("pt-BR,pt;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", ParseAcceptLanguage("en-US,en;q=0.5"))
}

func TestSupportedLanguages(t *testing.T) {
	langs := GetTranslator().SupportedLanguages()
	assert.Contains(t, langs, "en")
	assert.Contains(t, langs, "pt")
}
