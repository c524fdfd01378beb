// Package search define la semántica de las búsquedas de texto libre:
// tokens por substring, insensibles a mayúsculas, combinados con AND.
package search

import (
	"strings"
	"unicode"
)

// MaxTokens tope de tokens por consulta; el resto se descarta.
const MaxTokens = 5

// Tokens divide la consulta en tokens sobre espacios, guiones, guiones bajos y
// puntos. Los tokens vacíos se descartan y se conservan como máximo MaxTokens.
// Cada token debe coincidir como substring (case-insensitive) contra alguno de
// los campos designados; todos los tokens deben coincidir a la vez.
func Tokens(q string) []string {
	fields := strings.FieldsFunc(q, func(r rune) bool {
		switch r {
		case '-', '_', '.':
			return true
		}
		return unicode.IsSpace(r)
	})
	if len(fields) > MaxTokens {
		fields = fields[:MaxTokens]
	}
	return fields
}
