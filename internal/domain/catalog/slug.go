// Package catalog contiene algoritmos puros del dominio del catálogo,
// sin dependencias de persistencia ni transporte.
package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]+`)
	multiDashRe  = regexp.MustCompile(`--+`)

	// Descompone, elimina marcas diacríticas y recompone ("é" -> "e"),
	// para que nombres con tildes produzcan slugs ASCII estables.
	unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify deriva un slug determinista a partir de un nombre visible:
// minúsculas, sin espacios alrededor, diacríticos plegados, espacios
// internos a guion, "&" a "-and-", caracteres no-palabra eliminados y
// guiones repetidos colapsados.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if folded, _, err := transform.String(unaccent, s); err == nil {
		s = folded
	}
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = multiDashRe.ReplaceAllString(s, "-")
	return s
}
