// Package i18n carga los diccionarios de textos por idioma (clave → texto)
// embebidos en el binario y resuelve claves con cadena de respaldo.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog agrupa los diccionarios cargados.
type Catalog struct {
	dicts         map[string]map[string]string
	defaultLocale string
}

// Load lee todos los archivos locales/*.yaml embebidos. defaultLocale se usa
// cuando el idioma pedido no existe o no tiene la clave.
func Load(defaultLocale string) (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: leer locales: %w", err)
	}
	dicts := make(map[string]map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		raw, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: leer %s: %w", e.Name(), err)
		}
		var dict map[string]string
		if err := yaml.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("i18n: parsear %s: %w", e.Name(), err)
		}
		dicts[strings.TrimSuffix(e.Name(), ".yaml")] = dict
	}
	return NewCatalog(dicts, defaultLocale)
}

// NewCatalog construye un catálogo a partir de diccionarios en memoria.
func NewCatalog(dicts map[string]map[string]string, defaultLocale string) (*Catalog, error) {
	if _, ok := dicts[defaultLocale]; !ok {
		return nil, fmt.Errorf("i18n: idioma por defecto %q no disponible", defaultLocale)
	}
	return &Catalog{dicts: dicts, defaultLocale: defaultLocale}, nil
}

// Locales devuelve los idiomas disponibles, ordenados.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.dicts))
	for l := range c.dicts {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// DefaultLocale idioma usado como respaldo.
func (c *Catalog) DefaultLocale() string { return c.defaultLocale }

// Resolve normaliza el idioma pedido ("ar-IQ" → "ar") y devuelve el por defecto
// si no está disponible.
func (c *Catalog) Resolve(locale string) string {
	l := strings.TrimSpace(locale)
	if tag, err := language.Parse(l); err == nil {
		base, _ := tag.Base()
		l = base.String()
	} else if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	l = strings.ToLower(l)
	if _, ok := c.dicts[l]; ok {
		return l
	}
	return c.defaultLocale
}

// Dictionary devuelve el diccionario del idioma (resuelto con Resolve).
func (c *Catalog) Dictionary(locale string) Dictionary {
	l := c.Resolve(locale)
	return Dictionary{
		locale:   l,
		primary:  c.dicts[l],
		fallback: c.dicts[c.defaultLocale],
	}
}

// Dictionary diccionario de un idioma con respaldo al idioma por defecto.
// Implementa balance.Translator.
type Dictionary struct {
	locale   string
	primary  map[string]string
	fallback map[string]string
}

// Locale idioma efectivo del diccionario.
func (d Dictionary) Locale() string { return d.locale }

// Get devuelve el texto de key reemplazando los marcadores ":nombre".
// Si la clave no existe en ningún idioma devuelve la clave misma.
func (d Dictionary) Get(key string, replace map[string]string) string {
	s, ok := d.primary[key]
	if !ok {
		s, ok = d.fallback[key]
	}
	if !ok {
		return key
	}
	for k, v := range replace {
		s = strings.ReplaceAll(s, ":"+k, v)
	}
	return s
}

// IsRTL indica si el idioma se escribe de derecha a izquierda.
func (d Dictionary) IsRTL() bool {
	return d.locale == "ar" || d.locale == "ku"
}
