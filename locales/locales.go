// Package locales ships the message catalogues used for display text.
package locales

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain every catalogue is stored under
const Domain = "default"

//go:embed */default.po
var catalogues embed.FS

// Languages returns the languages with a built-in catalogue
func Languages() []string {
	entries, err := fs.ReadDir(catalogues, ".")
	if err != nil {
		return nil
	}
	var langs []string
	for _, e := range entries {
		if e.IsDir() {
			langs = append(langs, e.Name())
		}
	}
	return langs
}

// Use makes the built-in catalogue for lang the global gotext storage
func Use(lang string) error {
	data, err := catalogues.ReadFile(path.Join(lang, Domain+".po"))
	if err != nil {
		return fmt.Errorf("locales: no built-in catalogue for %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", lang)
	l.AddTranslator(Domain, po)
	gotext.SetStorage(l)
	return nil
}

// UseDir loads catalogues from dir/<lang>/default.po instead of the built-in ones
func UseDir(dir, lang string) {
	gotext.Configure(dir, lang, Domain)
}
