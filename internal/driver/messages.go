package driver

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// ErrUnsupportedLanguage is returned for a narration language without a catalog.
var ErrUnsupportedLanguage = errors.New("driver: unsupported language")

// Message keys double as the English text.
const (
	msgTitle           = "--- Generic 2D Field Simulator ---"
	msgInit            = ">> Initializing Gravitational Field (%s type) <<"
	msgCreate          = "Creating %s grid of %dx%d..."
	msgSeed            = "Setting initial values..."
	msgGridHeader      = "Current grid (step %d):"
	msgOptGradient     = "Option: Compute Average Gradient"
	msgAskRow          = "Enter start row: %d"
	msgAskCols         = "Enter start column: %d, end column: %d"
	msgComputing       = "Computing average gradient over region %s..."
	msgGradient        = "Average gradient: %s units/meter."
	msgGradientInvalid = "Invalid region %s; gradient not computed."
	msgOptResize       = "Option: Resize"
	msgOptShrink       = "Option: Resize (to a smaller size)"
	msgResizing        = "Resizing grid to %dx%d..."
	msgCopied          = "Data copied. Old memory released."
	msgResizeRefused   = "Resize to %dx%d refused."
	msgHeatmap         = "Heatmap written to %s."
	msgOptExit         = "Option: Exit"
	msgReleased        = "Destructor invoked. Releasing 2D matrix memory..."
	msgClosed          = "System closed."
)

var spanish = map[string]string{
	msgTitle:           "--- Simulador Genérico de Campo 2D ---",
	msgInit:            ">> Inicializando Campo Gravitatorio (Tipo %s) <<",
	msgCreate:          "Creando Grid (%s) de %dx%d...",
	msgSeed:            "Estableciendo valores iniciales...",
	msgGridHeader:      "Grid Actual (Paso %d):",
	msgOptGradient:     "Opción: Calcular Gradiente Promedio",
	msgAskRow:          "Ingrese Fila Inicial: %d",
	msgAskCols:         "Ingrese Columna Inicial: %d, Columna Final: %d",
	msgComputing:       "Calculando Gradiente Promedio en la región %s...",
	msgGradient:        "Gradiente Promedio calculado: %s unidades/metro.",
	msgGradientInvalid: "Región inválida %s; gradiente no calculado.",
	msgOptResize:       "Opción: Redimensionar",
	msgOptShrink:       "Opción: Redimensionar (A una dimensión menor)",
	msgResizing:        "Redimensionando Grid a %dx%d...",
	msgCopied:          "Datos copiados. Memoria antigua liberada.",
	msgResizeRefused:   "Redimensión a %dx%d rechazada.",
	msgHeatmap:         "Mapa de calor escrito en %s.",
	msgOptExit:         "Opción: Salir",
	msgReleased:        "Destructor invocado. Liberando memoria de la Matriz 2D...",
	msgClosed:          "Sistema cerrado.",
}

// supported lists the catalog languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.Spanish}

// newCatalog builds the narration catalog. English entries map each key to itself.
func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, es := range spanish {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
		if err := b.SetString(language.Spanish, key, es); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// newPrinter returns a printer for lang, which must match a catalog language.
func newPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("driver: language %q: %w", lang, ErrUnsupportedLanguage)
	}
	_, idx, conf := language.NewMatcher(supported).Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("driver: language %q: %w", lang, ErrUnsupportedLanguage)
	}
	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}

	return message.NewPrinter(supported[idx], message.Catalog(cat)), nil
}
