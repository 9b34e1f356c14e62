package driver_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/fieldgrid/field"
	"github.com/katalvlaran/fieldgrid/internal/driver"
	"github.com/stretchr/testify/require"
)

const referenceTranscript = `--- Simulador Genérico de Campo 2D ---

>> Inicializando Campo Gravitatorio (Tipo FLOAT) <<
Creando Grid (FLOAT) de 3x3...
Estableciendo valores iniciales...
Grid Actual (Paso 0):
| 10.0 | 8.0 | 5.0 | 
| 12.0 | 9.0 | 6.0 | 
| 15.0 | 11.0 | 7.0 | 

Opción: Calcular Gradiente Promedio
Ingrese Fila Inicial: 0
Ingrese Columna Inicial: 0, Columna Final: 2

Calculando Gradiente Promedio en la región [0,2]x[0,2]...
Gradiente Promedio calculado: 2.43519 unidades/metro.

Opción: Redimensionar
Redimensionando Grid a 4x4...
Datos copiados. Memoria antigua liberada.

Opción: Redimensionar (A una dimensión menor)
Redimensionando Grid a 2x2...
Datos copiados. Memoria antigua liberada.

Opción: Salir
Destructor invocado. Liberando memoria de la Matriz 2D...
Sistema cerrado.
`

func run(t *testing.T, cfg *driver.Config, script []driver.Step) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	r, err := driver.New(*cfg, &buf, nil)
	require.NoError(t, err)
	err = r.Run(script)

	return buf.String(), err
}

// TestRun_ReferenceTranscript pins the default Spanish output byte for byte.
func TestRun_ReferenceTranscript(t *testing.T) {
	out, err := run(t, driver.NewConfig(), driver.DefaultScript())
	require.NoError(t, err)
	require.Equal(t, referenceTranscript, out)
}

func TestRun_English(t *testing.T) {
	cfg := driver.NewConfig()
	cfg.Lang = "en-GB"
	out, err := run(t, cfg, driver.DefaultScript())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "--- Generic 2D Field Simulator ---\n"))
	require.Contains(t, out, "Average gradient: 2.43519 units/meter.\n")
	require.Contains(t, out, "Option: Resize (to a smaller size)\n")
	require.True(t, strings.HasSuffix(out,
		"Destructor invoked. Releasing 2D matrix memory...\nSystem closed.\n"))
}

func TestRun_ShowSteps(t *testing.T) {
	cfg := driver.NewConfig()
	cfg.ShowSteps = true
	out, err := run(t, cfg, driver.DefaultScript())
	require.NoError(t, err)

	require.Contains(t, out, "Grid Actual (Paso 2):\n"+
		"| 10.0 | 8.0 | 5.0 | 0.0 | \n"+
		"| 12.0 | 9.0 | 6.0 | 0.0 | \n"+
		"| 15.0 | 11.0 | 7.0 | 0.0 | \n"+
		"| 0.0 | 0.0 | 0.0 | 0.0 | \n")
	require.Contains(t, out, "Grid Actual (Paso 3):\n"+
		"| 10.0 | 8.0 | \n"+
		"| 12.0 | 9.0 | \n")
}

// TestRun_InvalidSteps narrates refused operations and keeps going.
func TestRun_InvalidSteps(t *testing.T) {
	script := []driver.Step{
		driver.GradientStep(field.NewRegion(2, 0, 0, 2)),
		driver.ResizeStep(0, 5),
		driver.GradientStep(field.NewRegion(1, 1, 1, 1)),
	}
	out, err := run(t, driver.NewConfig(), script)
	require.NoError(t, err)

	require.Contains(t, out, "Región inválida [2,0]x[0,2]; gradiente no calculado.\n")
	require.Contains(t, out, "Redimensión a 0x5 rechazada.\n")
	require.Contains(t, out, "Gradiente Promedio calculado: 2.25000 unidades/metro.\n")
}

func TestRun_UnknownStepStillReleases(t *testing.T) {
	out, err := run(t, driver.NewConfig(), []driver.Step{{Name: "bogus", Kind: driver.Kind(9)}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "step 1 (bogus)")
	require.True(t, strings.HasSuffix(out,
		"Destructor invocado. Liberando memoria de la Matriz 2D...\nSistema cerrado.\n"))
	require.NotContains(t, out, "Opción: Salir")
}

func TestRun_Heatmap(t *testing.T) {
	cfg := driver.NewConfig()
	cfg.HeatmapPath = filepath.Join(t.TempDir(), "field.png")
	cfg.HeatmapScale = 4
	out, err := run(t, cfg, driver.DefaultScript())
	require.NoError(t, err)
	require.Contains(t, out, "Mapa de calor escrito en "+cfg.HeatmapPath+".\n")

	st, err := os.Stat(cfg.HeatmapPath)
	require.NoError(t, err)
	require.Positive(t, st.Size())
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	for _, lang := range []string{"fr", "!!"} {
		cfg := driver.NewConfig()
		cfg.Lang = lang
		_, err := driver.New(*cfg, &bytes.Buffer{}, nil)
		require.ErrorIs(t, err, driver.ErrUnsupportedLanguage, lang)
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRun_WriteError(t *testing.T) {
	r, err := driver.New(*driver.NewConfig(), failWriter{}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, r.Run(driver.DefaultScript()), errWrite)
}
