package component

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studySheet = `indice,nome,Tb,MM,alpha_ref,dens_liq,dens_vap,viscosidade,tensao_superficial
4,n-nonano,423.9,128.26,1.3,718,,0.665,22.4
1,n-pentano,309.2,72.15,3.0,626,,0.224,16.0
5,n-decano,447.3,,1.0,730,,0.850,23.4
3,n-heptano,371.6,100.21,1.8,684,,0.389,19.7
2,n-hexano,341.9,86.18,2.3,655,,0.295,17.9
`

func TestReadCSV_SortsByVolatility(t *testing.T) {
	comps, err := ReadCSV(strings.NewReader(studySheet))
	require.NoError(t, err)
	require.Len(t, comps, 5)

	assert.Equal(t, []string{"n-pentano", "n-hexano", "n-heptano", "n-nonano", "n-decano"}, Names(comps))
	assert.Equal(t, []float64{3.0, 2.3, 1.8, 1.3, 1.0}, Volatilities(comps))

	// blank cells are unset
	assert.Equal(t, 0.0, comps[4].MolarMass)
	assert.Equal(t, 0.0, comps[0].VaporDensity)
	assert.InDelta(t, 0.224, comps[0].Viscosity, 1e-12)
}

func TestReadCSV_EnglishHeadersAndBlankLines(t *testing.T) {
	in := "index,name,mw,alpha,viscosity\n\n2,toluene,92.14,1.0,0.56\n1,benzene,78.11,2.5,0.60\n"
	comps, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, "benzene", comps[0].Name)
	assert.InDelta(t, 92.14, comps[1].MolarMass, 1e-12)
}

func TestReadCSV_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrEmpty},
		{"header_only", "indice,nome\n", ErrEmpty},
		{"no_index", "nome,MM\nx,1\n", ErrMissingColumn},
		{"no_name", "indice,MM\n1,1\n", ErrMissingColumn},
		{"bad_number", "indice,nome,MM\n1,x,abc\n", ErrBadValue},
		{"bad_index", "indice,nome\none,x\n", ErrBadValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMolarMassOf_Fallback(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"n-pentano", 72.15},
		{"n-Hexane", 86.18},
		{"N-HEPTANO", 100.21},
		{"n-nonane", 128.26},
		{"n-decano", 142.29},
		{"n-C10", 142.29},
	}
	for _, tc := range cases {
		mm, err := MolarMassOf(Component{Name: tc.name})
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, mm, 1e-12, tc.name)
	}

	mm, err := MolarMassOf(Component{Name: "anything", MolarMass: 50})
	require.NoError(t, err)
	assert.Equal(t, 50.0, mm)

	_, err = MolarMassOf(Component{Name: "water"})
	require.ErrorIs(t, err, ErrNoMolarMass)

	_, err = MolarMasses([]Component{{Name: "n-hexane"}, {Name: "water"}})
	require.ErrorIs(t, err, ErrNoMolarMass)
}

func TestSort_TiesAndMissingAlpha(t *testing.T) {
	comps := []Component{
		{Index: 3, Name: "c", AlphaRef: 1.5},
		{Index: 9, Name: "unset"},
		{Index: 1, Name: "a", AlphaRef: 1.5},
		{Index: 2, Name: "b", AlphaRef: 2.0},
	}
	Sort(comps)
	assert.Equal(t, []string{"b", "a", "c", "unset"}, Names(comps))
}

func TestDefault_IsOrdered(t *testing.T) {
	comps := Default()
	require.Len(t, comps, 5)
	alpha := Volatilities(comps)
	for i := 1; i < len(alpha); i++ {
		assert.Greater(t, alpha[i-1], alpha[i])
	}
	mms, err := MolarMasses(comps)
	require.NoError(t, err)
	assert.Equal(t, []float64{72.15, 86.18, 100.21, 128.26, 142.29}, mms)
}

func TestDetectFormat(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "table.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(studySheet), 0o644))
	f, err := DetectFormat(csvPath)
	require.NoError(t, err)
	assert.Equal(t, CSV, f)

	// no extension: sniffed
	txt := filepath.Join(dir, "table")
	require.NoError(t, os.WriteFile(txt, []byte(studySheet), 0o644))
	f, err = DetectFormat(txt)
	require.NoError(t, err)
	assert.Equal(t, CSV, f)

	bin := filepath.Join(dir, "blob")
	require.NoError(t, os.WriteFile(bin, []byte{0x00, 0x01, 0x02}, 0o644))
	f, err = DetectFormat(bin)
	require.NoError(t, err)
	assert.Equal(t, Unsupported, f)
	assert.Equal(t, "unsupported", f.String())

	_, err = DetectFormat(filepath.Join(dir, "missing"))
	require.Error(t, err)

	f, err = DetectFormat(filepath.Join(dir, "x.sqlite3"))
	require.NoError(t, err)
	assert.Equal(t, SQLite, f)
	t.Logf("detected %s", f)
}

func TestLoad_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "componentes.csv")
	require.NoError(t, os.WriteFile(path, []byte(studySheet), 0o644))

	comps, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "n-pentano", comps[0].Name)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	comps, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), comps)
}

func TestNewLoader_Unsupported(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(bin, []byte{0x00, 0x00}, 0o644))
	_, err := NewLoader(bin)
	require.ErrorIs(t, err, ErrUnsupported)
}
