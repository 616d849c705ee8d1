package tabstruct

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePath = "testdata/sample.twb"

var auxMember = []byte("HYPER\x00fake extract payload")

// tempTWB copies the sample workbook into a temp dir so mutating tests
// never touch testdata.
func tempTWB(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sample.twb")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// tempTWBX bundles the sample workbook and one auxiliary member into a
// package in a temp dir.
func tempTWBX(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "Sample.twbx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("Sample.twb")
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	w, err = zw.Create("Data/extract.hyper")
	require.NoError(t, err)
	_, err = w.Write(auxMember)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

func TestOpenInvalidExtension(t *testing.T) {
	_, err := Open("workbook.xlsx")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Open("workbook")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestOpenDocument(t *testing.T) {
	wb, err := Open(samplePath)
	require.NoError(t, err)
	assert.Equal(t, KindDocument, wb.Kind())

	meta, err := wb.Extract()
	require.NoError(t, err)
	assert.Equal(t, "sample.twb", meta.BookName)
	assert.Equal(t, []string{"select * from orders"}, meta.CustomSQL)
	assert.Equal(t, []string{"C:/Data/Budget.xlsx"}, meta.FileConnections)
	assert.Len(t, meta.Fields, 4)
	assert.Len(t, meta.ActiveFields, 3)
	assert.Len(t, meta.HiddenFields, 1)
}

func TestOpenPackage(t *testing.T) {
	wb, err := Open(tempTWBX(t))
	require.NoError(t, err)
	assert.Equal(t, KindPackage, wb.Kind())

	meta, err := wb.Extract()
	require.NoError(t, err)
	assert.Equal(t, "Sample.twbx", meta.BookName)
	assert.Equal(t, []string{"select * from orders"}, meta.CustomSQL)
	assert.Len(t, meta.Fields, 4)
}

func TestDocumentRoundTrip(t *testing.T) {
	wb, err := Open(samplePath)
	require.NoError(t, err)
	before, err := wb.Extract()
	require.NoError(t, err)

	saved := filepath.Join(t.TempDir(), "sample.twb")
	require.NoError(t, wb.Save(saved))

	reloaded, err := Open(saved)
	require.NoError(t, err)
	after, err := reloaded.Extract()
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestExtractReturnsCopy(t *testing.T) {
	wb, err := Open(samplePath)
	require.NoError(t, err)

	first, err := wb.Extract()
	require.NoError(t, err)
	require.NotEmpty(t, first.Fonts)
	first.Fonts[0] = "mutated"
	first.Fields = nil

	second, err := wb.Extract()
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Fonts[0])
	assert.Len(t, second.Fields, 4)
}

func TestOpenWithOptionsSkipUnresolved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orphan.twb")
	require.NoError(t, os.WriteFile(path, []byte(`<workbook version='18.1'>
  <worksheets>
    <worksheet name='Orphan'>
      <table>
        <view>
          <datasource-dependencies datasource='federated.gone'>
            <column caption='Lost' name='[Lost]'/>
          </datasource-dependencies>
        </view>
      </table>
    </worksheet>
  </worksheets>
</workbook>`), 0644))

	wb, err := Open(path)
	require.NoError(t, err)
	_, err = wb.Extract()
	assert.Error(t, err)

	wb, err = OpenWithOptions(path, Options{SkipUnresolved: true})
	require.NoError(t, err)
	meta, err := wb.Extract()
	require.NoError(t, err)
	assert.Empty(t, meta.ActiveFields)
}
