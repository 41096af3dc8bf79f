// internal/catalog/catalog_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()

	require.Len(t, cat.Products(), 2)

	product, ok := cat.ByID("euphoria-01")
	require.True(t, ok)
	assert.Equal(t, "Be Free Tee", product.Name)
	assert.Equal(t, 125, product.Price)
	assert.Len(t, product.Images, 3)
	assert.True(t, product.HasSize("M"))
	assert.True(t, product.IsSoldOut("S"))
	assert.False(t, product.IsSoldOut("M"))

	_, ok = cat.ByID("euphoria-99")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{
			"id": "tee-custom",
			"name": "Custom Tee",
			"price": 90,
			"images": ["one.jpg"],
			"sizes": ["M", "L"]
		}
	]`), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)

	product, ok := cat.ByID("tee-custom")
	require.True(t, ok)
	assert.Equal(t, 90, product.Price)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadFileRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
