package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateFallbackChain(t *testing.T) {
	tr := NewTranslator("en")
	tr.SetCatalog("en", Catalog{KeyUsernameTaken: "english taken"})
	tr.SetCatalog("es", Catalog{KeyUsernameUpdated: "spanish updated"})

	// Requested locale wins.
	assert.Equal(t, "spanish updated", tr.T("es", KeyUsernameUpdated))
	// Missing in the locale falls back to the default catalog.
	assert.Equal(t, "english taken", tr.T("es", KeyUsernameTaken))
	// Missing everywhere falls back to the compiled-in English string.
	assert.Equal(t, fallbacks[KeyWrongUpdating], tr.T("es", KeyWrongUpdating))
	// Unknown keys come back verbatim.
	assert.Equal(t, "flash.no-such-key", tr.T("es", "flash.no-such-key"))
}

func TestResolvedMergesLayers(t *testing.T) {
	tr := NewTranslator("en")
	tr.SetCatalog("en", Catalog{KeyUsernameTaken: "english taken"})
	tr.SetCatalog("es", Catalog{KeyUsernameTaken: "spanish taken"})

	resolved := tr.Resolved("es")
	assert.Equal(t, "spanish taken", resolved[KeyUsernameTaken])
	// Keys the locale never translated still resolve.
	assert.Equal(t, fallbacks[KeyAccountDeleted], resolved[KeyAccountDeleted])
	assert.Len(t, resolved, len(fallbacks))
}

func TestValidateShape(t *testing.T) {
	reference := Catalog{"flash.a": "a", "flash.b": "b"}

	assert.NoError(t, ValidateShape(reference, Catalog{"flash.a": "x", "flash.b": "y"}))

	err := ValidateShape(reference, Catalog{"flash.a": "x", "flash.c": "z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flash.b")
	assert.Contains(t, err.Error(), "flash.c")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.yml", "default: en\nlocales:\n  - en\n  - es\n")
	writeFile(t, dir, "en.yml", "flash.updated-email: \"updated\"\nflash.wrong-updating: \"wrong\"\n")
	writeFile(t, dir, "es.yml", "flash.updated-email: \"actualizado\"\nflash.wrong-updating: \"mal\"\n")

	tr, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, "actualizado", tr.T("es", "flash.updated-email"))
	assert.ElementsMatch(t, []string{"en", "es"}, tr.Locales())
}

func TestLoadDirRejectsBadShape(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "manifest.yml", "default: en\nlocales:\n  - en\n  - es\n")
	writeFile(t, dir, "en.yml", "flash.updated-email: \"updated\"\n")
	writeFile(t, dir, "es.yml", "flash.unknown-key: \"?\"\n")

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shape mismatch")
}

func TestShippedCatalogsMatchCode(t *testing.T) {
	// The checked-in en.yml must cover exactly the keys the code returns.
	catalog, err := LoadCatalog(filepath.Join("..", "..", "locales", "en.yml"))
	require.NoError(t, err)

	reference := make(Catalog, len(fallbacks))
	for key, msg := range fallbacks {
		reference[key] = msg
	}
	assert.NoError(t, ValidateShape(reference, catalog))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
