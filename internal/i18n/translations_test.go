package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForLanguage_Known(t *testing.T) {
	lang, bundle := ForLanguage("es")
	assert.Equal(t, "es", lang)
	assert.Equal(t, "Diseñar Mi Marca", bundle.DesignButton)
}

func TestForLanguage_UnknownFallsBackToEnglish(t *testing.T) {
	for _, tag := range []string{"xx", "", "EN", "de"} {
		lang, bundle := ForLanguage(tag)
		assert.Equal(t, DefaultLanguage, lang)
		assert.Equal(t, "PsyDesign AI - Brand Psychology Designer", bundle.Title)
	}
}

func TestForLanguage_AllBundlesResolve(t *testing.T) {
	for _, tag := range []string{"en", "es", "fr", "hi", "zh", "ar"} {
		lang, bundle := ForLanguage(tag)
		assert.Equal(t, tag, lang)
		assert.NotEmpty(t, bundle.Title, "missing bundle for %s", tag)
	}
}
