package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestT_RendersTemplates(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	msg := tr.T("en", "signup.success", map[string]any{
		"Email":    "x@y.edu",
		"Activity": "Chess Club",
	})
	assert.Equal(t, "Signed up x@y.edu for Chess Club", msg)

	msg = tr.T("fr", "unregister.success", map[string]any{
		"Email":    "x@y.edu",
		"Activity": "Chess Club",
	})
	assert.Equal(t, "x@y.edu est désinscrit de Chess Club", msg)
}

func TestT_AcceptLanguageHeader(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	msg := tr.T("fr-CH, fr;q=0.9, en;q=0.8", "errors.activity_not_found", nil)
	assert.Equal(t, "Activité non trouvée", msg)
}

func TestT_FallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	msg := tr.T("de", "errors.already_signed_up", nil)
	assert.Equal(t, "Student is already signed up for this activity", msg)
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	assert.Equal(t, "errors.no_such_key", tr.T("en", "errors.no_such_key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestNewTranslator_InvalidDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale", zap.NewNop())

	// Falls back to English as the default language.
	msg := tr.T("", "errors.not_signed_up", nil)
	assert.Equal(t, "Student is not signed up for this activity", msg)
}
