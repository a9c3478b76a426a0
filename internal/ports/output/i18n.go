package output

// T is the i18n port for user-facing messages: lookup plus templating for
// a given locale. Confirmation messages and client-visible error details
// both go through it.
type T interface {
	// T renders the message identified by key for the given locale.
	// data holds optional template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
