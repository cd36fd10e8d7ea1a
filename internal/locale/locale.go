// Package locale defines the supported application locales.
package locale

// Default is the mandatory fallback locale.
const Default = "en"

// Supported lists the application locales in display order.
var Supported = []string{"en", "ar", "fr"}

// Names maps locale codes to their native display names.
var Names = map[string]string{
	"en": "English",
	"ar": "العربية",
	"fr": "Français",
}

// IsSupported reports whether l is a supported locale code.
func IsSupported(l string) bool {
	_, ok := Names[l]
	return ok
}
