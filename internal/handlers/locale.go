package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"tharagrowth-api/internal/locale"
)

const (
	sessionLangKey     = "language"
	sessionAnalysisKey = "last_analysis"
)

// resolveLocale picks the request locale: query parameter first (and
// remembers it in the session), then the session value, then the
// browser-negotiated language, then the default. sess may be nil.
func resolveLocale(c *fiber.Ctx, sess *session.Session) string {
	if lang := c.Query("lang"); lang != "" && locale.IsSupported(lang) {
		if sess != nil {
			sess.Set(sessionLangKey, lang)
		}
		return lang
	}

	if sess != nil {
		if v, ok := sess.Get(sessionLangKey).(string); ok && locale.IsSupported(v) {
			return v
		}
	}

	if best := c.AcceptsLanguages(locale.Supported...); best != "" {
		return best
	}

	return locale.Default
}
