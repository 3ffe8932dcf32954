package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("unset -> defaults", func(t *testing.T) {
		for _, k := range []string{"HTTP_PORT", "CART_STORAGE_KEY", "CART_COOKIE_SECURE", "LOCALE", "CURRENCY_LABEL"} {
			t.Setenv(k, "")
		}
		cfg := Load()
		assert.Equal(t, 8080, cfg.HTTPPort)
		assert.Equal(t, "cart", cfg.StorageKey)
		assert.False(t, cfg.CookieSecure)
		assert.Equal(t, "en-KE", cfg.Locale)
		assert.Equal(t, "Ksh", cfg.Currency)
	})

	t.Run("set -> overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("CART_COOKIE_SECURE", "true")
		t.Setenv("CURRENCY_LABEL", "KES")
		cfg := Load()
		assert.Equal(t, 9090, cfg.HTTPPort)
		assert.True(t, cfg.CookieSecure)
		assert.Equal(t, "KES", cfg.Currency)
	})

	t.Run("malformed numbers -> defaults", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		t.Setenv("CART_COOKIE_SECURE", "maybe")
		cfg := Load()
		assert.Equal(t, 8080, cfg.HTTPPort)
		assert.False(t, cfg.CookieSecure)
	})
}
