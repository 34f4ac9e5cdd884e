package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMatchLanguage(t *testing.T) {
	tests := map[string]string{
		"":                        "en",
		"fr":                      "fr",
		"fr-CA,fr;q=0.9,en;q=0.8": "fr",
		"en-US,en;q=0.9":          "en",
		"de":                      "en",
		"%%%":                     "en",
	}
	for header, want := range tests {
		assert.Equal(t, want, matchLanguage(header), "header %q", header)
	}
}

func TestLanguageMiddleware_SetsLang(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", LanguageMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, GetLang(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "fr", rec.Body.String())
}
