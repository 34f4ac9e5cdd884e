package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/axlwolf/task-manager/pkg/translator"
)

const langKey = "lang"

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// LanguageMiddleware stores the best supported language of the Accept-Language header.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, _ := languageMatcher.Match(tags...)
	if index == 1 {
		return translator.LanguageFr
	}
	return translator.LanguageEn
}
