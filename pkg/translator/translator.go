package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator builds the global bundle from every *.toml file of the folder.
// A missing folder leaves an empty english bundle so lookups fall back to the message id.
func InitTranslator(cfg Config) error {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return fmt.Errorf("read translation folder: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		if !supported(cfg.SupportedLanguages, strings.TrimSuffix(entry.Name(), ".toml")) {
			zap.L().Debug("skipping unsupported translation", zap.String("file", entry.Name()))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, entry.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}

	return nil
}

// Localize resolves msgID for lang, falling back to english and then to the id itself.
func Localize(lang, msgID string) string {
	if Translator == nil {
		return msgID
	}

	localizer := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgID), zap.Error(err))
		return msgID
	}
	return msg
}

func supported(languages []string, lang string) bool {
	if len(languages) == 0 {
		return true
	}
	for _, l := range languages {
		if l == lang {
			return true
		}
	}
	return false
}
