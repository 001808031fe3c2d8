// Package i18n translates the handful of UI labels. The language is picked
// once at startup from POMODORO_LANG or the system locale.
package i18n

import (
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
)

// LangEnv overrides the detected language.
const LangEnv = "POMODORO_LANG"

var lang = "en"

var translations = map[string]map[string]string{
	"Pomodoro Timer": {
		"pt": "Temporizador Pomodoro",
		"es": "Temporizador Pomodoro",
		"ru": "Таймер Помодоро",
	},
	"Short Break": {
		"pt": "Pausa Curta",
		"es": "Descanso Corto",
		"ru": "Короткий перерыв",
	},
	"Custom Timer": {
		"pt": "Personalizado",
		"es": "Personalizado",
		"ru": "Свой таймер",
	},
	"Minutes": {
		"pt": "Minutos",
		"es": "Minutos",
		"ru": "Минуты",
	},
	"Seconds": {
		"pt": "Segundos",
		"es": "Segundos",
		"ru": "Секунды",
	},
	"Min": {
		"pt": "Min",
		"es": "Min",
		"ru": "Мин",
	},
	"Sec": {
		"pt": "Seg",
		"es": "Seg",
		"ru": "Сек",
	},
	"Set Timer": {
		"pt": "Definir",
		"es": "Fijar",
		"ru": "Установить",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Show": {
		"pt": "Mostrar",
		"es": "Mostrar",
		"ru": "Показать",
	},
	"Time's up!": {
		"pt": "Tempo esgotado!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
}

// Detect picks the UI language: POMODORO_LANG wins, otherwise the first
// system locale, otherwise English.
func Detect(log logrus.FieldLogger) {
	if forced := strings.TrimSpace(os.Getenv(LangEnv)); forced != "" {
		log.WithField("lang", forced).Infof("%s is set", LangEnv)
		SetLang(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		log.WithError(err).Info("no user locale detected, defaulting to english")
		SetLang("en")
		return
	}

	log.WithField("locale", userLocales[0]).Debug("detected user locale")
	SetLang(userLocales[0])
	log.WithField("lang", lang).Info("language set")
}

// SetLang selects the language for a locale such as "pt-BR" or "ru".
// Unsupported languages fall back to English.
func SetLang(loc string) {
	loc = strings.ToLower(loc)
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(loc, l) {
			lang = l
			return
		}
	}
	lang = "en"
}

// T returns the translation of key, or key itself.
func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// GetLang returns the active language code.
func GetLang() string {
	return lang
}
