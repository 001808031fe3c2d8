package i18n

import (
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestSetLang(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })

	SetLang("pt-BR")
	assert.Equal(t, "pt", GetLang())
	assert.Equal(t, "Iniciar", T("Start"))

	SetLang("de_DE")
	assert.Equal(t, "en", GetLang())
	assert.Equal(t, "Start", T("Start"))
}

func TestUnknownKeyIsReturnedAsIs(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })
	SetLang("ru")
	assert.Equal(t, "Пауза", T("Pause"))
	assert.Equal(t, "no such label", T("no such label"))
}

func TestDetectHonoursOverride(t *testing.T) {
	t.Cleanup(func() { SetLang("en") })
	t.Setenv(LangEnv, "es")
	logger, _ := logtest.NewNullLogger()

	Detect(logger)
	assert.Equal(t, "es", GetLang())
	assert.Equal(t, "Reiniciar", T("Reset"))
}

func TestEveryLabelIsTranslated(t *testing.T) {
	for key, byLang := range translations {
		for _, l := range []string{"pt", "es", "ru"} {
			assert.NotEmpty(t, byLang[l], "%q missing %s", key, l)
		}
	}
}
