package i18n

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := Load(Locales()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Digite seu nome completo", NewLocalizer("pt").T("subscription.nameInvalid"))
	assert.Equal(t, "No referrals yet.", NewLocalizer("en").T("ranking.empty"))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "nope.missing", NewLocalizer("en").T("nope.missing"))
}

func TestUnsupportedLanguageFallsBack(t *testing.T) {
	loc := NewLocalizer("de")
	assert.Equal(t, DefaultLanguage, loc.Lang())
	assert.Equal(t, "Ranking de indicações", loc.T("ranking.title"))
}

func TestTWithParams(t *testing.T) {
	got := NewLocalizer("pt").TWithParams("email.welcomeHeading", map[string]string{"name": "Diego"})
	assert.Equal(t, "Olá, Diego!", got)
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "pt", DetectLanguage(""))
	assert.Equal(t, "en", DetectLanguage("en-GB,en;q=0.8"))
	assert.Equal(t, "tr", DetectLanguage("de-DE, tr;q=0.7"))
	assert.Equal(t, "pt", DetectLanguage("fr-FR"))
}

func TestFromContextDefault(t *testing.T) {
	assert.Equal(t, DefaultLanguage, FromContext(context.Background()).Lang())

	ctx := NewContext(context.Background(), NewLocalizer("tr"))
	assert.Equal(t, "tr", FromContext(ctx).Lang())
}

// Her dil dosyası varsayılan dildeki tüm anahtarları içermeli.
func TestLocalesHaveSameKeys(t *testing.T) {
	keys := func(lang string) map[string]string {
		raw, err := fs.ReadFile(Locales(), lang+".json")
		require.NoError(t, err)

		var tree map[string]any
		require.NoError(t, json.Unmarshal(raw, &tree))

		flat := make(map[string]string)
		flattenMap("", tree, flat)
		return flat
	}

	want := keys(DefaultLanguage)
	for _, lang := range SupportedLanguages {
		got := keys(lang)
		for key := range want {
			assert.Contains(t, got, key, "%s.json is missing %s", lang, key)
		}
	}
}
