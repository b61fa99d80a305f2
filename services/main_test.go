package services

import (
	"os"
	"testing"

	"github.com/akinalp/devstage/pkg/i18n"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(i18n.Locales()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
