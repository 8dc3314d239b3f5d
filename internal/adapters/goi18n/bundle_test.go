package goi18n

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"subloc/internal/domain/entities"
)

func TestExportLocalizesThroughBundle(t *testing.T) {
	catalogs := []*entities.Catalog{
		entities.NewCatalog("en", map[string]string{"subtitle-owl": "Owl hooting"}),
		entities.NewCatalog("cs", map[string]string{"subtitle-owl": "Houkání sovy"}),
	}

	bundle, err := Export("en", catalogs)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	localizer := i18n.NewLocalizer(bundle, "cs")
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "subtitle-owl"})
	if err != nil {
		t.Fatalf("localize: %v", err)
	}
	if msg != "Houkání sovy" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestExportFallsBackToDefaultLanguage(t *testing.T) {
	catalogs := []*entities.Catalog{
		entities.NewCatalog("en", map[string]string{"subtitle-owl": "Owl hooting"}),
		entities.NewCatalog("cs", map[string]string{}),
	}

	bundle, err := Export("en", catalogs)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	localizer := i18n.NewLocalizer(bundle, "cs")
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "subtitle-owl"})
	if err != nil {
		t.Fatalf("localize: %v", err)
	}
	if msg != "Owl hooting" {
		t.Fatalf("msg = %q, want default-language text", msg)
	}
}

func TestExportRejectsUnparseableLocale(t *testing.T) {
	catalogs := []*entities.Catalog{
		entities.NewCatalog("!!not-a-tag!!", map[string]string{"subtitle-owl": "x"}),
	}
	if _, err := Export("en", catalogs); err == nil {
		t.Fatal("expected error for unparseable locale tag")
	}
}
