// Package catalog holds the literal UI strings of the résumé optimiser front
// end, grouped in the sets exported by bundlegen.
package catalog

import (
	"fmt"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
)

const (
	ja = "ja"
	en = "en"
)

func text(key, value string) entities.Entry {
	return entities.Entry{Key: key, Value: entities.Text(value)}
}

func group(key string, b entities.Bundle) entities.Entry {
	return entities.Entry{Key: key, Value: b}
}

func list(key string, items ...string) entities.Entry {
	return entities.Entry{Key: key, Value: entities.List(items)}
}

// pair builds a target whose ja and en bundles are merged from the given
// sources, in order.
func pair(stem string, jaSources, enSources []entities.Bundle) entities.Target {
	return entities.Target{
		Stem: stem,
		Locales: []entities.LocaleSources{
			{Locale: ja, Sources: jaSources},
			{Locale: en, Sources: enSources},
		},
	}
}

// Sets returns every exportable set in a stable order.
func Sets() []entities.Set {
	return []entities.Set{
		{
			Name:        "all_pages",
			Description: "Favorites and API settings pages",
			Targets: []entities.Target{
				pair("pages",
					[]entities.Bundle{allPagesFavoritesJA, allPagesApiSettingsJA},
					[]entities.Bundle{allPagesFavoritesEN, allPagesApiSettingsEN}),
			},
		},
		{
			Name:        "api_settings_extra",
			Description: "Additional API settings strings",
			Targets: []entities.Target{
				pair("api_settings_extra",
					[]entities.Bundle{apiSettingsExtraJA},
					[]entities.Bundle{apiSettingsExtraEN}),
			},
		},
		{
			Name:        "components",
			Description: "Shared components (announcement dialog)",
			Targets: []entities.Target{
				pair("components",
					[]entities.Bundle{componentsAnnouncementJA},
					[]entities.Bundle{componentsAnnouncementEN}),
			},
		},
		{
			Name:        "final_pages",
			Description: "Privacy policy, terms of service and my templates pages",
			Targets: []entities.Target{
				pair("privacy",
					[]entities.Bundle{finalPagesPrivacyJA},
					[]entities.Bundle{finalPagesPrivacyEN}),
				pair("terms",
					[]entities.Bundle{finalPagesTermsJA},
					[]entities.Bundle{finalPagesTermsEN}),
				pair("mytemplates",
					[]entities.Bundle{finalPagesMytemplatesJA},
					[]entities.Bundle{finalPagesMytemplatesEN}),
			},
		},
		{
			Name:        "guide",
			Description: "Guide and tutorial page",
			Targets: []entities.Target{
				pair("guide",
					[]entities.Bundle{guideJA},
					[]entities.Bundle{guideEN}),
			},
		},
		{
			Name:        "home_remaining",
			Description: "Remaining home page strings",
			Targets: []entities.Target{
				pair("home_remaining",
					[]entities.Bundle{homeRemainingJA},
					[]entities.Bundle{homeRemainingEN}),
			},
		},
		{
			Name:        "mytemplates_complete",
			Description: "Complete my templates page",
			Targets: []entities.Target{
				pair("mytemplates_complete",
					[]entities.Bundle{mytemplatesCompleteMytemplatesJA},
					[]entities.Bundle{mytemplatesCompleteMytemplatesEN}),
			},
		},
		{
			Name:        "remaining_pages",
			Description: "Favorites, privacy, terms and my templates page headers",
			Targets: []entities.Target{
				pair("remaining_pages",
					[]entities.Bundle{remainingPagesFavoritesJA, remainingPagesPrivacyJA, remainingPagesTermsJA, remainingPagesMyTemplatesJA},
					[]entities.Bundle{remainingPagesFavoritesEN, remainingPagesPrivacyEN, remainingPagesTermsEN, remainingPagesMyTemplatesEN}),
			},
		},
		{
			Name:        "terms_complete",
			Description: "Complete terms of service",
			Targets: []entities.Target{
				pair("terms_complete",
					[]entities.Bundle{termsCompleteTermsJA},
					[]entities.Bundle{termsCompleteTermsEN}),
			},
		},
	}
}

// Lookup returns the set called name.
func Lookup(name string) (entities.Set, error) {
	for _, s := range Sets() {
		if s.Name == name {
			return s, nil
		}
	}
	return entities.Set{}, fmt.Errorf("lookup %q: %w", name, domain.ErrSetNotFound)
}
