package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
)

func TestSets(t *testing.T) {
	var names []string
	stems := map[string]string{}
	for _, s := range Sets() {
		names = append(names, s.Name)
		require.NotEmpty(t, s.Description, s.Name)
		for _, tg := range s.Targets {
			prev, dup := stems[tg.Stem]
			require.False(t, dup, "stem %s used by %s and %s", tg.Stem, prev, s.Name)
			stems[tg.Stem] = s.Name
			require.Equal(t, []string{ja, en}, tg.LocaleCodes(), tg.Stem)
		}
	}
	require.Equal(t, []string{
		"all_pages",
		"api_settings_extra",
		"components",
		"final_pages",
		"guide",
		"home_remaining",
		"mytemplates_complete",
		"remaining_pages",
		"terms_complete",
	}, names)
	require.Len(t, stems, 11)
}

func TestKeyParity(t *testing.T) {
	for _, s := range Sets() {
		for _, tg := range s.Targets {
			jaBundle, _ := tg.Merged(ja)
			enBundle, _ := tg.Merged(en)
			require.ElementsMatch(t, jaBundle.KeyPaths(), enBundle.KeyPaths(), tg.Stem)
		}
	}
}

func TestNoDuplicateKeys(t *testing.T) {
	var check func(stem string, b entities.Bundle)
	check = func(stem string, b entities.Bundle) {
		seen := map[string]bool{}
		for _, e := range b {
			require.False(t, seen[e.Key], "%s: duplicate key %s", stem, e.Key)
			seen[e.Key] = true
			require.NotNil(t, e.Value, "%s: %s", stem, e.Key)
			if nested, ok := e.Value.(entities.Bundle); ok {
				check(stem, nested)
			}
		}
	}
	for _, s := range Sets() {
		for _, tg := range s.Targets {
			for _, loc := range tg.Locales {
				for _, src := range loc.Sources {
					check(tg.Stem, src)
				}
			}
		}
	}
}

func TestKeyCounts(t *testing.T) {
	counts := map[string]int{}
	for _, s := range Sets() {
		for _, tg := range s.Targets {
			b, _ := tg.Merged(ja)
			counts[tg.Stem] = b.Len()
		}
	}
	require.Equal(t, 52, counts["pages"])
	require.Equal(t, 122, counts["guide"])
	require.Equal(t, 28, counts["components"])
	require.Equal(t, 49, counts["remaining_pages"])
}

func TestLookup(t *testing.T) {
	s, err := Lookup("final_pages")
	require.NoError(t, err)
	require.Len(t, s.Targets, 3)

	_, err = Lookup("nope")
	require.ErrorIs(t, err, domain.ErrSetNotFound)
}
