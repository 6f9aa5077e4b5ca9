package application

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"bundlegen/internal/domain/entities"
)

// origin locates the first declaration of a namespaced key across targets.
type origin struct {
	set    string
	target string
	value  string
}

// Check validates the named sets: key and placeholder parity between the
// locales of every target, NFC normalization of every string, and namespaced
// keys declared with different values by several targets.
func (s *ExportService) Check(ctx context.Context, names ...string) (entities.Report, error) {
	sets, err := s.selectSets(names)
	if err != nil {
		return entities.Report{}, err
	}

	var report entities.Report
	seen := map[string]origin{}
	for _, set := range sets {
		for _, target := range set.Targets {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			report.Issues = append(report.Issues, checkTarget(set.Name, target, seen)...)
		}
	}
	return report, nil
}

func checkTarget(set string, target entities.Target, seen map[string]origin) []entities.Issue {
	var issues []entities.Issue
	issue := func(severity, code, locale, key, detail string) {
		issues = append(issues, entities.Issue{
			Severity: severity,
			Code:     code,
			Set:      set,
			Target:   target.Stem,
			Locale:   locale,
			Key:      key,
			Detail:   detail,
		})
	}

	merged := make([]entities.Bundle, len(target.Locales))
	leaves := make([]map[string]string, len(target.Locales))
	for i, loc := range target.Locales {
		merged[i] = entities.Merge(loc.Sources...)
		leaves[i] = map[string]string{}
		merged[i].Leaves(func(path, v string) {
			leaves[i][path] = v
			if !norm.NFC.IsNormalString(v) {
				issue(entities.SeverityWarning, entities.IssueNotNFC, loc.Locale, path, "value is not NFC normalized")
			}
		})
	}
	if len(merged) == 0 {
		return issues
	}

	base := target.Locales[0].Locale
	basePaths := merged[0].KeyPaths()
	for i := 1; i < len(merged); i++ {
		locale := target.Locales[i].Locale
		paths := merged[i].KeyPaths()
		for _, p := range difference(basePaths, paths) {
			issue(entities.SeverityError, entities.IssueParityMismatch, locale, p, fmt.Sprintf("missing, declared in %s", base))
		}
		for _, p := range difference(paths, basePaths) {
			issue(entities.SeverityError, entities.IssueParityMismatch, base, p, fmt.Sprintf("missing, declared in %s", locale))
		}

		for _, p := range basePaths {
			want, ok := leaves[0][p]
			if !ok {
				continue
			}
			got, ok := leaves[i][p]
			if !ok {
				continue
			}
			a, b := sortedPlaceholders(want), sortedPlaceholders(got)
			if !slices.Equal(a, b) {
				issue(entities.SeverityError, entities.IssuePlaceholderMismatch, locale, p,
					fmt.Sprintf("%s has %v, %s has %v", base, a, locale, b))
			}
		}
	}

	for i, loc := range target.Locales {
		for _, e := range merged[i] {
			text, ok := e.Value.(entities.Text)
			if !ok || !strings.Contains(e.Key, ".") {
				continue
			}
			id := loc.Locale + "\x00" + e.Key
			prev, ok := seen[id]
			if !ok {
				seen[id] = origin{set: set, target: target.Stem, value: string(text)}
				continue
			}
			if prev.target != target.Stem && prev.value != string(text) {
				issue(entities.SeverityWarning, entities.IssueCrossSetConflict, loc.Locale, e.Key,
					fmt.Sprintf("%s/%s declares %q", prev.set, prev.target, prev.value))
			}
		}
	}
	return issues
}

// difference returns the elements of a missing from b, in the order of a.
func difference(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}
	var out []string
	for _, s := range a {
		if !in[s] {
			out = append(out, s)
		}
	}
	return out
}

func sortedPlaceholders(s string) []string {
	p := entities.Placeholders(s)
	slices.Sort(p)
	return p
}
