package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
	"bundlegen/internal/ports/input"
	"bundlegen/internal/ports/output"
)

var _ input.ExportUseCase = (*ExportService)(nil)

// ExportSettings holds the non-port settings of an ExportService.
type ExportSettings struct {
	// Dir is the directory receiving <stem>_<locale>.<ext> files.
	Dir string
	// Locale is the language of console and notification messages.
	Locale string
	// Console receives the human-readable summary.
	Console io.Writer
}

type ExportService struct {
	sets       []entities.Set
	encoders   []output.Encoder
	sink       output.Sink
	runs       output.RunRepository
	notifier   output.Notifier
	translator output.T
	settings   ExportSettings
	now        func() time.Time
}

func NewExportService(
	sets []entities.Set,
	encoders []output.Encoder,
	sink output.Sink,
	runs output.RunRepository,
	notifier output.Notifier,
	translator output.T,
	settings ExportSettings,
) *ExportService {
	if settings.Console == nil {
		settings.Console = io.Discard
	}
	return &ExportService{
		sets:       sets,
		encoders:   encoders,
		sink:       sink,
		runs:       runs,
		notifier:   notifier,
		translator: translator,
		settings:   settings,
		now:        time.Now,
	}
}

func (s *ExportService) Sets() []entities.Set {
	return s.sets
}

// Export writes every target of the named sets, one file per locale and
// encoder. The first failing write stops the run.
func (s *ExportService) Export(ctx context.Context, names ...string) ([]entities.Summary, error) {
	sets, err := s.selectSets(names)
	if err != nil {
		return nil, err
	}

	summaries := make([]entities.Summary, 0, len(sets))
	for _, set := range sets {
		summary, err := s.exportSet(ctx, set)
		if err != nil {
			return summaries, fmt.Errorf("export %s: %w", set.Name, err)
		}
		summaries = append(summaries, summary)
		s.printSummary(set, summary)

		if err := s.notifier.Notify(ctx, summary); err != nil {
			log.Printf("⚠️ notify %s: %v", set.Name, err)
		}
	}

	s.println("export.done", map[string]any{"Sets": len(summaries)})
	return summaries, nil
}

func (s *ExportService) exportSet(ctx context.Context, set entities.Set) (entities.Summary, error) {
	summary := entities.Summary{Set: set.Name, StartedAt: s.now()}
	for _, target := range set.Targets {
		for _, loc := range target.Locales {
			merged := entities.Merge(loc.Sources...)
			for _, enc := range s.encoders {
				out, err := s.write(ctx, target.Stem, loc.Locale, merged, enc)
				if err != nil {
					return summary, err
				}
				if err := s.runs.Record(ctx, set.Name, summary.StartedAt, out); err != nil {
					return summary, err
				}
				summary.Outputs = append(summary.Outputs, out)
			}
		}
	}
	return summary, nil
}

func (s *ExportService) write(ctx context.Context, stem, locale string, b entities.Bundle, enc output.Encoder) (entities.Output, error) {
	data, err := enc.Encode(b)
	if err != nil {
		return entities.Output{}, fmt.Errorf("encode %s_%s as %s: %w", stem, locale, enc.Format(), err)
	}
	path := filepath.Join(s.settings.Dir, stem+"_"+locale+enc.Ext())
	if err := s.sink.Write(ctx, path, data); err != nil {
		return entities.Output{}, err
	}
	sum := sha256.Sum256(data)
	return entities.Output{
		Target: stem,
		Locale: locale,
		Format: enc.Format(),
		Path:   path,
		Keys:   b.Len(),
		Digest: hex.EncodeToString(sum[:]),
	}, nil
}

// printSummary reports the destination paths and the top-level key count of
// every locale, target by target.
func (s *ExportService) printSummary(set entities.Set, summary entities.Summary) {
	s.println("export.header", map[string]any{"Set": set.Name, "Summary": set.Description})

	var (
		current string
		paths   []string
		counts  []entities.Output
	)
	flush := func() {
		if current == "" {
			return
		}
		s.println("export.saved", map[string]any{"Paths": strings.Join(paths, ", ")})
		for _, out := range counts {
			s.println("export.key_count", map[string]any{
				"Language": s.translator.LanguageName(s.settings.Locale, out.Locale),
				"Count":    out.Keys,
			})
		}
	}
	for _, out := range summary.Outputs {
		if out.Target != current {
			flush()
			current, paths, counts = out.Target, nil, nil
		}
		paths = append(paths, out.Path)
		if len(counts) == 0 || counts[len(counts)-1].Locale != out.Locale {
			counts = append(counts, out)
		}
	}
	flush()
}

// History returns the outputs recorded by the latest export of set.
func (s *ExportService) History(ctx context.Context, set string) ([]entities.Output, error) {
	if _, err := s.selectSets([]string{set}); err != nil {
		return nil, err
	}
	return s.runs.LatestBySet(ctx, set)
}

func (s *ExportService) selectSets(names []string) ([]entities.Set, error) {
	if len(names) == 0 {
		return s.sets, nil
	}
	selected := make([]entities.Set, 0, len(names))
	for _, name := range names {
		found := false
		for _, set := range s.sets {
			if set.Name == name {
				selected = append(selected, set)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("set %q: %w", name, domain.ErrSetNotFound)
		}
	}
	return selected, nil
}

func (s *ExportService) println(key string, data map[string]any) {
	fmt.Fprintln(s.settings.Console, s.translator.T(s.settings.Locale, key, data))
}
