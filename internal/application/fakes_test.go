package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"bundlegen/internal/domain/entities"
)

type memorySink struct {
	files map[string][]byte
	order []string
	fail  map[string]error
}

func newMemorySink() *memorySink {
	return &memorySink{files: map[string][]byte{}, fail: map[string]error{}}
}

func (m *memorySink) Write(_ context.Context, path string, data []byte) error {
	if err := m.fail[path]; err != nil {
		return err
	}
	m.files[path] = append([]byte(nil), data...)
	m.order = append(m.order, path)
	return nil
}

type recordedOutput struct {
	set       string
	startedAt time.Time
	out       entities.Output
}

type memoryRuns struct {
	records []recordedOutput
	err     error
}

func (m *memoryRuns) Record(_ context.Context, set string, startedAt time.Time, out entities.Output) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, recordedOutput{set: set, startedAt: startedAt, out: out})
	return nil
}

func (m *memoryRuns) LatestBySet(_ context.Context, set string) ([]entities.Output, error) {
	var outs []entities.Output
	for _, r := range m.records {
		if r.set == set {
			outs = append(outs, r.out)
		}
	}
	return outs, nil
}

type recordingNotifier struct {
	summaries []entities.Summary
	err       error
}

func (r *recordingNotifier) Notify(_ context.Context, s entities.Summary) error {
	r.summaries = append(r.summaries, s)
	return r.err
}

// echoT renders "key k1=v1 k2=v2" with sorted template fields.
type echoT struct{}

func (echoT) T(locale, key string, data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := []string{key}
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, data[k]))
	}
	return strings.Join(parts, " ")
}

func (echoT) LanguageName(locale, target string) string { return locale + ":" + target }

var errDiskFull = errors.New("disk full")
