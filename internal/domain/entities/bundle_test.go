package entities

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeLastWriteWins(t *testing.T) {
	a := Bundle{{Key: "a.title", Value: Text("X")}}
	b := Bundle{{Key: "a.title", Value: Text("Y")}, {Key: "a.desc", Value: Text("Z")}}

	got := Merge(a, b)
	want := Bundle{{Key: "a.title", Value: Text("Y")}, {Key: "a.desc", Value: Text("Z")}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeKeepsFirstPosition(t *testing.T) {
	a := Bundle{{Key: "one", Value: Text("1")}, {Key: "two", Value: Text("2")}}
	b := Bundle{{Key: "three", Value: Text("3")}, {Key: "one", Value: Text("uno")}}

	got := Merge(a, b)
	require.Equal(t, []string{"one", "two", "three"}, got.Keys())
	v, ok := got.Get("one")
	require.True(t, ok)
	require.Equal(t, Text("uno"), v)
}

func TestMergeIsShallow(t *testing.T) {
	a := Bundle{{Key: "toast", Value: Bundle{{Key: "saved", Value: Text("saved")}, {Key: "failed", Value: Text("failed")}}}}
	b := Bundle{{Key: "toast", Value: Bundle{{Key: "saved", Value: Text("done")}}}}

	got := Merge(a, b)
	v, _ := got.Get("toast")
	require.Equal(t, Bundle{{Key: "saved", Value: Text("done")}}, v)
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	a := Bundle{{Key: "k", Value: Text("a")}}
	b := Bundle{{Key: "k", Value: Text("b")}}
	_ = Merge(a, b)
	require.Equal(t, Text("a"), a[0].Value)
	require.Empty(t, Merge())
}

func TestKeyPaths(t *testing.T) {
	b := Bundle{
		{Key: "title", Value: Text("Terms")},
		{Key: "article1", Value: Bundle{
			{Key: "title", Value: Text("Scope")},
			{Key: "items", Value: List{"one", "two"}},
		}},
	}
	require.Equal(t, []string{
		"title",
		"article1",
		"article1/title",
		"article1/items",
		"article1/items[0]",
		"article1/items[1]",
	}, b.KeyPaths())
	require.Equal(t, 2, b.Len())
}

func TestLeaves(t *testing.T) {
	b := Bundle{
		{Key: "a", Value: Text("x")},
		{Key: "b", Value: Bundle{{Key: "c", Value: List{"y", "z"}}}},
	}
	got := map[string]string{}
	b.Leaves(func(path, s string) { got[path] = s })
	require.Equal(t, map[string]string{"a": "x", "b/c[0]": "y", "b/c[1]": "z"}, got)
}

func TestPlaceholders(t *testing.T) {
	require.Equal(t, []string{"{{count}}"}, Placeholders("{{count}}件のお気に入り"))
	require.Equal(t, []string{"{{title}}", "{name}"}, Placeholders("Learn {{title}} with {name}"))
	require.Empty(t, Placeholders("Guide & Tutorial"))
}

func TestTargetMerged(t *testing.T) {
	tg := Target{
		Stem: "pages",
		Locales: []LocaleSources{
			{Locale: "ja", Sources: []Bundle{{{Key: "a", Value: Text("あ")}}, {{Key: "b", Value: Text("い")}}}},
			{Locale: "en", Sources: []Bundle{{{Key: "a", Value: Text("A")}}, {{Key: "b", Value: Text("B")}}}},
		},
	}
	ja, ok := tg.Merged("ja")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, ja.Keys())
	_, ok = tg.Merged("fr")
	require.False(t, ok)
	require.Equal(t, []string{"ja", "en"}, tg.LocaleCodes())
}

func TestReportCounts(t *testing.T) {
	r := Report{Issues: []Issue{
		{Severity: SeverityError, Code: IssueParityMismatch},
		{Severity: SeverityWarning, Code: IssueNotNFC},
		{Severity: SeverityWarning, Code: IssueCrossSetConflict},
	}}
	require.Equal(t, 1, r.Errors())
	require.Equal(t, 2, r.Warnings())
}
