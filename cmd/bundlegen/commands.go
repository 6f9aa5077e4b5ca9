package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"bundlegen/internal/domain"
	"bundlegen/internal/domain/entities"
	"bundlegen/internal/ports/output"
)

var exportCmd = &cli.Command{
	Name:      "export",
	Usage:     "Write the bundles of the given sets (all sets when none is given)",
	ArgsUsage: "[set...]",
	Action: func(cctx *cli.Context) error {
		return withApp(cctx, func(a *app) error {
			_, err := a.exports.Export(cctx.Context, cctx.Args().Slice()...)
			return err
		})
	},
}

var checkCmd = &cli.Command{
	Name:      "check",
	Usage:     "Validate key parity, placeholders and normalization without writing",
	ArgsUsage: "[set...]",
	Action: func(cctx *cli.Context) error {
		return withApp(cctx, func(a *app) error {
			report, err := a.exports.Check(cctx.Context, cctx.Args().Slice()...)
			if err != nil {
				return err
			}
			w := cctx.App.Writer
			for _, i := range report.Issues {
				fmt.Fprintln(w, a.translator.T(a.locale, "check.issue", map[string]any{
					"Severity": strings.ToUpper(i.Severity),
					"Code":     i.Code,
					"Set":      i.Set,
					"Target":   i.Target,
					"Locale":   i.Locale,
					"Key":      i.Key,
					"Detail":   i.Detail,
				}))
			}
			fmt.Fprintln(w, a.translator.T(a.locale, "check.result", map[string]any{
				"Errors":   report.Errors(),
				"Warnings": report.Warnings(),
			}))
			if report.Errors() > 0 {
				if hasParityIssue(report) {
					return fmt.Errorf("%w: %w", errCheckFailed, domain.ErrParityMismatch)
				}
				return errCheckFailed
			}
			return nil
		})
	},
}

func hasParityIssue(r entities.Report) bool {
	for _, i := range r.Issues {
		if i.Code == entities.IssueParityMismatch {
			return true
		}
	}
	return false
}

var listCmd = &cli.Command{
	Name:  "list",
	Usage: "List the sets, their targets and key counts",
	Action: func(cctx *cli.Context) error {
		return withApp(cctx, func(a *app) error {
			printSets(cctx.App.Writer, a.translator, a.locale, a.exports.Sets())
			return nil
		})
	},
}

// printSets writes one line per set and one per target. The key count is the
// one of the first declared locale; targets without locales have nothing to
// export and are left out.
func printSets(w io.Writer, t output.T, locale string, sets []entities.Set) {
	for _, s := range sets {
		fmt.Fprintln(w, t.T(locale, "list.set", map[string]any{
			"Set":     s.Name,
			"Summary": s.Description,
		}))
		for _, tg := range s.Targets {
			if len(tg.Locales) == 0 {
				continue
			}
			first, _ := tg.Merged(tg.Locales[0].Locale)
			fmt.Fprintln(w, t.T(locale, "list.target", map[string]any{
				"Stem":    tg.Stem,
				"Locales": strings.Join(tg.LocaleCodes(), ", "),
				"Count":   first.Len(),
			}))
		}
	}
}

var historyCmd = &cli.Command{
	Name:      "history",
	Usage:     "Show the files written by the latest export of a set (requires DATABASE_URL)",
	ArgsUsage: "<set>",
	Action: func(cctx *cli.Context) error {
		if cctx.NArg() != 1 {
			return cli.ShowSubcommandHelp(cctx)
		}
		set := cctx.Args().First()
		return withApp(cctx, func(a *app) error {
			outs, err := a.exports.History(cctx.Context, set)
			if err != nil {
				return err
			}
			w := cctx.App.Writer
			if len(outs) == 0 {
				fmt.Fprintln(w, a.translator.T(a.locale, "history.empty", map[string]any{"Set": set}))
				return nil
			}
			for _, o := range outs {
				fmt.Fprintln(w, a.translator.T(a.locale, "history.row", map[string]any{
					"Path":   o.Path,
					"Format": o.Format,
					"Keys":   o.Keys,
					"Digest": o.Digest,
				}))
			}
			return nil
		})
	},
}
