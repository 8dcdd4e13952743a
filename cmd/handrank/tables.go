package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/coder/quartz"
	"gopkg.in/yaml.v2"

	"github.com/lox/handrank/internal/evaluator"
	"github.com/lox/handrank/internal/fileutil"
)

type TablesCmd struct {
	Out     string `short:"o" help:"Write the report to this file instead of stdout" type:"path"`
	Format  string `help:"Report format" enum:"text,yaml" default:"text"`
	Entries bool   `help:"Include every rank shape and its strength (yaml only)"`
}

func (c *TablesCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	tables, err := evaluator.Build(context.Background(),
		evaluator.WithLogger(logger),
		evaluator.WithWorkers(cfg.Evaluator.Workers),
		evaluator.WithClock(quartz.NewReal()),
	)
	if err != nil {
		return fmt.Errorf("building tables: %w", err)
	}
	report := newTablesReport(tables, c.Entries)

	write := func(w io.Writer) error {
		return report.encode(w, c.Format)
	}
	if c.Out == "" {
		return write(os.Stdout)
	}
	if err := fileutil.WriteAtomic(c.Out, 0o644, write); err != nil {
		return fmt.Errorf("writing %s: %w", c.Out, err)
	}
	logger.Info("Wrote table report", "path", c.Out, "format", c.Format)
	return nil
}

type categoryReport struct {
	Category string `yaml:"category"`
	Shapes   int    `yaml:"shapes,omitempty"`
	Classes  int    `yaml:"classes"`
}

type shapeEntry struct {
	Shape    string `yaml:"shape"`
	Strength string `yaml:"strength"`
}

type tablesReport struct {
	Shapes        int              `yaml:"shapes"`
	FlushPatterns int              `yaml:"flush_patterns"`
	FlushClasses  int              `yaml:"flush_classes"`
	BuildTime     string           `yaml:"build_time"`
	Categories    []categoryReport `yaml:"categories"`
	Entries       []shapeEntry     `yaml:"entries,omitempty"`
}

func newTablesReport(t *evaluator.Tables, entries bool) tablesReport {
	stats := t.Stats()
	r := tablesReport{
		Shapes:        stats.Shapes,
		FlushPatterns: stats.FlushPatterns,
		FlushClasses:  stats.FlushClasses,
		BuildTime:     stats.Elapsed.String(),
	}
	for c := evaluator.StraightFlush; ; c-- {
		cr := categoryReport{Category: c.String()}
		switch c {
		case evaluator.Flush:
			cr.Classes = countFlushClasses(t.Flush(), false)
		case evaluator.StraightFlush:
			cr.Classes = countFlushClasses(t.Flush(), true)
		default:
			cr.Shapes = stats.ShapesByClass[c]
			cr.Classes = stats.ClassesByClass[c]
		}
		r.Categories = append(r.Categories, cr)
		if c == evaluator.HighCard {
			break
		}
	}
	if entries {
		nf := t.NonFlush()
		for _, s := range evaluator.EnumerateShapes() {
			r.Entries = append(r.Entries, shapeEntry{
				Shape:    s.String(),
				Strength: nf.Lookup(s).String(),
			})
		}
	}
	return r
}

// countFlushClasses counts distinct flush ranks among straight (or
// non-straight) eligible patterns.
func countFlushClasses(ft *evaluator.FlushTable, straights bool) int {
	seen := make(map[uint32]struct{})
	for p := 0; p < evaluator.NumPatterns; p++ {
		pattern := uint16(p)
		if !evaluator.IsFlushEligible(pattern) || (evaluator.StraightTop(pattern) >= 0) != straights {
			continue
		}
		seen[ft.Raw(pattern)] = struct{}{}
	}
	return len(seen)
}

func (r tablesReport) encode(w io.Writer, format string) error {
	if format != "yaml" {
		return r.writeText(w)
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (r tablesReport) writeText(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("rank shapes"), r.Shapes)
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("flush patterns"), r.FlushPatterns)
	fmt.Fprintf(w, "%s\t%d\n", headerStyle.Render("flush classes"), r.FlushClasses)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("build time"), r.BuildTime)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("category"), headerStyle.Render("shapes"), headerStyle.Render("classes"))
	for _, c := range r.Categories {
		shapes := "-"
		if c.Shapes > 0 {
			shapes = fmt.Sprint(c.Shapes)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", categoryStyle.Render(c.Category), shapes, c.Classes)
	}
	return w.Flush()
}
