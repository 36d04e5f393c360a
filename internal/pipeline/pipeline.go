// Package pipeline runs one conversion: it resolves the namespaces, reads
// the input tables and templates, generates every statement collection and
// only then writes the artifacts, so an input or naming error leaves the
// output untouched.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/geoknoesis/smt3-rdf/internal/config"
	"github.com/geoknoesis/smt3-rdf/internal/records"
	"github.com/geoknoesis/smt3-rdf/internal/sink"
	"github.com/geoknoesis/smt3-rdf/internal/templates"
	"github.com/geoknoesis/smt3-rdf/rdf"
	"github.com/geoknoesis/smt3-rdf/transform"
)

// Artifact base names.
const (
	RaceArtifact       = "race"
	DemonArtifact      = "demon"
	BasicRulesArtifact = "basic_rules"
	DatasetArtifact    = "dataset"
	VocabularyArtifact = "vocabulary.ttl"
	GameArtifact       = "game.ttl"
)

// Artifact describes one written file.
type Artifact struct {
	Name        string
	Path        string
	Format      rdf.Format
	ContentType string
	Statements  int
}

// Report summarizes a run.
type Report struct {
	Format       rdf.Format
	Demons       int
	Races        int
	FusionRules  int
	SkippedRules int
	Special      map[string]int
	Artifacts    []Artifact
}

// Pipeline converts the input tables of one directory.
type Pipeline struct {
	cfg    config.Config
	logger *zap.Logger
}

// New returns a pipeline for cfg. A nil logger discards logs.
func New(cfg config.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// namespaces holds the resolved namespaces of a run.
type namespaces struct {
	demon      rdf.Namespace
	race       rdf.Namespace
	vocabulary rdf.Namespace
	game       rdf.Namespace
	basicRules rdf.Namespace
}

type dataset struct {
	name  string
	quads []rdf.Quad
}

type generated struct {
	races  []rdf.Quad
	demons []rdf.Quad
	rules  []rdf.Quad
}

// document is an instantiated template ready to be written.
type document struct {
	name    string
	content string
}

// Run executes the conversion. The context is checked between artifacts.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("config: %w", err)
	}
	format, err := p.cfg.OutputFormat()
	if err != nil {
		return Report{}, err
	}
	report := Report{Format: format}

	ns, err := p.resolveNamespaces()
	if err != nil {
		return report, err
	}
	vocab, err := transform.NewVocabulary(ns.vocabulary)
	if err != nil {
		return report, err
	}
	p.logger.Debug("namespaces resolved",
		zap.String("demon", ns.demon.Base()),
		zap.String("race", ns.race.Base()),
		zap.String("vocabulary", ns.vocabulary.Base()),
		zap.String("game", ns.game.Base()),
		zap.String("basic_rules", ns.basicRules.Base()),
	)

	demons, err := records.LoadDemons(p.inputPath(config.DemonFile))
	if err != nil {
		return report, err
	}
	rules, err := records.LoadFusionRules(p.inputPath(config.FusionRuleFile))
	if err != nil {
		return report, err
	}
	special, err := records.LoadSpecialFusionSets(p.inputPath(config.SpecialFusionFile))
	if err != nil {
		return report, err
	}
	report.Special = special.Counts()
	p.logger.Info("input loaded",
		zap.Int("demons", len(demons)),
		zap.Int("fusion_rules", len(rules)),
		zap.Any("special_fusion", report.Special),
	)

	docs, err := p.renderTemplates(ns)
	if err != nil {
		return report, err
	}

	var gameOpts, rulesOpts []transform.Option
	if p.cfg.NamedGraphs {
		gameOpts = append(gameOpts, transform.WithGraph(ns.game.IRI()))
		rulesOpts = append(rulesOpts, transform.WithGraph(ns.basicRules.IRI()))
	}
	raceTransformer := transform.NewRaceTransformer(ns.race, vocab, gameOpts...)
	demonTransformer := transform.NewDemonTransformer(ns.demon, ns.race, vocab, gameOpts...)
	ruleTransformer := transform.NewFusionRuleTransformer(ns.race, vocab, rulesOpts...)

	for _, d := range demons {
		if err := demonTransformer.Add(d); err != nil {
			return report, err
		}
		if err := raceTransformer.Add(d.Race); err != nil {
			return report, err
		}
		if categories := special.Categories(d.Name); len(categories) > 0 {
			p.logger.Debug("special fusion demon", zap.String("demon", d.Name), zap.Strings("categories", categories))
		}
	}
	for _, r := range rules {
		if r.IsVariable() {
			report.SkippedRules++
		}
		if err := ruleTransformer.Add(r); err != nil {
			return report, err
		}
	}
	report.Demons = demonTransformer.Len()
	report.Races = raceTransformer.Len()
	report.FusionRules = ruleTransformer.Len()

	gen, err := generate(raceTransformer, demonTransformer, ruleTransformer)
	if err != nil {
		return report, err
	}
	p.logger.Info("statements generated",
		zap.Int("race", len(gen.races)),
		zap.Int("demon", len(gen.demons)),
		zap.Int("basic_rules", len(gen.rules)),
		zap.Int("skipped_rules", report.SkippedRules),
	)

	if err := p.write(ctx, &report, ns, gen, docs); err != nil {
		return report, err
	}
	return report, nil
}

func (p *Pipeline) resolveNamespaces() (namespaces, error) {
	var ns namespaces
	targets := []struct {
		name   string
		base   string
		target *rdf.Namespace
	}{
		{"demon", p.cfg.DemonNamespace, &ns.demon},
		{"race", p.cfg.RaceNamespace, &ns.race},
		{"vocabulary", p.cfg.VocabularyNamespace, &ns.vocabulary},
		{"game", p.cfg.GameNamespace, &ns.game},
		{"basic rules", p.cfg.BasicRulesNamespace, &ns.basicRules},
	}
	for _, t := range targets {
		resolved, err := rdf.NewNamespace(t.base)
		if err != nil {
			return namespaces{}, fmt.Errorf("%s namespace: %w", t.name, err)
		}
		*t.target = resolved
	}
	return ns, nil
}

func (p *Pipeline) renderTemplates(ns namespaces) ([]document, error) {
	sources := []struct {
		name      string
		path      string
		template  string
		namespace string
	}{
		{VocabularyArtifact, p.cfg.VocabularyTemplate, templates.Vocabulary, ns.vocabulary.Base()},
		{GameArtifact, p.cfg.GameTemplate, templates.Game, ns.game.Base()},
	}
	docs := make([]document, 0, len(sources))
	for _, src := range sources {
		content, err := templates.Render(src.path, src.template, src.namespace)
		if err != nil {
			return nil, err
		}
		docs = append(docs, document{name: src.name, content: content})
	}
	return docs, nil
}

func generate(races, demons, rules transform.Transformer) (generated, error) {
	var gen generated
	var err error
	if gen.races, err = races.Statements(); err != nil {
		return generated{}, fmt.Errorf("races: %w", err)
	}
	if gen.demons, err = demons.Statements(); err != nil {
		return generated{}, fmt.Errorf("demons: %w", err)
	}
	if gen.rules, err = rules.Statements(); err != nil {
		return generated{}, fmt.Errorf("basic rules: %w", err)
	}
	return gen, nil
}

func (p *Pipeline) write(ctx context.Context, report *Report, ns namespaces, gen generated, docs []document) error {
	out := p.cfg.OutPath
	if err := sink.EnsureDir(out); err != nil {
		return err
	}
	format := report.Format
	opts := []rdf.Option{rdf.OptPretty(), rdf.OptPrefixes(prefixes(ns))}

	datasets := []dataset{
		{RaceArtifact, gen.races},
		{DemonArtifact, gen.demons},
		{BasicRulesArtifact, gen.rules},
	}
	if p.cfg.NamedGraphs {
		all := make([]rdf.Quad, 0, len(gen.races)+len(gen.demons)+len(gen.rules))
		all = append(all, gen.races...)
		all = append(all, gen.demons...)
		all = append(all, gen.rules...)
		datasets = append(datasets, dataset{DatasetArtifact, all})
	}
	for _, d := range datasets {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(out, d.name+format.Extension())
		if err := sink.WriteQuads(ctx, path, format, d.quads, opts...); err != nil {
			return err
		}
		p.record(report, Artifact{Name: d.name, Path: path, Format: format, ContentType: format.ContentType(), Statements: len(d.quads)})
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(out, doc.name)
		if err := sink.WriteString(path, doc.content); err != nil {
			return err
		}
		docFormat, _ := rdf.FormatFromPath(doc.name)
		p.record(report, Artifact{Name: doc.name, Path: path, Format: docFormat, ContentType: docFormat.ContentType()})
	}
	return nil
}

func (p *Pipeline) record(report *Report, a Artifact) {
	report.Artifacts = append(report.Artifacts, a)
	p.logger.Info("artifact written",
		zap.String("artifact", a.Name),
		zap.String("path", a.Path),
		zap.String("format", string(a.Format)),
		zap.String("content_type", a.ContentType),
		zap.Int("statements", a.Statements),
	)
}

func (p *Pipeline) inputPath(name string) string {
	return filepath.Join(p.cfg.InputDir, name)
}

// prefixes declares the run's namespaces. When two settings share one
// namespace, the first label wins.
func prefixes(ns namespaces) map[string]string {
	out := rdf.StandardPrefixes()
	seen := make(map[string]bool, len(out))
	for _, base := range out {
		seen[base] = true
	}
	for _, p := range []struct {
		label string
		ns    rdf.Namespace
	}{
		{"vocab", ns.vocabulary},
		{"demon", ns.demon},
		{"race", ns.race},
	} {
		if seen[p.ns.Base()] {
			continue
		}
		seen[p.ns.Base()] = true
		out[p.label] = p.ns.Base()
	}
	return out
}
