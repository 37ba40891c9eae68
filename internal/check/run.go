package check

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ppiankov/check-examples/internal/cache"
	"github.com/ppiankov/check-examples/internal/model"
	"github.com/ppiankov/check-examples/internal/spec"
)

// Run loads the spec named by cfg, checks every top-level JSON example and
// returns the tally. A missing spec file yields an empty tally. Errors are
// returned only for load failures; invalid examples are counted instead.
func Run(cfg model.Config, out io.Writer, logger zerolog.Logger) (model.Tally, error) {
	var tally model.Tally

	path := spec.Path(cfg.Spec.Dir, cfg.Spec.File)
	src, found, err := spec.Load(cfg.Spec.Dir, cfg.Spec.File, cfg.Spec.FrontMatter)
	if err != nil {
		return tally, err
	}
	if !found {
		fmt.Fprintf(out, "No spec file %s, nothing to do!\n", path)
		return tally, nil
	}

	if src.FrontMatterErr != nil {
		logger.Debug().Err(src.FrontMatterErr).Str("path", src.Path).Msg("leading --- block is not front matter, keeping it")
	}
	logger.Debug().Str("path", src.Path).Str("title", src.Title).Int("bytes", len(src.Body)).Msg("loaded spec")

	for _, name := range spec.UnknownExtensions(cfg.Markdown.Extensions) {
		logger.Warn().Str("extension", name).Msg("unknown markdown extension ignored")
	}

	doc := spec.NewParser(cfg.Markdown.Extensions).Parse(src)
	logger.Debug().Int("blocks", len(doc.Blocks)).Int("examples", len(doc.Examples(cfg.Markdown.Languages))).Msg("parsed spec")

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
	}
	checker := NewChecker(out, cfg.Output, c, cfg.Cache.TTL, logger)

	spec.Walk(doc, cfg.Markdown.Languages, func(section string, example model.Block) {
		tally.Add(checker.Check(section, example))
	})

	logger.Info().Int("checked", tally.Checked).Int("failed", tally.Failed).Msg("check complete")

	return tally, nil
}
