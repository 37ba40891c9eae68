package check

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ppiankov/check-examples/internal/cache"
	"github.com/ppiankov/check-examples/internal/model"
)

// Checker validates examples one at a time and writes one status line per
// example. Verbosity only adds diagnostic lines.
type Checker struct {
	out   io.Writer
	opts  model.OutputConfig
	cache cache.Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewChecker creates a checker writing to out. A nil cache disables memoization.
func NewChecker(out io.Writer, opts model.OutputConfig, c cache.Cache, ttl time.Duration, logger zerolog.Logger) *Checker {
	if c == nil {
		c = cache.Nop{}
	}
	return &Checker{
		out:   out,
		opts:  opts,
		cache: c,
		ttl:   ttl,
		log:   logger,
	}
}

type verdict struct {
	OK  bool        `json:"ok"`
	Err *ParseError `json:"err,omitempty"`
}

// Check normalizes and parses one example and reports the verdict.
func (c *Checker) Check(section string, example model.Block) model.Result {
	normalized := Normalize(example.Text)
	result := model.Result{
		Section:    section,
		Line:       example.Line,
		Normalized: normalized,
	}

	result.Cached, result.Err = c.parse(normalized)
	c.report(result)

	return result
}

func (c *Checker) parse(normalized string) (cached bool, err error) {
	key := cache.CacheKey(normalized)
	if data, found := c.cache.Get(key); found {
		var v verdict
		if err := json.Unmarshal(data, &v); err == nil {
			if v.OK {
				return true, nil
			}
			if v.Err != nil {
				return true, v.Err
			}
		}
		_ = c.cache.Delete(key)
	}

	err = Parse(normalized)

	v := verdict{OK: err == nil}
	if pe, ok := err.(*ParseError); ok {
		v.Err = pe
	}
	if data, mErr := json.Marshal(v); mErr == nil {
		if sErr := c.cache.Set(key, data, c.ttl); sErr != nil {
			c.log.Warn().Err(sErr).Msg("cache verdict")
		}
	}

	return false, err
}

func (c *Checker) report(r model.Result) {
	if r.Passed() {
		fmt.Fprintf(c.out, "Example in section '%s' -- OK\n", r.Section)
		c.log.Debug().Str("section", r.Section).Int("line", r.Line).Bool("cached", r.Cached).Msg("example ok")
		return
	}

	fmt.Fprintf(c.out, "Example in section '%s' -- JSON PARSING FAILED\n", r.Section)
	if c.opts.ShowDetail() {
		fmt.Fprintln(c.out, r.Err.Error())
	}
	if c.opts.VeryVerbose {
		fmt.Fprintln(c.out, r.Normalized)
	}
	c.log.Debug().Str("section", r.Section).Int("line", r.Line).Bool("cached", r.Cached).Err(r.Err).Msg("example failed")
}
