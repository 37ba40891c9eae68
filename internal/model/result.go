package model

// UnknownSection labels examples that appear before the first heading
const UnknownSection = "unknown"

// Result is the verdict for a single example
type Result struct {
	Section    string `json:"section"`          // Latest heading seen before the example
	Line       int    `json:"line,omitempty"`   // Source line of the fenced block
	Normalized string `json:"normalized"`       // Text after fragment wrapping and comment stripping
	Err        error  `json:"-"`                // Parse error, nil when the example is valid JSON
	Cached     bool   `json:"cached,omitempty"` // Verdict came from the verdict cache
}

// Passed reports whether the example parsed
func (r Result) Passed() bool {
	return r.Err == nil
}

// Tally counts checked and failed examples over one run
type Tally struct {
	Checked int `json:"checked"`
	Failed  int `json:"failed"`
}

// Add records a verdict and returns the failure contribution (0 or 1)
func (t *Tally) Add(r Result) int {
	t.Checked++
	if r.Passed() {
		return 0
	}
	t.Failed++
	return 1
}

// MaxExitCode is the largest status a process can report without wrapping
const MaxExitCode = 255

// ExitCode maps the failure count to a process exit status.
// Counts above MaxExitCode are clamped so that 256 failures never read as success.
func (t Tally) ExitCode() int {
	if t.Failed > MaxExitCode {
		return MaxExitCode
	}
	return t.Failed
}
