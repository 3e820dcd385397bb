package model

// Check is a single literal substring test against a file's content.
type Check struct {
	Label  string
	Needle string
}

// Target is a file to inspect, relative to the tool's directory.
type Target struct {
	Name    string
	RelPath string
	Checks  []Check
}

// CheckResult is the outcome of one Check.
type CheckResult struct {
	Label  string
	Needle string
	Passed bool
}

// FileReport holds the results for one target. Results is empty when the
// file was not found.
type FileReport struct {
	Name    string
	Path    string
	Found   bool
	Results []CheckResult
}

// Passed reports whether the file exists and every check passed.
func (f FileReport) Passed() bool {
	if !f.Found {
		return false
	}
	for _, r := range f.Results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Report holds the results of a full run, in target order.
type Report struct {
	Files []FileReport
}

// AllPassed reports whether every target exists and passes all its checks.
func (r Report) AllPassed() bool {
	for _, f := range r.Files {
		if !f.Passed() {
			return false
		}
	}
	return true
}

// Incomplete returns the paths of files that exist but fail at least one check.
func (r Report) Incomplete() []string {
	var paths []string
	for _, f := range r.Files {
		if f.Found && !f.Passed() {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// Detection is the result of probing for an Automatic1111 instance.
type Detection struct {
	URL   string
	Found bool
}
