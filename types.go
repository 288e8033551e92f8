package main

// EntryKind tags a DirectoryEntry as a file or a folder.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindFolder
)

func (k EntryKind) String() string {
	if k == KindFolder {
		return "folder"
	}
	return "file"
}

// DirectoryEntry is one item produced by enumeration. RelPath is always
// slash-separated and relative to the enumeration root.
type DirectoryEntry struct {
	RelPath string
	Kind    EntryKind
}

// RenamePair maps an original relative path to its replacement.
type RenamePair struct {
	Original string
	New      string
}

// RenameStatus classifies the result of a single rename attempt.
type RenameStatus string

const (
	StatusRenamed              RenameStatus = "renamed"
	StatusSkippedIdentical     RenameStatus = "skipped-identical"
	StatusSkippedMissingSource RenameStatus = "skipped-missing-source"
	StatusSkippedTargetExists  RenameStatus = "skipped-target-exists"
	StatusFailed               RenameStatus = "failed"
)

// RenameOutcome is the per-pair result of one rename attempt. Err is set only
// when Status is StatusFailed.
type RenameOutcome struct {
	Original string
	New      string
	Status   RenameStatus
	Err      error
}

// Report aggregates the outcomes of one rename batch so callers can assert on
// results instead of scraping console output.
type Report struct {
	Outcomes []RenameOutcome
	Renamed  int
	Skipped  int
	Failures int
}

func (r *Report) add(o RenameOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusRenamed:
		r.Renamed++
	case StatusFailed:
		r.Failures++
	default:
		r.Skipped++
	}
}
