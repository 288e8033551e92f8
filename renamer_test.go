package main

import (
	"os"
	"path/filepath"
	"testing"
)

func mustMapping(t *testing.T, pairs ...RenamePair) RenameMapping {
	t.Helper()
	m, err := NewRenameMapping(pairs)
	if err != nil {
		t.Fatalf("NewRenameMapping: %v", err)
	}
	return m
}

func pathExists(t *testing.T, root, rel string) bool {
	t.Helper()
	_, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
	return err == nil
}

func TestApplyRenames(t *testing.T) {
	t.Run("children move before their directory", func(t *testing.T) {
		root := makeTree(t, "a.txt", "b/c.txt")
		mapping := mustMapping(t,
			RenamePair{Original: "b", New: "e"},
			RenamePair{Original: "b/c.txt", New: "b/d.txt"},
		)

		report := applyRenames(root, mapping)

		if report.Outcomes[0].Original != "b/c.txt" {
			t.Errorf("deeper pair must run first, got %s", report.Outcomes[0].Original)
		}
		for _, o := range report.Outcomes {
			if o.Status != StatusRenamed {
				t.Errorf("%s -> %s: got %s, want renamed (%v)", o.Original, o.New, o.Status, o.Err)
			}
		}
		for _, rel := range []string{"a.txt", "e", "e/d.txt"} {
			if !pathExists(t, root, rel) {
				t.Errorf("expected %s in final tree", rel)
			}
		}
		if pathExists(t, root, "b") {
			t.Error("b should have been renamed away")
		}
	})

	t.Run("missing source is skipped without mutation", func(t *testing.T) {
		root := makeTree(t, "a.txt")
		report := applyRenames(root, mustMapping(t, RenamePair{Original: "missing.txt", New: "found.txt"}))

		if len(report.Outcomes) != 1 || report.Outcomes[0].Status != StatusSkippedMissingSource {
			t.Fatalf("unexpected outcomes: %+v", report.Outcomes)
		}
		if pathExists(t, root, "found.txt") {
			t.Error("nothing should have been created")
		}
		if report.Skipped != 1 || report.Renamed != 0 || report.Failures != 0 {
			t.Errorf("counts: %+v", report)
		}
	})

	t.Run("identical paths are not touched", func(t *testing.T) {
		root := makeTree(t, "a.txt")
		report := applyRenames(root, mustMapping(t, RenamePair{Original: "a.txt", New: "a.txt"}))

		if report.Outcomes[0].Status != StatusSkippedIdentical {
			t.Errorf("got %s, want skipped-identical", report.Outcomes[0].Status)
		}
		if !pathExists(t, root, "a.txt") {
			t.Error("a.txt must survive")
		}
	})

	t.Run("existing target is never overwritten", func(t *testing.T) {
		root := t.TempDir()
		os.WriteFile(filepath.Join(root, "src.txt"), []byte("source"), 0644)
		os.WriteFile(filepath.Join(root, "dst.txt"), []byte("target"), 0644)

		report := applyRenames(root, mustMapping(t, RenamePair{Original: "src.txt", New: "dst.txt"}))

		if report.Outcomes[0].Status != StatusSkippedTargetExists {
			t.Errorf("got %s, want skipped-target-exists", report.Outcomes[0].Status)
		}
		src, err := os.ReadFile(filepath.Join(root, "src.txt"))
		if err != nil || string(src) != "source" {
			t.Errorf("source must be untouched: %q, %v", src, err)
		}
		dst, _ := os.ReadFile(filepath.Join(root, "dst.txt"))
		if string(dst) != "target" {
			t.Errorf("target must be untouched: %q", dst)
		}
	})

	t.Run("second pass reports missing source", func(t *testing.T) {
		root := makeTree(t, "a.txt")
		mapping := mustMapping(t, RenamePair{Original: "a.txt", New: "z.txt"})

		first := applyRenames(root, mapping)
		if first.Outcomes[0].Status != StatusRenamed {
			t.Fatalf("first pass: %+v", first.Outcomes[0])
		}

		second := applyRenames(root, mapping)
		if second.Outcomes[0].Status != StatusSkippedMissingSource {
			t.Errorf("second pass: got %s, want skipped-missing-source", second.Outcomes[0].Status)
		}
	})

	t.Run("missing target ancestors are created", func(t *testing.T) {
		root := makeTree(t, "a.txt")
		report := applyRenames(root, mustMapping(t, RenamePair{Original: "a.txt", New: "sub/dir/a.txt"}))

		if report.Outcomes[0].Status != StatusRenamed {
			t.Fatalf("got %s (%v)", report.Outcomes[0].Status, report.Outcomes[0].Err)
		}
		if !pathExists(t, root, "sub/dir/a.txt") {
			t.Error("expected a.txt under created ancestors")
		}
	})

	t.Run("equal depth ties order lexicographically", func(t *testing.T) {
		root := makeTree(t, "x.txt", "y.txt")
		report := applyRenames(root, mustMapping(t,
			RenamePair{Original: "y.txt", New: "y2.txt"},
			RenamePair{Original: "x.txt", New: "x2.txt"},
		))

		if report.Outcomes[0].Original != "x.txt" || report.Outcomes[1].Original != "y.txt" {
			t.Errorf("tie-break order: %s then %s", report.Outcomes[0].Original, report.Outcomes[1].Original)
		}
	})

	t.Run("an OS error is reported and the batch continues", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("permission checks do not apply to root")
		}
		root := makeTree(t, "locked/a.txt", "b.txt")
		lockedDir := filepath.Join(root, "locked")
		if err := os.Chmod(lockedDir, 0o500); err != nil {
			t.Fatalf("chmod: %v", err)
		}
		t.Cleanup(func() { os.Chmod(lockedDir, 0o755) })

		report := applyRenames(root, mustMapping(t,
			RenamePair{Original: "locked/a.txt", New: "locked/renamed.txt"},
			RenamePair{Original: "b.txt", New: "b2.txt"},
		))

		// The deeper pair runs first and hits the read-only directory.
		first := report.Outcomes[0]
		if first.Original != "locked/a.txt" || first.Status != StatusFailed || first.Err == nil {
			t.Errorf("unexpected first outcome: %+v", first)
		}
		if report.Failures != 1 || report.Renamed != 1 {
			t.Errorf("counts: %+v", report)
		}
		if !pathExists(t, root, "b2.txt") {
			t.Error("pairs after a failure must still be processed")
		}
		if !pathExists(t, root, "locked/a.txt") {
			t.Error("the failed source must be left in place")
		}
	})

	t.Run("a conflict does not abort the batch", func(t *testing.T) {
		root := makeTree(t, "a.txt", "b.txt", "c.txt")
		// b.txt collides, the others rename fine.
		os.WriteFile(filepath.Join(root, "taken.txt"), []byte("x"), 0644)

		report := applyRenames(root, mustMapping(t,
			RenamePair{Original: "a.txt", New: "a2.txt"},
			RenamePair{Original: "b.txt", New: "taken.txt"},
			RenamePair{Original: "c.txt", New: "c2.txt"},
		))

		if report.Renamed != 2 || report.Skipped != 1 {
			t.Errorf("counts: %+v", report)
		}
		if !pathExists(t, root, "a2.txt") || !pathExists(t, root, "c2.txt") {
			t.Error("pairs after a skip must still be processed")
		}
	})
}
