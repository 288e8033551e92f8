package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// deliverPrompt ships the composed prompt to a file, the clipboard, or stdout,
// in that order of precedence. A clipboard failure falls back to stdout so the
// prompt is never lost.
func deliverPrompt(text string) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", outputFile, err)
		}
		fmt.Printf("Prompt saved to %s\n", outputFile)
		return nil
	}

	if copyToClipboard {
		if err := clipboard.WriteAll(text); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
			fmt.Println("\n--- Prompt (clipboard failed) ---")
			fmt.Println(text)
			return nil
		}
		fmt.Println("Prompt copied to clipboard.")
		return nil
	}

	fmt.Println(text)
	return nil
}

// printOutcome reports one rename result on the console as it happens.
func printOutcome(o RenameOutcome) {
	switch o.Status {
	case StatusRenamed:
		fmt.Printf("Renamed '%s' to '%s'\n", o.Original, o.New)
	case StatusSkippedIdentical:
		fmt.Printf("Item does not need to be renamed: %s\n", o.Original)
	case StatusSkippedMissingSource:
		fmt.Printf("Item not found: %s\n", o.Original)
	case StatusSkippedTargetExists:
		fmt.Printf("Skipping: %s already exists.\n", o.New)
	case StatusFailed:
		fmt.Fprintf(os.Stderr, "Error renaming '%s': %v\n", o.Original, o.Err)
	}
}

// printSummary prints the aggregate counts after a batch.
func printSummary(report Report) {
	fmt.Printf("\nDone: %d renamed, %d skipped, %d failed.\n", report.Renamed, report.Skipped, report.Failures)
}
