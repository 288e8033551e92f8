package main

import (
	"testing"

	"github.com/spf13/viper"
)

func TestApplyPromptConfig(t *testing.T) {
	savedDepth, savedHidden, savedNoIgnore := maxDepth, showHidden, noIgnore
	savedFiles, savedTokenizer := includeFiles, tokenizerType
	t.Cleanup(func() {
		maxDepth, showHidden, noIgnore = savedDepth, savedHidden, savedNoIgnore
		includeFiles, tokenizerType = savedFiles, savedTokenizer
	})

	t.Run("config values fill in unset flags", func(t *testing.T) {
		viper.Set("depth", 3)
		viper.Set("hidden", true)
		viper.Set("no_ignore", true)
		viper.Set("files", false)
		viper.Set("tokenizer", "huggingface")

		applyPromptConfig(promptCmd)

		if maxDepth != 3 {
			t.Errorf("depth: got %d, want 3", maxDepth)
		}
		if !showHidden {
			t.Error("hidden: config value ignored")
		}
		if !noIgnore {
			t.Error("no_ignore: config value ignored")
		}
		if includeFiles {
			t.Error("files: config value ignored")
		}
		if tokenizerType != "huggingface" {
			t.Errorf("tokenizer: got %s, want huggingface", tokenizerType)
		}
	})

	t.Run("an explicit flag beats the config", func(t *testing.T) {
		fl := promptCmd.Flags().Lookup("depth")
		if err := promptCmd.Flags().Set("depth", "5"); err != nil {
			t.Fatalf("set flag: %v", err)
		}
		t.Cleanup(func() { fl.Changed = false })

		viper.Set("depth", 9)
		applyPromptConfig(promptCmd)

		if maxDepth != 5 {
			t.Errorf("depth: got %d, want the explicit flag value 5", maxDepth)
		}
	})
}
