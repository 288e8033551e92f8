package main

import (
	"fmt"
	"strings"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer counts how many tokens the composed prompt will cost when pasted
// into an assistant. Close releases backend resources where applicable.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const defaultTiktokenModel = "gpt-4o"
const defaultHFModel = "gpt2"

type tiktokenCounter struct {
	ttk *tiktoken.Tiktoken
}

func (c *tiktokenCounter) CountTokens(text string) int {
	if c.ttk == nil {
		return 0
	}
	return len(c.ttk.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {}

type hfCounter struct {
	htk *hf.Tokenizer
}

func (c *hfCounter) CountTokens(text string) int {
	if c.htk == nil {
		return 0
	}
	en, err := c.htk.EncodeSingle(text)
	if err != nil {
		return 0
	}
	return len(en.Tokens)
}

func (c *hfCounter) Close() {}

// getTokenizer builds a counter from the tokenizer flags. Callers treat an
// error as "skip token counting", never as fatal.
func getTokenizer() (Tokenizer, error) {
	switch strings.ToLower(tokenizerType) {
	case "tiktoken":
		return loadTiktoken()
	case "huggingface":
		return loadHuggingFace()
	default:
		return nil, fmt.Errorf("unsupported tokenizer type: %s (use 'tiktoken' or 'huggingface')", tokenizerType)
	}
}

func loadTiktoken() (Tokenizer, error) {
	model := tokenizerModel
	if model == "" {
		model = defaultTiktokenModel
	}
	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// Unknown model names fall back to the default encoding.
		tke, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("failed to get tiktoken encoding for %s: %w", defaultTiktokenModel, err)
		}
	}
	return &tiktokenCounter{ttk: tke}, nil
}

func loadHuggingFace() (Tokenizer, error) {
	if tokenizerFile != "" {
		htk, err := pretrained.FromFile(tokenizerFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokenizer from file %s: %w", tokenizerFile, err)
		}
		return &hfCounter{htk: htk}, nil
	}

	model := tokenizerModel
	if model == "" {
		model = defaultHFModel
	}
	// CachedPath downloads tokenizer.json from the hub on first use.
	configFilePath, err := hf.CachedPath(model, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache path for model %s: %w", model, err)
	}
	htk, err := pretrained.FromFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pretrained tokenizer for model %s: %w", model, err)
	}
	return &hfCounter{htk: htk}, nil
}
