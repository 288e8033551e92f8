package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Enumeration
	maxDepth       int
	includeFiles   bool
	includeFolders bool
	showHidden     bool
	noIgnore       bool

	// Prompt
	customInstructions string
	outputFile         string
	copyToClipboard    bool
	interactiveMode    bool

	// Token Counting
	disableTokens  bool
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string

	// Apply
	mappingFile   string
	assumeYes     bool
	strictMapping bool
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "renaiming",
	Short: "renaiming bulk-renames files and folders with assistant-suggested names.",
	Long: `renaiming lists a directory tree, composes a prompt asking an assistant
for clean name suggestions, and applies the returned old->new mapping back
onto the filesystem with collision checks and a confirmation gate.`,
	Version: version,
}

var promptCmd = &cobra.Command{
	Use:   "prompt [DIR]",
	Short: "Enumerate a directory and compose the rename-suggestion prompt.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrompt,
}

var applyCmd = &cobra.Command{
	Use:   "apply [DIR]",
	Short: "Apply an old->new rename mapping to a directory.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runApply,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	applyPromptConfig(cmd)

	entries, err := listDirectoryItems(root, maxDepth, includeFiles, includeFolders)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No entries matched; nothing to compose.")
		return nil
	}

	if interactiveMode {
		entries, err = runInteractiveSelector(entries)
		if err != nil {
			return err
		}
		if entries == nil {
			// User aborted the selection.
			return nil
		}
	}

	text := generatePrompt(entries, customInstructions, viper.GetString("prompt_template"))

	if !disableTokens {
		tk, err := getTokenizer()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: token counting disabled: %v\n", err)
		} else {
			defer tk.Close()
			fmt.Fprintf(os.Stderr, "Prompt length: %d tokens (%d entries)\n", tk.CountTokens(text), len(entries))
		}
	}

	return deliverPrompt(text)
}

// applyPromptConfig fills in config-file/env values for every viper-bound
// flag the user did not pass explicitly. Explicit flags always win.
func applyPromptConfig(cmd *cobra.Command) {
	if !cmd.Flags().Changed("depth") {
		maxDepth = viper.GetInt("depth")
	}
	if !cmd.Flags().Changed("files") {
		includeFiles = viper.GetBool("files")
	}
	if !cmd.Flags().Changed("folders") {
		includeFolders = viper.GetBool("folders")
	}
	if !cmd.Flags().Changed("hidden") {
		showHidden = viper.GetBool("hidden")
	}
	if !cmd.Flags().Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !cmd.Flags().Changed("clipboard") {
		copyToClipboard = viper.GetBool("clipboard")
	}
	if !cmd.Flags().Changed("no-tokens") {
		disableTokens = viper.GetBool("no_tokens")
	}
	if !cmd.Flags().Changed("tokenizer") {
		tokenizerType = viper.GetString("tokenizer")
	}
	if !cmd.Flags().Changed("model") {
		tokenizerModel = viper.GetString("model")
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("error accessing directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	if mappingFile == "" {
		return fmt.Errorf("no mapping provided (use --mapping/-m, or '-' for stdin)")
	}
	if mappingFile == "-" && !assumeYes {
		return fmt.Errorf("reading the mapping from stdin leaves no terminal for confirmation; pass --yes")
	}

	data, err := loadMappingSource(mappingFile)
	if err != nil {
		return err
	}
	mapping, err := ParseMapping(data)
	if err != nil {
		return err
	}
	if strictMapping {
		if err := mapping.ValidateAgainst(root); err != nil {
			return err
		}
	}

	warnIfGitWorkTree(root)

	if !assumeYes {
		fmt.Printf("About to apply %d rename(s) under %s.\n", mapping.Len(), root)
		fmt.Print("Confirm renaming (yes/y to confirm): ")
		if !confirmRenaming(os.Stdin) {
			fmt.Println("Renaming operation cancelled.")
			return nil
		}
	}

	report := applyRenames(root, mapping)
	printSummary(report)
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)

	// Enumeration
	promptCmd.Flags().IntVarP(&maxDepth, "depth", "d", -1, "Maximum directory depth to include (-1 for unbounded)")
	viper.BindPFlag("depth", promptCmd.Flags().Lookup("depth"))
	promptCmd.Flags().BoolVar(&includeFiles, "files", true, "Include files in the listing")
	viper.BindPFlag("files", promptCmd.Flags().Lookup("files"))
	promptCmd.Flags().BoolVar(&includeFolders, "folders", true, "Include folders in the listing")
	viper.BindPFlag("folders", promptCmd.Flags().Lookup("folders"))
	promptCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Include hidden files and directories")
	viper.BindPFlag("hidden", promptCmd.Flags().Lookup("hidden"))
	promptCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the root .gitignore file")
	viper.BindPFlag("no_ignore", promptCmd.Flags().Lookup("no-ignore"))

	// Prompt composition and delivery
	promptCmd.Flags().StringVarP(&customInstructions, "instructions", "I", "", "Extra instructions appended to the prompt")
	promptCmd.Flags().StringVarP(&outputFile, "file", "f", "", "Save the prompt to the specified file")
	promptCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the prompt to the clipboard")
	viper.BindPFlag("clipboard", promptCmd.Flags().Lookup("clipboard"))
	promptCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the entries to include through a fuzzy finder")

	// Token counting
	promptCmd.Flags().BoolVar(&disableTokens, "no-tokens", false, "Disable prompt token counting")
	viper.BindPFlag("no_tokens", promptCmd.Flags().Lookup("no-tokens"))
	promptCmd.Flags().StringVar(&tokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", promptCmd.Flags().Lookup("tokenizer"))
	promptCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for the tokenizer (e.g. gpt-4o, gpt2)")
	viper.BindPFlag("model", promptCmd.Flags().Lookup("model"))
	promptCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to a local tokenizer file")

	// Apply
	applyCmd.Flags().StringVarP(&mappingFile, "mapping", "m", "", "Mapping file of 'old: new' pairs ('-' for stdin)")
	applyCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation gate")
	applyCmd.Flags().BoolVar(&strictMapping, "strict", false, "Require every original path in the mapping to exist")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(applyCmd)

	viper.SetDefault("depth", -1)
	viper.SetDefault("files", true)
	viper.SetDefault("folders", true)
	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("clipboard", false)
	viper.SetDefault("no_tokens", false)
	viper.SetDefault("tokenizer", "tiktoken")
	viper.SetDefault("model", "")
	viper.SetDefault("prompt_template", defaultPromptTemplate)
}

// initConfig reads in the config file and RENAIMING_* environment variables.
func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, ".config", "renaiming"))
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("RENAIMING")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
