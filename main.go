package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/typeforge/typeforge/internal/analyzer"
	"github.com/typeforge/typeforge/internal/config"
	"github.com/typeforge/typeforge/internal/errors"
	"github.com/typeforge/typeforge/internal/generator"
	"github.com/typeforge/typeforge/internal/models"
	"github.com/typeforge/typeforge/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input          string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output         string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Format         string `help:"Target format for the generated types." short:"f" default:"typescript" enum:"typescript,jsdoc,python-typeddict,python-dataclass,pydantic"`
	RootName       string `help:"Name for the root type." short:"r" default:"RootType"`
	OptionalFields bool   `help:"Emit properties missing from some samples as optional fields." default:"true" negatable:""`
	Config         string `help:"Path to a config file. Discovered automatically when not set." short:"c" type:"path"`
	MaxDepth       int    `help:"Maximum input nesting depth before analysis fails." default:"200"`
	ShowDeps       bool   `help:"Print the runtime dependencies of the generated code to stderr."`
	Debug          bool   `help:"Enable debug logging." short:"d"`
	Version        bool   `help:"Show version information." short:"v"`
	Interactive    bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("typeforge"),
		kong.Description("A tool to convert JSON samples to TypeScript, JSDoc and Python type definitions"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := cliParser.Parse(os.Args[1:]); err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	setupLogging(CLI.Debug)

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("typeforge version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	if err := run(&Context{Config: cfg}); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: typeforge --help\n")
		os.Exit(1)
	}
}

// setupLogging installs a leveled handler; debug output goes to stderr so
// generated code on stdout stays clean.
func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}

// loadConfig resolves the effective configuration from defaults, a
// discovered or explicit config file, and CLI flags (highest precedence).
func loadConfig() (*config.Config, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	if configPath != "" {
		slog.Debug("using config file", "path", configPath)
	}

	cfg, err := config.LoadConfigWithCLI(configPath, CLI.Format, CLI.RootName, CLI.MaxDepth)
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}
	if !CLI.OptionalFields {
		cfg.OptionalFields = false
	}
	if CLI.Output != "" {
		cfg.Output = CLI.Output
	}
	return cfg, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	cfg := ctx.Config

	// 1. Parse JSON input
	ir, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	// 2. Analyze JSON structure into a schema
	analyzerInst := analyzer.NewWithMaxDepth(cfg.MaxDepth)
	schema, err := analyzerInst.Analyze(ir)
	if err != nil {
		return err
	}
	slog.Debug("analysis complete", "root_kind", schema.Kind)

	// 3. Generate type declarations for the selected target
	result, err := generator.Generate(schema, models.TypeGenerationOptions{
		Format:            models.Format(cfg.Format),
		RootTypeName:      config.NormalizeRootName(cfg.RootName),
		UseOptionalFields: cfg.OptionalFields,
	})
	if err != nil {
		return err
	}
	slog.Debug("generation complete", "format", cfg.Format, "dependencies", result.Dependencies)

	if CLI.ShowDeps && len(result.Dependencies) > 0 {
		fmt.Fprintf(os.Stderr, "Requires: %s\n", strings.Join(result.Dependencies, ", "))
	}

	// 4. Output the result
	return writeOutput(cfg.Output, result.Content)
}

// parseInput reads JSON from file or stdin
func parseInput() (models.IntermediateRepresentation, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return models.IntermediateRepresentation{}, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes generated code to file or stdout
func writeOutput(outputPath, content string) error {
	if outputPath != "" {
		err := os.WriteFile(outputPath, []byte(content), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", outputPath), err)
		}
		fmt.Fprintf(os.Stderr, "Generated type definitions written to %s\n", outputPath)
		return nil
	}

	// Write to stdout
	_, err := fmt.Println(strings.TrimSpace(content))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (models.IntermediateRepresentation, error) {
	fmt.Fprintln(os.Stderr, "Typeforge Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.IntermediateRepresentation{}, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
