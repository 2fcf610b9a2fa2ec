package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coolbeans/lexchunk/pkg/chunk"
	"github.com/coolbeans/lexchunk/pkg/chunker"
	"github.com/coolbeans/lexchunk/pkg/config"
	"github.com/coolbeans/lexchunk/pkg/eurlex"
	"github.com/coolbeans/lexchunk/pkg/fetch"
	"github.com/coolbeans/lexchunk/pkg/watch"
)

var version = "0.1.0"

func main() {
	// A missing .env file is fine; environment overrides are optional.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "lexchunk",
		Short: "EUR-Lex legal document chunker",
		Long: `Lexchunk splits EU legal documents into typed, ordered chunks.

It understands the structure of regulations, directives, decisions and
Commission communications: preamble recitals, numbered sections and
subsections, annexes, footnotes and references. Documents can be read
from local files, fetched from EUR-Lex, or processed continuously from
a drop folder.`,
		Version: version,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")

	rootCmd.AddCommand(chunkCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the --config flag and loads the tool configuration.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return config.Load(configPath)
}

// resolveDocumentKind maps the --kind flag value to a chunker option.
func resolveDocumentKind(kindName string) (chunker.DocumentKind, error) {
	switch kindName {
	case "", "auto":
		return chunker.KindAuto, nil
	case "regulation":
		return chunker.KindRegulation, nil
	case "communication":
		return chunker.KindCommunication, nil
	default:
		return chunker.KindAuto, fmt.Errorf("unknown document kind %q (expected auto, regulation or communication)", kindName)
	}
}

// readDocument returns the text of a local file or a fetched URL.
func readDocument(ctx context.Context, source string, toolConfig config.Config) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		fetcher, err := fetch.NewFetcher(toolConfig.FetchConfig())
		if err != nil {
			return "", err
		}
		return fetcher.FetchDocument(ctx, source)
	}
	return readDocumentFile(source)
}

// readDocumentFile reads a local document, running HTML files through
// main-content extraction so the chunker sees plain text lines.
func readDocumentFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := fetch.ExtractMainText(data)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		return text, nil
	}
	return string(data), nil
}

// writeOutput writes data to the given file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func chunkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunk [file|url]",
		Short: "Chunk a legal document into typed sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showSummary, _ := cmd.Flags().GetBool("summary")
			kindName, _ := cmd.Flags().GetString("kind")
			outputPath, _ := cmd.Flags().GetString("output")

			toolConfig, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			documentKind, err := resolveDocumentKind(kindName)
			if err != nil {
				return err
			}

			text, err := readDocument(cmd.Context(), args[0], toolConfig)
			if err != nil {
				return err
			}

			documentChunker := chunker.New(chunker.WithDocumentKind(documentKind))
			chunks := documentChunker.ChunkDocument(text)

			if showSummary {
				printSummary(chunks)
				return nil
			}

			exportJSON, err := chunk.ExportJSON(chunks)
			if err != nil {
				return err
			}
			return writeOutput(outputPath, exportJSON)
		},
	}

	cmd.Flags().Bool("summary", false, "Print chunk counts by type instead of full JSON")
	cmd.Flags().String("kind", "auto", "Document kind (auto, regulation, communication)")
	cmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")

	return cmd
}

// printSummary prints chunk counts by type in a stable order.
func printSummary(chunks []chunk.DocumentChunk) {
	summary := chunk.Summary(chunks)

	chunkTypes := make([]string, 0, len(summary))
	for chunkType := range summary {
		chunkTypes = append(chunkTypes, string(chunkType))
	}
	sort.Strings(chunkTypes)

	fmt.Printf("Total chunks: %d\n", len(chunks))
	for _, chunkType := range chunkTypes {
		fmt.Printf("  %-24s %d\n", chunkType, summary[chunk.Type(chunkType)])
	}
}

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [url]",
		Short: "Fetch a document and print its extracted text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, _ := cmd.Flags().GetString("output")

			toolConfig, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			fetcher, err := fetch.NewFetcher(toolConfig.FetchConfig())
			if err != nil {
				return err
			}

			text, err := fetcher.FetchDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeOutput(outputPath, []byte(text))
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")

	return cmd
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [citation|celex]",
		Short: "Resolve a citation or CELEX number to EUR-Lex identifiers",
		Long: `Resolve accepts either a CELEX number ("32016R0679") or a citation
as it appears in legal text ("Regulation (EU) 2016/679") and prints the
CELEX number, the ELI URI and the EUR-Lex document URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validateFlag, _ := cmd.Flags().GetBool("validate")

			reference, err := parseIdentifier(args[0])
			if err != nil {
				return err
			}

			celexNumber, err := eurlex.GenerateCELEX(reference)
			if err != nil {
				return err
			}
			eliURI, err := eurlex.GenerateELI(reference)
			if err != nil {
				return err
			}

			fmt.Printf("CELEX:  %s\n", celexNumber.String())
			fmt.Printf("ELI:    %s\n", eliURI.String())
			fmt.Printf("URL:    %s\n", eurlex.DocumentURL(celexNumber))

			if validateFlag {
				client := eurlex.NewClient(eurlex.DefaultClientConfig())
				validationResult, err := client.ValidateURI(eliURI.String())
				if err != nil {
					return err
				}
				if validationResult.Valid {
					fmt.Printf("Status: valid (HTTP %d)\n", validationResult.StatusCode)
				} else if validationResult.Error != "" {
					fmt.Printf("Status: unreachable (%s)\n", validationResult.Error)
				} else {
					fmt.Printf("Status: not found (HTTP %d)\n", validationResult.StatusCode)
				}
			}
			return nil
		},
	}

	cmd.Flags().Bool("validate", false, "Check the ELI URI against EUR-Lex with a HEAD request")

	return cmd
}

// parseIdentifier interprets the argument as a CELEX number first, then
// as a citation in running text.
func parseIdentifier(input string) (eurlex.Reference, error) {
	if celexNumber, err := eurlex.ParseCELEX(input); err == nil {
		return celexNumber.Reference()
	}

	references := eurlex.ParseReferences(input)
	if len(references) == 0 {
		return eurlex.Reference{}, fmt.Errorf("no CELEX number or citation found in %q", input)
	}
	return references[0], nil
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Chunk documents dropped into a folder",
		Long: `Watch monitors a directory and chunks every matching document that
is created or modified, writing a JSON export next to the source file
(or into the configured output directory). Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kindName, _ := cmd.Flags().GetString("kind")

			toolConfig, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			documentKind, err := resolveDocumentKind(kindName)
			if err != nil {
				return err
			}

			watchDir := args[0]
			if info, err := os.Stat(watchDir); err != nil || !info.IsDir() {
				return fmt.Errorf("%s is not a watchable directory", watchDir)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			documentChunker := chunker.New(chunker.WithDocumentKind(documentKind))

			handler := func(path string) {
				if err := chunkToFile(documentChunker, path, toolConfig.OutputDir); err != nil {
					logger.Error("failed to chunk document", "path", path, "error", err)
					return
				}
				logger.Info("chunked document", "path", path)
			}

			folderWatcher := watch.New(watchDir, handler, watch.Config{
				Patterns: toolConfig.WatchPatterns,
				Debounce: toolConfig.WatchDebounce.Std(),
				Logger:   logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := folderWatcher.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().String("kind", "auto", "Document kind (auto, regulation, communication)")

	return cmd
}

// chunkToFile chunks the document at path and writes the JSON export.
// The export lands next to the source file unless outputDir is set.
func chunkToFile(documentChunker *chunker.Chunker, path, outputDir string) error {
	text, err := readDocumentFile(path)
	if err != nil {
		return err
	}

	chunks := documentChunker.ChunkDocument(text)
	exportJSON, err := chunk.ExportJSON(chunks)
	if err != nil {
		return err
	}

	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	targetDir := outputDir
	if targetDir == "" {
		targetDir = filepath.Dir(path)
	}
	exportPath := filepath.Join(targetDir, baseName+".chunks.json")

	if err := os.WriteFile(exportPath, exportJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportPath, err)
	}
	return nil
}
