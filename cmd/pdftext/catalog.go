// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdftext/internal/catalog"
	"github.com/pdiddy/pdftext/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain a searchable SQLite catalog of extracted text",
	Long: `Catalog manages a local SQLite database of extracted page text with
FTS5 full-text indexing. Use subcommands to index files, search pages,
list documents, or export.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index [files...]",
	Short: "Extract files and store their pages in the catalog",
	Long: `Index runs extraction over the given files and stores every page that
yielded text. Files whose modification time is unchanged since the last
run are skipped, so re-indexing a directory is cheap.`,
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	files, err := resolveFiles(args, manifestPath)
	if err != nil {
		return err
	}

	ext, err := newExtractor(cmd)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Index(context.Background(), ext, files, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over cataloged page text",
	Long: `Search runs an FTS5 full-text query over every cataloged page and
prints matching pages with their document and page number. Use
--document to restrict the search to one file, or alone to list that
file's pages.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms or --document")
	}

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []catalog.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-40s  %-5s  %s\n", "Rank", "Document", "Page", "Text")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, r := range results {
		doc := r.DocumentID
		if len(doc) > 40 {
			doc = "..." + doc[len(doc)-37:]
		}
		text := strings.ReplaceAll(r.Text, "\n", " ")
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-40s  %-5d  %s\n", i+1, doc, r.PageNo, text)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- ls subcommand ---

var catalogLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List cataloged documents and their extraction status",
	RunE:  runCatalogLs,
}

func runCatalogLs(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	docs, err := store.Documents(context.Background())
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-50s  %-6s  %-6s  %-10s  %s\n", "Document", "Pages", "Text", "Backend", "Status")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, d := range docs {
		id := d.ID
		if len(id) > 50 {
			id = "..." + id[len(id)-47:]
		}
		fmt.Fprintf(os.Stdout, "%-50s  %-6d  %-6d  %-10s  %s\n", id, d.PageCount, d.TextPages, d.Backend, d.Status)
	}
	return nil
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes all cataloged pages (or a filtered subset) to
export.yaml or export.json in the catalog directory. Supports the same
filter flags as search for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := catalogConfig(cmd)
	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", cfg.CatalogDir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", cfg.CatalogDir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	var cfg types.CatalogConfig
	_ = viper.UnmarshalKey("catalog", &cfg)

	if dir, _ := cmd.Flags().GetString("catalog-dir"); dir != "" {
		cfg.CatalogDir = dir
	}
	if cfg.CatalogDir == "" {
		cfg.CatalogDir = "catalog"
	}
	if maxResults, _ := cmd.Flags().GetInt("max-results"); cmd.Flags().Changed("max-results") || cfg.MaxResults == 0 {
		cfg.MaxResults = maxResults
	}
	return cfg
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	document, _ := cmd.Flags().GetString("document")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Document:   document,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "", "directory for the catalog database (default \"catalog\")")
	catalogCmd.PersistentFlags().Int("max-results", 20, "maximum number of search results")

	// Index flags.
	catalogIndexCmd.Flags().String("backend", "", "extraction backend: ledongthuc, dslipak, or poppler")
	catalogIndexCmd.Flags().String("manifest", "", "YAML manifest listing the files to index")

	// Search flags.
	catalogSearchCmd.Flags().String("query", "", "full-text search query")
	catalogSearchCmd.Flags().String("document", "", "restrict to one document path")
	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	catalogExportCmd.Flags().String("document", "", "restrict to one document path")
	catalogExportCmd.Flags().Int("limit", 0, "maximum pages to export (0 = all)")

	// Wire subcommands.
	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogLsCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
