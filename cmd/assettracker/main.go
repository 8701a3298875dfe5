package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/tim-bel/AssetTracker/internal/config"
	"github.com/tim-bel/AssetTracker/internal/db"
	"github.com/tim-bel/AssetTracker/internal/export"
	"github.com/tim-bel/AssetTracker/internal/model"
	"github.com/tim-bel/AssetTracker/internal/query"
	"github.com/tim-bel/AssetTracker/internal/store"
	"github.com/tim-bel/AssetTracker/pkg/importer"
)

const usage = `Usage: assettracker <command> [flags]

Commands:
  init      create the database schema (idempotent)
  add       add an asset to a collection
  list      list all assets in a collection
  update    replace all fields of an asset
  delete    remove an asset permanently
  search    filter a collection by a free-text term
  export    write a collection to a CSV or XLSX file
  import    create assets from an exported CSV file
  report    expired-warranties | missing-location | locations

Common flags (every command):
  -config <path>      YAML config file (default: assettracker.yaml)
  -db <path>          SQLite database file (overrides config)
  -collection <name>  hardware or software (default: hardware)
`

func main() {
	godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	commands := map[string]func([]string) error{
		"init":   cmdInit,
		"add":    cmdAdd,
		"list":   cmdList,
		"update": cmdUpdate,
		"delete": cmdDelete,
		"search": cmdSearch,
		"export": cmdExport,
		"import": cmdImport,
		"report": cmdReport,
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n%s", os.Args[1], usage)
		os.Exit(1)
	}

	if err := cmd(os.Args[2:]); err != nil {
		slog.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

// common holds the flags shared by every subcommand.
type common struct {
	configPath string
	dbPath     string
	collection string
}

func commonFlags(fs *flag.FlagSet) *common {
	c := &common{}
	fs.StringVar(&c.configPath, "config", "assettracker.yaml", "YAML config file")
	fs.StringVar(&c.dbPath, "db", "", "SQLite database file (overrides config)")
	fs.StringVar(&c.collection, "collection", string(model.Hardware), "hardware or software")
	return c
}

// open loads the configuration, sets up logging, and opens the database with
// the schema ensured. The caller closes the returned handle.
func (c *common) open() (*sql.DB, *config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	if c.dbPath != "" {
		cfg.DBPath = c.dbPath
	}

	if err := setupLogger(cfg.LogPath); err != nil {
		return nil, nil, err
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(database); err != nil {
		database.Close()
		return nil, nil, err
	}
	return database, cfg, nil
}

func (c *common) parseCollection() (model.Collection, error) {
	col := model.Collection(strings.ToLower(c.collection))
	if !col.Valid() {
		return "", fmt.Errorf("unknown collection %q (use hardware or software)", c.collection)
	}
	return col, nil
}

// setupLogger configures structured logging to stderr, optionally mirrored to
// a log file.
func setupLogger(logPath string) error {
	w := io.Writer(os.Stderr)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})))
	return nil
}

// fieldFlags registers one flag per asset field and returns the collector.
func fieldFlags(fs *flag.FlagSet) *model.Fields {
	f := &model.Fields{}
	fs.StringVar(&f.Name, "name", "", "asset name (required)")
	fs.StringVar(&f.SerialOrLicenseKey, "serial", "", "serial number or license key")
	fs.StringVar(&f.PurchaseDate, "purchased", "", "purchase date (YYYY-MM-DD)")
	fs.StringVar(&f.WarrantyOrSubscriptionStart, "warranty-start", "", "warranty or subscription start (YYYY-MM-DD)")
	fs.StringVar(&f.WarrantyOrSubscriptionEnd, "warranty-end", "", "warranty or subscription end (YYYY-MM-DD)")
	fs.StringVar(&f.Location, "location", "", "physical or organizational location")
	fs.StringVar(&f.Vendor, "vendor", "", "vendor")
	fs.StringVar(&f.BoughtAt, "bought-at", "", "point of purchase")
	fs.StringVar(&f.Notes, "notes", "", "free-form notes")
	return f
}

func cmdInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	c := commonFlags(fs)
	fs.Parse(args)

	database, cfg, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	fmt.Printf("Database ready: %s\n", cfg.DBPath)
	return nil
}

func cmdAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	c := commonFlags(fs)
	fields := fieldFlags(fs)
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	asset, err := store.CreateAsset(context.Background(), database, col, *fields)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s asset %d: %s\n", col, asset.ID, asset.Name)
	return nil
}

func cmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	c := commonFlags(fs)
	asJSON := fs.Bool("json", false, "print JSON instead of a table")
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	assets, err := store.ListAssets(context.Background(), database, col)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assets)
	}
	printAssets(assets)
	return nil
}

func cmdUpdate(args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	c := commonFlags(fs)
	id := fs.Int64("id", 0, "asset id")
	fields := fieldFlags(fs)
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("-id is required")
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	asset, err := store.UpdateAsset(context.Background(), database, col, *id, *fields)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %s asset %d: %s\n", col, asset.ID, asset.Name)
	return nil
}

func cmdDelete(args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	c := commonFlags(fs)
	id := fs.Int64("id", 0, "asset id")
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}
	if *id <= 0 {
		return fmt.Errorf("-id is required")
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := store.DeleteAsset(context.Background(), database, col, *id); err != nil {
		return err
	}

	fmt.Printf("Deleted %s asset %d\n", col, *id)
	return nil
}

func cmdSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	c := commonFlags(fs)
	term := fs.String("term", "", "free-text search term")
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	assets, err := store.ListAssets(context.Background(), database, col)
	if err != nil {
		return err
	}

	printAssets(query.Filter(assets, *term))
	return nil
}

func cmdExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	c := commonFlags(fs)
	out := fs.String("out", "assets_export.csv", "destination file (.csv or .xlsx)")
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}

	database, cfg, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	assets, err := store.ListAssets(context.Background(), database, col)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(*out)); ext {
	case ".csv":
		err = export.CSV(*out, assets)
	case ".xlsx":
		err = export.XLSX(*out, cfg.ExportSheet, assets)
	default:
		return fmt.Errorf("unsupported export format %q (use .csv or .xlsx)", ext)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d %s assets to %s\n", len(assets), col, *out)
	return nil
}

func cmdImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	c := commonFlags(fs)
	in := fs.String("in", "", "CSV file to import")
	dryRun := fs.Bool("dry-run", false, "validate without writing")
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	summary, err := importer.ImportCSV(context.Background(), database, f, importer.Options{
		Collection: col,
		DryRun:     *dryRun,
	})
	for _, re := range summary.Errors {
		slog.Warn("skipped row", "row", re.Row, "reason", re.Message)
	}
	if err != nil {
		return err
	}

	verb := "Imported"
	if summary.DryRun {
		verb = "Validated"
	}
	fmt.Printf("%s %d rows into %s (%d skipped)\n", verb, summary.Created, col, len(summary.Errors))
	return nil
}

func cmdReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	c := commonFlags(fs)
	kind := fs.String("type", "expired-warranties", "expired-warranties, missing-location, or locations")
	fs.Parse(args)

	col, err := c.parseCollection()
	if err != nil {
		return err
	}

	database, _, err := c.open()
	if err != nil {
		return err
	}
	defer database.Close()

	assets, err := store.ListAssets(context.Background(), database, col)
	if err != nil {
		return err
	}

	switch *kind {
	case "expired-warranties":
		printAssets(query.ExpiredWarranties(assets, time.Now()))
	case "missing-location":
		printAssets(query.MissingLocation(assets))
	case "locations":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LOCATION\tASSETS")
		for _, lc := range query.CountByLocation(assets) {
			fmt.Fprintf(w, "%s\t%d\n", lc.Location, lc.Count)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unknown report type %q", *kind)
	}
	return nil
}

func printAssets(assets []model.Asset) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSERIAL/KEY\tPURCHASED\tWARRANTY END\tLOCATION\tVENDOR")
	for _, a := range assets {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.SerialOrLicenseKey, a.PurchaseDate,
			a.WarrantyOrSubscriptionEnd, a.Location, a.Vendor)
	}
	w.Flush()
}
