// Package main is the lapwise CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/advisor"
	"github.com/hyperjump/lapwise/internal/catalog"
	"github.com/hyperjump/lapwise/internal/cli"
	"github.com/hyperjump/lapwise/internal/config"
	"github.com/hyperjump/lapwise/internal/document"
	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/fetch"
	"github.com/hyperjump/lapwise/internal/llm"
	"github.com/hyperjump/lapwise/internal/match"
	"github.com/hyperjump/lapwise/internal/mock"
	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
	"github.com/hyperjump/lapwise/internal/search"
	"github.com/hyperjump/lapwise/internal/server"
	"github.com/hyperjump/lapwise/internal/storage"
	"github.com/hyperjump/lapwise/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/lapwise/config.yaml"

// loadConfig loads config from path. When path is the default, config.yaml in
// the current directory wins if it exists; when neither exists, defaults are
// used with secrets from ./.env and the environment. Returns the config and
// the path that was actually loaded, or "" for defaults.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
		if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
			cfg := config.Default()
			if err := config.ApplyEnv(cfg, ".env"); err != nil {
				return nil, "", err
			}
			return cfg, "", nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "compare":
		runCompare()
	case "discover":
		runDiscover()
	case "rank":
		runRank()
	case "match":
		runMatch()
	case "extract":
		runExtract()
	case "personas":
		runPersonas()
	case "version", "--version", "-v":
		fmt.Printf("lapwise version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
		zap.String("storage_driver", cfg.Storage.Driver),
	)

	components, err := initializeComponents(cfg, logger, true)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	if cfg.Catalog.Path != "" && cfg.Catalog.WatchOrDefault() {
		w := catalog.NewWatcher(components.Catalog,
			catalog.WithLogger(logger),
			catalog.WithDebounce(time.Duration(cfg.Catalog.DebounceMs)*time.Millisecond),
		)
		if err := w.Start(watchCtx); err != nil {
			logger.Warn("catalog watch disabled", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		} else {
			defer w.Stop()
		}
	}

	srv := server.NewServer(
		components.Advisor,
		components.Store,
		&cfg.Server,
		logger,
		server.WithFetcher(components.Fetcher),
		server.WithExtractor(components.Extractor),
	)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

// argsReorder moves any flags (and their values) that appear after the
// positional arguments to the front so that flag.Parse() sees them. Go's flag
// package stops at the first non-flag argument.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

// compareItems turns positional arguments into compare items. Each argument
// is one item unless it holds a comma, newline or "vs" separated list.
func compareItems(args []string) []string {
	var items []string
	for _, a := range args {
		items = append(items, advisor.SplitQueries(a)...)
	}
	return items
}

func outputFormat(jsonOut bool) cli.OutputFormat {
	if jsonOut {
		return cli.OutputJSON
	}
	return cli.OutputText
}

// commandSetup loads config and a logger for one-shot commands. Logs go to
// stderr and only in debug mode.
func commandSetup(configPath string, debug bool) (*config.Config, *zap.Logger) {
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := zap.NewNop()
	if cfg.Debug || debug {
		if l, err := utils.NewLogger(true); err == nil {
			logger = l
		}
	}
	return cfg, logger
}

func runCompare() {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	serverURL := fs.String("server", "", "server URL (empty = resolve locally)")
	persona := fs.String("persona", "", "rank for a persona: gaming, creative, programming, student, portable")
	summarize := fs.Bool("summarize", false, "add an AI or heuristic summary")
	requireAI := fs.Bool("require-ai", false, "fail instead of using the heuristic summary when no LLM key is set")
	jsonOut := fs.Bool("json", false, "print JSON")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lapwise compare [flags] <url or name>...\n\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
Examples:
  lapwise compare "Dell XPS 13" "MacBook Air M2"
  lapwise compare --persona student "Dell XPS 13 vs ThinkPad X1 Carbon"
  lapwise compare --summarize https://www.dell.com/en-us/shop/laptop-xps-13
`)
	}
	_ = fs.Parse(argsReorder(os.Args[2:]))

	items := compareItems(fs.Args())
	if len(items) == 0 {
		fs.Usage()
		os.Exit(1)
	}
	req := &models.CompareRequest{Queries: items, Persona: *persona, Summarize: *summarize, RequireAI: *requireAI}

	var cmp *advisor.Comparison
	if *serverURL != "" {
		cmp = &advisor.Comparison{}
		if err := postJSON(*serverURL, "/api/v1/compare", req, cmp); err != nil {
			fmt.Fprintf(os.Stderr, "Compare failed: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, logger := commandSetup(*configPath, *debug)
		components, err := initializeComponents(cfg, logger, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
			os.Exit(1)
		}
		defer components.Close()
		cmp, err = components.Advisor.Compare(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Compare failed: %v\n", err)
			os.Exit(1)
		}
	}
	if err := cli.WriteComparison(os.Stdout, cmp, outputFormat(*jsonOut)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runDiscover() {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	limit := fs.Int("limit", 0, "number of product pages (default from config)")
	persona := fs.String("persona", "", "rank for a persona")
	jsonOut := fs.Bool("json", false, "print JSON")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	brand := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if brand == "" {
		fmt.Println("Usage: lapwise discover [flags] <brand>")
		os.Exit(1)
	}
	cfg, logger := commandSetup(*configPath, *debug)
	if *limit <= 0 {
		*limit = cfg.Search.DiscoverLimit
	}
	components, err := initializeComponents(cfg, logger, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer components.Close()

	cmp, err := components.Advisor.Discover(context.Background(), &models.DiscoverRequest{Brand: brand, Limit: *limit, Persona: *persona})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Discover failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteComparison(os.Stdout, cmp, outputFormat(*jsonOut)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runRank() {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	persona := fs.String("persona", "", "persona to rank for (required)")
	breakdown := fs.Bool("breakdown", false, "show per-dimension sub-scores")
	top := fs.Int("top", 0, "show only the top N laptops")
	jsonOut := fs.Bool("json", false, "print JSON")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: lapwise rank --persona <name> [flags] [catalog.yaml|catalog.xlsx]\n\n")
		fmt.Fprintf(fs.Output(), "Without a file, the configured catalog is ranked.\n\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(argsReorder(os.Args[2:]))

	p, err := ranking.ParsePersona(*persona)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}
	cfg, logger := commandSetup(*configPath, false)

	var laptops []*models.LaptopSpec
	if fs.NArg() > 0 {
		laptops, err = catalog.LoadFile(fs.Arg(0))
	} else {
		var c *catalog.Catalog
		c, err = catalog.Open(cfg.Catalog.Path, logger)
		if c != nil {
			laptops = c.Laptops()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load laptops: %v\n", err)
		os.Exit(1)
	}

	ranker := ranking.NewRanker(&cfg.Ranking)
	var results []*ranking.ScoredLaptop
	if *breakdown {
		results = ranker.RankWithBreakdown(laptops, p)
	} else {
		results = ranker.Rank(laptops, p)
	}
	if err := cli.WriteRanking(os.Stdout, p, ranking.TopN(results, *top), outputFormat(*jsonOut)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runMatch() {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	jsonOut := fs.Bool("json", false, "print JSON")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		fmt.Println("Usage: lapwise match [flags] <query>")
		os.Exit(1)
	}
	cfg, logger := commandSetup(*configPath, false)
	c, err := catalog.Open(cfg.Catalog.Path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	q := match.ParseQuery(query)
	laptop, result := match.NewMatcher(c).MatchQuery(q)
	if err := cli.WriteMatch(os.Stdout, q, laptop, result, outputFormat(*jsonOut)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runExtract() {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	pageURL := fs.String("url", "", "product page URL; fetched when no file or stdin content is given")
	file := fs.String("file", "", "spec sheet to read (.pdf, .docx, .xlsx, .html, .txt)")
	stdin := fs.Bool("stdin", false, "read page content from stdin")
	jsonOut := fs.Bool("json", false, "print JSON")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	extractor := extract.NewExtractor()
	var res *extract.Result
	switch {
	case *file != "":
		var err error
		res, err = document.NewReader(extractor).ReadFile(*file, *pageURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Extract failed: %v\n", err)
			os.Exit(1)
		}
	case *stdin:
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read stdin: %v\n", err)
			os.Exit(1)
		}
		res = extractor.Extract(string(content), *pageURL)
	case *pageURL != "":
		if v := extract.ValidateURL(*pageURL); !v.Valid {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", strings.Join(v.Errors, "; "))
		}
		cfg, logger := commandSetup(*configPath, false)
		client := fetch.NewClient(cfg.Proxy.URL,
			fetch.WithTimeout(time.Duration(cfg.Proxy.TimeoutSeconds)*time.Second),
			fetch.WithLogger(logger),
		)
		res = extractPage(context.Background(), client, extractor, *pageURL, logger)
	default:
		fmt.Println("Usage: lapwise extract (--file <path> | --url <url> | --stdin) [--json]")
		os.Exit(1)
	}

	if err := cli.WriteExtraction(os.Stdout, res, outputFormat(*jsonOut)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// extractPage fetches pageURL and extracts it. A page that cannot be fetched
// is logged and yields an empty extraction.
func extractPage(ctx context.Context, fetcher fetch.Fetcher, extractor *extract.Extractor, pageURL string, logger *zap.Logger) *extract.Result {
	html, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		logger.Warn("Fetch failed, nothing extracted", zap.String("url", pageURL), zap.Error(err))
	}
	return extractor.Extract(html, pageURL)
}

func runPersonas() {
	fs := flag.NewFlagSet("personas", flag.ExitOnError)
	jsonOut := fs.Bool("json", false, "print JSON")
	_ = fs.Parse(os.Args[2:])
	if err := cli.WritePersonas(os.Stdout, outputFormat(*jsonOut)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// postJSON posts body to serverURL+path and decodes a 200 response into out.
func postJSON(serverURL, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := http.Post(strings.TrimRight(serverURL, "/")+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Components holds the wired application components.
type Components struct {
	Store     *storage.SQLStore
	Catalog   *catalog.Catalog
	Fetcher   fetch.Fetcher
	Extractor *extract.Extractor
	LLM       *llm.Chain
	Advisor   *advisor.Advisor
}

func (c *Components) Close() {
	if c.Store != nil {
		_ = c.Store.Close()
	}
	if c.LLM != nil {
		_ = c.LLM.Close()
	}
}

// initializeComponents wires the advisor and its collaborators from cfg. The
// comparison store is only opened when withStore is set.
func initializeComponents(cfg *config.Config, logger *zap.Logger, withStore bool) (*Components, error) {
	c := &Components{}

	if withStore {
		dsn := cfg.Storage.DatabasePath
		if cfg.Storage.Driver != storage.DriverSQLite && cfg.Storage.Driver != "sqlite" {
			dsn = cfg.Storage.DSN
		}
		store, err := storage.Open(cfg.Storage.Driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		c.Store = store
	}

	cat, err := catalog.Open(cfg.Catalog.Path, logger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	c.Catalog = cat

	chain, err := buildLLM(cfg, logger)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.LLM = chain

	c.Fetcher = fetch.NewCachedFetcher(
		fetch.NewClient(cfg.Proxy.URL,
			fetch.WithTimeout(time.Duration(cfg.Proxy.TimeoutSeconds)*time.Second),
			fetch.WithLogger(logger),
		),
		cfg.Proxy.CacheSize,
		time.Duration(cfg.Proxy.CacheTTLSeconds)*time.Second,
	)
	tavily := search.NewTavilyClient(cfg.Search.TavilyAPIKey,
		search.WithBaseURL(cfg.Search.TavilyURL),
		search.WithLogger(logger),
	)
	ddg := search.NewDuckDuckGo(c.Fetcher, cfg.Search.DuckDuckGoURL)
	c.Extractor = extract.NewExtractor()

	var genOpts []mock.Option
	if cfg.Mock.Seed != 0 {
		genOpts = append(genOpts, mock.WithSeed(cfg.Mock.Seed))
	}

	c.Advisor = advisor.New(advisor.Options{
		Search:     tavily,
		Fetcher:    c.Fetcher,
		Metadata:   fetch.NewMetadataExtractor(c.Fetcher, logger),
		Discoverer: search.NewDiscoverer(tavily, ddg, logger),
		LLM:        chain,
		Catalog:    cat,
		Extractor:  c.Extractor,
		Generator:  mock.NewGenerator(genOpts...),
		Ranker:     ranking.NewRanker(&cfg.Ranking),
		HitLimit:   cfg.Search.HitLimit,
		Logger:     logger,
	})

	logger.Info("components initialized",
		zap.Bool("tavily", tavily.HasKey()),
		zap.Int("llm_providers", chain.Len()),
		zap.Int("catalog_laptops", cat.Len()),
	)
	return c, nil
}

// buildLLM builds the provider chain in the configured order.
func buildLLM(cfg *config.Config, logger *zap.Logger) (*llm.Chain, error) {
	settings := map[llm.ProviderKind]llm.Settings{
		llm.ProviderOpenAI: providerSettings(cfg.LLM.OpenAI),
		llm.ProviderGemini: providerSettings(cfg.LLM.Gemini),
	}
	order := make([]llm.ProviderKind, 0, len(cfg.LLM.Providers))
	for _, name := range cfg.LLM.Providers {
		kind, err := llm.ParseProviderKind(name)
		if err != nil {
			return nil, fmt.Errorf("invalid llm provider: %w", err)
		}
		order = append(order, kind)
	}
	return llm.Build(logger, order, settings)
}

func providerSettings(p config.ProviderConfig) llm.Settings {
	return llm.Settings{
		APIKey:      p.APIKey,
		Model:       p.Model,
		BaseURL:     p.BaseURL,
		Temperature: p.Temperature,
		MaxTokens:   p.MaxTokens,
	}
}

func printUsage() {
	fmt.Print(`lapwise - laptop shopping assistant

Usage:
  lapwise <command> [flags]

Commands:
  server     Start the HTTP API server
  compare    Resolve laptops from URLs or names and compare them
  discover   Find and compare laptops for a brand
  rank       Rank a catalog file or the configured catalog for a persona
  match      Match a free-text query against the catalog
  extract    Extract laptop fields from a page or spec sheet
  personas   List personas and their weights
  version    Print the version
  help       Show this help

Config:
  Default config path is ` + defaultConfigPath + `; ./config.yaml is used when present.
  API keys may also come from LAPWISE_OPENAI_API_KEY, LAPWISE_GEMINI_API_KEY
  and LAPWISE_TAVILY_API_KEY, or a .env file next to the config.

Run 'lapwise <command> -h' for command flags.
`)
}
