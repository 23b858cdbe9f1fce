package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookpdf"
	"github.com/fwojciec/bookpdf/crawl"
	"github.com/fwojciec/bookpdf/fs"
	"github.com/fwojciec/bookpdf/goquery"
	"github.com/fwojciec/bookpdf/htmltomarkdown"
	bphttp "github.com/fwojciec/bookpdf/http"
	"github.com/fwojciec/bookpdf/pdfcpu"
	"github.com/fwojciec/bookpdf/rod"
	bpslog "github.com/fwojciec/bookpdf/slog"
	"github.com/google/uuid"
	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if bookpdf.ErrorCode(err) == bookpdf.EINTERNAL {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookpdf"),
		kong.Description("Convert a GitBook-style online book into a single PDF, HTML or Markdown file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	// The browser is launched on first use, so html and md runs without
	// --js never start Chrome.
	browser := rod.NewBrowser(rod.WithBin(cli.BrowserBin), rod.WithNoSandbox(cli.NoSandbox))
	defer browser.Close()

	var fetcher bookpdf.Fetcher
	if cli.JS {
		fetcher = rod.NewFetcher(browser)
	} else {
		var opts []bphttp.Option
		if cli.UserAgent != "" {
			opts = append(opts, bphttp.WithUserAgent(cli.UserAgent))
		}
		fetcher = bphttp.NewFetcher(opts...)
	}
	fetcher = bpslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	format := bookpdf.Format(cli.Format)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		TOC:    bpslog.NewLoggingTOCCollector(goquery.NewTOCCollector(fetcher), logger),
		Crawler: &crawl.Crawler{
			Fetcher:             fetcher,
			Extractor:           goquery.NewContentExtractor(),
			FirstAttemptTimeout: cli.Timeout,
			Progress: MultiProgress(
				bpslog.NewProgressLogger(logger),
				NewProgressPrinter(stdout),
			),
		},
		NewRenderer: func(title string) bookpdf.Renderer {
			return bpslog.NewLoggingRenderer(newRenderer(format, title, browser), logger)
		},
		Store: fs.NewFileStore(cli.Dir),
	}
	if format == bookpdf.FormatPDF {
		deps.Inspector = pdfcpu.NewInspector()
	}

	cmd := &ConvertCmd{
		URL:        cli.URL,
		Name:       cli.Name,
		Format:     format,
		Stylesheet: cli.CSS,
		Preview:    cli.Preview,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL        string        `arg:"" required:"" help:"Landing page URL of the book"`
	Name       string        `arg:"" optional:"" help:"Output file name (default: the book title)"`
	Format     string        `short:"f" enum:"pdf,html,md" default:"pdf" help:"Output format (pdf, html, md)"`
	Dir        string        `short:"d" default:"." help:"Output directory"`
	CSS        string        `name:"css" type:"path" help:"Stylesheet to use instead of the built-in one"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Timeout for the first fetch attempt of each page"`
	UserAgent  string        `name:"user-agent" help:"User-Agent header sent with every request"`
	JS         bool          `name:"js" help:"Load pages in headless Chrome before parsing"`
	Preview    bool          `short:"p" help:"List chapter URLs without fetching them"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
	BrowserBin string        `name:"browser-bin" env:"ROD_BROWSER_BIN" help:"Chrome binary (default: auto-detect or download)"`
	NoSandbox  bool          `name:"no-sandbox" help:"Disable the Chrome sandbox (needed in some containers)"`
}

func newRenderer(format bookpdf.Format, title string, browser *rod.Browser) bookpdf.Renderer {
	switch format {
	case bookpdf.FormatHTML:
		return &bookpdf.HTMLRenderer{Title: title}
	case bookpdf.FormatMarkdown:
		return htmltomarkdown.NewRenderer(title)
	default:
		return rod.NewRenderer(browser, title)
	}
}
