// transbatch — placeholder-safe batch translator for PO, JSON and YAML
// locale files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/l10n-tools/transbatch/batch"
	"github.com/l10n-tools/transbatch/cache"
	"github.com/l10n-tools/transbatch/config"
	"github.com/l10n-tools/transbatch/document"
	"github.com/l10n-tools/transbatch/engine"
	"github.com/l10n-tools/transbatch/engine/google"
	"github.com/l10n-tools/transbatch/engine/libre"
	"github.com/l10n-tools/transbatch/i18n"
	"github.com/l10n-tools/transbatch/langmeta"
	"github.com/l10n-tools/transbatch/lockfile"
	"github.com/l10n-tools/transbatch/settings"
	"github.com/l10n-tools/transbatch/translator"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "transbatch",
		Short: "Placeholder-safe batch translator for locale files",
		Long: `transbatch — placeholder-safe batch translator for PO, JSON and YAML
locale files.

Format placeholders (%(name)s, %s, {name}, HTML tags) are shielded with
opaque tokens before the text reaches the translation engine and restored
afterwards, so machine translation can never corrupt them. Results are
memoized in a persistent cache; interrupted runs resume from the output
file plus the cache.

Commands:
  translate   Translate a single locale file
  run         Translate every target declared in .transbatch.yaml
  status      Show per-target translation progress
  languages   List known language codes
  auth        Manage engine credentials

Engines:
  google   Google Translate free endpoint (no key)
  libre    LibreTranslate — self-hosted or hosted, optional API key`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newTranslateCmd(),
		newRunCmd(),
		newStatusCmd(),
		newLanguagesCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("transbatch version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// translate (single file)
// ---------------------------------------------------------------------------

type translateArgs struct {
	from            string
	to              string
	output          string
	format          string
	engineName      string
	engineURL       string
	apiKey          string
	cachePath       string
	noCache         bool
	retranslate     bool
	dryRun          bool
	checkpointEvery int
	requestDelay    time.Duration
	verbose         bool
}

func newTranslateCmd() *cobra.Command {
	var a translateArgs

	cmd := &cobra.Command{
		Use:   "translate <input-file>",
		Short: "Translate a single locale file",
		Long: `Translate a single PO, JSON or YAML locale file.

The output defaults to <dir>/<to>.<ext> next to the input. If the output
file already exists, its translations are merged in first, so a second
run only translates what is still missing. Already-translated units are
skipped unless --retranslate is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args[0], a)
		},
	}

	cmd.Flags().StringVar(&a.from, "from", "en", "Source language code")
	cmd.Flags().StringVar(&a.to, "to", "", "Target language code (required)")
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "Output file path")
	cmd.Flags().StringVar(&a.format, "format", "", "Force input format: po, json, yaml, properties")
	cmd.Flags().StringVar(&a.engineName, "engine", "google", "Translation engine: google, libre")
	cmd.Flags().StringVar(&a.engineURL, "engine-url", "", "Engine base URL (libre)")
	cmd.Flags().StringVar(&a.apiKey, "api-key", "", "Engine API key (libre)")
	cmd.Flags().StringVar(&a.cachePath, "cache", "", "Translation cache file (default: user data dir)")
	cmd.Flags().BoolVar(&a.noCache, "no-cache", false, "Disable the persistent translation cache")
	cmd.Flags().BoolVar(&a.retranslate, "retranslate", false, "Re-translate units that already have a translation")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Translate and fill the cache, but write no output file")
	cmd.Flags().IntVar(&a.checkpointEvery, "checkpoint-every", 50, "Flush the cache after every N units (0 = only at the end)")
	cmd.Flags().DurationVar(&a.requestDelay, "request-delay", 0, "Pause between engine requests (e.g. 500ms)")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every translated unit")
	cmd.MarkFlagRequired("to")

	return cmd
}

func runTranslate(input string, a translateArgs) error {
	format, err := resolveFormat(input, a.format)
	if err != nil {
		return err
	}

	output := a.output
	if output == "" {
		output = filepath.Join(filepath.Dir(input), a.to+filepath.Ext(input))
	}

	eng, err := buildEngine(a.engineName, a.engineURL, a.apiKey)
	if err != nil {
		return err
	}

	c, cachePath := openCache(a.cachePath, a.noCache)

	ctx, cancel := signalContext()
	defer cancel()

	job := jobSpec{
		name:            filepath.Base(input),
		input:           input,
		output:          output,
		format:          format,
		srcLang:         a.from,
		dstLang:         a.to,
		skipTranslated:  !a.retranslate,
		dryRun:          a.dryRun,
		checkpointEvery: a.checkpointEvery,
		requestDelay:    a.requestDelay,
		verbose:         a.verbose,
	}
	res, err := runJob(ctx, eng, c, cachePath, job)
	if err != nil {
		if ctx.Err() != nil {
			logWarning(i18n.T("Run interrupted, progress saved"))
			return nil
		}
		return err
	}

	summarize(res)
	if a.dryRun {
		logInfo(i18n.T("Dry run: no files were written"))
	} else {
		logSuccess(i18n.T("Output written to %s"), output)
	}
	if cachePath != "" {
		logInfo(i18n.T("Cache saved to %s"), cachePath)
	}
	return nil
}

// ---------------------------------------------------------------------------
// run (config-driven: all targets of .transbatch.yaml)
// ---------------------------------------------------------------------------

type runArgs struct {
	engineURL    string
	apiKey       string
	cachePath    string
	noCache      bool
	dryRun       bool
	verbose      bool
	onlyLangs    []string
	onlyTargets  []string
	requestDelay time.Duration
}

func newRunCmd() *cobra.Command {
	var a runArgs

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Translate every target declared in .transbatch.yaml",
		Long: `Translate every target declared in the project's .transbatch.yaml.

Each target fans out to one output file per language. Existing output
files are merged in before translating, so repeated runs are incremental.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(a)
		},
	}

	cmd.Flags().StringVar(&a.engineURL, "engine-url", "", "Engine base URL override (libre)")
	cmd.Flags().StringVar(&a.apiKey, "api-key", "", "Engine API key (libre)")
	cmd.Flags().StringVar(&a.cachePath, "cache", "", "Translation cache file override")
	cmd.Flags().BoolVar(&a.noCache, "no-cache", false, "Disable the persistent translation cache")
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Translate and fill the cache, but write no output files")
	cmd.Flags().StringSliceVar(&a.onlyLangs, "lang", nil, "Only these languages (repeatable)")
	cmd.Flags().StringSliceVar(&a.onlyTargets, "target", nil, "Only these target names (repeatable)")
	cmd.Flags().DurationVar(&a.requestDelay, "request-delay", 0, "Pause between engine requests")
	cmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every translated unit")

	return cmd
}

func runAll(a runArgs) error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s found in %s (create one or use 'transbatch translate')", config.FileName, rootDir)
	}

	jobs, err := cfg.Resolve(rootDir)
	if err != nil {
		return err
	}
	jobs = filterJobs(jobs, a.onlyTargets, a.onlyLangs)
	if len(jobs) == 0 {
		logInfo(i18n.T("Nothing to translate"))
		return nil
	}

	engineURL := a.engineURL
	if engineURL == "" {
		engineURL = cfg.EngineURL
	}
	eng, err := buildEngine(cfg.Engine, engineURL, a.apiKey)
	if err != nil {
		return err
	}

	cachePath := a.cachePath
	if cachePath == "" {
		cachePath = cfg.CacheFile
	}
	c, cachePath := openCache(cachePath, a.noCache)

	ctx, cancel := signalContext()
	defer cancel()

	requestDelay := a.requestDelay
	if requestDelay == 0 && cfg.RequestDelayMS > 0 {
		requestDelay = time.Duration(cfg.RequestDelayMS) * time.Millisecond
	}

	// The lock file tracks source checksums so edited source strings are
	// re-translated even when the output already has a value.
	lock, err := lockfile.Load(rootDir)
	if err != nil {
		logWarning("Lock file unreadable, change detection disabled: %v", err)
		lock = nil
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return err
	}

	var total batch.Result
	for _, j := range jobs {
		format, err := resolveFormat(j.Input, j.Target.Format)
		if err != nil {
			logError("%s [%s]: %v", j.Target.Name, j.Lang, err)
			continue
		}
		job := jobSpec{
			name:            fmt.Sprintf("%s [%s]", j.Target.Name, j.Lang),
			input:           j.Input,
			output:          j.Output,
			format:          format,
			srcLang:         cfg.SourceLang,
			dstLang:         j.Lang,
			skipTranslated:  j.Target.SkipPolicy(),
			dryRun:          a.dryRun,
			checkpointEvery: cfg.CheckpointInterval(),
			requestDelay:    requestDelay,
			verbose:         a.verbose,
			lock:            lock,
		}
		if rel, err := filepath.Rel(absRoot, j.Output); err == nil {
			job.lockTarget = lockfile.TargetKey(rel)
		} else {
			job.lockTarget = lockfile.TargetKey(j.Output)
		}
		res, err := runJob(ctx, eng, c, cachePath, job)
		total.Total += res.Total
		total.Translated += res.Translated
		total.Skipped += res.Skipped
		total.Failed += res.Failed
		total.FromCache += res.FromCache
		if err != nil {
			if ctx.Err() != nil {
				logWarning(i18n.T("Run interrupted, progress saved"))
				return nil
			}
			logError("%s [%s]: %v", j.Target.Name, j.Lang, err)
		}
	}

	if lock != nil && !a.dryRun {
		if err := lock.Save(); err != nil {
			logWarning("Saving lock file: %v", err)
		}
	}

	summarize(total)
	if a.dryRun {
		logInfo(i18n.T("Dry run: no files were written"))
	}
	if cachePath != "" {
		logInfo(i18n.T("Cache saved to %s"), cachePath)
	}
	return nil
}

func filterJobs(jobs []config.ResolvedTarget, targets, langs []string) []config.ResolvedTarget {
	if len(targets) == 0 && len(langs) == 0 {
		return jobs
	}
	wantTarget := make(map[string]bool)
	for _, t := range targets {
		wantTarget[strings.TrimSpace(t)] = true
	}
	wantLang := make(map[string]bool)
	for _, l := range langs {
		wantLang[strings.TrimSpace(l)] = true
	}
	var out []config.ResolvedTarget
	for _, j := range jobs {
		if len(wantTarget) > 0 && !wantTarget[j.Target.Name] {
			continue
		}
		if len(wantLang) > 0 && !wantLang[j.Lang] {
			continue
		}
		out = append(out, j)
	}
	return out
}

// ---------------------------------------------------------------------------
// Shared job execution
// ---------------------------------------------------------------------------

type jobSpec struct {
	name            string
	input           string
	output          string
	format          document.Format
	srcLang         string
	dstLang         string
	skipTranslated  bool
	dryRun          bool
	checkpointEvery int
	requestDelay    time.Duration
	verbose         bool
	lock            *lockfile.LockFile
	lockTarget      string
}

func runJob(ctx context.Context, eng engine.Engine, c *cache.Cache, cachePath string, job jobSpec) (batch.Result, error) {
	doc, err := document.Load(job.input, job.format, job.dstLang)
	if err != nil {
		return batch.Result{}, err
	}
	if job.output != job.input {
		if err := doc.MergeExisting(job.output); err != nil {
			return batch.Result{}, err
		}
	}

	// Drop resumed translations whose source text changed since the
	// recorded checksum, so the run re-translates them.
	if job.lock != nil {
		for _, u := range doc.Units() {
			if u.Target() != "" && job.lock.IsChanged(job.lockTarget, u.ID(), u.Source()) {
				u.SetTarget("")
			}
		}
	}

	logInfo(i18n.T("Translating %s"), job.name)

	units := len(doc.Units())
	if units == 0 {
		logInfo(i18n.T("Nothing to translate"))
		return batch.Result{}, nil
	}

	var bar *progressbar.ProgressBar
	if !job.verbose {
		bar = progressbar.NewOptions(units,
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", job.name)),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	tr := translator.New(eng, c, job.srcLang, job.dstLang)
	runner := batch.NewRunner(tr, c, cachePath, batch.Options{
		OutputPath:      job.output,
		SkipTranslated:  job.skipTranslated,
		DryRun:          job.dryRun,
		CheckpointEvery: job.checkpointEvery,
		RequestDelay:    job.requestDelay,
		Verbose:         job.verbose,
		OnProgress: func(done, total int) {
			if bar != nil {
				bar.Set(done)
			}
		},
		OnLog: func(format string, args ...any) {
			logInfo(format, args...)
		},
	})

	res, err := runner.Run(ctx, doc)
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	// Record checksums for translated units only, so failed units are
	// retried on the next run.
	if job.lock != nil && err == nil && !job.dryRun {
		entries := make(map[string]string)
		var ids []string
		for _, u := range doc.Units() {
			ids = append(ids, u.ID())
			if u.Target() != "" {
				entries[u.ID()] = u.Source()
			}
		}
		job.lock.UpdateBatch(job.lockTarget, entries)
		job.lock.Clean(job.lockTarget, ids)
	}

	return res, err
}

func summarize(res batch.Result) {
	logInfo(i18n.N("%d unit translated", "%d units translated", res.Translated), res.Translated)
	if res.FromCache > 0 {
		logInfo("%d from cache", res.FromCache)
	}
	if res.Skipped > 0 {
		logInfo(i18n.N("%d unit skipped", "%d units skipped", res.Skipped), res.Skipped)
	}
	if res.Failed > 0 {
		logWarning(i18n.N("%d unit failed", "%d units failed", res.Failed), res.Failed)
	}
}

// signalContext returns a context cancelled on SIGINT, so an interrupted
// run checkpoints its cache and exits cleanly.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		logWarning("Interrupted, saving progress...")
		cancel()
	}()
	return ctx, cancel
}

// ---------------------------------------------------------------------------
// status (read-only: per-target translation stats)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-target translation progress",
		Long: `Show translation progress for every target in .transbatch.yaml.

For each (target, language) pair the existing output file is compared
against the input document. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	cfg, err := config.Load(rootDir)
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s found in %s", config.FileName, rootDir)
	}
	jobs, err := cfg.Resolve(rootDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n%sTranslation Status%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 66))
	fmt.Fprintf(os.Stderr, "%-16s %-8s %-12s %s\n", "Target", "Lang", "Done/Total", "Progress")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 66))

	for _, j := range jobs {
		format, err := resolveFormat(j.Input, j.Target.Format)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-16s %-8s %s\n", j.Target.Name, j.Lang, err)
			continue
		}
		doc, err := document.Load(j.Input, format, j.Lang)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-16s %-8s %s\n", j.Target.Name, j.Lang, err)
			continue
		}
		if err := doc.MergeExisting(j.Output); err != nil {
			fmt.Fprintf(os.Stderr, "%-16s %-8s %s\n", j.Target.Name, j.Lang, err)
			continue
		}
		total, done := 0, 0
		for _, u := range doc.Units() {
			total++
			if strings.TrimSpace(u.Target()) != "" {
				done++
			}
		}
		percent := 0
		if total > 0 {
			percent = done * 100 / total
		}
		fmt.Fprintf(os.Stderr, "%-16s %-8s %-12s %s\n",
			j.Target.Name, j.Lang, fmt.Sprintf("%d/%d", done, total), progressBar(percent, 20))
	}
	fmt.Fprintln(os.Stderr)
	return nil
}

// progressBar renders a colored block bar for a 0-100 percentage.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100

	color := colorRed
	switch {
	case percent >= 100:
		color = colorGreen
	case percent >= 34:
		color = colorYellow
	}

	return fmt.Sprintf("%s%s%s%s %3d%%",
		color,
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		colorReset,
		percent)
}

// ---------------------------------------------------------------------------
// languages (list known language codes)
// ---------------------------------------------------------------------------

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List known language codes",
		Long:  `List the language codes transbatch knows display metadata for.`,
		Run: func(cmd *cobra.Command, args []string) {
			runLanguages()
		},
	}
}

func runLanguages() {
	fmt.Println(i18n.T("Supported languages:"))
	for _, l := range langmeta.All() {
		fmt.Printf("  %s %-8s %s\n", l.Flag, l.Code, l.Name)
	}
}

// ---------------------------------------------------------------------------
// auth (engine credentials)
// ---------------------------------------------------------------------------

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage engine credentials",
		Long: `Manage stored engine credentials.

Keys are stored in ` + settings.FilePath() + ` with 0600 permissions.
Only the libre engine takes an API key; the google engine needs none.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <engine> <api-key>",
			Short: "Store an API key for an engine",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := settings.SetAPIKey(args[0], args[1]); err != nil {
					return err
				}
				logSuccess("Stored key for %s (%s)", args[0], settings.MaskKey(args[1]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "set-url <engine> <base-url>",
			Short: "Store a custom endpoint URL for an engine",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := settings.SetBaseURL(args[0], args[1]); err != nil {
					return err
				}
				logSuccess("Stored URL for %s", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show stored credentials (masked)",
			Run: func(cmd *cobra.Command, args []string) {
				store := settings.Load()
				if len(store) == 0 {
					logInfo("No stored credentials")
					return
				}
				ids := make([]string, 0, len(store))
				for id := range store {
					ids = append(ids, id)
				}
				sort.Strings(ids)
				for _, id := range ids {
					info := store[id]
					line := fmt.Sprintf("%-8s %s", id, settings.MaskKey(info.Key))
					if info.BaseURL != "" {
						line += "  " + info.BaseURL
					}
					fmt.Println(line)
				}
			},
		},
		&cobra.Command{
			Use:   "remove <engine>",
			Short: "Remove stored credentials for an engine",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := settings.Remove(args[0]); err != nil {
					return err
				}
				logSuccess("Removed credentials for %s", args[0])
				return nil
			},
		},
	)

	return cmd
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func buildEngine(name, baseURL, apiKey string) (engine.Engine, error) {
	switch name {
	case "google", "":
		return google.New(), nil
	case "libre":
		var opts []libre.Option
		if baseURL == "" {
			baseURL = settings.GetBaseURL("libre")
		}
		if baseURL != "" {
			opts = append(opts, libre.WithBaseURL(baseURL))
		}
		if key := settings.ResolveAPIKey("libre", apiKey); key != "" {
			opts = append(opts, libre.WithAPIKey(key))
		}
		return libre.New(opts...), nil
	}
	return nil, fmt.Errorf("unknown engine %q (valid: google, libre)", name)
}

// openCache loads the persistent cache, falling back to an empty
// in-memory cache when disabled or unreadable. The returned path is
// empty when flushing should be skipped.
func openCache(path string, disabled bool) (*cache.Cache, string) {
	if disabled {
		return cache.New(), ""
	}
	if path == "" {
		path = settings.DefaultCachePath()
	}
	if path == "" {
		return cache.New(), ""
	}
	c, err := cache.Load(path)
	if err != nil {
		logWarning("Cache %s unreadable, starting fresh: %v", path, err)
	}
	return c, path
}

func resolveFormat(input, override string) (document.Format, error) {
	if override != "" {
		switch document.Format(override) {
		case document.FormatPO, document.FormatJSON, document.FormatYAML, document.FormatProperties:
			return document.Format(override), nil
		}
		return "", fmt.Errorf("unknown format %q (valid: po, json, yaml, properties)", override)
	}
	return document.DetectFormat(input)
}
