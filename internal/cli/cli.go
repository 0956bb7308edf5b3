// Package cli is the command-line front end. It runs the same pipeline as
// the HTTP server and writes results to stdout or a file.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"domainscout/internal/app"
	"domainscout/internal/config"
	"domainscout/internal/domain"
	"domainscout/internal/export"
	"domainscout/internal/presets"
	"domainscout/internal/scheduler"
	"domainscout/internal/stream"
	"domainscout/internal/tld"
	"domainscout/internal/validation"
)

var verbose bool

func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "domainscout",
		Short: "Domainscout: bulk domain availability checks",
		Long: `Domainscout expands keyword lists into candidate domains and checks
their availability against a registrar API at a paced request rate.

Credentials and pipeline settings are read from the environment or a .env
file in the working directory.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline progress to stderr")

	rootCmd.AddCommand(buildCheckCommand())
	rootCmd.AddCommand(buildCandidatesCommand())
	rootCmd.AddCommand(buildTLDsCommand())
	rootCmd.AddCommand(buildPresetsCommand())

	return rootCmd
}

type checkOptions struct {
	keywords1     string
	keywords2     string
	preset1       string
	preset2       string
	tlds          []string
	domainsFile   string
	rps           float64
	output        string
	format        string
	availableOnly bool
}

func buildCheckCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check availability of generated or listed domains",
		Example: `  domainscout check -a cloud,data -b hub,lab -t com,io
  domainscout check -f domains.txt -o results.xlsx --available-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, opts)
		},
	}

	addRequestFlags(cmd, &opts)
	cmd.Flags().Float64Var(&opts.rps, "rps", 0, "requests per second sent upstream (0 uses DEFAULT_RPS)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: ndjson, csv or xlsx (default from output extension)")
	cmd.Flags().BoolVar(&opts.availableOnly, "available-only", false, "write only available domains")

	return cmd
}

func buildCandidatesCommand() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Print the candidate domains a check would send, without checking them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCandidates(cmd, opts)
		},
	}

	addRequestFlags(cmd, &opts)
	return cmd
}

func buildPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in keyword lists for --preset1 and --preset2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := presets.Default()
			out := cmd.OutOrStdout()
			for _, side := range []presets.Side{presets.First, presets.Second} {
				list := catalog.First
				if side == presets.Second {
					list = catalog.Second
				}
				for _, p := range list {
					fmt.Fprintf(out, "%s\t%s\t%d\n", side, p.Name, len(p.Keywords))
				}
			}
			return nil
		},
	}
}

func buildTLDsCommand() *cobra.Command {
	var all bool
	var limit int

	cmd := &cobra.Command{
		Use:   "tlds [tld...]",
		Short: "List known TLDs, or validate and autocorrect the given ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				list := tld.Primary()
				if all {
					list = tld.All()
				}
				for _, t := range list {
					fmt.Fprintln(out, t)
				}
				return nil
			}

			for _, arg := range args {
				t := tld.Normalize(arg)
				switch corrected, ok := tld.Autocorrect(arg); {
				case tld.IsKnown(t):
					fmt.Fprintf(out, "%s\tok\n", t)
				case ok:
					fmt.Fprintf(out, "%s\tdid you mean %s\n", t, corrected)
				default:
					fmt.Fprintf(out, "%s\tunknown\t%s\n", t, strings.Join(tld.SuggestClosest(arg, limit), ","))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every known TLD instead of the primary set")
	cmd.Flags().IntVar(&limit, "limit", 3, "closest matches shown for an unknown TLD")
	return cmd
}

func addRequestFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.Flags().StringVarP(&opts.keywords1, "keywords1", "a", "", "first keyword list, comma or newline separated")
	cmd.Flags().StringVarP(&opts.keywords2, "keywords2", "b", "", "second keyword list, appended to each of the first")
	cmd.Flags().StringVar(&opts.preset1, "preset1", "", "built-in list to use as the first keywords")
	cmd.Flags().StringVar(&opts.preset2, "preset2", "", "built-in list to use as the second keywords")
	cmd.Flags().StringSliceVarP(&opts.tlds, "tlds", "t", nil, "TLDs to combine with the keywords")
	cmd.Flags().StringVarP(&opts.domainsFile, "domains-file", "f", "", "file with one domain per line, replaces keyword expansion")
}

func runCheck(ctx context.Context, cmd *cobra.Command, opts checkOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cmd.ErrOrStderr())

	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	req, err := opts.request()
	if err != nil {
		return err
	}
	req.RPS = opts.rps

	v := validation.NewRequestValidator(cfg.Validation.MaxTLDs, cfg.Validation.MaxKeywordsLength)
	if err := v.ValidateCheckRequest(req); err != nil {
		return describe(err, req.TLDs, req.Domains)
	}

	pipeline, err := app.NewPipeline(cfg, logger, app.Observers{})
	if err != nil {
		return err
	}
	defer pipeline.Close()

	job, err := pipeline.Service.PrepareJob(req)
	if err != nil {
		return err
	}
	logger.Info("job prepared",
		slog.String("job_id", job.ID),
		slog.Int("domains", len(job.Candidates)),
		slog.Float64("rps", job.RPS))

	w, closeOutput, err := openOutput(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return err
	}
	defer closeOutput()

	if format == export.FormatNDJSON {
		emitter := stream.NewEmitter(w, cfg.Pipeline.StreamBuffer)
		var sink scheduler.Sink = emitter
		if opts.availableOnly {
			sink = availableOnly{Sink: emitter}
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(emitter.Run)
		g.Go(func() error {
			defer emitter.Close()
			return pipeline.Service.Run(gctx, job, sink)
		})
		return g.Wait()
	}

	table := export.NewTable(opts.availableOnly)
	if err := pipeline.Service.Run(ctx, job, table); err != nil {
		return err
	}
	if format == export.FormatXLSX {
		return export.WriteXLSX(w, table.Rows())
	}
	return export.WriteCSV(w, table.Rows())
}

func runCandidates(cmd *cobra.Command, opts checkOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	req, err := opts.request()
	if err != nil {
		return err
	}

	v := validation.NewRequestValidator(cfg.Validation.MaxTLDs, cfg.Validation.MaxKeywordsLength)
	if err := v.ValidateCheckRequest(req); err != nil {
		return describe(err, req.TLDs, req.Domains)
	}

	pipeline, err := app.NewPipeline(cfg, newLogger(cmd.ErrOrStderr()), app.Observers{})
	if err != nil {
		return err
	}
	defer pipeline.Close()

	var list []string
	if req.UsesKeywords() {
		list, err = pipeline.Generator.Generate(req.Keywords1, req.Keywords2, req.TLDs)
	} else {
		list, err = pipeline.Generator.Normalize(req.Domains)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range list {
		fmt.Fprintln(out, name)
	}
	return nil
}

func (o checkOptions) request() (domain.CheckRequest, error) {
	req := domain.CheckRequest{
		Keywords1: o.keywords1,
		Keywords2: o.keywords2,
		TLDs:      o.tlds,
	}
	if o.preset1 != "" || o.preset2 != "" {
		catalog := presets.Default()
		var err error
		if o.preset1 != "" {
			if req.Keywords1, err = catalog.Keywords(presets.First, o.preset1); err != nil {
				return req, err
			}
		}
		if o.preset2 != "" {
			if req.Keywords2, err = catalog.Keywords(presets.Second, o.preset2); err != nil {
				return req, err
			}
		}
	}
	if o.domainsFile == "" {
		return req, nil
	}

	domains, err := readDomains(o.domainsFile)
	if err != nil {
		return req, err
	}
	if len(domains) == 0 {
		return req, fmt.Errorf("no domains in %s", o.domainsFile)
	}
	req.Domains = domains
	return req, nil
}

// readDomains reads one domain per line. Blank lines and lines starting
// with # are skipped.
func readDomains(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open domains file: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read domains file: %w", err)
	}
	return out, nil
}

func resolveFormat(flag, output string) (export.Format, error) {
	if flag != "" {
		return export.ParseFormat(flag)
	}
	if output == "" || output == "-" {
		return export.FormatNDJSON, nil
	}
	return export.FormatFromPath(output), nil
}

func openOutput(stdout io.Writer, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// describe expands a batch validation error into the offending entries.
func describe(err error, tlds, domains []string) error {
	var batchErr *validation.BatchValidationError
	if !errors.As(err, &batchErr) {
		return err
	}

	entries := tlds
	if len(domains) > 0 {
		entries = domains
	}

	parts := make([]string, 0, len(batchErr.Errors))
	for _, e := range batchErr.Errors {
		entry := ""
		if e.Index >= 0 && e.Index < len(entries) {
			entry = entries[e.Index]
		}
		parts = append(parts, fmt.Sprintf("%q: %v", entry, e.Err))
	}
	return fmt.Errorf("invalid request: %s", strings.Join(parts, "; "))
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// availableOnly drops every outcome that is not an available domain.
type availableOnly struct {
	scheduler.Sink
}

func (s availableOnly) Emit(ctx context.Context, o domain.Outcome) error {
	if o.Status() != domain.StatusAvailable {
		return nil
	}
	return s.Sink.Emit(ctx, o)
}
