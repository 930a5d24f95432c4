package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/kalafut/docdiff"
	"github.com/kalafut/docdiff/internal/config"
	"github.com/kalafut/docdiff/internal/logging"
)

type cli struct {
	Config  string `short:"c" type:"path" default:"docdiff.yaml" help:"YAML settings file. Missing files are ignored."`
	Verbose bool   `short:"v" help:"Log debug output."`

	Compare struct {
		OldFile   string `arg:"" type:"existingfile" help:"Old document text, pages separated by form feeds."`
		NewFile   string `arg:"" type:"existingfile" help:"New document text, pages separated by form feeds."`
		Window    *int   `short:"w" help:"Lookahead window. Selected from input size when unset."`
		Format    string `short:"f" help:"Output format: text, html or json."`
		Reference bool   `help:"Also report the edit count of a minimal alignment."`
	} `cmd:"" help:"Compare two documents word by word."`

	Patch struct {
		OldFile string `arg:"" type:"existingfile" help:"Old document text."`
		NewFile string `arg:"" type:"existingfile" help:"New document text."`
		Window  *int   `short:"w" help:"Lookahead window. Selected from input size when unset."`
		NoCRC   bool   `name:"no-crc" help:"Omit the checksum."`
	} `cmd:"" help:"Make a token patch that turns 'old' into 'new'."`

	Apply struct {
		OldFile   string `arg:"" type:"existingfile" help:"Old document text."`
		PatchFile string `arg:"" type:"existingfile" help:"Patch file."`
		NoCRC     bool   `name:"no-crc" help:"Skip checksum verification."`
	} `cmd:"" help:"Apply a token patch and print the new words."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("docdiff"),
		kong.Description("Word-level comparison of extracted document text."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	switch ctx.Command() {
	case "compare <old-file> <new-file>":
		if c.Compare.Format != "" {
			cfg.Format = c.Compare.Format
		}
		if c.Compare.Reference {
			cfg.Reference = true
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return compare(cfg, logger, c.Compare.Window, c.Compare.OldFile, c.Compare.NewFile, stdout, stderr)
	case "patch <old-file> <new-file>":
		if err := cfg.Validate(); err != nil {
			return err
		}
		r, err := compareFiles(cfg, logger, c.Patch.Window, c.Patch.OldFile, c.Patch.NewFile)
		if err != nil {
			return err
		}
		var opts []docdiff.FuncOption
		if c.Patch.NoCRC {
			opts = append(opts, docdiff.WithNoCRC())
		}
		_, err = stdout.Write(docdiff.MakePatch(r, opts...))
		return err
	case "apply <old-file> <patch-file>":
		old, err := readPages(c.Apply.OldFile, cfg.PageSeparator)
		if err != nil {
			return err
		}
		patch, err := os.ReadFile(c.Apply.PatchFile)
		if err != nil {
			return err
		}
		var opts []docdiff.FuncOption
		if c.Apply.NoCRC {
			opts = append(opts, docdiff.WithNoCRC())
		}
		tokens, err := docdiff.ApplyPatch(docdiff.Tokenize(old), patch, opts...)
		if err != nil {
			return fmt.Errorf("error applying patch: %w", err)
		}
		_, err = fmt.Fprintln(stdout, strings.Join(tokens, " "))
		return err
	default:
		return fmt.Errorf("unexpected command %q", ctx.Command())
	}
}

func compare(cfg *config.Config, logger *zap.Logger, window *int, oldFile, newFile string, stdout, stderr io.Writer) error {
	r, err := compareFiles(cfg, logger, window, oldFile, newFile)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case config.FormatHTML:
		_, err = fmt.Fprintln(stdout, r.HTML())
	case config.FormatJSON:
		var b []byte
		b, err = json.Marshal(r)
		if err == nil {
			_, err = fmt.Fprintln(stdout, string(b))
		}
	default:
		_, err = fmt.Fprintln(stdout, r.Text())
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stderr, "%d removed, %d added (window %d)\n", r.Deleted, r.Inserted, r.Window)

	if cfg.Reference {
		ref, err := docdiff.Reference(r.Old(), r.New(), docdiff.WithLogger(logger))
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "minimal: %d removed, %d added\n", ref.Deleted, ref.Inserted)
	}
	return nil
}

// compareFiles aligns two page dumps. A window given on the command line is
// passed through as is, so values below 1 are rejected by Align. Only the
// config file's window uses 0 for automatic.
func compareFiles(cfg *config.Config, logger *zap.Logger, window *int, oldFile, newFile string) (*docdiff.Result, error) {
	old, err := readPages(oldFile, cfg.PageSeparator)
	if err != nil {
		return nil, err
	}
	new, err := readPages(newFile, cfg.PageSeparator)
	if err != nil {
		return nil, err
	}

	opts := []docdiff.FuncOption{docdiff.WithLogger(logger)}
	switch {
	case window != nil:
		opts = append(opts, docdiff.WithWindow(*window))
	case cfg.Window != 0:
		opts = append(opts, docdiff.WithWindow(cfg.Window))
	}
	return docdiff.Compare(old, new, opts...)
}

func readPages(path, sep string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(b), sep), nil
}
