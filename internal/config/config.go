package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"shotfix/internal/domain"
)

type Config struct {
	Settings domain.Settings
	DryRun   bool
	Verbose  bool
	Plain    bool
}

// Flags holds the raw flag values until Resolve applies env fallbacks and defaults.
type Flags struct {
	set *pflag.FlagSet

	sourceDir      string
	resultDir      string
	rename         bool
	renameOriginal bool
	text           string
	prefix         bool
	scaler         string
	quality        int
	keepTime       bool
	dryRun         bool
	verbose        bool
	plain          bool
}

func AddFlags(set *pflag.FlagSet) *Flags {
	f := &Flags{set: set}
	set.StringVarP(&f.sourceDir, "source", "s", "", "Source directory with screenshots (default: working directory)")
	set.StringVarP(&f.resultDir, "result", "r", "", "Result directory for converted images (default: working directory)")
	set.BoolVar(&f.rename, "rename", true, "Insert text into a file name")
	set.BoolVar(&f.renameOriginal, "rename-original", false, "Rename the original instead of the converted image")
	set.StringVarP(&f.text, "text", "t", domain.DefaultInsertText, "Text to insert (letters, digits, _ and -)")
	set.BoolVarP(&f.prefix, "prefix", "p", false, "Insert the text as a prefix instead of a suffix")
	set.StringVar(&f.scaler, "scaler", string(domain.ScalerBilinear), "Interpolation: nearest, bilinear or catmullrom")
	set.IntVarP(&f.quality, "quality", "q", domain.DefaultJPEGQuality, "JPEG quality (1-100)")
	set.BoolVar(&f.keepTime, "keep-time", true, "Give converted images the capture time of their source")
	set.BoolVarP(&f.dryRun, "dry-run", "d", false, "Dry run (no conversion)")
	set.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output")
	set.BoolVar(&f.plain, "plain", false, "Plain text output even on a terminal")
	return f
}

func (f *Flags) Resolve() (Config, error) {
	if !f.set.Changed("source") {
		f.sourceDir = envOrEmpty("SHOTFIX_SOURCE_DIR")
	}
	if !f.set.Changed("result") {
		f.resultDir = envOrEmpty("SHOTFIX_RESULT_DIR")
	}
	if !f.set.Changed("text") {
		if text, ok := os.LookupEnv("SHOTFIX_TEXT"); ok {
			f.text = text
		}
	}
	if !f.verbose {
		f.verbose = envTruthy("SHOTFIX_VERBOSE")
	}

	wd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}
	scaler, err := domain.ParseScaler(f.scaler)
	if err != nil {
		return Config{}, err
	}

	settings := domain.DefaultSettings(wd)
	settings.SourceDir = absOr(f.sourceDir, wd)
	settings.ResultDir = absOr(f.resultDir, wd)
	settings.ShouldRename = f.rename
	settings.RenameConverted = !f.renameOriginal
	settings.InsertText = f.text
	settings.InsertAsPrefix = f.prefix
	settings.Scaler = scaler
	settings.JPEGQuality = f.quality
	settings.PreserveTime = f.keepTime

	return Config{
		Settings: settings,
		DryRun:   f.dryRun,
		Verbose:  f.verbose,
		Plain:    f.plain,
	}, nil
}

// Parse is AddFlags and Resolve on a fresh flag set.
func Parse(args []string) (Config, error) {
	set := pflag.NewFlagSet("shotfix", pflag.ContinueOnError)
	flags := AddFlags(set)
	if err := set.Parse(args); err != nil {
		return Config{}, err
	}
	return flags.Resolve()
}

// absOr makes dir absolute so that equal directories compare equal.
func absOr(dir, fallback string) string {
	if dir == "" {
		return fallback
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return abs
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
