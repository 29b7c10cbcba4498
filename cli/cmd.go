package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/customeros/namesherpa/bulkgenerate"
	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/namegen"
)

var version = "dev"

func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: namesherpa <command> [arguments]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate <male|female> [style]")
	fmt.Fprintln(w, "  pronounce <romaji>")
	fmt.Fprintln(w, "  styles")
	fmt.Fprintln(w, "  bulk <male|female> <count> <output file> [style]")
	fmt.Fprintln(w, "  interactive")
	fmt.Fprintln(w, "  version")
}

func Generate(w io.Writer, composer *namegen.Composer, gender, style string) error {
	g, err := namegen.ParseGender(gender)
	if err != nil {
		return err
	}

	name, err := composer.Compose(g, style)
	if err != nil {
		return err
	}

	return printOutput(w, BuildResponse(g, composer.ResolveStyle(style), name))
}

func Pronounce(w io.Writer, romaji string) error {
	return printOutput(w, map[string]string{
		"romaji":        romaji,
		"pronunciation": namegen.Pronounce(romaji),
	})
}

func ListStyles(w io.Writer, composer *namegen.Composer) error {
	return printOutput(w, composer.Styles())
}

func Bulk(ctx context.Context, composer *namegen.Composer, cfg *config.Config, log *zap.Logger, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("usage: namesherpa bulk <male|female> <count> <output file> [style]")
	}
	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[1], err)
	}

	req := bulkgenerate.Request{
		Gender:     namegen.Gender(args[0]),
		Count:      count,
		OutputFile: args[2],
		BatchSize:  cfg.Bulk.BatchSize,
		Progress:   os.Stderr,
	}
	if len(args) == 4 {
		req.Style = args[3]
	}

	result, err := bulkgenerate.Run(ctx, composer, req, log)
	if err != nil {
		return err
	}
	return printOutput(os.Stdout, result)
}

func Version(w io.Writer) {
	fmt.Fprintf(w, "NameSherpa %s\n", version)
}

// printOutput keeps "&" and friends readable in style labels.
func printOutput(w io.Writer, response interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(response); err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}
	return nil
}
