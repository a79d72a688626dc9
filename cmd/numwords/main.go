package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	numwords "github.com/goliatone/go-numwords"
)

type cliConfig struct {
	locale    string
	mode      string
	separator string
	gender    string
	era       bool
	packs     []string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "numwords:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("numwords", flag.ContinueOnError)
	fs.StringVar(&cfg.locale, "locale", "en", "target locale (e.g. es, en, en-IN)")
	fs.StringVar(&cfg.mode, "mode", "plain", "rendering mode: plain, currency, or year")
	fs.StringVar(&cfg.separator, "separator", "", "decimal separator word: point, comma, or period")
	fs.StringVar(&cfg.gender, "gender", "", "agreement gender override: masculine or feminine")
	fs.BoolVar(&cfg.era, "era", false, "append the era suffix to positive years")
	fs.Func("pack", "additional pack file (YAML or JSON), repeatable", func(path string) error {
		cfg.packs = append(cfg.packs, path)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	values := fs.Args()
	if len(values) == 0 {
		return errors.New("no values given")
	}

	registry := numwords.DefaultRegistry()
	if len(cfg.packs) > 0 {
		if err := registry.LoadFrom(numwords.NewFileLoader(cfg.packs...)); err != nil {
			return err
		}
	}

	converter, err := numwords.New(
		numwords.WithLocale(cfg.locale),
		numwords.WithRegistry(registry),
	)
	if err != nil {
		return err
	}

	opts, err := convertOptions(cfg)
	if err != nil {
		return err
	}

	for _, value := range values {
		out, err := converter.Convert(value, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", value, err)
		}
		fmt.Println(out)
	}
	return nil
}

func convertOptions(cfg cliConfig) ([]numwords.ConvertOption, error) {
	var opts []numwords.ConvertOption

	switch strings.ToLower(cfg.mode) {
	case "", "plain":
	case "currency":
		opts = append(opts, numwords.WithMode(numwords.ModeCurrency))
	case "year":
		opts = append(opts, numwords.WithMode(numwords.ModeYear))
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.mode)
	}

	switch strings.ToLower(cfg.separator) {
	case "":
	case "point":
		opts = append(opts, numwords.WithDecimalSeparator(numwords.SeparatorPoint))
	case "comma":
		opts = append(opts, numwords.WithDecimalSeparator(numwords.SeparatorComma))
	case "period":
		opts = append(opts, numwords.WithDecimalSeparator(numwords.SeparatorPeriod))
	default:
		return nil, fmt.Errorf("unknown separator %q", cfg.separator)
	}

	switch strings.ToLower(cfg.gender) {
	case "":
	case "masculine", "m":
		opts = append(opts, numwords.WithGender(numwords.GenderMasculine))
	case "feminine", "f":
		opts = append(opts, numwords.WithGender(numwords.GenderFeminine))
	default:
		return nil, fmt.Errorf("unknown gender %q", cfg.gender)
	}

	if cfg.era {
		opts = append(opts, numwords.WithEraSuffix(true))
	}

	return opts, nil
}
