package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	pinyin "github.com/jamesainslie/go-pinyin"
	"github.com/jamesainslie/go-pinyin/lexicon"
)

func main() {
	numeric := flag.Bool("numeric", false, "Emit numeral tone notation instead of diacritics")
	verbose := flag.Bool("verbose", false, "Log unresolved spans to stderr")
	lexiconPath := flag.String("lexicon", "", "Path to a lexicon CSV file (enables lookup mode)")
	mode := flag.String("mode", "normalize", "Mode: normalize or lookup")

	flag.Parse()

	text := strings.Join(flag.Args(), " ")
	if text == "" {
		fmt.Fprintln(os.Stderr, "Usage: pinyin-cli [OPTIONS] TEXT")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var opts []pinyin.Option
	if *numeric {
		opts = append(opts, pinyin.WithNumericTones())
	}
	if *verbose {
		opts = append(opts, pinyin.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	n := pinyin.New(opts...)

	switch *mode {
	case "normalize":
		res := n.Normalize(text)
		fmt.Println(res.Text)
		if !res.FullyResolved {
			fmt.Fprintf(os.Stderr, "warning: %d span(s) could not be resolved\n", len(res.Flagged))
			for _, sp := range res.Flagged {
				fmt.Fprintf(os.Stderr, "  bytes %d-%d: %q\n", sp.Start, sp.End, text[sp.Start:sp.End])
			}
		}

	case "lookup":
		if *lexiconPath == "" {
			fmt.Fprintln(os.Stderr, "error: -lexicon required for lookup mode")
			os.Exit(1)
		}
		store, err := lexicon.Open(*lexiconPath, lexicon.WithNormalizer(n))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening lexicon: %v\n", err)
			os.Exit(1)
		}
		readings, err := store.Suggestions(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		if len(readings) == 0 {
			fmt.Fprintf(os.Stderr, "no readings for %q\n", text)
			os.Exit(1)
		}
		for _, r := range readings {
			fmt.Println(r)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}
