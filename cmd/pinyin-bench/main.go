package main

import (
	"flag"
	"fmt"
	"os"

	pinyin "github.com/jamesainslie/go-pinyin"
	"github.com/jamesainslie/go-pinyin/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/corpus", "Directory containing corpus files")
		numeric   = flag.Bool("numeric", false, "Evaluate numeral tone output")
		tolerance = flag.Int("tolerance", 0, "Letter tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
	)
	flag.Parse()

	corpora, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(corpora) == 0 {
		fmt.Fprintf(os.Stderr, "no corpus files in %s\n", *corpusDir)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d corpora from %s\n\n", len(corpora), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	var opts []pinyin.Option
	if *numeric {
		opts = append(opts, pinyin.WithNumericTones())
	}
	n := pinyin.New(opts...)

	var totalTP, totalFP, totalFN, totalExact, totalCases int

	fmt.Printf("%-20s %-8s %-8s %-8s %-8s %-8s\n", "Corpus", "Cases", "Prec", "Rec", "F1", "Exact")
	for _, corpus := range corpora {
		var tp, fp, fn, exactCount int
		for _, c := range corpus.Cases {
			m, exact := bench.EvaluateCase(n, c, cfg)
			tp += m.TruePositives
			fp += m.FalsePositives
			fn += m.FalseNegatives
			if exact {
				exactCount++
			}
		}

		m := bench.Compute(tp, fp, fn, cfg)
		fmt.Printf("%-20s %-8d %-8.2f %-8.2f %-8.2f %-8.2f\n",
			corpus.ID, len(corpus.Cases), m.Precision, m.Recall, m.F1,
			float64(exactCount)/float64(len(corpus.Cases)))

		totalTP += tp
		totalFP += fp
		totalFN += fn
		totalExact += exactCount
		totalCases += len(corpus.Cases)
	}

	total := bench.Compute(totalTP, totalFP, totalFN, cfg)
	fmt.Printf("\nOverall: Precision %.2f  Recall %.2f  F1 %.2f  Weighted %.2f\n",
		total.Precision, total.Recall, total.F1, total.WeightedScore)
	fmt.Printf("Exact match: %d/%d (%.1f%%)\n",
		totalExact, totalCases, 100*float64(totalExact)/float64(totalCases))
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n", totalTP, totalFP, totalFN)
}
