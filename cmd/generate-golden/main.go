// Command generate-golden writes the reference values of F(n) mod m used by
// the calculator tests to internal/fibonacci/testdata/fibmod_golden.json.
//
// Values come from fibonacci.FastDoublingMod, which works on math/big
// integers only and shares no code with the generic strategies. Negative
// indices keep their sign, as the signed numeric types return them.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agbru/fibmod/internal/fibonacci"
)

// GoldenData is one entry of the golden file.
type GoldenData struct {
	N      string `json:"n"`
	M      string `json:"m"`
	Result string `json:"result"`
}

// indices cover both signs, the base cases, the uint64 and int64 limits and
// one index wider than 64 bits.
var indices = []string{
	"-1000", "-101", "-100", "-35", "-10", "-2", "-1",
	"0", "1", "2", "10", "35", "90", "100", "1000", "65536", "1000000",
	"9223372036854775807",  // max int64
	"18446744073709551615", // max uint64
	"12345678901234567890123",
}

// moduli include 1 and the largest primes below 2^63 and 2^64, which push
// the fixed-width types to their widening paths.
var moduli = []string{
	"1",
	"1000",
	"1000000000",
	"9223372036854775783",
	"18446744073709551557",
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	outPath := flag.String("out", "internal/fibonacci/testdata/fibmod_golden.json", "Path of the golden file to write.")
	flag.Parse()

	cases, err := generate(indices, moduli)
	if err != nil {
		log.Fatal().Err(err).Msg("generating golden data")
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("creating output directory")
	}
	file, err := os.Create(*outPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("creating golden file")
	}
	defer file.Close()

	if err := write(file, cases); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("writing golden file")
	}
	log.Info().Int("cases", len(cases)).Str("path", *outPath).Msg("golden file written")
}

// generate computes one entry per (n, m) pair, in the order given.
func generate(ns, ms []string) ([]GoldenData, error) {
	cases := make([]GoldenData, 0, len(ns)*len(ms))
	for _, nstr := range ns {
		n, ok := new(big.Int).SetString(nstr, 10)
		if !ok {
			return nil, fmt.Errorf("invalid index %q", nstr)
		}
		for _, mstr := range ms {
			m, ok := new(big.Int).SetString(mstr, 10)
			if !ok {
				return nil, fmt.Errorf("invalid modulus %q", mstr)
			}
			r, err := fibonacci.FastDoublingMod(n, m)
			if err != nil {
				return nil, fmt.Errorf("F(%s) mod %s: %w", nstr, mstr, err)
			}
			cases = append(cases, GoldenData{N: n.String(), M: m.String(), Result: r.String()})
		}
	}
	return cases, nil
}

func write(w io.Writer, cases []GoldenData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cases)
}
