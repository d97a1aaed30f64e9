/*
Command kcquery builds a knowledge-commitment query from a file of scalars.

Usage:

	kcquery -scalars s.txt -alpha 12345 [-blocks 16] [-workers n] [-out q.txt]
	kcquery -generate 1000 [-seed 1] [-density 0.3] [-out s.txt]

The scalar file holds a scalar record: the number of scalars followed by one
decimal per line. kcquery splits the scalars into blocks, commits to every
non-zero scalar s as (s·G, αs·H) in parallel, and writes the resulting sparse
vector record. With -generate, it writes a random scalar file instead.
*/
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"os"
	"os/signal"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snarkmr/internal/cli"
	"github.com/npillmayer/snarkmr/kcquery"
	"github.com/npillmayer/snarkmr/record"
	"golang.org/x/crypto/bn256"
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

func main() {
	fs := flag.NewFlagSet("kcquery", flag.ExitOnError)
	fs.String("scalars", "", "scalar record file ('-' for stdin)")
	fs.String("alpha", "", "knowledge commitment shift α, decimal")
	fs.Int("blocks", 16, "number of blocks")
	fs.Int("workers", 0, "concurrent blocks (0: all CPUs)")
	fs.String("out", "", "output file (default stdout)")
	fs.Int("generate", 0, "write this many random scalars instead of a query")
	fs.Int("seed", 1, "random seed for -generate")
	fs.Float64("density", 0.5, "share of non-zero scalars for -generate")
	level := fs.String("tracelevel", "", "trace level (Error, Info, Debug)")
	fs.Parse(os.Args[1:])
	conf := cli.LoadConfig(fs)
	if err := cli.ConfigureTracing(conf, *level); err != nil {
		fmt.Fprintf(os.Stderr, "kcquery: %v\n", err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, conf); err != nil {
		tracer().Errorf("kcquery: %v", err)
		fmt.Fprintf(os.Stderr, "kcquery: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *koanfadapter.KConf) (err error) {
	out := io.Writer(os.Stdout)
	if path := conf.GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	w := record.NewWriter(out)
	if n := conf.GetInt("generate"); n > 0 {
		density := conf.Koanf().Float64("density")
		if !conf.IsSet("density") {
			density = 0.5
		}
		rnd := rand.New(rand.NewSource(int64(conf.GetInt("seed"))))
		if err := kcquery.WriteScalars(w, generate(rnd, n, density)); err != nil {
			return err
		}
		return w.Flush()
	}
	alpha, ok := new(big.Int).SetString(conf.GetString("alpha"), 10)
	if !ok {
		return fmt.Errorf("invalid alpha %q", conf.GetString("alpha"))
	}
	scalars, err := readScalars(conf.GetString("scalars"))
	if err != nil {
		return err
	}
	q, err := build(ctx, conf, scalars, alpha)
	if err != nil {
		return err
	}
	if err := q.WriteRecord(w); err != nil {
		return err
	}
	return w.Flush()
}

func readScalars(path string) ([]*big.Int, error) {
	in := io.Reader(os.Stdin)
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = bufio.NewReader(f)
	}
	scalars, err := kcquery.ReadScalars(record.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("reading scalars: %w", err)
	}
	tracer().Infof("read %d scalars", len(scalars))
	return scalars, nil
}

func generate(rnd *rand.Rand, n int, density float64) []*big.Int {
	scalars := make([]*big.Int, n)
	for i := range scalars {
		if rnd.Float64() < density {
			scalars[i] = new(big.Int).Rand(rnd, bn256.Order)
		} else {
			scalars[i] = new(big.Int)
		}
	}
	return scalars
}
