/*
Command blockplan shows how an index space is partitioned into blocks.

Usage:

	blockplan -extent 1000,200 -blocks 7,3 [-chart plan.html] [-png plan.png]
	          [-dot plan.dot] [-record] [-verify] [-workers n] [-tracelevel Debug]

blockplan prints a table of all blocks with their offsets and sizes. It may
additionally render the block sizes as an HTML bar chart or a PNG image,
draw the partition as a Graphviz graph, or write the space record to stdout.
With -verify, a dry map-reduce run over every dimension checks that the
blocks cover each index exactly once.

All flags may also be set in a NestedText configuration file for application
tag "snarkmr"; flags given on the command line take precedence.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/snarkmr/internal/cli"
	"github.com/npillmayer/snarkmr/record"
	"github.com/npillmayer/snarkmr/space"
)

// tracer writes to trace with key 'snarkmr'
func tracer() tracing.Trace {
	return tracing.Select("snarkmr")
}

func main() {
	fs := flag.NewFlagSet("blockplan", flag.ExitOnError)
	fs.String("extent", "", "global extent per dimension, comma separated")
	fs.String("blocks", "1", "block count per dimension, comma separated")
	fs.String("chart", "", "write an HTML bar chart of block sizes to this file")
	fs.String("png", "", "write a PNG bar chart of block sizes to this file")
	fs.String("dot", "", "write the partition in Graphviz DOT format to this file")
	fs.Bool("record", false, "write the space record to stdout")
	fs.Bool("verify", false, "verify the partition by a dry map-reduce run")
	fs.Int("workers", 0, "concurrent blocks for -verify (0: all CPUs)")
	level := fs.String("tracelevel", "", "trace level (Error, Info, Debug)")
	fs.Parse(os.Args[1:])
	conf := cli.LoadConfig(fs)
	if err := cli.ConfigureTracing(conf, *level); err != nil {
		fmt.Fprintf(os.Stderr, "blockplan: %v\n", err)
		os.Exit(1)
	}
	if err := run(context.Background(), conf); err != nil {
		tracer().Errorf("blockplan: %v", err)
		fmt.Fprintf(os.Stderr, "blockplan: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *koanfadapter.KConf) error {
	sp, err := spaceFromConfig(conf)
	if err != nil {
		return err
	}
	rows := planRows(sp)
	printTable(os.Stdout, sp, rows, terminalWidth())
	if path := conf.GetString("chart"); path != "" {
		if err := writeFile(path, func(f *os.File) error { return renderHTML(f, sp, rows) }); err != nil {
			return err
		}
	}
	if path := conf.GetString("png"); path != "" {
		if err := writeFile(path, func(f *os.File) error { return renderPNG(f, sp, rows) }); err != nil {
			return err
		}
	}
	if path := conf.GetString("dot"); path != "" {
		if err := writeFile(path, func(f *os.File) error { return plan2Dot(sp, f) }); err != nil {
			return err
		}
	}
	if conf.GetBool("verify") {
		if err := verify(ctx, sp, conf.GetInt("workers"), os.Stdout); err != nil {
			return err
		}
	}
	if conf.GetBool("record") {
		w := record.NewWriter(os.Stdout)
		if err := sp.WriteRecord(w); err != nil {
			return err
		}
		return w.Flush()
	}
	return nil
}

func spaceFromConfig(conf *koanfadapter.KConf) (space.Space, error) {
	extent, err := parseList(conf.GetString("extent"))
	if err != nil || len(extent) == 0 {
		return space.Space{}, fmt.Errorf("invalid extent %q", conf.GetString("extent"))
	}
	blocks, err := parseList(conf.GetString("blocks"))
	if err != nil {
		return space.Space{}, fmt.Errorf("invalid block counts %q", conf.GetString("blocks"))
	}
	sp := space.New(extent...)
	if err := sp.SetBlockPartition(blocks...); err != nil {
		return space.Space{}, err
	}
	tracer().Infof("partitioned %v into %d blocks", sp, sp.NumBlocks())
	return sp, nil
}

func parseList(s string) ([]uint64, error) {
	var vs []uint64
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	tracer().Infof("wrote %s", path)
	return f.Close()
}
