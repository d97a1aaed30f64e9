package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snarkmr/internal/cli"
	"github.com/npillmayer/snarkmr/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpace(t *testing.T) space.Space {
	t.Helper()
	return planSpace(t, "10, 4", "3,2")
}

func planSpace(t *testing.T, extent, blocks string) space.Space {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("extent", "", "")
	fs.String("blocks", "", "")
	require.NoError(t, fs.Parse([]string{"-extent", extent, "-blocks", blocks}))
	sp, err := spaceFromConfig(cli.LoadConfig(fs))
	require.NoError(t, err)
	return sp
}

func TestPlanRows(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	sp := testSpace(t)
	rows := planRows(sp)
	require.Len(t, rows, 6)
	var total uint64
	for _, r := range rows {
		total += r.count
	}
	assert.Equal(t, uint64(40), total)
	assert.Equal(t, []uint64{2, 1}, rows[5].block)
	assert.Equal(t, []uint64{6, 2}, rows[5].offset)
	assert.Equal(t, uint64(8), rows[5].count)
}

func TestPrintTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	color.NoColor = true
	sp := testSpace(t)
	var buf bytes.Buffer
	printTable(&buf, sp, planRows(sp), 80)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "6 blocks")
	assert.Contains(t, lines[6], "size 4,2")
}

func TestCharts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	sp := testSpace(t)
	rows := planRows(sp)
	var html bytes.Buffer
	require.NoError(t, renderHTML(&html, sp, rows))
	assert.Contains(t, html.String(), "echarts")
	var png bytes.Buffer
	require.NoError(t, renderPNG(&png, sp, rows))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))
}

func TestVerify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	var out bytes.Buffer
	require.NoError(t, verify(context.Background(), testSpace(t), 2, &out))
	assert.Contains(t, out.String(), "dimension 0: 3 of 3 blocks verified")
	assert.Contains(t, out.String(), "dimension 1: 2 of 2 blocks verified")
}

func TestVerifyFinerLaterDimension(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	sp := planSpace(t, "10,10", "1,8")
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() { done <- verify(context.Background(), sp, 2, &out) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("verify did not finish for extent 10,10 with blocks 1,8")
	}
	assert.Contains(t, out.String(), "dimension 0: 1 of 1 blocks verified")
	assert.Contains(t, out.String(), "dimension 1: 8 of 8 blocks verified")
}

func TestParseList(t *testing.T) {
	vs, err := parseList("1, 2,,3")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3}, vs)
	_, err = parseList("1,x")
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "snarkmr")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, plan2Dot(testSpace(t), &buf))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "strict digraph {"))
	assert.Equal(t, 7, strings.Count(dot, "->"), "2 dimensions and 5 blocks")
	assert.Contains(t, dot, `label="4 @6"`)
	assert.Equal(t, 2, strings.Count(dot, hexhlcolors[2]), "blocks 0 and 1 of dimension 0 are short")
}
