package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/corrclique/clique"
	"github.com/katalvlaran/corrclique/feature"
	"github.com/katalvlaran/corrclique/pipeline"
)

// writeCSV creates a small id,f0..f3,class table in a temp dir.
func writeCSV(t *testing.T) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("id,f0,f1,f2,f3,class\n")
	for i := 0; i < 30; i++ {
		x := float64(i) / 10
		sb.WriteString(strings.Join([]string{
			ftoa(float64(i)), ftoa(0.5 + x), ftoa(1.5 - x*0.3 + float64(i%3)*0.2),
			ftoa(0.8 + float64(i%5)*0.3), ftoa(2 + float64(i%7)*0.1), "c",
		}, ","))
		sb.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))

	return path
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "corrclique v")
}

func TestRun_Text(t *testing.T) {
	out, err := execute(t, "run", writeCSV(t), "--start", "1", "--end", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "subgraphs")
}

func TestRun_YAML(t *testing.T) {
	out, err := execute(t, "run", writeCSV(t), "--start", "1", "--end", "-1", "--format", "yaml", "--workers", "2")
	require.NoError(t, err)

	var rep runReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 4, rep.Features)
	assert.LessOrEqual(t, rep.Retained, rep.Features)
	if rep.Retained > 0 {
		assert.NotEmpty(t, rep.Subgraphs)
		assert.NotNil(t, rep.Best)
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", writeCSV(t), "--format", "xml")
	assert.Error(t, err)

	// Including the class column fails to parse.
	_, err = execute(t, "run", writeCSV(t), "--start", "1", "--end", "0")
	assert.Error(t, err)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	cfg := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("max_nodes: 0\n"), 0o600))
	_, err = execute(t, "run", writeCSV(t), "--start", "1", "--end", "-1", "--config", cfg)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	res := &pipeline.Result{
		Labels: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
		Subgraphs: []clique.Subgraph{
			{{ID: 10}, {ID: 2}},
			{{ID: 4}},
		},
		Found: true,
	}
	res.Best = res.Subgraphs[0]
	res.BestScore.Score = 1.25

	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, res))
	want := "2 subgraphs\n" +
		"2 nodes: [2 10]\n" +
		"2 nodes: [c, k]\n\n" +
		"1 nodes: [4]\n" +
		"1 nodes: [e]\n\n" +
		"best: 2 nodes, score 1.2500\n" +
		"2 c\n" +
		"10 k\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText_NoCandidate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeText(&buf, &pipeline.Result{}))
	assert.Equal(t, "0 subgraphs\nno candidate found\n", buf.String())
}

func TestWriteYAML(t *testing.T) {
	res := &pipeline.Result{
		Nodes:     []feature.Node{{ID: 0}, {ID: 1}},
		Filtered:  []feature.Node{{ID: 0}, {ID: 1}},
		Subgraphs: []clique.Subgraph{{{ID: 1}, {ID: 0}}},
		Found:     true,
	}
	res.Best = res.Subgraphs[0]
	res.BestScore.Score = 0.75

	var buf bytes.Buffer
	require.NoError(t, writeYAML(&buf, res))

	var rep runReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &rep))
	require.NotNil(t, rep.Best)
	assert.Equal(t, []int{0, 1}, rep.Best.IDs)
	assert.Equal(t, []string{"0", "1"}, rep.Best.Labels)
	assert.Equal(t, 0.75, rep.Best.Score)
	assert.Equal(t, 2, rep.Features)
}
