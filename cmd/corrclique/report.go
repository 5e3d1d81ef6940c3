package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/corrclique/clique"
	"github.com/katalvlaran/corrclique/pipeline"
)

// subgraphReport is one clique in ascending ID order.
type subgraphReport struct {
	IDs    []int    `yaml:"ids"`
	Labels []string `yaml:"labels"`
}

type bestReport struct {
	IDs      []int    `yaml:"ids"`
	Labels   []string `yaml:"labels"`
	Score    float64  `yaml:"score"`
	EdgeMean float64  `yaml:"edge_mean"`
	NodeMean float64  `yaml:"node_mean"`
}

type runReport struct {
	Features  int              `yaml:"features"`
	Retained  int              `yaml:"retained"`
	Edges     int              `yaml:"edges"`
	Subgraphs []subgraphReport `yaml:"subgraphs"`
	Best      *bestReport      `yaml:"best,omitempty"`
}

func describe(res *pipeline.Result, sg clique.Subgraph) subgraphReport {
	ids := sg.SortedIDs()
	r := subgraphReport{IDs: make([]int, len(ids)), Labels: make([]string, len(ids))}
	for i, id := range ids {
		r.IDs[i] = int(id)
		r.Labels[i] = res.Label(id)
	}

	return r
}

func buildReport(res *pipeline.Result) runReport {
	rep := runReport{
		Features:  len(res.Nodes),
		Retained:  len(res.Filtered),
		Edges:     len(res.Kept),
		Subgraphs: make([]subgraphReport, len(res.Subgraphs)),
	}
	for i, sg := range res.Subgraphs {
		rep.Subgraphs[i] = describe(res, sg)
	}
	if res.Found {
		d := describe(res, res.Best)
		rep.Best = &bestReport{
			IDs:      d.IDs,
			Labels:   d.Labels,
			Score:    res.BestScore.Score,
			EdgeMean: res.BestScore.EdgeMean,
			NodeMean: res.BestScore.NodeMean,
		}
	}

	return rep
}

func writeYAML(w io.Writer, res *pipeline.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(buildReport(res)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, res *pipeline.Result) error {
	rep := buildReport(res)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d subgraphs\n", len(rep.Subgraphs))
	for _, sg := range rep.Subgraphs {
		fmt.Fprintf(&sb, "%d nodes: %v\n", len(sg.IDs), sg.IDs)
		fmt.Fprintf(&sb, "%d nodes: [%s]\n\n", len(sg.Labels), strings.Join(sg.Labels, ", "))
	}

	if rep.Best == nil {
		sb.WriteString("no candidate found\n")
	} else {
		fmt.Fprintf(&sb, "best: %d nodes, score %.4f\n", len(rep.Best.IDs), rep.Best.Score)
		for i, id := range rep.Best.IDs {
			fmt.Fprintf(&sb, "%d %s\n", id, rep.Best.Labels[i])
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
