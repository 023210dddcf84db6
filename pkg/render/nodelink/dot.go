package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sixdegrees/pkg/costar"
)

// Options configures node-link diagram rendering.
type Options struct {
	// MaxMovies limits the titles printed on an edge label.
	// Zero prints all of them.
	MaxMovies int

	// Highlight lists actors to emphasize, typically the result of a path
	// query. Edges between consecutive highlighted actors are drawn bold.
	Highlight []string
}

// ToDOT converts a path tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Actors appear in tree order. The root, the only actor without an outgoing
// edge, is filled so the center stands out.
func ToDOT(tree *costar.Graph, opts Options) string {
	highlight := make(map[string]bool, len(opts.Highlight))
	for _, a := range opts.Highlight {
		highlight[a] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12, color=\"#666666\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	actors := tree.Vertices()
	for _, a := range actors {
		attrs := []string{fmt.Sprintf("label=%q", a)}
		if d, _ := tree.OutDegree(a); d == 0 {
			attrs = append(attrs, "fillcolor=\"#f4c542\"", "penwidth=2")
		} else if highlight[a] {
			attrs = append(attrs, "fillcolor=\"#cfe8ff\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", a, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, a := range actors {
		parents, _ := tree.OutNeighbors(a)
		for _, p := range parents {
			movies, _ := tree.Label(a, p)
			attrs := []string{fmt.Sprintf("label=%q", fmtMovies(movies, opts.MaxMovies))}
			if highlight[a] && highlight[p] {
				attrs = append(attrs, "penwidth=2.5", "color=black")
			}
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", a, p, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtMovies(m costar.Movies, limit int) string {
	if limit <= 0 || len(m) <= limit {
		return strings.Join(m, "\n")
	}
	return strings.Join(m[:limit], "\n") + fmt.Sprintf("\n(+%d more)", len(m)-limit)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales from its
// viewBox instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
