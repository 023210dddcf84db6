package io

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sixdegrees/pkg/costar"
	"github.com/matzehuels/sixdegrees/pkg/observability"
)

// Sources names the three data files of a movie world.
type Sources struct {
	Actors  string // <actor id>|<actor name>
	Movies  string // <movie id>|<movie title>
	Credits string // <movie id>|<actor id>
}

// Tables holds the parsed records of the three data files.
type Tables struct {
	Actors  []Record
	Movies  []Record
	Credits []Record
}

// LoadReport summarizes what a load produced and what it had to skip.
type LoadReport struct {
	Actors         int // vertices in the graph
	Movies         int // distinct movie IDs
	Credits        int // credits that joined a known actor to a known movie
	Pairs          int // undirected co-star links
	SkippedCredits int // credits naming an unknown movie or actor
}

// Load reads the three data files and builds the co-appearance graph.
// The files are read in order actors, movies, credits; ctx is checked
// between files.
func Load(ctx context.Context, src Sources) (g *costar.Graph, report *LoadReport, err error) {
	hooks := observability.Load()
	hooks.OnLoadStart(ctx, src.Credits)
	start := time.Now()
	defer func() {
		actors, pairs := 0, 0
		if report != nil {
			actors, pairs = report.Actors, report.Pairs
		}
		hooks.OnLoadComplete(ctx, src.Credits, actors, pairs, time.Since(start), err)
	}()

	var t Tables
	for _, f := range []struct {
		path string
		dst  *[]Record
	}{
		{src.Actors, &t.Actors},
		{src.Movies, &t.Movies},
		{src.Credits, &t.Credits},
	} {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		records, err := ReadRecordsFile(f.path)
		if err != nil {
			return nil, nil, err
		}
		*f.dst = records
	}
	return Build(t)
}

// Build turns parsed tables into a co-appearance graph.
//
// Every actor becomes a vertex in actor-table order, even actors without
// credits. For each movie, in movie-table order, every pair of distinct
// actors in its cast is linked with the movie title merged into their edge
// label. Repeated credits of the same actor in one movie count once.
func Build(t Tables) (*costar.Graph, *LoadReport, error) {
	g := costar.NewGraph()
	report := &LoadReport{}

	names := make(map[string]string, len(t.Actors))
	for _, a := range t.Actors {
		names[a.Key] = a.Value
		g.InsertVertex(a.Value)
	}

	titles := make(map[string]string, len(t.Movies))
	var order []string
	for _, m := range t.Movies {
		if _, seen := titles[m.Key]; !seen {
			order = append(order, m.Key)
		}
		titles[m.Key] = m.Value
	}

	cast := make(map[string][]string, len(order))
	credited := make(map[[2]string]bool, len(t.Credits))
	for _, c := range t.Credits {
		movieID, actorID := c.Key, c.Value
		if _, ok := titles[movieID]; !ok {
			report.SkippedCredits++
			continue
		}
		if _, ok := names[actorID]; !ok {
			report.SkippedCredits++
			continue
		}
		key := [2]string{movieID, actorID}
		if credited[key] {
			continue
		}
		credited[key] = true
		cast[movieID] = append(cast[movieID], actorID)
		report.Credits++
	}

	for _, movieID := range order {
		title, actors := titles[movieID], cast[movieID]
		for i := 0; i < len(actors); i++ {
			for j := i + 1; j < len(actors); j++ {
				if err := costar.Link(g, names[actors[i]], names[actors[j]], title); err != nil {
					return nil, nil, fmt.Errorf("link %s: %w", title, err)
				}
			}
		}
	}

	s := costar.Summarize(g)
	report.Actors = s.Actors
	report.Pairs = s.Pairs
	report.Movies = len(order)
	return g, report, nil
}
