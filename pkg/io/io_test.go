package io

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/sixdegrees/pkg/errors"
)

const (
	actorsTable = `1|Alice
2|Bob
3|Charlie
4|Dartmouth
5|Nobody
6|Nobody's Friend
7|Kevin Bacon
`
	moviesTable = `10|A movie
11|B movie
12|C movie
13|D movie
14|E movie
15|F movie
`
	creditsTable = `10|1
10|2
10|7

11|3
11|4
12|2
12|3
13|1
13|3
14|1
14|7
15|5
15|6
99|1
10|42
10|1
`
)

func writeSources(t *testing.T) Sources {
	t.Helper()
	dir := t.TempDir()
	src := Sources{
		Actors:  filepath.Join(dir, "actors.txt"),
		Movies:  filepath.Join(dir, "movies.txt"),
		Credits: filepath.Join(dir, "movie-actors.txt"),
	}
	for path, data := range map[string]string{
		src.Actors:  actorsTable,
		src.Movies:  moviesTable,
		src.Credits: creditsTable,
	} {
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return src
}

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("1|Alice\r\n\n  \n2| Bob |extra\n"))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	want := []Record{{"1", "Alice"}, {"2", "Bob |extra"}}
	if !slices.Equal(records, want) {
		t.Errorf("records = %v, want %v", records, want)
	}
}

func TestReadRecordsInvalidLine(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("1|Alice\nno separator\n"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("err = %v, want INVALID_FORMAT", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
}

func TestReadRecordsFileMissing(t *testing.T) {
	_, err := ReadRecordsFile(filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v should wrap os.ErrNotExist", err)
	}
}

func TestLoad(t *testing.T) {
	g, report, err := Load(context.Background(), writeSources(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantActors := []string{"Alice", "Bob", "Charlie", "Dartmouth", "Nobody", "Nobody's Friend", "Kevin Bacon"}
	if got := g.Vertices(); !slices.Equal(got, wantActors) {
		t.Errorf("Vertices() = %v, want %v", got, wantActors)
	}

	want := LoadReport{Actors: 7, Movies: 6, Credits: 13, Pairs: 7, SkippedCredits: 2}
	if *report != want {
		t.Errorf("report = %+v, want %+v", *report, want)
	}

	tests := []struct {
		a, b string
		want []string
	}{
		{"Alice", "Kevin Bacon", []string{"A movie", "E movie"}},
		{"Kevin Bacon", "Alice", []string{"A movie", "E movie"}},
		{"Bob", "Charlie", []string{"C movie"}},
		{"Charlie", "Dartmouth", []string{"B movie"}},
		{"Nobody's Friend", "Nobody", []string{"F movie"}},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			label, err := g.Label(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Label: %v", err)
			}
			if !slices.Equal([]string(label), tt.want) {
				t.Errorf("Label = %v, want %v", label, tt.want)
			}
		})
	}

	if g.HasEdge("Alice", "Dartmouth") {
		t.Error("Alice and Dartmouth never appeared together")
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := Load(ctx, writeSources(t)); !stderrors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBuildActorWithoutCredits(t *testing.T) {
	g, report, err := Build(Tables{
		Actors: []Record{{"1", "Loner"}},
		Movies: []Record{{"10", "Solo"}},
		Credits: []Record{
			{"10", "1"},
		},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !g.HasVertex("Loner") {
		t.Error("actor without co-stars should still be a vertex")
	}
	if report.Pairs != 0 || g.NumEdges() != 0 {
		t.Errorf("pairs = %d, edges = %d, want 0", report.Pairs, g.NumEdges())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g, _, err := Load(context.Background(), writeSources(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if n := strings.Count(buf.String(), `"movies"`); n != 7 {
		t.Errorf("links written = %d, want 7", n)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !slices.Equal(back.Vertices(), g.Vertices()) {
		t.Errorf("Vertices() = %v, want %v", back.Vertices(), g.Vertices())
	}
	if back.NumEdges() != g.NumEdges() {
		t.Errorf("NumEdges() = %d, want %d", back.NumEdges(), g.NumEdges())
	}
	for _, a := range g.Vertices() {
		want, _ := g.OutNeighbors(a)
		got, _ := back.OutNeighbors(a)
		slices.Sort(want)
		slices.Sort(got)
		if !slices.Equal(got, want) {
			t.Errorf("OutNeighbors(%s) = %v, want %v", a, got, want)
		}
		for _, b := range want {
			l1, _ := g.Label(a, b)
			l2, _ := back.Label(a, b)
			if !slices.Equal(l1, l2) {
				t.Errorf("Label(%s, %s) = %v, want %v", a, b, l2, l1)
			}
		}
	}
}

func TestExportImportJSON(t *testing.T) {
	g, _, err := Load(context.Background(), writeSources(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	back, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if back.NumVertices() != 7 || back.NumEdges() != 14 {
		t.Errorf("imported %d vertices, %d edges; want 7, 14", back.NumVertices(), back.NumEdges())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"actors": [`},
		{"unknown actor", `{"actors": ["Alice"], "links": [{"a": "Alice", "b": "Bob", "movies": ["X"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("err = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestImportJSONMissing(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
