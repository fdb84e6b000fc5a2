package util_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mihai-snyk/moea/pkg/benchmarks"
	"github.com/mihai-snyk/moea/pkg/framework"
	"github.com/mihai-snyk/moea/pkg/util"
)

func TestWriteFront(t *testing.T) {
	var buf bytes.Buffer
	err := util.WriteFront(&buf, []framework.ObjectiveSpacePoint{{0.5, 1}, {2, 0.125}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("0.5 1\n2 0.125\n", buf.String()); diff != "" {
		t.Errorf("WriteFront() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFront(t *testing.T) {
	input := "# f1 f2\n0.1 0.9\n\n  0.5   0.5  \n1e-3 2\n"
	got, err := util.ReadFront(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []framework.ObjectiveSpacePoint{{0.1, 0.9}, {0.5, 0.5}, {0.001, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadFront() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFrontErrors(t *testing.T) {
	tests := map[string]string{
		"not a number":     "0.1 abc\n",
		"ragged dimension": "0.1 0.2\n0.3\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := util.ReadFront(strings.NewReader(input)); err == nil {
				t.Error("ReadFront() succeeded on malformed input")
			}
		})
	}
}

func TestFrontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "FUN.txt")
	points := []framework.ObjectiveSpacePoint{{1, 2, 3}, {3, 2, 1}}
	if err := util.WriteFrontFile(path, points); err != nil {
		t.Fatal(err)
	}
	got, err := util.ReadFrontFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(points, got); diff != "" {
		t.Errorf("file contents mismatch (-want +got):\n%s", diff)
	}
}

func TestPlotResults(t *testing.T) {
	problem := benchmarks.NewZDT1(30)
	out := filepath.Join(t.TempDir(), "zdt1.html")
	err := util.PlotResults(problem.TrueParetoFront(20), problem, "NSGA-II", out)
	if err != nil {
		t.Fatalf("PlotResults() error = %v", err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}

	if err := util.PlotResults(nil, problem, "NSGA-II", out); err == nil {
		t.Error("PlotResults() accepted empty results")
	}
	if err := util.PlotResults([]framework.ObjectiveSpacePoint{{1, 2, 3}}, problem, "NSGA-II", out); err == nil {
		t.Error("PlotResults() accepted three objectives")
	}
}
