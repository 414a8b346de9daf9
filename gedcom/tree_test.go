package gedcom

import (
	"errors"
	"strings"
	"testing"
)

func mustTokenize(t *testing.T, p *Parser, text string) []ParsedLine {
	t.Helper()
	var lines []ParsedLine
	for _, raw := range strings.Split(strings.TrimSpace(text), "\n") {
		line, err := p.tokenizeLine(raw)
		if err != nil {
			t.Fatalf("tokenize %q: %v", raw, err)
		}
		lines = append(lines, line)
	}
	return lines
}

func TestBuildTreeNesting(t *testing.T) {
	p := testParser()
	lines := mustTokenize(t, p, `
0 HEAD
1 GEDC
2 VERS 5.5.1
1 CHAR ASCII
0 TRLR`)
	roots, err := p.buildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	head := roots[0]
	if len(head.children) != 2 {
		t.Fatalf("HEAD has %d children, want 2", len(head.children))
	}
	gedc := head.children[0]
	if gedc.line.Tag != "GEDC" || len(gedc.children) != 1 || gedc.children[0].line.Tag != "VERS" {
		t.Fatalf("unexpected GEDC subtree: %+v", gedc)
	}
	// Every child is exactly one level below its parent.
	var check func(n *treeNode)
	check = func(n *treeNode) {
		for _, c := range n.children {
			if c.line.Level != n.line.Level+1 {
				t.Fatalf("child %s at level %d under parent level %d", c.line.Tag, c.line.Level, n.line.Level)
			}
			check(c)
		}
	}
	for _, r := range roots {
		check(r)
	}
}

func TestBuildTreeLevelSkip(t *testing.T) {
	p := testParser()
	lines := mustTokenize(t, p, `
0 HEAD
2 VERS 5.5.1
0 TRLR`)
	roots, err := p.buildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Errors) == 0 {
		t.Fatal("expected level-skip error")
	}
	// The skipped line is adopted one level down.
	if len(roots[0].children) != 1 || roots[0].children[0].line.Level != 1 {
		t.Fatalf("skipped line not clamped: %+v", roots[0].children)
	}
}

func TestBuildTreeMissingHead(t *testing.T) {
	p := testParser()
	lines := mustTokenize(t, p, `
0 @X@ INDI
0 TRLR`)
	if _, err := p.buildTree(lines); !errors.Is(err, ErrMissingHead) {
		t.Fatalf("got %v, want ErrMissingHead", err)
	}

	p = testParser()
	if _, err := p.buildTree(nil); !errors.Is(err, ErrMissingHead) {
		t.Fatalf("empty input: got %v, want ErrMissingHead", err)
	}
}

func TestBuildTreeMissingTrailer(t *testing.T) {
	p := testParser()
	lines := mustTokenize(t, p, `
0 HEAD
1 CHAR ASCII`)
	if _, err := p.buildTree(lines); !errors.Is(err, ErrMissingTrailer) {
		t.Fatalf("got %v, want ErrMissingTrailer", err)
	}
}

func TestBuildTreeContentAfterTrailer(t *testing.T) {
	p := testParser()
	lines := mustTokenize(t, p, `
0 HEAD
0 TRLR
0 @I1@ INDI`)
	roots, err := p.buildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roots) != 2 {
		t.Fatalf("content after TRLR must be ignored, got %d roots", len(roots))
	}
	if len(p.Warnings) == 0 {
		t.Fatal("expected warning for content after TRLR")
	}
}

func TestBuildTreeXrefAboveLevelZero(t *testing.T) {
	p := testParser()
	lines := []ParsedLine{
		{Level: 0, Tag: "HEAD"},
		{Level: 1, XRef: "@X@", Tag: "NOTE", Value: "text"},
		{Level: 0, Tag: "TRLR"},
	}
	roots, err := p.buildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Warnings) == 0 {
		t.Fatal("expected warning for xref above level 0")
	}
	if roots[0].children[0].line.XRef != "" {
		t.Fatal("xref above level 0 must be dropped")
	}
}
