// Package listing reads and writes graphs in the adjacency-listing text format.
//
// Format:
//
//	Adjacency_Listing
//	0,1#1,2#2,0
//
// The first line is the header. Every following record is a "u,v" pair of
// non-negative node labels; records are separated by '#' or by newlines, and
// empty records are skipped. Carriage returns are ignored, so CRLF files load
// unchanged. The node count is the largest label plus one, hence isolated
// nodes above the largest label cannot be represented.
package listing

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/cyclegames/core"
)

// Header is the first line of every listing.
const Header = "Adjacency_Listing"

// DefaultMaxLabel caps node labels unless a Loader overrides it.
const DefaultMaxLabel = 4095

// Sentinel errors.
var (
	// ErrMissingHeader indicates the first line is not Header.
	ErrMissingHeader = errors.New("listing: missing Adjacency_Listing header")

	// ErrEmptyListing indicates a listing (or graph to write) without edges.
	ErrEmptyListing = errors.New("listing: no edges")

	// ErrSyntax indicates a malformed record.
	ErrSyntax = errors.New("listing: syntax error")

	// ErrTooManyNodes indicates a label above the configured maximum.
	ErrTooManyNodes = errors.New("listing: node label too large")
)

// Loader reads listings from disk. The zero value uses DefaultMaxLabel.
type Loader struct {
	// MaxLabel is the largest accepted node label; <= 0 means DefaultMaxLabel.
	MaxLabel int
}

// Load reads and parses the listing at path.
func (l Loader) Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("listing: load %s: %w", path, err)
	}
	g, err := l.parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads a listing from r.
func (l Loader) Parse(r io.Reader) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("listing: read: %w", err)
	}

	return l.parse(data)
}

// Load reads the listing at path with the default Loader.
func Load(path string) (*core.Graph, error) { return Loader{}.Load(path) }

// Parse reads a listing from r with the default Loader.
func Parse(r io.Reader) (*core.Graph, error) { return Loader{}.Parse(r) }

func (l Loader) maxLabel() int {
	if l.MaxLabel <= 0 {
		return DefaultMaxLabel
	}

	return l.MaxLabel
}

// parse converts the raw listing bytes into a graph.
func (l Loader) parse(data []byte) (*core.Graph, error) {
	// 1. Normalise line endings and split off the header
	data = bytes.ReplaceAll(data, []byte("\r"), nil)
	text := string(data)
	head, body, _ := strings.Cut(text, "\n")
	if strings.TrimSpace(head) != Header {
		return nil, fmt.Errorf("line 1: got %q: %w", head, ErrMissingHeader)
	}

	// 2. Records
	limit := l.maxLabel()
	var edges []core.Edge
	maxSeen := -1
	for i, line := range strings.Split(body, "\n") {
		lineNo := i + 2
		for _, rec := range strings.Split(line, "#") {
			rec = strings.TrimSpace(rec)
			if rec == "" {
				continue
			}
			e, err := parseRecord(rec, limit)
			if err != nil {
				return nil, fmt.Errorf("line %d: record %q: %w", lineNo, rec, err)
			}
			edges = append(edges, e)
			maxSeen = max(maxSeen, e.U, e.V)
		}
	}
	if len(edges) == 0 {
		return nil, ErrEmptyListing
	}

	// 3. Build
	g, err := core.NewGraph(maxSeen+1, core.WithEdges(edges))
	if err != nil {
		return nil, fmt.Errorf("listing: %w", err)
	}

	return g, nil
}

// parseRecord parses one "u,v" pair.
func parseRecord(rec string, limit int) (core.Edge, error) {
	a, b, ok := strings.Cut(rec, ",")
	if !ok {
		return core.Edge{}, fmt.Errorf("want u,v: %w", ErrSyntax)
	}
	u, err := parseLabel(a, limit)
	if err != nil {
		return core.Edge{}, err
	}
	v, err := parseLabel(b, limit)
	if err != nil {
		return core.Edge{}, err
	}

	return core.Edge{U: u, V: v}, nil
}

func parseLabel(s string, limit int) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("label %q: %w", s, ErrSyntax)
	}
	if n > limit {
		return 0, fmt.Errorf("label %d > %d: %w", n, limit, ErrTooManyNodes)
	}

	return n, nil
}

// Write renders g as a listing: the header, then every edge as "u,v"
// separated by '#', lexicographic, without a trailing delimiter.
func Write(w io.Writer, g *core.Graph) error {
	edges := g.Edges()
	if len(edges) == 0 {
		return ErrEmptyListing
	}

	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for i, e := range edges {
		if i > 0 {
			b.WriteByte('#')
		}
		b.WriteString(strconv.Itoa(e.U))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(e.V))
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("listing: write: %w", err)
	}

	return nil
}
