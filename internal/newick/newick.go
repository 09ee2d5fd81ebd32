// Package newick reads the Newick tree format, the one concrete format
// the command-line driver needs in order to exercise the core package
// without a separate tree-reader dependency.
package newick

import (
	"strconv"
	"strings"

	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/pkg/errors"
)

// ParseAll reads semicolon-terminated Newick strings from s, one tree per
// non-blank top-level statement, and validates each before returning it.
// Finding no tree at all is an ErrParseFailure.
func ParseAll(s string) ([]*tree.Tree, error) {
	var trees []*tree.Tree
	for _, stmt := range splitStatements(s) {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		t, err := Parse(stmt)
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	if len(trees) == 0 {
		return nil, errors.Wrap(xerrors.ErrParseFailure, "no trees found")
	}
	return trees, nil
}

func splitStatements(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ';':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return out
}

// Parse reads a single Newick tree, with or without a trailing semicolon.
func Parse(s string) (*tree.Tree, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ";")
	if s == "" {
		return nil, errors.Wrap(xerrors.ErrParseFailure, "empty tree statement")
	}

	p := &parser{rem: s, nextID: 1}
	p.gettok()
	root, err := p.parseSubtree()
	if err != nil {
		return nil, errors.Wrap(xerrors.ErrParseFailure, err.Error())
	}
	if p.rem != "" || p.tok != "" {
		return nil, errors.Wrapf(xerrors.ErrParseFailure, "unparsed text follows tree: %q", p.rem)
	}

	t := tree.New(root)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

type parser struct {
	rem    string
	tok    string
	nextID int
}

func (p *parser) gettok() {
	p.rem = strings.TrimLeft(p.rem, " \t\n\r")
	if p.rem == "" {
		p.tok = ""
		return
	}
	switch p.rem[0] {
	case '(', ')', ',':
		p.tok = p.rem[:1]
		p.rem = p.rem[1:]
		return
	}
	if x := strings.IndexAny(p.rem, "(),"); x > 0 {
		p.tok = strings.TrimSpace(p.rem[:x])
		p.rem = p.rem[x:]
	} else {
		p.tok = strings.TrimSpace(p.rem)
		p.rem = ""
	}
}

func (p *parser) parseSubtree() (*tree.Node, error) {
	n := &tree.Node{ID: p.nextID}
	p.nextID++

	if p.tok == "(" {
		p.gettok()
		for {
			child, err := p.parseSubtree()
			if err != nil {
				return nil, err
			}
			child.Parent = n
			n.Children = append(n.Children, child)
			if p.tok != "," {
				break
			}
			p.gettok()
		}
		if p.tok != ")" {
			return nil, errors.New("expected )")
		}
		p.gettok()
		if err := p.readNameAndBranch(n); err != nil {
			return nil, err
		}
		return n, nil
	}

	if err := p.readNameAndBranch(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) readNameAndBranch(n *tree.Node) error {
	if p.tok == "" || p.tok == ")" || p.tok == "," {
		return nil
	}
	tok := p.tok
	if i := strings.Index(tok, ":"); i >= 0 {
		blStr := tok[i+1:]
		name := tok[:i]
		bl, err := strconv.ParseFloat(strings.TrimSpace(blStr), 64)
		if err != nil {
			return errors.Wrapf(err, "invalid branch length %q", blStr)
		}
		n.BranchLength = bl
		n.HasBranch = true
		n.Label = strings.TrimSpace(name)
	} else {
		n.Label = strings.TrimSpace(tok)
	}
	p.gettok()
	return nil
}
