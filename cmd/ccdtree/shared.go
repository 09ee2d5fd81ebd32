package main

import (
	"os"
	"strings"

	"github.com/alexeid/phylo-mds/internal/newick"
	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/pkg/errors"
)

// loadTrees reads the file named by path and parses it per format, one of
// {auto, newick}; any other tag, or auto-detecting something other than
// Newick, yields ErrFormatUnknown, since this driver carries no reader
// for the other formats spec.md section 6 names.
func loadTrees(path, format string) ([]*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	detected := format
	if detected == "auto" || detected == "" {
		detected = detectFormat(string(data))
	}
	if detected != "newick" {
		return nil, errors.Wrapf(xerrors.ErrFormatUnknown, "format %q is not supported by this driver", detected)
	}
	return newick.ParseAll(string(data))
}

func detectFormat(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "newick"
	}
	switch s[0] {
	case '(':
		return "newick"
	case '{':
		return "phyjson"
	case '<':
		return "phyloxml"
	}
	if strings.HasPrefix(strings.ToLower(s), "#nexus") {
		return "nexus"
	}
	return "newick"
}
