// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// their checks while this package handles column alignment and tree
// rendering.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/openticketai/sitekit/internal/content"
	"github.com/openticketai/sitekit/internal/history"
	"github.com/openticketai/sitekit/internal/site"
)

// Pages prints page URL paths, one per line.
func Pages(w io.Writer, docs []site.Document) error {
	for _, d := range docs {
		fmt.Fprintln(w, d.URLPath)
	}
	return nil
}

// PagesLong prints pages with their locale, link and marker counts.
//
// Column order is LOCALE, LINKS, MARKERS, URL. The URL goes last so its
// varying width does not disturb the other columns.
func PagesLong(w io.Writer, docs []site.Document) error {
	if len(docs) == 0 {
		return nil
	}
	fmt.Fprintf(w, "%-6s  %5s  %7s  %s\n", "LOCALE", "LINKS", "MARKERS", "URL")
	for _, d := range docs {
		loc := d.Locale
		if loc == "" {
			loc = "-"
		}
		fmt.Fprintf(w, "%-6s  %5d  %7d  %s\n", loc, len(d.Anchors), len(d.Markers), d.URLPath)
	}
	return nil
}

// Tree prints page URLs as a directory tree.
func Tree(w io.Writer, docs []site.Document) error {
	if len(docs) == 0 {
		return nil
	}

	type node struct {
		children map[string]*node
		isPage   bool
	}
	root := &node{children: make(map[string]*node)}

	for _, d := range docs {
		trimmed := strings.Trim(d.URLPath, "/")
		if trimmed == "" {
			root.isPage = true
			continue
		}
		current := root
		for _, part := range strings.Split(trimmed, "/") {
			if current.children[part] == nil {
				current.children[part] = &node{children: make(map[string]*node)}
			}
			current = current.children[part]
		}
		current.isPage = true
	}

	fmt.Fprintln(w, "/")

	var printNode func(n *node, prefix string)
	printNode = func(n *node, prefix string) {
		names := make([]string, 0, len(n.children))
		for name := range n.children {
			names = append(names, name)
		}
		sort.Strings(names)

		for i, name := range names {
			child := n.children[name]
			last := i == len(names)-1

			connector := "├── "
			if last {
				connector = "└── "
			}
			suffix := ""
			if len(child.children) > 0 {
				suffix = "/"
			}
			if child.isPage && len(child.children) > 0 {
				suffix = "/ *"
			}
			fmt.Fprintf(w, "%s%s%s%s\n", prefix, connector, name, suffix)

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}
			if len(child.children) > 0 {
				printNode(child, pfx)
			}
		}
	}
	printNode(root, "")
	return nil
}

// Runs prints recorded validation runs, newest first.
func Runs(w io.Writer, runs []history.Run) error {
	if len(runs) == 0 {
		return nil
	}
	fmt.Fprintf(w, "%-8s  %-16s  %-6s  %4s  %4s  %4s  %s\n", "ID", "STARTED", "RESULT", "PASS", "WARN", "ERR", "ROOT")
	for _, r := range runs {
		result := "ok"
		if !r.OK() {
			result = "failed"
		}
		fmt.Fprintf(w, "%-8s  %s  %-6s  %4d  %4d  %4d  %s\n",
			r.ShortID(), r.Started.Format("2006-01-02 15:04"), result,
			r.Passed, r.Warnings, r.Errors, r.Root)
	}
	return nil
}

// Entries prints content entries with their resolved locale.
// Entries served from the default locale are marked with "*".
func Entries(w io.Writer, entries []content.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	maxSlug := 4
	for _, e := range entries {
		maxSlug = max(maxSlug, len(e.Slug))
	}
	fmt.Fprintf(w, "%-*s  %-7s  %-10s  %s\n", maxSlug, "SLUG", "LOCALE", "DATE", "TITLE")
	for _, e := range entries {
		loc := e.Locale
		if e.Fallback {
			loc += "*"
		}
		date := "-"
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		title := e.Title
		if e.Draft {
			title += " [draft]"
		}
		fmt.Fprintf(w, "%-*s  %-7s  %-10s  %s\n", maxSlug, e.Slug, loc, date, title)
	}
	return nil
}
