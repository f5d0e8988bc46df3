package main

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ashhadm/CS-249/cmd"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootCmd = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childCmd = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// child with children
const childParentCmd = `---
layout: default
title: %s
parent: %s
nav_order: %d
has_children: true
---
`

// grandchildren
const grandchildCmd = `---
layout: default
title: %s
parent: %s
grand_parent: %s
nav_order: %d
---
`

// docType codes whether the command is a grandchild, child, etc
type docType int

const (
	root docType = iota
	child
	childParent
	grandchild
)

// meta is for describing the position/info for a command doc page
type meta struct {
	docType     docType
	title       string
	navOrder    int
	hasChildren bool
	parent      string
	grandParent string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"contig": {
		root,
		"contig",
		0,
		true,
		"",
		"",
	},
	"contig_assemble": {
		childParent,
		"assemble",
		0,
		true,
		"contig",
		"",
	},
	"contig_assemble_dbg": {
		grandchild,
		"dbg",
		0,
		false,
		"assemble",
		"contig",
	},
	"contig_assemble_olc": {
		grandchild,
		"olc",
		1,
		false,
		"assemble",
		"contig",
	},
	"contig_assemble_both": {
		grandchild,
		"both",
		2,
		false,
		"assemble",
		"contig",
	},
	"contig_graph": {
		child,
		"graph",
		1,
		false,
		"contig",
		"",
	},
	"contig_kmers": {
		child,
		"kmers",
		2,
		false,
		"contig",
		"",
	},
	"contig_stats": {
		child,
		"stats",
		3,
		false,
		"contig",
		"",
	},
	"contig_evaluate": {
		child,
		"evaluate",
		4,
		false,
		"contig",
		"",
	},
}

// docsCmd writes the Markdown documentation of every command
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Write Markdown documentation for the commands",
	Run:    makeDocs,
	Hidden: true,
}

func init() {
	docsCmd.Flags().StringP("out", "o", "./docs", "output directory")
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(c *cobra.Command, args []string) {
	dir, _ := c.Flags().GetString("out")
	if err := writeDocs(dir); err != nil {
		fmt.Println(err.Error())
	}
}

// writeDocs writes a Markdown page per command to dir
func writeDocs(dir string) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	return doc.GenMarkdownTreeCustom(cmd.RootCmd, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m, ok := metaMap[base]
	if !ok {
		// ex: cobra's completion commands
		return ""
	}

	switch m.docType {
	case root:
		return fmt.Sprintf(rootCmd, m.title, m.navOrder)
	case child:
		return fmt.Sprintf(childCmd, m.title, m.parent, m.navOrder)
	case childParent:
		return fmt.Sprintf(childParentCmd, m.title, m.parent, m.navOrder)
	case grandchild:
		return fmt.Sprintf(grandchildCmd, m.title, m.parent, m.grandParent, m.navOrder)
	}

	return ""
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "contig" {
		return "/"
	}
	return base
}
