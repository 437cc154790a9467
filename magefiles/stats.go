//go:build mage

package main

import (
	"bufio"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// statRoots are the directories holding the module's packages.
var statRoots = []string{"cmd", "internal", "pkg"}

// statDocs are the design documents whose size Stats reports.
var statDocs = []string{"README.md", "SPEC_FULL.md", "DESIGN.md"}

var testFuncRe = regexp.MustCompile(`^func (Test|Benchmark|Fuzz)\w*\(`)

// pkgStats counts the lines of one package directory.
type pkgStats struct {
	Source int `json:"source_lines"`
	Tests  int `json:"test_lines"`
	Funcs  int `json:"test_funcs"`
}

// Stats prints a JSON summary of the smarttable packages: source and test
// lines plus test function counts per package, totals, and the word count
// of the design documents.
func Stats() error {
	packages := map[string]*pkgStats{}
	for _, root := range statRoots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return filepath.SkipDir
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".go") {
				return nil
			}
			dir := filepath.ToSlash(filepath.Dir(path))
			ps := packages[dir]
			if ps == nil {
				ps = &pkgStats{}
				packages[dir] = ps
			}
			return ps.add(path)
		})
		if err != nil {
			return err
		}
	}

	var total pkgStats
	for _, ps := range packages {
		total.Source += ps.Source
		total.Tests += ps.Tests
		total.Funcs += ps.Funcs
	}

	docWords := map[string]int{}
	for _, doc := range statDocs {
		data, err := os.ReadFile(doc)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		docWords[doc] = len(strings.Fields(string(data)))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"packages":      packages,
		"package_count": len(packages),
		"total":         total,
		"doc_words":     docWords,
	})
}

// add counts the lines of one Go file into ps.
func (ps *pkgStats) add(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	isTest := strings.HasSuffix(path, "_test.go")
	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
		if isTest && testFuncRe.MatchString(scanner.Text()) {
			ps.Funcs++
		}
	}
	if isTest {
		ps.Tests += lines
	} else {
		ps.Source += lines
	}
	return scanner.Err()
}
