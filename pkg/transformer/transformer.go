// Package transformer sequences the pipeline: parse, usage filter, group,
// sort, merge, format, and splice the result back over the original import
// block's source span.
package transformer

import (
	"fmt"
	"strings"

	"github.com/1adybug/sort-imports/pkg/analyzer"
	"github.com/1adybug/sort-imports/pkg/config"
	"github.com/1adybug/sort-imports/pkg/errors"
	"github.com/1adybug/sort-imports/pkg/formatter"
	"github.com/1adybug/sort-imports/pkg/merger"
	"github.com/1adybug/sort-imports/pkg/parser"
	"github.com/1adybug/sort-imports/pkg/sorter"
)

// Transform rewrites the leading import block of source according to cfg.
// Any pipeline failure yields the original text untouched; partial
// application is never acceptable since it could hand syntactically broken
// output to the downstream formatter.
func Transform(source string, cfg config.Config) string {
	result, err := TransformChecked(source, cfg)
	if err != nil {
		return source
	}
	return result
}

// TransformChecked is Transform with the recovery surfaced, so callers can
// report that a file was left unchanged
func TransformChecked(source string, cfg config.Config) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = source
			err = fmt.Errorf("%s: %v", errors.ErrMsgTransformAborted, r)
		}
	}()

	stmts := parser.ParseImports(source)
	if len(stmts) == 0 {
		return source, nil
	}
	blockStart := stmts[0].Start
	blockEnd := stmts[len(stmts)-1].End

	if cfg.RemoveUnusedImports {
		// A failed traversal skips removal for the whole file; an empty
		// used-set fallback would delete every import.
		if used, analyzeErr := analyzer.AnalyzeUsed(source[blockEnd:]); analyzeErr == nil {
			stmts = dropUnused(stmts, used)
		}
	}

	if len(stmts) == 0 {
		rest := strings.TrimLeft(source[blockEnd:], "\r\n")
		return source[:blockStart] + rest, nil
	}

	var parts []string
	firstEmitted := false
	emitRun := func(run []*parser.ImportStatement) {
		if len(run) == 0 {
			return
		}
		text := processRun(run, cfg, !firstEmitted)
		if text != "" {
			parts = append(parts, text)
			firstEmitted = true
		}
	}

	if cfg.SortSideEffect {
		emitRun(stmts)
	} else {
		// Side-effect statements are hard partition boundaries: each run
		// between them is normalized independently and the side-effect
		// statements keep their original relative order.
		var run []*parser.ImportStatement
		for _, stmt := range stmts {
			if !stmt.IsSideEffect {
				run = append(run, stmt)
				continue
			}
			emitRun(run)
			run = nil
			if !firstEmitted {
				stmt.BlankLinesBefore = 0
			}
			parts = append(parts, formatter.FormatStatement(stmt))
			firstEmitted = true
		}
		emitRun(run)
	}

	block := strings.Join(parts, "\n")
	return source[:blockStart] + block + source[blockEnd:], nil
}

// dropUnused filters each statement's specifiers against the used set. A
// statement emptied by filtering is dropped entirely, its module-load side
// effect included; statements that bound nothing to begin with pass through.
func dropUnused(stmts []*parser.ImportStatement, used map[string]bool) []*parser.ImportStatement {
	kept := make([]*parser.ImportStatement, 0, len(stmts))
	for _, stmt := range stmts {
		filtered := analyzer.FilterUnusedImports(stmt, used)
		if len(filtered.Contents) == 0 && len(stmt.Contents) > 0 {
			continue
		}
		kept = append(kept, filtered)
	}
	return kept
}

// processRun normalizes one partition: statements are grouped, groups and
// statements ordered, same-module statements merged, and each merged
// statement's specifiers sorted. Sorting contents after the merge keeps the
// output a fixed point: merged lists concatenate in statement order, and the
// stable default comparator leaves value specifiers in that order while
// ordering type-only ones deterministically.
func processRun(stmts []*parser.ImportStatement, cfg config.Config, collapseGap bool) string {
	for _, stmt := range stmts {
		sorter.SortImportContents(stmt.Contents, cfg.SortImportContent)
	}

	groups := sorter.GroupImports(stmts, cfg.Classify)
	sorter.SortGroups(groups, cfg.SortGroup)
	for _, group := range groups {
		sorter.SortImportStatements(group.Statements, cfg.SortImportStatement)
		group.Statements = merger.MergeImports(group.Statements)
		for _, stmt := range group.Statements {
			sorter.SortImportContents(stmt.Contents, cfg.SortImportContent)
		}
	}

	if collapseGap && len(groups) > 0 && len(groups[0].Statements) > 0 {
		// A gap between a leading comment and the first statement of the
		// block would turn the comment into a file header on the next run.
		groups[0].Statements[0].BlankLinesBefore = 0
	}

	return formatter.FormatGroups(groups, cfg.Separator)
}
