// Package parser implements the domain.SyntaxChecker port for Python
// using Tree-sitter, the one language the system validates with a full
// parser.
package parser

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/codelens/codelens/internal/domain"
)

// PythonChecker parses Python source and reports syntax faults with
// 1-based line numbers.
type PythonChecker struct {
	mu     sync.Mutex // sitter.Parser is not safe for concurrent use
	parser *sitter.Parser
}

func NewPythonChecker() *PythonChecker {
	p := sitter.NewParser()
	p.SetLanguage(python.GetLanguage())
	return &PythonChecker{parser: p}
}

// Check returns one fault per error or missing node in the parse tree,
// or nil when the document parses cleanly.
func (c *PythonChecker) Check(code string) []domain.SyntaxFault {
	c.mu.Lock()
	defer c.mu.Unlock()

	tree, err := c.parser.ParseCtx(context.Background(), nil, []byte(code))
	if err != nil {
		return []domain.SyntaxFault{{Line: 1, Message: "invalid syntax"}}
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	var faults []domain.SyntaxFault
	collectFaults(root, &faults)
	if len(faults) == 0 {
		// The tree reports an error without an addressable node.
		faults = append(faults, domain.SyntaxFault{Line: 1, Message: "invalid syntax"})
	}
	return faults
}

func collectFaults(n *sitter.Node, faults *[]domain.SyntaxFault) {
	if n.IsError() {
		*faults = append(*faults, domain.SyntaxFault{
			Line:    int(n.StartPoint().Row) + 1,
			Message: "invalid syntax",
		})
		return
	}
	if n.IsMissing() {
		*faults = append(*faults, domain.SyntaxFault{
			Line:    int(n.StartPoint().Row) + 1,
			Message: "missing " + n.Type(),
		})
		return
	}
	if !n.HasError() {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		collectFaults(n.Child(i), faults)
	}
}
