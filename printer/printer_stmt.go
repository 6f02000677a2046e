/*
File    : gomix-bc/printer/printer_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package printer

import "github.com/akashmaji946/gomix-bc/ast"

func (p *Printer) VisitExprStmt(n *ast.ExprStmt) {
	n.X.Accept(p)
}

func (p *Printer) VisitIf(n *ast.If) {
	p.buf.WriteString("if (")
	n.Cond.Accept(p)
	p.buf.WriteString(") ")
	n.Then.Accept(p)
	if n.Else != nil {
		p.buf.WriteString(" else ")
		n.Else.Accept(p)
	}
}

func (p *Printer) VisitWhile(n *ast.While) {
	p.buf.WriteString("while (")
	n.Cond.Accept(p)
	p.buf.WriteString(") ")
	n.Body.Accept(p)
}

// VisitBlock prints `{ s1; s2; ... }`, the only form a nested Block
// (if/while body, function body) can take — the top-level Command's
// own Block is special-cased in Print and never reaches here.
func (p *Printer) VisitBlock(n *ast.Block) {
	if len(n.Stmts) == 0 {
		p.buf.WriteString("{ }")
		return
	}
	p.buf.WriteString("{ ")
	for i, stmt := range n.Stmts {
		if i > 0 {
			p.buf.WriteString("; ")
		}
		stmt.Accept(p)
	}
	p.buf.WriteString("; }")
}

func (p *Printer) VisitBreak(*ast.Break) {
	p.buf.WriteString("break")
}

func (p *Printer) VisitContinue(*ast.Continue) {
	p.buf.WriteString("continue")
}

func (p *Printer) VisitHalt(*ast.Halt) {
	p.buf.WriteString("halt")
}

func (p *Printer) VisitReturn(n *ast.Return) {
	if n.Value == nil {
		p.buf.WriteString("return")
		return
	}
	p.buf.WriteString("return ")
	n.Value.Accept(p)
}
