/*
File    : gomix-bc/printer/printer_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package printer

import "github.com/akashmaji946/gomix-bc/ast"

func (p *Printer) VisitConst(n *ast.Const) {
	p.buf.WriteString(formatConst(n.Value))
}

func (p *Printer) VisitVar(n *ast.Var) {
	p.buf.WriteString(n.Name)
}

func (p *Printer) VisitPreOp(n *ast.PreOp) {
	p.buf.WriteString(incDecSymbol(n.Op))
	p.buf.WriteString(n.Name)
}

func (p *Printer) VisitPostOp(n *ast.PostOp) {
	p.buf.WriteString(n.Name)
	p.buf.WriteString(incDecSymbol(n.Op))
}

func (p *Printer) VisitArith(n *ast.Arith) {
	p.buf.WriteString("(")
	n.Left.Accept(p)
	p.buf.WriteString(" ")
	p.buf.WriteString(arithSymbol(n.Op))
	p.buf.WriteString(" ")
	n.Right.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitCmp(n *ast.Cmp) {
	p.buf.WriteString("(")
	n.Left.Accept(p)
	p.buf.WriteString(" ")
	p.buf.WriteString(cmpSymbol(n.Op))
	p.buf.WriteString(" ")
	n.Right.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitNot(n *ast.Not) {
	p.buf.WriteString("(!")
	n.X.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitNeg(n *ast.Neg) {
	p.buf.WriteString("(-")
	n.X.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitAssign(n *ast.Assign) {
	p.buf.WriteString("(")
	p.buf.WriteString(n.Name)
	p.buf.WriteString(" = ")
	n.Value.Accept(p)
	p.buf.WriteString(")")
}

func (p *Printer) VisitCall(n *ast.Call) {
	p.buf.WriteString(n.Name)
	p.buf.WriteString("(")
	for i, arg := range n.Args {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		arg.Accept(p)
	}
	p.buf.WriteString(")")
}

func incDecSymbol(op ast.IncDecOp) string {
	if op == ast.Incr {
		return "++"
	}
	return "--"
}

func arithSymbol(op ast.ArithOp) string {
	switch op {
	case ast.Plus:
		return "+"
	case ast.Minus:
		return "-"
	case ast.Mul:
		return "*"
	case ast.Div:
		return "/"
	case ast.Mod:
		return "%"
	case ast.Pow:
		return "^"
	}
	return "?"
}

func cmpSymbol(op ast.CmpOp) string {
	switch op {
	case ast.Lt:
		return "<"
	case ast.Le:
		return "<="
	case ast.Gt:
		return ">"
	case ast.Ge:
		return ">="
	case ast.Eq:
		return "=="
	case ast.Ne:
		return "!="
	case ast.And:
		return "&&"
	case ast.Or:
		return "||"
	}
	return "?"
}
