package dimcheck

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"log/slog"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/hupe1980/dimgo/dim"
)

const (
	dimgoPath = "github.com/hupe1980/dimgo"
	dimPath   = "github.com/hupe1980/dimgo/dim"
)

// Analyzer reports dimension errors in dimgo calls.
var Analyzer = &analysis.Analyzer{
	Name:     "dimcheck",
	Doc:      "check declared result dimensions of dimgo operations",
	URL:      "https://pkg.go.dev/github.com/hupe1980/dimgo/dimcheck",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var verbose bool

func init() {
	Analyzer.Flags.BoolVar(&verbose, "verbose", false, "log every checked call to stderr")
}

// kind selects how the result dimension follows from the operands.
type kind int

const (
	product  kind = iota // A∘B
	quotient             // A∘B⁻¹
	inverse              // D⁻¹ of the second parameter
	square               // D∘D
	power                // D scaled by a constant argument
	root                 // D divided exactly by k
)

type rule struct {
	kind kind
	op   string
	k    int
}

// rules mirror the run-time guards in package dimgo, including their
// operation names, so both report the same message.
var rules = map[string]rule{
	"Mul":             {kind: product, op: "multiply"},
	"MulVector":       {kind: product, op: "multiply"},
	"Dot":             {kind: product, op: "dot"},
	"Cross":           {kind: product, op: "cross"},
	"Div":             {kind: quotient, op: "divide"},
	"DivVector":       {kind: quotient, op: "divide"},
	"Reciprocal":      {kind: inverse, op: "invert"},
	"SquaredNorm":     {kind: square, op: "square norm of"},
	"SquaredDistance": {kind: square, op: "square distance in"},
	"Pow":             {kind: power, op: "raise to power"},
	"Sqrt":            {kind: root, op: "sqrt", k: 2},
	"Cbrt":            {kind: root, op: "cbrt", k: 3},
}

func run(pass *analysis.Pass) (any, error) {
	logger := NoopLogger()
	if verbose {
		logger = NewLogger(slog.LevelDebug)
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	// Callee identifiers of direct calls. Every other instantiation is a
	// function value and is checked where it is formed.
	calls := make(map[*ast.Ident]*ast.CallExpr)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if id := funcIdent(call.Fun); id != nil {
			calls[id] = call
		}
	})

	insp.Preorder([]ast.Node{(*ast.Ident)(nil)}, func(n ast.Node) {
		id := n.(*ast.Ident)

		inst, ok := pass.TypesInfo.Instances[id]
		if !ok {
			return
		}
		fn, ok := pass.TypesInfo.Uses[id].(*types.Func)
		if !ok || !inPackage(fn, dimgoPath) {
			return
		}
		r, ok := rules[fn.Name()]
		if !ok {
			return
		}
		sig, ok := inst.Type.(*types.Signature)
		if !ok || sig.Recv() != nil {
			return
		}

		var (
			at       ast.Node = id
			exponent ast.Expr
		)
		if call, ok := calls[id]; ok {
			at = call
			if len(call.Args) > 1 {
				exponent = call.Args[1]
			}
		}

		log := logger.WithFunc(fn.Name())
		pos := pass.Fset.Position(at.Pos())

		msg, checked := check(pass, sig, r, exponent)
		if !checked {
			log.LogSkipped(pos)
			return
		}
		if msg != "" {
			pass.Reportf(at.Pos(), "%s", msg)
		}
		log.LogChecked(pos, msg)
	})

	return nil, nil
}

// check returns the diagnostic for one instantiation, or "" if it is
// correct. exponent is the argument p of a direct Pow call and nil for a
// function value. checked is false when a dimension is a type parameter.
func check(pass *analysis.Pass, sig *types.Signature, r rule, exponent ast.Expr) (msg string, checked bool) {
	declared, ok := quantityDim(sig.Results().At(0).Type())
	if !ok {
		return "", false
	}

	param := func(i int) (dim.Exponents, bool) {
		if i >= sig.Params().Len() {
			return dim.Exponents{}, false
		}
		return quantityDim(sig.Params().At(i).Type())
	}

	var (
		want     dim.Exponents
		op       = r.op
		operands []dim.Exponents
	)

	switch r.kind {
	case product, quotient:
		a, okA := param(0)
		b, okB := param(1)
		if !okA || !okB {
			return "", false
		}
		operands = []dim.Exponents{a, b}
		if r.kind == product {
			want = a.Combine(b)
		} else {
			want = a.Combine(b.Invert())
		}
	case inverse:
		d, ok := param(1)
		if !ok {
			return "", false
		}
		operands = []dim.Exponents{d}
		want = d.Invert()
	case square:
		d, ok := param(0)
		if !ok {
			return "", false
		}
		operands = []dim.Exponents{d}
		want = d.Scale(2)
	case power:
		d, ok := param(0)
		if !ok {
			return "", false
		}
		p, ok := constInt(pass, exponent)
		if !ok {
			return "dimgo.Pow: exponent must be a constant", true
		}
		operands = []dim.Exponents{d}
		op = fmt.Sprintf("%s %d", op, p)
		want = d.Scale(p)
	case root:
		d, ok := param(0)
		if !ok {
			return "", false
		}
		q, err := d.DivideExact(r.k)
		if err != nil {
			return err.Error(), true
		}
		operands = []dim.Exponents{d}
		want = q
	}

	if err := dim.Check(op, declared, want, operands...); err != nil {
		return err.Error(), true
	}
	return "", true
}

// funcIdent returns the identifier naming the called function, looking
// through parentheses, package selectors and explicit type arguments.
func funcIdent(e ast.Expr) *ast.Ident {
	switch e := ast.Unparen(e).(type) {
	case *ast.Ident:
		return e
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.IndexExpr:
		return funcIdent(e.X)
	case *ast.IndexListExpr:
		return funcIdent(e.X)
	default:
		return nil
	}
}

func constInt(pass *analysis.Pass, e ast.Expr) (int, bool) {
	if e == nil {
		return 0, false
	}
	tv, ok := pass.TypesInfo.Types[e]
	if !ok || tv.Value == nil {
		return 0, false
	}
	v, exact := constant.Int64Val(constant.ToInt(tv.Value))
	if !exact {
		return 0, false
	}
	return int(v), true
}

// quantityDim returns the dimension of a dimgo Scalar, Vector or Point type.
func quantityDim(t types.Type) (dim.Exponents, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || !inPackage(named.Obj(), dimgoPath) {
		return dim.Exponents{}, false
	}
	switch named.Obj().Name() {
	case "Scalar", "Vector", "Point":
	default:
		return dim.Exponents{}, false
	}
	args := named.TypeArgs()
	if args.Len() < 2 {
		return dim.Exponents{}, false
	}
	return dimExponents(args.At(1))
}

// dimExponents reads the exponents of dim.Dim[L, M, T] from its marker type
// arguments.
func dimExponents(t types.Type) (dim.Exponents, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok || !inPackage(named.Obj(), dimPath) || named.Obj().Name() != "Dim" {
		return dim.Exponents{}, false
	}
	args := named.TypeArgs()
	if args.Len() != 3 {
		return dim.Exponents{}, false
	}
	var v [3]int
	for i := range v {
		marker, ok := types.Unalias(args.At(i)).(*types.Named)
		if !ok || !inPackage(marker.Obj(), dimPath) {
			return dim.Exponents{}, false
		}
		if v[i], ok = dim.ParseExponentName(marker.Obj().Name()); !ok {
			return dim.Exponents{}, false
		}
	}
	return dim.Exponents{L: v[0], M: v[1], T: v[2]}, true
}

func inPackage(obj types.Object, path string) bool {
	return obj != nil && obj.Pkg() != nil && obj.Pkg().Path() == path
}
