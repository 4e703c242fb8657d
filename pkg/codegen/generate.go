package codegen

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/esgen/esgen/internal/helpers"
	"github.com/esgen/esgen/pkg/coderep"
	"github.com/esgen/esgen/pkg/js_ast"
)

var (
	// The tree doesn't conform to the node definitions
	ErrMalformedInput = errors.New("malformed input")

	// A bug in the code generator
	ErrInternal = errors.New("internal error")
)

// Generate returns the program text for the given tree. A nil generator means
// NewMinimal().
func Generate(root js_ast.Node, gen js_ast.Reducer[CodeRep]) (js string, err error) {
	if err = checkRoot(root); err != nil {
		return
	}
	if gen == nil {
		gen = NewMinimal()
	}
	defer recoverGenerateError(&err, func() { js = "" })

	rep := js_ast.Reduce(gen, root)
	js = coderep.Emit(rep)
	return
}

// GenerateWithLocation is like Generate but also returns where in the output
// each node of the tree ended up
func GenerateWithLocation(root js_ast.Node, gen js_ast.Reducer[CodeRep]) (js string, locations *LocationMap, err error) {
	if err = checkRoot(root); err != nil {
		return
	}
	if gen == nil {
		gen = NewMinimal()
	}
	defer recoverGenerateError(&err, func() { js, locations = "", nil })

	tracker := &locationTracker{}
	rep := js_ast.ReduceWith(gen, root, tracker.wrap)
	ts := coderep.NewTokenStream()
	ts.SetListener(tracker)
	rep.Emit(ts, false)
	js = ts.String()
	locations = tracker.finish(root, js)
	return
}

func checkRoot(root js_ast.Node) error {
	if root == nil {
		return fmt.Errorf("%w: missing root node", ErrMalformedInput)
	}
	if v := reflect.ValueOf(root); v.Kind() == reflect.Pointer && v.IsNil() {
		return fmt.Errorf("%w: missing root node", ErrMalformedInput)
	}
	return nil
}

// Rules report malformed trees by panicking with a "*js_ast.MalformedError".
// Anything else that panics is a bug and is reported with its stack trace.
func recoverGenerateError(err *error, reset func()) {
	r := recover()
	if r == nil {
		return
	}
	reset()
	if malformed, ok := r.(*js_ast.MalformedError); ok {
		*err = fmt.Errorf("%w: %s", ErrMalformedInput, malformed.Error())
		return
	}
	*err = fmt.Errorf("%w: %v\n%s", ErrInternal, r, helpers.PrettyPrintedStack())
}
