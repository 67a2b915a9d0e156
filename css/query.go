package css

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// queryEnv is the environment a Find query is compiled against. It describes rule metadata
// only; there is no selector matching.
var queryEnv = map[string]any{
	"kind":      "",
	"selector":  "",
	"name":      "",
	"condition": "",
	"hasBlock":  false,
	"depth":     0,
	"decls":     map[string]string{},
}

// Find walks the rules below n depth-first and returns those for which the boolean expression
// query is true. For example:
//
//	css.Find(doc, `kind == "at" && name == "media"`)
//	css.Find(doc, `depth > 0 && decls["color"] == "red"`)
//
// Available variables: kind ("style" or "at"), selector, name, condition, hasBlock, depth (0
// for the children of n) and decls (the folded declarations of the rule).
func Find(n Node, query string) ([]Rule, error) {
	prog, err := expr.Compile(query, expr.Env(queryEnv), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile query: %w", err)
	}

	var (
		machine vm.VM
		found   []Rule
	)
	var walk func(parent Node, depth int) error
	walk = func(parent Node, depth int) error {
		for _, r := range parent.Children() {
			v, err := machine.Run(prog, ruleEnv(r, depth))
			if err != nil {
				return fmt.Errorf("run query on rule %d: %w", r.ID(), err)
			}
			if ok, _ := v.(bool); ok {
				found = append(found, r)
			}
			if err := walk(r, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(n, 0); err != nil {
		return nil, err
	}
	return found, nil
}

func ruleEnv(r Rule, depth int) map[string]any {
	env := map[string]any{
		"kind":      "",
		"selector":  "",
		"name":      "",
		"condition": "",
		"hasBlock":  true,
		"depth":     depth,
		"decls":     r.Declarations(),
	}
	switch r := r.(type) {
	case *StyleRule:
		env["kind"] = "style"
		env["selector"] = r.Selector
	case *AtRule:
		env["kind"] = "at"
		env["name"] = r.Name
		env["condition"] = r.Condition
		env["hasBlock"] = r.HasBlock
	}
	return env
}
