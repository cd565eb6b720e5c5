// Package validate checks generated dashboards and rules against the
// metrics the server actually exports.
package validate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/jet-merchant/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogramSuffixes are the series suffixes Prometheus derives from a
// histogram's base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Dashboard validates every PromQL expression found in a built dashboard.
// The dashboard is walked through its JSON form, so any value that
// marshals to Grafana's schema works.
func Dashboard(dash any, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("marshaling dashboard: %v", err)}}
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decoding dashboard: %v", err)}}
	}

	var exprs []string
	collectExprs(tree, &exprs)

	var res Result
	if len(exprs) == 0 {
		res.Warnings = append(res.Warnings, "dashboard contains no queries")
	}
	for _, e := range exprs {
		res.merge(Expr(e, known))
	}
	return res
}

// Rules validates the expressions of every rule in a PrometheusRule CR.
// Recorded series names count as known for the rules that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			if r.Record == "" && r.Alert == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule has neither record nor alert", g.Name))
			}
			res.merge(Expr(r.Expr, known))
		}
	}
	return res
}

// Expr parses a single PromQL expression and checks that every metric it
// selects is known.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	if strings.TrimSpace(expr) == "" {
		res.Warnings = append(res.Warnings, "empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return res
	}

	for _, name := range MetricNames(node) {
		if !isKnown(name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", name, expr))
		}
	}
	return res
}

// MetricNames returns the sorted, de-duplicated metric names selected by
// an expression.
func MetricNames(node parser.Node) []string {
	seen := map[string]bool{}
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			seen[vs.Name] = true
		}
		return nil
	})

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

func collectExprs(v any, out *[]string) {
	switch t := v.(type) {
	case map[string]any:
		if e, ok := t["expr"].(string); ok {
			*out = append(*out, e)
		}
		for _, child := range t {
			collectExprs(child, out)
		}
	case []any:
		for _, child := range t {
			collectExprs(child, out)
		}
	}
}
