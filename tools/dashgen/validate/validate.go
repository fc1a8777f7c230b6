// Package validate checks generated dashboards for broken PromQL and
// references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/kjdelacruz/stocksync/tools/dashgen/rules"
)

// Result collects validation findings. Errors are defects that would break
// a panel at render time, warnings are queries referencing metric names
// outside the known set.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

type jsonTarget struct {
	Expr string `json:"expr"`
}

type jsonPanel struct {
	Title   string       `json:"title"`
	Targets []jsonTarget `json:"targets"`
	Panels  []jsonPanel  `json:"panels"`
}

type jsonDashboard struct {
	Panels []jsonPanel `json:"panels"`
}

// Dashboard parses every PromQL expression in the dashboard and checks the
// metric names it references against the known set. The dashboard is walked
// through its JSON form so row nesting and target encodings do not matter.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var result Result

	data, err := json.Marshal(dash)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return result
	}

	var jd jsonDashboard
	if err := json.Unmarshal(data, &jd); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("re-parsing dashboard: %v", err))
		return result
	}

	for _, p := range jd.Panels {
		checkPanel(p, known, &result)
	}
	return result
}

func checkPanel(p jsonPanel, known map[string]bool, result *Result) {
	for _, target := range p.Targets {
		if target.Expr == "" {
			continue
		}
		checkExpr(fmt.Sprintf("panel %q", p.Title), target.Expr, known, result)
	}
	for _, inner := range p.Panels {
		checkPanel(inner, known, result)
	}
}

func checkExpr(label, expr string, known map[string]bool, result *Result) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%s: invalid PromQL %q: %v", label, expr, err))
		return
	}

	//nolint:errcheck // the inspector never returns an error
	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseMetricName(vs.Name)] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: unknown metric %q", label, vs.Name))
		}
		return nil
	})
}

// baseMetricName strips the series suffixes a histogram exports so that
// _bucket, _sum and _count selectors resolve to the registered name.
func baseMetricName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}

// Rules parses every expression in a PrometheusRule CR and checks metric
// references the same way Dashboard does. Recording rule outputs are not
// added to the known set, callers include them there themselves.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var result Result
	for _, group := range cr.Spec.Groups {
		for _, rule := range group.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			checkExpr(fmt.Sprintf("rule %q", name), rule.Expr, known, &result)
		}
	}
	return result
}
