// Package rules builds the jet-merchant recording and alert rules as
// Prometheus Operator PrometheusRule resources.
package rules

// Fixed fields of every generated resource. The prometheus label matches
// the ruleSelector of the Prometheus instance that scrapes jet-merchant.
const (
	apiVersion     = "monitoring.coreos.com/v1"
	kind           = "PrometheusRule"
	selectorLabel  = "prometheus"
	selectorTarget = "system-rules-prometheus"
)

// PrometheusRule is the custom resource written to deploy/prometheus.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata names the resource; the name doubles as the
// output file name.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as a unit. Interval falls back to the global
// evaluation interval when empty.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert. For, Labels and Annotations
// only apply to alerts.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{selectorLabel: selectorTarget},
		},
		Spec: PrometheusRuleSpec{Groups: groups},
	}
}
