// Package scenarios defines the fixed queries run over the phone usage dataset.
package scenarios

import (
	"fmt"

	"github.com/leengari/phonequery/internal/planner/predicate"
)

// Default values bound to the short-call scenario
const (
	ShortCallNetwork     = "landline"
	ShortCallMaxDuration = 60
)

// Parameter names referenced by the short-call scenario
const (
	ParamNetwork     = "network"
	ParamMaxDuration = "max_duration"
)

// Scenario is one labeled query
type Scenario struct {
	Name   string
	Label  string
	Expr   predicate.Expr
	Params predicate.Params
}

// LongCalls matches calls lasting more than 1000 seconds
func LongCalls() Scenario {
	return Scenario{
		Name:  "long_calls",
		Label: "Calls lasting more than 1000 seconds:",
		Expr: predicate.And(
			predicate.Eq("item", predicate.Lit("call")),
			predicate.Gt("duration", predicate.Lit(1000)),
		),
	}
}

// VodafoneSMS matches SMS sent through the Vodafone network
func VodafoneSMS() Scenario {
	return Scenario{
		Name:  "vodafone_sms",
		Label: "SMS sent through the Vodafone network:",
		Expr: predicate.And(
			predicate.Eq("item", predicate.Lit("sms")),
			predicate.Eq("network", predicate.Lit("Vodafone")),
		),
	}
}

// DataJanuary2015 matches data usage billed in the 2015-01 bucket.
// The month is compared as a label, not as a date range.
func DataJanuary2015() Scenario {
	return Scenario{
		Name:  "data_2015_01",
		Label: "Data usage in January 2015:",
		Expr: predicate.And(
			predicate.Eq("item", predicate.Lit("data")),
			predicate.Eq("month", predicate.Lit("2015-01")),
		),
	}
}

// ShortCalls matches calls shorter than maxDuration seconds that are not to
// the given network type. Both values are bound as parameters.
func ShortCalls(network string, maxDuration float64) Scenario {
	return Scenario{
		Name:  "short_calls",
		Label: fmt.Sprintf("Short calls (<%ss) not to network type '%s':", formatNumber(maxDuration), network),
		Expr: predicate.And(
			predicate.Eq("item", predicate.Lit("call")),
			predicate.Ne("network_type", predicate.Param(ParamNetwork)),
			predicate.Lt("duration", predicate.Param(ParamMaxDuration)),
		),
		Params: predicate.Params{
			ParamNetwork:     network,
			ParamMaxDuration: maxDuration,
		},
	}
}

// NetworkContains matches rows whose network contains substr, ignoring case.
// Rows without a network never match.
func NetworkContains(substr string) Scenario {
	return Scenario{
		Name:  "network_contains",
		Label: fmt.Sprintf("Networks whose name contains '%s' (case-insensitive):", substr),
		Expr:  predicate.Contains("network", substr, predicate.IgnoreCase()),
	}
}

// ItemPrefix matches rows whose item starts with prefix.
// Rows without an item never match.
func ItemPrefix(prefix string) Scenario {
	return Scenario{
		Name:  "item_prefix",
		Label: fmt.Sprintf("Items starting with '%s':", prefix),
		Expr:  predicate.HasPrefix("item", prefix),
	}
}

// Catalog returns the six scenarios in presentation order
func Catalog() []Scenario {
	return []Scenario{
		LongCalls(),
		VodafoneSMS(),
		DataJanuary2015(),
		ShortCalls(ShortCallNetwork, ShortCallMaxDuration),
		NetworkContains("da"),
		ItemPrefix("ca"),
	}
}

func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
