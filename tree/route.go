package tree

import "fmt"

// The closed set of view routes the UI's router recognizes. Leaf URLs embed
// one of these; passing anything else to NewView is a programming error.
var routes = map[string]bool{
	"calltree":      true,
	"flame-graph":   true,
	"stack-chart":   true,
	"marker-chart":  true,
	"marker-table":  true,
	"network-chart": true,
	"js-tracer":     true,
}

// ValidateRoute checks a route token against the recognized set.
func ValidateRoute(token string) error {
	if !routes[token] {
		return fmt.Errorf("invalid route token: %#v", token)
	}
	return nil
}
