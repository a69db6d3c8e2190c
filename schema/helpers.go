package schema

import (
	"fmt"
	"strings"
)

// MethodDisplayName formats a forecast method for table headers,
// e.g. "diff-moving-average" to "Diff Moving Average".
func MethodDisplayName(method ForecastMethod) string {
	parts := strings.Split(string(method), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// ParseMethods parses a comma-separated method list, defaulting to all
// methods when the input is empty. Unknown names produce an error.
func ParseMethods(s string) ([]ForecastMethod, error) {
	if strings.TrimSpace(s) == "" {
		return AllForecastMethods, nil
	}

	var methods []ForecastMethod
	for _, part := range strings.Split(s, ",") {
		m := ForecastMethod(strings.TrimSpace(part))
		if _, ok := ValidForecastMethods[m]; !ok {
			return nil, fmt.Errorf("unknown forecast method %q (valid: naive, moving-average, diff-moving-average, diff-moving-average-smooth, model)", m)
		}
		methods = append(methods, m)
	}
	return methods, nil
}

// FormatMethods joins methods for display as "naive, moving-average".
func FormatMethods(methods []ForecastMethod) string {
	parts := make([]string, len(methods))
	for i, m := range methods {
		parts[i] = string(m)
	}
	return strings.Join(parts, ", ")
}

// EvaluationsEqual compares two evaluation slices, considering them equal
// if they contain the same methods with the same metrics regardless of order.
func EvaluationsEqual(a, b []Evaluation) bool {
	if len(a) != len(b) {
		return false
	}

	byMethod := make(map[ForecastMethod]Evaluation, len(a))
	for _, ev := range a {
		byMethod[ev.Method] = ev
	}
	for _, ev := range b {
		other, ok := byMethod[ev.Method]
		if !ok || other != ev {
			return false
		}
	}
	return true
}
