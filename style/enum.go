package style

import "fmt"

// enumName returns names[v] or a numbered fallback.
func enumName(names []string, kind string, v uint8) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

// enumParse finds s in names.
func enumParse(names []string, kind string, s string) (uint8, error) {
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("style: unknown %s %q", kind, s)
}
