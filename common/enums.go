// Enums shared between the library and the command line tool are kept in a
// separate package so library packages do not have to import configuration.
package common

import "fmt"

// Specification of requested output type for rendered selectors.
type OutputFmt int

const (
	OutputFmtText OutputFmt = iota // plain text, one selector per line
	OutputFmtJSON                  // JSON array of selector strings
	OutputFmtYaml                  // YAML sequence of selector strings
)

func (o OutputFmt) String() string {
	switch o {
	case OutputFmtText:
		return "text"
	case OutputFmtJSON:
		return "json"
	case OutputFmtYaml:
		return "yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// ParseOutputFmt converts a command line value to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	switch name {
	case "text", "":
		return OutputFmtText, nil
	case "json":
		return OutputFmtJSON, nil
	case "yaml":
		return OutputFmtYaml, nil
	default:
		return OutputFmtText, fmt.Errorf("unsupported output format '%s'", name)
	}
}

// OutputFmtNames returns names of all supported output formats.
func OutputFmtNames() []string {
	return []string{OutputFmtText.String(), OutputFmtJSON.String(), OutputFmtYaml.String()}
}
