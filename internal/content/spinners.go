package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
)

// RawSpinnerData is the first-stage representation of one weighted
// string table loaded from TOML.
type RawSpinnerData struct {
	SpinnerType string   `toml:"spinner_type"`
	Values      []string `toml:"values"`
	Widths      []int    `toml:"widths"`
}

// RawSpinnerFile is the wrapper TOML requires to deserialize a bare
// spinner entry array.
type RawSpinnerFile struct {
	Spinners []RawSpinnerData `toml:"spinners"`
}

func loadRawSpinners(path string) ([]RawSpinnerData, error) {
	var wrapper RawSpinnerFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing spinner data from %q: %w", path, err)
	}
	return wrapper.Spinners, nil
}

func buildSpinners(raw []RawSpinnerData) (spinner.Table, error) {
	table := make(spinner.Table, len(raw))
	for _, rs := range raw {
		typ, ok := spinner.ParseType(rs.SpinnerType)
		if !ok {
			return nil, fmt.Errorf("spinner %q: unknown spinner type", rs.SpinnerType)
		}
		table[typ] = spinner.New(rs.Values, rs.Widths)
	}
	return table, nil
}
