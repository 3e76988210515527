package dataset

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// missingValues are read as NaN by gota and cleaned to "".
var missingValues = []string{"NA", "NaN", ""}

// frame is a string-typed CSV table.
type frame struct {
	name string
	df   dataframe.DataFrame
}

func readFrame(r io.Reader, name string) (frame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return frame{}, fmt.Errorf("%w: %s: %w", ErrData, name, df.Err)
	}
	return frame{name: name, df: df}, nil
}

// lookup finds a header case-insensitively, trying each alias in turn.
func (f frame) lookup(aliases ...string) (string, bool) {
	names := f.df.Names()
	for _, alias := range aliases {
		for _, n := range names {
			if strings.EqualFold(strings.TrimSpace(n), alias) {
				return n, true
			}
		}
	}
	return "", false
}

// columns returns the raw values of every required column, keyed by the
// first alias. A name such as "Sex|Gender" accepts either header.
func (f frame) columns(names ...string) (map[string][]string, error) {
	out := make(map[string][]string, len(names))
	for _, name := range names {
		aliases := strings.Split(name, "|")
		header, ok := f.lookup(aliases...)
		if !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrData, f.name, aliases[0])
		}
		out[aliases[0]] = f.df.Col(header).Records()
	}
	return out, nil
}

// optional returns the raw values of a column, or nil when absent.
func (f frame) optional(name string) []string {
	header, ok := f.lookup(name)
	if !ok {
		return nil
	}
	return f.df.Col(header).Records()
}

// clean trims a raw cell and maps missing markers to "".
func clean(s string) string {
	s = strings.TrimSpace(s)
	for _, m := range missingValues {
		if s == m {
			return ""
		}
	}
	return s
}
