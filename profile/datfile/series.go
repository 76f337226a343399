package datfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-tprofile/profile"
)

// Header names the output columns.
var Header = []string{"idx", "tp_altitude", "temp", "temp_spline5", "temp_savgol"}

// ToSeries converts rows whose first two fields are altitude and
// temperature. Extra fields are ignored. Any row that lacks either field or
// does not parse as a number fails the whole conversion; row numbers in the
// error are 1-based and count data rows only.
func ToSeries(rows [][]string) (profile.Series, error) {
	series := make(profile.Series, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d field(s), want at least 2", profile.ErrMalformedRow, i+1, len(row))
		}

		alt, err := parseField(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d altitude: %w", profile.ErrMalformedRow, i+1, err)
		}
		temp, err := parseField(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d temperature: %w", profile.ErrMalformedRow, i+1, err)
		}

		series[i] = profile.Sample{Altitude: alt, Temperature: temp}
	}

	return series, nil
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// FromRows formats merged rows in Header column order using the shortest
// representation that parses back to the same float64.
func FromRows(rows []profile.OutputRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			formatFloat(r.Position),
			formatFloat(r.Altitude),
			formatFloat(r.Raw),
			formatFloat(r.Fitted),
			formatFloat(r.Smoothed),
		}
	}
	return out
}

// FromSeries formats raw samples as two-column rows.
func FromSeries(series profile.Series) [][]string {
	out := make([][]string, len(series))
	for i, s := range series {
		out[i] = []string{formatFloat(s.Altitude), formatFloat(s.Temperature)}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
