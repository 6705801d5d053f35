package market

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// LoadCSV reads candle history for one pair from a local file:
//
//	time,open,high,low,close[,volume]
//
// where time is RFC3339 or RFC3339Nano. A header row is allowed and
// empty/short rows are skipped. Compressed inputs are handled by extension:
// ".xz" is decompressed on the fly, ".zip" is extracted to a temp directory
// and the first .csv member is loaded.
//
// Fetching data over the network is a collaborator's job; this only ingests
// whatever file that collaborator produced.
func LoadCSV(path, pair string) (*Series, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return loadZip(path, pair)
	case ".xz":
		return loadXZ(path, pair)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCandles(f, pair)
	}
}

func loadXZ(path, pair string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open xz %s: %w", path, err)
	}
	return ReadCandles(r, pair)
}

func loadZip(path, pair string) (*Series, error) {
	dir, err := os.MkdirTemp("", "candles-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	var csvPath string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if csvPath == "" && !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			csvPath = p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if csvPath == "" {
		return nil, fmt.Errorf("no .csv member found in %s", path)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCandles(f, pair)
}

// ReadCandles parses candle CSV rows from r and builds a validated Series.
func ReadCandles(r io.Reader, pair string) (*Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var candles []Candle
	sawFirst := false

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) == 0 {
			continue
		}

		// Allow a single header row
		if !sawFirst {
			sawFirst = true
			if strings.EqualFold(strings.TrimSpace(row[0]), "time") {
				continue
			}
		}

		c, ok, err := parseCandleRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		candles = append(candles, c)
	}

	return NewSeries(pair, candles)
}

func parseCandleRow(row []string) (Candle, bool, error) {
	// Need at least: time,open,high,low,close
	if len(row) < 5 {
		return Candle{}, false, nil
	}

	ts := strings.TrimSpace(row[0])
	if ts == "" {
		return Candle{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t2, err2 := time.Parse(time.RFC3339Nano, ts)
		if err2 != nil {
			return Candle{}, false, fmt.Errorf("bad time %q: %w", ts, err)
		}
		t = t2
	}

	vals := make([]float64, 4)
	for i := 1; i <= 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return Candle{}, false, fmt.Errorf("bad price %q: %w", row[i], err)
		}
		vals[i-1] = v
	}

	c := Candle{Time: t, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3]}

	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		vol, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil {
			return Candle{}, false, fmt.Errorf("bad volume %q: %w", row[5], err)
		}
		c.Volume = vol
	}

	return c, true, nil
}
