package bench

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

// ResultRow is a single finished set of a training or evaluation run
type ResultRow struct {
	RunID      string  `parquet:"run_id,dict"`
	Set        int32   `parquet:"set"`
	Games      int32   `parquet:"games"`
	XWins      int32   `parquet:"x_wins"`
	OWins      int32   `parquet:"o_wins"`
	Draws      int32   `parquet:"draws"`
	Epsilon    float64 `parquet:"epsilon"`
	FinishedAt int64   `parquet:"finished_at_ms"`
}

// ResultsWriter collects the finished sets as a Listener and writes them
// to a zstd compressed parquet file on Flush
type ResultsWriter struct {
	DefaultListener
	path    string
	runID   string
	rows    []ResultRow
	epsilon func() float64
	now     func() time.Time
}

func NewResultsWriter(path string) *ResultsWriter {
	return &ResultsWriter{
		path:    path,
		runID:   uuid.NewString(),
		epsilon: func() float64 { return 0 },
		now:     time.Now,
	}
}

// Where the current exploration probability is read from when a set finishes
func (rw *ResultsWriter) SetEpsilonSource(fn func() float64) *ResultsWriter {
	if fn != nil {
		rw.epsilon = fn
	}
	return rw
}

func (rw *ResultsWriter) RunID() string {
	return rw.runID
}

func (rw *ResultsWriter) Rows() []ResultRow {
	return rw.rows
}

func (rw *ResultsWriter) OnFinishedSet(info SetInfo) {
	rw.rows = append(rw.rows, ResultRow{
		RunID:      rw.runID,
		Set:        int32(info.Set),
		Games:      int32(info.Stats.Total()),
		XWins:      int32(info.Stats.XWins),
		OWins:      int32(info.Stats.OWins),
		Draws:      int32(info.Stats.Draws),
		Epsilon:    rw.epsilon(),
		FinishedAt: rw.now().UnixMilli(),
	})
}

// Flush writes every collected row, replacing the file. Written to a temporary
// file first and renamed, so readers never see a partial file.
func (rw *ResultsWriter) Flush() error {
	if err := os.MkdirAll(filepath.Dir(rw.path), 0o755); err != nil {
		return errors.Wrap(err, "create results dir")
	}

	tmpPath := rw.path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rw.rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "uttt_sets_v1"),
		parquet.KeyValueMetadata("run_id", rw.runID),
	); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "write parquet")
	}
	if err := os.Rename(tmpPath, rw.path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename results")
	}
	return nil
}

// ReadResults loads the rows written by ResultsWriter
func ReadResults(path string) ([]ResultRow, error) {
	rows, err := parquet.ReadFile[ResultRow](path)
	if err != nil {
		return nil, errors.Wrapf(err, "read results %s", path)
	}
	return rows, nil
}
