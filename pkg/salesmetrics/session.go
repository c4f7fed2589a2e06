package salesmetrics

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/models"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/parser"
	"github.com/ukaji3/salesmetrics-go/pkg/salesmetrics/pipeline"
)

// Session holds the currently loaded table. Each load replaces it wholesale.
// A Session is not safe for concurrent use.
type Session struct {
	ID string

	opts   Options
	log    *slog.Logger
	raw    *models.RawTable
	loaded *models.CleanedTable
}

// NewSession creates an empty session.
func NewSession(opts Options) *Session {
	id := uuid.NewString()
	return &Session{
		ID:   id,
		opts: opts,
		log:  opts.logger().With("session", id),
	}
}

// Load reads the file at path, resolves its columns and cleans it.
// On failure the previously loaded table is kept.
func (s *Session) Load(path string) (*models.CleanedTable, error) {
	raw, err := parser.ReadFile(path, s.opts.parserOptions())
	if err != nil {
		s.log.Error("read failed", "path", path, "error", err)
		return nil, NewLoadError(path, StageRead, err)
	}
	s.log.Info("file read", "path", path, "sheet", raw.Sheet,
		"rows", raw.Len(), "columns", len(raw.Columns))

	table, err := s.LoadTable(raw)
	if err != nil {
		return nil, NewLoadError(path, StageClean, err)
	}
	return table, nil
}

// LoadTable cleans an already-read raw table and makes it current.
func (s *Session) LoadTable(raw *models.RawTable) (*models.CleanedTable, error) {
	roles := pipeline.Resolve(raw)
	for _, r := range roles.Roles() {
		s.log.Debug("column resolved", "role", r, "column", roles[r])
	}
	if missing := roles.Missing(pipeline.MetricRoles...); len(missing) > 0 {
		s.log.Warn("roles unresolved", "missing", missing, "columns", raw.Columns)
	}

	table, err := pipeline.CleanWithRoles(raw, roles, s.opts.pipelineOptions())
	if err != nil {
		s.log.Error("clean failed", "error", err)
		return nil, err
	}
	for _, sum := range table.Numeric {
		s.log.Debug("column cleaned", "column", sum.Column, "dtype", sum.DType,
			"non_null", sum.NonNull, "nulls", sum.Nulls(), "sum", sum.Sum.String())
	}

	s.raw = raw
	s.loaded = table
	return table, nil
}

// Table returns the current cleaned table.
func (s *Session) Table() (*models.CleanedTable, error) {
	if s.loaded == nil {
		return nil, ErrNoTable
	}
	return s.loaded, nil
}

// Raw returns the current raw table, or nil before the first load.
func (s *Session) Raw() *models.RawTable {
	return s.raw
}

// Filter restricts the current table to rng. A malformed endpoint returns
// the unfiltered table along with the DateRangeParseError.
func (s *Session) Filter(rng *models.DateRange) (*models.CleanedTable, error) {
	table, err := s.Table()
	if err != nil {
		return nil, err
	}
	filtered, err := pipeline.FilterByDate(table, rng)
	var rangeErr *pipeline.DateRangeParseError
	if errors.As(err, &rangeErr) {
		s.log.Warn("date filter ignored", "endpoint", rangeErr.Endpoint, "text", rangeErr.Text)
	}
	if err == nil && !rng.IsBlank() {
		s.log.Info("date filter applied", "start", rng.Start, "end", rng.End,
			"rows", filtered.Len(), "of", table.Len())
	}
	return filtered, err
}

// ComputeMetrics computes metrics for table, or the current table if nil.
func (s *Session) ComputeMetrics(table *models.CleanedTable) (*models.MetricsRecord, error) {
	table, err := s.orCurrent(table)
	if err != nil {
		return nil, err
	}
	return pipeline.ComputeMetrics(table)
}

// AggregateBy groups table, or the current table if nil, by role.
func (s *Session) AggregateBy(table *models.CleanedTable, role models.Role) (*models.Aggregation, error) {
	table, err := s.orCurrent(table)
	if err != nil {
		return nil, err
	}
	return pipeline.AggregateBy(table, role)
}

// MonthlyTrend returns monthly totals for table, or the current table if nil.
func (s *Session) MonthlyTrend(table *models.CleanedTable) ([]models.MonthTotal, error) {
	table, err := s.orCurrent(table)
	if err != nil {
		return nil, err
	}
	return pipeline.MonthlyTrend(table)
}

func (s *Session) orCurrent(table *models.CleanedTable) (*models.CleanedTable, error) {
	if table != nil {
		return table, nil
	}
	return s.Table()
}
