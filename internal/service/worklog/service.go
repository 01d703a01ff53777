package worklog

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/fc-hr/worklog-backend-go/internal/domain/worklog"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// maxPartitionReaders bounds how many partitions a range query scans at once.
const maxPartitionReaders = 4

type WorklogServiceImpl struct {
	worklog.WorklogRepository

	// Collapses concurrent aggregation triggers for the same date: a trigger
	// that arrives while that date is already being aggregated shares the
	// in-flight run instead of queueing another delete+insert behind it.
	aggregateGroup singleflight.Group
}

func NewWorklogService(worklogRepository worklog.WorklogRepository) worklog.WorklogService {
	return &WorklogServiceImpl{
		WorklogRepository: worklogRepository,
	}
}

// Aggregate implements worklog.WorklogService.
func (s *WorklogServiceImpl) Aggregate(ctx context.Context, date time.Time) error {
	rawPartition := worklog.RawPartitionName(date)

	_, err, shared := s.aggregateGroup.Do(rawPartition, func() (interface{}, error) {
		return nil, s.aggregate(ctx, date, rawPartition)
	})
	if shared {
		slog.Debug("Aggregation trigger joined an in-flight run", "partition", rawPartition)
	}
	return err
}

// employeeDayTotal accumulates one employee's punches for a single day.
// Name, upload date and source file come from the first record seen.
type employeeDayTotal struct {
	name       string
	uploadDate time.Time
	sourceFile string
	totalHours float64
}

func (s *WorklogServiceImpl) aggregate(ctx context.Context, date time.Time, rawPartition string) error {
	exists, err := s.PartitionExists(ctx, rawPartition)
	if err != nil {
		return fmt.Errorf("failed to check raw partition %s: %w", rawPartition, err)
	}
	if !exists {
		// Nothing ingested for this date yet; not an error.
		return nil
	}

	punches, err := s.GetRawPunches(ctx, rawPartition)
	if err != nil {
		return fmt.Errorf("failed to read raw punches: %w", err)
	}

	// Group punches per employee, keeping first-seen order so reruns over
	// unchanged raw data write identical summaries.
	order := make([]string, 0)
	groups := make(map[string]*employeeDayTotal)

	for _, punch := range punches {
		hours, err := clock.HoursBetween(punch.ClockIn, punch.ClockOut)
		if err != nil {
			// A single bad record aborts the whole run, before any write, so
			// the summary partition is never left partially computed.
			return fmt.Errorf("aggregation of %s aborted: %w", rawPartition, err)
		}

		group, ok := groups[punch.EmployeeID]
		if !ok {
			group = &employeeDayTotal{
				name:       punch.Name,
				uploadDate: punch.UploadDate,
				sourceFile: punch.SourceFile,
			}
			groups[punch.EmployeeID] = group
			order = append(order, punch.EmployeeID)
		}
		group.totalHours += hours
	}

	summaries := make([]worklog.DailySummary, 0, len(order))
	for _, employeeID := range order {
		group := groups[employeeID]
		finalHours := math.Min(group.totalHours, worklog.MaxDailyHours)
		summaries = append(summaries, worklog.DailySummary{
			EmployeeID: employeeID,
			Name:       group.name,
			WorkHours:  finalHours,
			Completed:  finalHours >= worklog.CompletedThresholdHours,
			UploadDate: group.uploadDate,
			SourceFile: group.sourceFile,
		})
	}

	summaryPartition := worklog.SummaryPartitionName(date)
	if err := s.ReplaceDailySummaries(ctx, summaryPartition, summaries); err != nil {
		return fmt.Errorf("failed to replace summary partition %s: %w", summaryPartition, err)
	}

	slog.Info("Aggregated daily worklog",
		"raw_partition", rawPartition,
		"summary_partition", summaryPartition,
		"employees", len(summaries))
	return nil
}

// GetByDate implements worklog.WorklogService.
func (s *WorklogServiceImpl) GetByDate(ctx context.Context, date time.Time) ([]worklog.RawPunch, error) {
	rawPartition := worklog.RawPartitionName(date)

	exists, err := s.PartitionExists(ctx, rawPartition)
	if err != nil {
		return nil, fmt.Errorf("failed to check raw partition %s: %w", rawPartition, err)
	}
	if !exists {
		return []worklog.RawPunch{}, nil
	}

	punches, err := s.GetRawPunches(ctx, rawPartition)
	if err != nil {
		return nil, err
	}
	if punches == nil {
		punches = []worklog.RawPunch{}
	}
	return punches, nil
}

// statsAccumulator merges per-partition reads into one record per employee.
// Partition reads run concurrently, so all access goes through the mutex.
type statsAccumulator struct {
	mu         sync.Mutex
	byEmployee map[string]*worklog.WorkStats
}

func newStatsAccumulator() *statsAccumulator {
	return &statsAccumulator{byEmployee: make(map[string]*worklog.WorkStats)}
}

func (a *statsAccumulator) employee(id string) *worklog.WorkStats {
	stats, ok := a.byEmployee[id]
	if !ok {
		stats = &worklog.WorkStats{
			EmployeeID: id,
			LogHistory: []worklog.LogEntry{},
		}
		a.byEmployee[id] = stats
	}
	return stats
}

// GetWorkStats implements worklog.WorklogService.
func (s *WorklogServiceImpl) GetWorkStats(ctx context.Context, req worklog.WorkStatsRequest) ([]worklog.WorkStats, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	start, end := req.Range()

	acc := newStatsAccumulator()

	// Totals and days-worked come exclusively from summary partitions.
	summaryPartitions, err := s.partitionsInRange(ctx, worklog.SummaryPartitionPrefix, start, end, worklog.DateFromSummaryPartitionName)
	if err != nil {
		return nil, err
	}
	if err := s.scanSummaries(ctx, summaryPartitions, req.EmployeeID, acc); err != nil {
		return nil, err
	}

	// Per-day history comes exclusively from raw partitions, recomputed on
	// the fly and uncapped. A date may have raw data without a summary or the
	// other way around; the two scans are independent on purpose.
	rawPartitions, err := s.partitionsInRange(ctx, worklog.RawPartitionPrefix, start, end, worklog.DateFromRawPartitionName)
	if err != nil {
		return nil, err
	}
	if err := s.scanRawHistory(ctx, rawPartitions, req.EmployeeID, acc); err != nil {
		return nil, err
	}

	results := make([]worklog.WorkStats, 0, len(acc.byEmployee))
	for _, stats := range acc.byEmployee {
		sort.Slice(stats.LogHistory, func(i, j int) bool {
			return stats.LogHistory[i].Date < stats.LogHistory[j].Date
		})
		results = append(results, *stats)
	}
	return results, nil
}

// partitionsInRange enumerates partitions by prefix and keeps the ones whose
// decoded date falls within [start, end]. Names that do not parse belong to
// some other table and are skipped silently.
func (s *WorklogServiceImpl) partitionsInRange(
	ctx context.Context,
	prefix string,
	start, end time.Time,
	dateFromName func(string) (time.Time, bool),
) (map[string]time.Time, error) {
	names, err := s.ListPartitions(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s partitions: %w", prefix, err)
	}

	kept := make(map[string]time.Time)
	for _, name := range names {
		date, ok := dateFromName(name)
		if !ok {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		kept[name] = date
	}
	return kept, nil
}

func (s *WorklogServiceImpl) scanSummaries(ctx context.Context, partitions map[string]time.Time, employeeID string, acc *statsAccumulator) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPartitionReaders)

	for name := range partitions {
		name := name
		g.Go(func() error {
			summaries, err := s.GetDailySummaries(gctx, name)
			if err != nil {
				return err
			}

			acc.mu.Lock()
			defer acc.mu.Unlock()
			for _, summary := range summaries {
				if employeeID != "" && summary.EmployeeID != employeeID {
					continue
				}
				stats := acc.employee(summary.EmployeeID)
				if stats.Name == "" {
					stats.Name = summary.Name
				}
				stats.TotalWorkHours += summary.WorkHours
				if summary.Completed {
					stats.DaysWorked++
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *WorklogServiceImpl) scanRawHistory(ctx context.Context, partitions map[string]time.Time, employeeID string, acc *statsAccumulator) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPartitionReaders)

	for name, date := range partitions {
		name := name
		day := date.Format("2006-01-02")
		g.Go(func() error {
			punches, err := s.GetRawPunches(gctx, name)
			if err != nil {
				return err
			}

			acc.mu.Lock()
			defer acc.mu.Unlock()
			for _, punch := range punches {
				if employeeID != "" && punch.EmployeeID != employeeID {
					continue
				}

				hours, err := clock.HoursBetween(punch.ClockIn, punch.ClockOut)
				if err != nil {
					// Unlike aggregation, a range query has nothing to
					// replace; drop the bad record from the history instead
					// of failing the whole response.
					slog.Warn("Skipping malformed punch record", "partition", name, "employee_id", punch.EmployeeID, "error", err)
					continue
				}

				stats := acc.employee(punch.EmployeeID)
				if stats.Name == "" {
					stats.Name = punch.Name
				}
				// Uncapped: the 10-hour cap only applies to stored summaries.
				stats.LogHistory = append(stats.LogHistory, worklog.LogEntry{
					Date:      day,
					ClockIn:   punch.ClockIn,
					ClockOut:  punch.ClockOut,
					WorkHours: hours,
					Completed: hours >= worklog.CompletedThresholdHours,
				})
			}
			return nil
		})
	}
	return g.Wait()
}

// EditClockIn implements worklog.WorklogService.
func (s *WorklogServiceImpl) EditClockIn(ctx context.Context, req worklog.EditClockRequest) (worklog.EditClockResponse, error) {
	return s.editClock(ctx, req, worklog.ClockFieldIn)
}

// EditClockOut implements worklog.WorklogService.
func (s *WorklogServiceImpl) EditClockOut(ctx context.Context, req worklog.EditClockRequest) (worklog.EditClockResponse, error) {
	return s.editClock(ctx, req, worklog.ClockFieldOut)
}

// editClock rewrites one clock field on an employee's raw records. It does not
// re-aggregate: the date's summary partition keeps its old totals until the
// next scheduled run picks up the corrected punches.
func (s *WorklogServiceImpl) editClock(ctx context.Context, req worklog.EditClockRequest, field worklog.ClockField) (worklog.EditClockResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.EditClockResponse{}, err
	}

	rawPartition := worklog.RawPartitionName(req.Day())

	exists, err := s.PartitionExists(ctx, rawPartition)
	if err != nil {
		return worklog.EditClockResponse{}, fmt.Errorf("failed to check raw partition %s: %w", rawPartition, err)
	}
	if !exists {
		return worklog.EditClockResponse{}, worklog.ErrRawRecordNotFound
	}

	updated, err := s.UpdateRawClock(ctx, rawPartition, req.EmployeeID, field, req.Time)
	if err != nil {
		return worklog.EditClockResponse{}, err
	}
	if !updated {
		return worklog.EditClockResponse{}, worklog.ErrRawRecordNotFound
	}

	slog.Info("Corrected raw punch record", "partition", rawPartition, "employee_id", req.EmployeeID, "field", field)
	return worklog.EditClockResponse{Updated: true}, nil
}
