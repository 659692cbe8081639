package attendance

import (
	"context"
	"sort"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
)

// inferDirection reads a bare timestamp as an In or Out punch from its
// local wall-clock hour. Push terminals report no direction, so the
// cutoff hour is the only signal available.
func inferDirection(local time.Time, outCutoffHour int) attendance.PunchDirection {
	if local.Hour() >= outCutoffHour {
		return attendance.DirectionOut
	}
	return attendance.DirectionIn
}

// dayWindow returns the [start, end) instants of the local calendar day
// containing the given local time.
func dayWindow(local time.Time) (time.Time, time.Time) {
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return start, start.AddDate(0, 0, 1)
}

// debounceTimestamps drops timestamps that follow a kept one within the
// window. Input must be sorted ascending. A fingerprint terminal often
// registers two or three scans for a single person at the door.
func debounceTimestamps(sorted []time.Time, window time.Duration) (kept []time.Time, dropped int) {
	for _, ts := range sorted {
		if len(kept) > 0 && ts.Sub(kept[len(kept)-1]) < window {
			dropped++
			continue
		}
		kept = append(kept, ts)
	}
	return kept, dropped
}

// ingestTimestamps runs one employee's imported scans through the full
// pipeline: drop stale history, sort, group by local day, debounce
// within the day, then fold positionally into the stored pair. The
// first accepted scan of a day is the In; every later one advances the
// single Out record. Returns how many punches changed stored state and
// how many scans were skipped.
func (s *attendanceService) ingestTimestamps(ctx context.Context, employeeID, companyID, source string, timestamps []time.Time) (int, int, error) {
	sorted := make([]time.Time, 0, len(timestamps))
	skipped := 0
	for _, ts := range timestamps {
		if ts.Before(s.importCutoff) {
			skipped++
			continue
		}
		sorted = append(sorted, ts)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	byDay := make(map[string][]time.Time)
	var dayKeys []string
	for _, ts := range sorted {
		key := ts.In(s.location).Format("2006-01-02")
		if _, seen := byDay[key]; !seen {
			dayKeys = append(dayKeys, key)
		}
		byDay[key] = append(byDay[key], ts)
	}

	stored := 0
	for _, key := range dayKeys {
		kept, dropped := debounceTimestamps(byDay[key], s.debounceWindow)
		skipped += dropped

		for i, ts := range kept {
			local := ts.In(s.location)
			dayStart, dayEnd := dayWindow(local)

			punch := attendance.PunchEvent{
				EmployeeID: employeeID,
				CompanyID:  companyID,
				Timestamp:  ts.UTC(),
				Source:     source,
			}

			var (
				changed bool
				err     error
			)
			if i == 0 {
				punch.Direction = attendance.DirectionIn
				changed, err = s.punchRepo.UpsertFirstIn(ctx, punch, dayStart, dayEnd)
			} else {
				punch.Direction = attendance.DirectionOut
				changed, err = s.punchRepo.UpsertLastOut(ctx, punch, dayStart, dayEnd)
			}
			if err != nil {
				return stored, skipped, err
			}
			if changed {
				stored++
			} else {
				skipped++
			}
		}
	}

	return stored, skipped, nil
}
