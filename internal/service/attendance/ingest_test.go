package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/config"
	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePunchRepo keeps punch rows in memory, mirroring the SQL
// repository's contract.
type fakePunchRepo struct {
	punches []attendance.PunchEvent
}

func (f *fakePunchRepo) UpsertFirstIn(_ context.Context, punch attendance.PunchEvent, dayStart, dayEnd time.Time) (bool, error) {
	return f.upsert(punch, dayStart, dayEnd, attendance.DirectionIn, func(candidate, existing time.Time) bool {
		return candidate.Before(existing)
	}), nil
}

func (f *fakePunchRepo) UpsertLastOut(_ context.Context, punch attendance.PunchEvent, dayStart, dayEnd time.Time) (bool, error) {
	return f.upsert(punch, dayStart, dayEnd, attendance.DirectionOut, func(candidate, existing time.Time) bool {
		return candidate.After(existing)
	}), nil
}

func (f *fakePunchRepo) upsert(punch attendance.PunchEvent, dayStart, dayEnd time.Time, direction attendance.PunchDirection, wins func(candidate, existing time.Time) bool) bool {
	for i, existing := range f.punches {
		if existing.EmployeeID != punch.EmployeeID || existing.Direction != direction {
			continue
		}
		if existing.Timestamp.Before(dayStart) || !existing.Timestamp.Before(dayEnd) {
			continue
		}
		if wins(punch.Timestamp, existing.Timestamp) {
			f.punches[i].Timestamp = punch.Timestamp
			return true
		}
		return false
	}
	punch.Direction = direction
	f.punches = append(f.punches, punch)
	return true
}

func (f *fakePunchRepo) Insert(_ context.Context, punch attendance.PunchEvent) (bool, error) {
	for _, existing := range f.punches {
		if existing.EmployeeID == punch.EmployeeID &&
			existing.Timestamp.Equal(punch.Timestamp) &&
			existing.Direction == punch.Direction {
			return false, nil
		}
	}
	f.punches = append(f.punches, punch)
	return true, nil
}

func (f *fakePunchRepo) ListByEmployeeRange(_ context.Context, employeeID string, from, to time.Time, _ string) ([]attendance.PunchEvent, error) {
	var out []attendance.PunchEvent
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) DeleteByEmployeeDay(_ context.Context, employeeID string, dayStart, dayEnd time.Time, _ string) (int64, error) {
	var kept []attendance.PunchEvent
	var deleted int64
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.Timestamp.Before(dayStart) && p.Timestamp.Before(dayEnd) {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	f.punches = kept
	return deleted, nil
}

func testAttendanceConfig() config.AttendanceConfig {
	return config.AttendanceConfig{
		ImportCutoff:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DebounceWindow:    5 * time.Minute,
		PushOutCutoffHour: 13,
	}
}

func newTestService(repo attendance.PunchRepository) *attendanceService {
	reconciler := NewReconciler(repo, nil, nil, dhaka)
	return NewAttendanceService(reconciler, nil, nil, nil, testAttendanceConfig()).(*attendanceService)
}

func TestInferDirection(t *testing.T) {
	tests := []struct {
		hour int
		want attendance.PunchDirection
	}{
		{9, attendance.DirectionIn},
		{12, attendance.DirectionIn},
		{13, attendance.DirectionOut},
		{20, attendance.DirectionOut},
	}

	for _, tt := range tests {
		local := time.Date(2025, 6, 2, tt.hour, 0, 0, 0, dhaka)
		assert.Equal(t, tt.want, inferDirection(local, 13), "hour %d", tt.hour)
	}
}

func TestDebounceTimestamps(t *testing.T) {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("taps inside the window collapse", func(t *testing.T) {
		kept, dropped := debounceTimestamps([]time.Time{
			base,
			base.Add(3 * time.Minute),
			base.Add(4 * time.Minute),
		}, 5*time.Minute)

		require.Len(t, kept, 1)
		assert.Equal(t, base, kept[0])
		assert.Equal(t, 2, dropped)
	})

	t.Run("taps outside the window survive", func(t *testing.T) {
		kept, dropped := debounceTimestamps([]time.Time{
			base,
			base.Add(10 * time.Minute),
		}, 5*time.Minute)

		assert.Len(t, kept, 2)
		assert.Zero(t, dropped)
	})

	t.Run("window measures from the last kept tap", func(t *testing.T) {
		kept, _ := debounceTimestamps([]time.Time{
			base,
			base.Add(4 * time.Minute),
			base.Add(8 * time.Minute),
		}, 5*time.Minute)

		// The 8m tap is within 5m of the dropped 4m tap but 8m from
		// the kept one, so it survives.
		require.Len(t, kept, 2)
		assert.Equal(t, base.Add(8*time.Minute), kept[1])
	})
}

func TestIngestTimestamps(t *testing.T) {
	ctx := context.Background()

	at := func(day, hour, minute int) time.Time {
		return time.Date(2025, 6, day, hour, minute, 0, 0, dhaka).UTC()
	}

	pair := func(repo *fakePunchRepo, day int) (in, out *time.Time) {
		punches, _ := repo.ListByEmployeeRange(ctx, "emp-1", at(day, 0, 0), at(day+1, 0, 0), "company-1")
		for i := range punches {
			switch punches[i].Direction {
			case attendance.DirectionIn:
				in = &punches[i].Timestamp
			case attendance.DirectionOut:
				out = &punches[i].Timestamp
			}
		}
		return in, out
	}

	t.Run("first scan is the in, later scans advance the out", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)

		stored, _, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{at(2, 9, 0), at(2, 12, 0)})
		require.NoError(t, err)
		assert.Equal(t, 2, stored)

		in, out := pair(repo, 2)
		require.NotNil(t, in)
		require.NotNil(t, out)
		assert.Equal(t, at(2, 9, 0), *in)
		assert.Equal(t, at(2, 12, 0), *out)
	})

	t.Run("two morning scans yield worked time against the shift", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)

		_, _, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{at(2, 9, 0), at(2, 12, 0)})
		require.NoError(t, err)

		days := Reconcile(ReconcileInput{
			EmployeeID: "emp-1",
			From:       localDate(2025, time.June, 2),
			To:         localDate(2025, time.June, 2),
			Location:   dhaka,
			Shift:      defaultShift(),
			Punches:    repo.punches,
		})

		// Shift starts 10:30, so the 09:00-12:00 pair works 90 minutes.
		require.Len(t, days, 1)
		assert.Equal(t, attendance.StatusPresent, days[0].Status)
		require.NotNil(t, days[0].LastOut)
		assert.Equal(t, 90, days[0].WorkedMinutes)
	})

	t.Run("a lone scan stays an in with no out", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)

		_, _, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{at(2, 19, 40)})
		require.NoError(t, err)

		in, out := pair(repo, 2)
		require.NotNil(t, in)
		assert.Nil(t, out)
		assert.Equal(t, at(2, 19, 40), *in)
	})

	t.Run("keeps earliest in and latest out across batches", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)

		_, _, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{at(2, 10, 5), at(2, 19, 40)})
		require.NoError(t, err)

		_, _, err = svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{at(2, 9, 58), at(2, 19, 55)})
		require.NoError(t, err)

		require.Len(t, repo.punches, 2)
		in, out := pair(repo, 2)
		assert.Equal(t, at(2, 9, 58), *in)
		assert.Equal(t, at(2, 19, 55), *out)
	})

	t.Run("each day folds independently", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)

		_, _, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{at(2, 10, 0), at(2, 20, 0), at(3, 10, 15), at(3, 19, 45)})
		require.NoError(t, err)

		require.Len(t, repo.punches, 4)
		in2, out2 := pair(repo, 2)
		in3, out3 := pair(repo, 3)
		assert.Equal(t, at(2, 10, 0), *in2)
		assert.Equal(t, at(2, 20, 0), *out2)
		assert.Equal(t, at(3, 10, 15), *in3)
		assert.Equal(t, at(3, 19, 45), *out3)
	})

	t.Run("re-ingesting the same batch changes nothing", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)
		batch := []time.Time{at(3, 10, 0), at(3, 20, 0)}

		stored, _, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport, batch)
		require.NoError(t, err)
		assert.Equal(t, 2, stored)

		stored, skipped, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport, batch)
		require.NoError(t, err)
		assert.Zero(t, stored)
		assert.Equal(t, 2, skipped)
		assert.Len(t, repo.punches, 2)
	})

	t.Run("history before the cutoff is skipped", func(t *testing.T) {
		repo := &fakePunchRepo{}
		svc := newTestService(repo)

		stored, skipped, err := svc.ingestTimestamps(ctx, "emp-1", "company-1", attendance.SourceImport,
			[]time.Time{time.Date(2024, 12, 30, 10, 0, 0, 0, time.UTC), at(2, 10, 0)})
		require.NoError(t, err)
		assert.Equal(t, 1, stored)
		assert.Equal(t, 1, skipped)
	})
}
