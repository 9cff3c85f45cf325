package age

import (
	"testing"
	"time"
)

func TestDurationData(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(-10 * time.Minute)
	completed := start.Add(3 * time.Minute)
	pastCompleted := now.Add(-2 * time.Minute)

	cases := []struct {
		name        string
		startedAt   time.Time
		completedAt time.Time
		want        time.Duration
		ok          bool
	}{
		{
			name:        "completed uses timestamps",
			startedAt:   start,
			completedAt: completed,
			want:        3 * time.Minute,
			ok:          true,
		},
		{
			name:        "completed clamps negative",
			startedAt:   now,
			completedAt: pastCompleted,
			want:        0,
			ok:          true,
		},
		{
			name:      "missing completion",
			startedAt: start,
			want:      0,
			ok:        false,
		},
		{
			name:        "missing start",
			completedAt: completed,
			want:        0,
			ok:          false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DurationData(tc.startedAt, tc.completedAt)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %s/%t, got %s/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}

func TestAgeData(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	created := now.Add(-4 * time.Minute)
	future := now.Add(2 * time.Minute)

	cases := []struct {
		name      string
		createdAt time.Time
		want      time.Duration
		ok        bool
	}{
		{
			name:      "uses created time",
			createdAt: created,
			want:      4 * time.Minute,
			ok:        true,
		},
		{
			name:      "clamps future creation",
			createdAt: future,
			want:      0,
			ok:        true,
		},
		{
			name:      "missing created time",
			createdAt: time.Time{},
			want:      0,
			ok:        false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := AgeData(tc.createdAt, now)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("expected %s/%t, got %s/%t", tc.want, tc.ok, got, ok)
			}
		})
	}
}
