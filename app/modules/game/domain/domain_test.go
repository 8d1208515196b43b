package gamedomain

import (
	"sort"
	"testing"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func entry(point float64) Entry {
	return Entry{PlayerID: uuid.New(), Point: point}
}

func placesOf(placed []PlacedEntry) []int {
	out := make([]int, len(placed))
	for i, p := range placed {
		out[i] = p.Place
	}
	return out
}

func TestAssignPlacesTieBreakByInputOrder(t *testing.T) {
	a, b, c, d := entry(12), entry(-4), entry(-4), entry(-4)

	placed := AssignPlaces([]Entry{a, b, c, d})

	got := map[uuid.UUID]int{}
	for _, p := range placed {
		got[p.PlayerID] = p.Place
	}
	want := map[uuid.UUID]int{a.PlayerID: 1, b.PlayerID: 2, c.PlayerID: 3, d.PlayerID: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("places mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignPlacesOrdersByPointDescending(t *testing.T) {
	low, high, mid, lowest := entry(-1.5), entry(40.2), entry(3), entry(-41.7)

	placed := AssignPlaces([]Entry{low, high, mid, lowest})

	assert.Equal(t, []int{1, 2, 3, 4}, placesOf(placed))
	assert.Equal(t, high.PlayerID, placed[0].PlayerID)
	assert.Equal(t, mid.PlayerID, placed[1].PlayerID)
	assert.Equal(t, low.PlayerID, placed[2].PlayerID)
	assert.Equal(t, lowest.PlayerID, placed[3].PlayerID)
}

func TestAssignPlacesProperties(t *testing.T) {
	faker := gofakeit.New(7)
	for i := 0; i < 200; i++ {
		entries := make([]Entry, PlayersPerGame)
		for j := range entries {
			// Coarse values make ties common.
			entries[j] = entry(float64(faker.IntRange(-3, 3)) * 10)
		}
		order := map[uuid.UUID]int{}
		for j, e := range entries {
			order[e.PlayerID] = j
		}

		placed := AssignPlaces(entries)

		places := placesOf(placed)
		sorted := append([]int(nil), places...)
		sort.Ints(sorted)
		require.Equal(t, []int{1, 2, 3, 4}, sorted)

		for k := 1; k < len(placed); k++ {
			prev, cur := placed[k-1], placed[k]
			require.GreaterOrEqual(t, prev.Point, cur.Point)
			if prev.Point == cur.Point {
				require.Less(t, order[prev.PlayerID], order[cur.PlayerID], "ties keep input order")
			}
		}
	}
}

func TestValidateEntries(t *testing.T) {
	p1, p2, p3, p4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	full := func(id uuid.UUID, point float64) EntryInput {
		return EntryInput{PlayerID: id.String(), Score: intPtr(30000), Point: floatPtr(point)}
	}

	tests := []struct {
		name      string
		inputs    []EntryInput
		wantField string
		wantMsg   string
	}{
		{
			name:      "three entries",
			inputs:    []EntryInput{full(p1, 1), full(p2, 2), full(p3, 3)},
			wantField: "entries",
			wantMsg:   "fill in all players and scores",
		},
		{
			name:      "missing player",
			inputs:    []EntryInput{full(p1, 1), full(p2, 2), full(p3, 3), {Score: intPtr(1), Point: floatPtr(1)}},
			wantField: "player_id",
			wantMsg:   "fill in all players and scores",
		},
		{
			name:      "missing score",
			inputs:    []EntryInput{full(p1, 1), {PlayerID: p2.String(), Point: floatPtr(2)}, full(p3, 3), full(p4, 4)},
			wantField: "score",
			wantMsg:   "fill in all players and scores",
		},
		{
			name:      "missing point",
			inputs:    []EntryInput{full(p1, 1), full(p2, 2), {PlayerID: p3.String(), Score: intPtr(1)}, full(p4, 4)},
			wantField: "point",
			wantMsg:   "fill in all players and scores",
		},
		{
			name:      "duplicate player",
			inputs:    []EntryInput{full(p1, 1), full(p2, 2), full(p1, 3), full(p4, 4)},
			wantField: "player_id",
			wantMsg:   "each player can only appear once per game",
		},
		{
			name:      "malformed id",
			inputs:    []EntryInput{full(p1, 1), full(p2, 2), full(p3, 3), {PlayerID: "nope", Score: intPtr(1), Point: floatPtr(1)}},
			wantField: "player_id",
			wantMsg:   "unknown player id nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateEntries(tt.inputs)
			require.Error(t, err)
			var appErr *apperrors.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Equal(t, tt.wantField, appErr.Field)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}

	t.Run("chip defaults to zero", func(t *testing.T) {
		in := []EntryInput{full(p1, 1), full(p2, 2), full(p3, 3), full(p4, 4)}
		in[2].Chip = intPtr(-5)
		entries, err := ValidateEntries(in)
		require.NoError(t, err)
		assert.Equal(t, 0, entries[0].Chip)
		assert.Equal(t, -5, entries[2].Chip)
		assert.Equal(t, p3, entries[2].PlayerID)
	})
}

func TestAutoBalance(t *testing.T) {
	tests := []struct {
		name   string
		others []SignedEntry
		want   float64
	}{
		{
			name: "signed inputs via toggles",
			others: []SignedEntry{
				{Value: 10, Present: true},
				{Value: 5, Negative: true, Present: true},
				{Value: 3, Negative: true, Present: true},
			},
			want: -2.0,
		},
		{
			name: "negative typed values",
			others: []SignedEntry{
				{Value: 10, Present: true},
				{Value: -5, Present: true},
				{Value: -3, Present: true},
			},
			want: -2.0,
		},
		{
			name: "float drift is rounded away",
			others: []SignedEntry{
				{Value: 0.1, Present: true},
				{Value: 0.2, Present: true},
				{Value: 12.3, Negative: true, Present: true},
			},
			want: 12.0,
		},
		{
			name: "incomplete input",
			others: []SignedEntry{
				{Value: 10, Present: true},
				{Value: 5, Present: false},
				{Value: 3, Present: true},
			},
			want: 0,
		},
		{
			name:   "too few cells",
			others: []SignedEntry{{Value: 10, Present: true}},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AutoBalance(tt.others))
		})
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.3, Round1(0.1+0.2))
	assert.Equal(t, -2.5, Round1(-2.46))
	assert.Equal(t, 0.0, Round1(-0.04))
}

func TestEstimateScore(t *testing.T) {
	assert.Equal(t, 31500, EstimateScore(1.5, 30000))
	assert.Equal(t, 27700, EstimateScore(-2.3, 30000))
	assert.Equal(t, 25000, EstimateScore(0, 25000))
}

func TestCheckPointSum(t *testing.T) {
	balanced := []Entry{entry(30.5), entry(-10.2), entry(-10.1), entry(-10.2)}
	unbalanced := []Entry{entry(30), entry(-10), entry(-10), entry(-5)}

	for _, policy := range []string{config.PointSumIgnore, config.PointSumWarn, config.PointSumReject} {
		imbalance, off, err := CheckPointSum(balanced, policy, 0.05)
		assert.NoError(t, err, policy)
		assert.False(t, off, policy)
		assert.Equal(t, 0.0, imbalance, policy)
	}

	imbalance, off, err := CheckPointSum(unbalanced, config.PointSumIgnore, 0.05)
	assert.NoError(t, err)
	assert.True(t, off)
	assert.Equal(t, 5.0, imbalance)

	_, off, err = CheckPointSum(unbalanced, config.PointSumWarn, 0.05)
	assert.NoError(t, err)
	assert.True(t, off)

	_, _, err = CheckPointSum(unbalanced, config.PointSumReject, 0.05)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "off by 5.00")
}

func TestCheckPointSumUsesExactSumUnderTightTolerance(t *testing.T) {
	entries := []Entry{entry(30), entry(-10), entry(-10), entry(-9.96)}

	imbalance, off, err := CheckPointSum(entries, config.PointSumReject, 0.01)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.True(t, off)
	assert.Equal(t, 0.0, imbalance)
	assert.Contains(t, err.Error(), "off by 0.04")

	_, off, err = CheckPointSum(entries, config.PointSumReject, 0.05)
	assert.NoError(t, err)
	assert.False(t, off)
}

func TestParsePlayedAt(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	got, err := ParsePlayedAt("", now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = ParsePlayedAt("2026-03-01T21:30:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 21, 30, 0, 0, time.UTC), got)

	got, err = ParsePlayedAt("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, time.March, got.Month())

	_, err = ParsePlayedAt("2026-04-01T00:00:00Z", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = ParsePlayedAt("qwxz", now)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
