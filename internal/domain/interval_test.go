package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func stayRange(t *testing.T, in, out string) DateRange {
	t.Helper()
	return DateRange{CheckIn: day(t, in), CheckOut: day(t, out)}
}

func TestDateRange_Valid(t *testing.T) {
	assert.True(t, stayRange(t, "2024-01-01", "2024-01-05").Valid())
	assert.False(t, stayRange(t, "2024-01-05", "2024-01-01").Valid())
	assert.False(t, stayRange(t, "2024-01-01", "2024-01-01").Valid())
}

func TestDateRange_Overlaps(t *testing.T) {
	base := stayRange(t, "2024-03-01", "2024-03-10")

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"contained", stayRange(t, "2024-03-05", "2024-03-08"), true},
		{"straddles start", stayRange(t, "2024-02-25", "2024-03-02"), true},
		{"straddles end", stayRange(t, "2024-03-09", "2024-03-15"), true},
		{"covers", stayRange(t, "2024-02-01", "2024-04-01"), true},
		{"identical", base, true},
		{"before", stayRange(t, "2024-02-01", "2024-02-20"), false},
		{"after", stayRange(t, "2024-03-20", "2024-03-25"), false},
		{"back to back before", stayRange(t, "2024-02-20", "2024-03-01"), false},
		{"back to back after", stayRange(t, "2024-03-10", "2024-03-15"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestFindConflict_Stays(t *testing.T) {
	holds := []Hold{
		{BookingID: "b1", Kind: KindShortlet, Range: stayRange(t, "2024-01-01", "2024-01-05")},
		{BookingID: "b2", Kind: KindRental, Range: stayRange(t, "2024-02-01", "2024-03-01")},
	}

	// checkout day == next check-in day does not conflict
	got := FindConflict(holds, stayRange(t, "2024-01-05", "2024-01-10"), KindShortlet, 30*time.Minute)
	assert.Nil(t, got)

	got = FindConflict(holds, stayRange(t, "2024-01-03", "2024-01-07"), KindShortlet, 30*time.Minute)
	require.NotNil(t, got)
	assert.Equal(t, "b1", got.BookingID)

	// shortlet candidates collide with rental holds and vice versa
	got = FindConflict(holds, stayRange(t, "2024-02-10", "2024-02-12"), KindShortlet, 30*time.Minute)
	require.NotNil(t, got)
	assert.Equal(t, "b2", got.BookingID)
}

func TestFindConflict_Inspections(t *testing.T) {
	at := func(hhmm string) time.Time {
		d, err := time.Parse("2006-01-02 15:04", "2024-05-01 "+hhmm)
		require.NoError(t, err)
		return d
	}
	slot := func(start string) DateRange {
		s := at(start)
		return DateRange{CheckIn: s, CheckOut: s.Add(45 * time.Minute)}
	}

	holds := []Hold{
		{BookingID: "i1", Kind: KindSaleInspection, Range: slot("10:00")},
	}

	got := FindConflict(holds, slot("10:20"), KindSaleInspection, 30*time.Minute)
	require.NotNil(t, got)
	assert.Equal(t, "i1", got.BookingID)

	assert.Nil(t, FindConflict(holds, slot("10:30"), KindSaleInspection, 30*time.Minute))
	assert.Nil(t, FindConflict(holds, slot("09:30"), KindSaleInspection, 30*time.Minute))

	got = FindConflict(holds, slot("09:45"), KindSaleInspection, 30*time.Minute)
	require.NotNil(t, got)
}

func TestFindConflict_CrossKind(t *testing.T) {
	stay := Hold{BookingID: "s1", Kind: KindShortlet, Range: stayRange(t, "2024-05-01", "2024-05-10")}
	inspection := Hold{
		BookingID: "i1",
		Kind:      KindSaleInspection,
		Range: DateRange{
			CheckIn:  day(t, "2024-05-03").Add(10 * time.Hour),
			CheckOut: day(t, "2024-05-03").Add(10*time.Hour + 45*time.Minute),
		},
	}

	// an inspection inside an occupied stay is allowed
	slot := DateRange{
		CheckIn:  day(t, "2024-05-05").Add(12 * time.Hour),
		CheckOut: day(t, "2024-05-05").Add(12*time.Hour + 45*time.Minute),
	}
	assert.Nil(t, FindConflict([]Hold{stay}, slot, KindSaleInspection, 30*time.Minute))

	// a stay over an existing inspection slot is allowed
	assert.Nil(t, FindConflict([]Hold{inspection}, stayRange(t, "2024-05-01", "2024-05-10"), KindShortlet, 30*time.Minute))
}
