package discovery

import (
	"reflect"
	"testing"
	"time"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

func strptr(s string) *string { return &s }

func testPool() []domain.Candidate {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Candidate{
		{
			CreatorID:   1,
			DisplayName: "Ava Stone",
			Handle:      "ava_films",
			Roles:       []string{"Filmmaker"},
			Skills:      []string{"Editing", "Color Grading"},
			LookingFor:  []string{"Musician"},
			VibeWords:   []string{"moody"},
			Tagline:     strptr("Documentary nerd"),
			Location:    strptr("Berlin, Germany"),
			Remote:      false,
			Verified:    true,
			CreatedAt:   base.Add(3 * time.Hour),
		},
		{
			CreatorID:   2,
			DisplayName: "Ben Ortiz",
			Handle:      "benbeats",
			Roles:       []string{"Musician", "Producer"},
			Skills:      []string{"Mixing"},
			LookingFor:  []string{"Filmmaker"},
			VibeWords:   []string{"upbeat"},
			Location:    strptr("Lisbon, Portugal"),
			Remote:      true,
			Verified:    false,
			CreatedAt:   base.Add(1 * time.Hour),
		},
		{
			CreatorID:   3,
			DisplayName: "Chloe Park",
			Handle:      "chloepaints",
			Roles:       []string{"Illustrator"},
			Skills:      []string{"Procreate", "Editing"},
			LookingFor:  []string{"Writer"},
			VibeWords:   []string{"moody", "playful"},
			Remote:      true,
			Verified:    true,
			CreatedAt:   base.Add(2 * time.Hour),
		},
	}
}

func ids(pool []domain.Candidate) []int {
	out := make([]int, 0, len(pool))
	for _, c := range pool {
		out = append(out, c.CreatorID)
	}
	return out
}

func TestApplyEmptySpecReturnsAllNewestFirst(t *testing.T) {
	got := Apply(testPool(), FilterSpec{})
	want := []int{1, 3, 2}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	pool := testPool()
	before := ids(pool)

	Apply(pool, FilterSpec{SortBy: SortName, Roles: []string{"Musician"}})

	if !reflect.DeepEqual(ids(pool), before) {
		t.Errorf("input pool mutated: got %v, want %v", ids(pool), before)
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	pool := testPool()
	spec := FilterSpec{Skills: []string{"editing"}, SortBy: SortOldest}

	first := Apply(pool, spec)
	second := Apply(pool, spec)

	if !reflect.DeepEqual(first, second) {
		t.Error("same pool and spec produced different results")
	}
}

func TestApplyTagDimensions(t *testing.T) {
	tests := []struct {
		name string
		spec FilterSpec
		want []int
	}{
		{
			name: "or within roles",
			spec: FilterSpec{Roles: []string{"Musician", "Illustrator"}},
			want: []int{3, 2},
		},
		{
			name: "roles are case insensitive",
			spec: FilterSpec{Roles: []string{"musician"}},
			want: []int{2},
		},
		{
			name: "and across dimensions",
			spec: FilterSpec{Roles: []string{"Filmmaker", "Illustrator"}, Skills: []string{"Editing"}},
			want: []int{1, 3},
		},
		{
			name: "and across dimensions can exclude everyone",
			spec: FilterSpec{Roles: []string{"Musician"}, Skills: []string{"Editing"}},
			want: []int{},
		},
		{
			name: "vibe words",
			spec: FilterSpec{VibeWords: []string{"playful"}},
			want: []int{3},
		},
		{
			name: "looking for",
			spec: FilterSpec{LookingFor: []string{"filmmaker"}},
			want: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(testPool(), tt.spec))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"display name substring", "ava", []int{1}},
		{"handle substring", "beats", []int{2}},
		{"tagline substring", "documentary", []int{1}},
		{"skill tag substring", "grading", []int{1}},
		{"case folded", "CHLOE", []int{3}},
		{"no hit", "zzz", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(testPool(), FilterSpec{Search: tt.search}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("search %q: got %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestApplyLocation(t *testing.T) {
	// Candidate 3 has no location and must be excluded whenever the
	// location filter is set.
	got := ids(Apply(testPool(), FilterSpec{Location: "berlin"}))
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("got %v, want [1]", got)
	}

	got = ids(Apply(testPool(), FilterSpec{Location: "o"}))
	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("substring location: got %v, want [2]", got)
	}
}

func TestApplyFlags(t *testing.T) {
	got := ids(Apply(testPool(), FilterSpec{RemoteOnly: true}))
	if !reflect.DeepEqual(got, []int{3, 2}) {
		t.Errorf("remote only: got %v, want [3 2]", got)
	}

	got = ids(Apply(testPool(), FilterSpec{VerifiedOnly: true}))
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("verified only: got %v, want [1 3]", got)
	}
}

func TestApplySortModes(t *testing.T) {
	tests := []struct {
		mode SortMode
		want []int
	}{
		{SortNewest, []int{1, 3, 2}},
		{SortOldest, []int{2, 3, 1}},
		{SortVerified, []int{1, 3, 2}},
		{SortName, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := ids(Apply(testPool(), FilterSpec{SortBy: tt.mode}))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sort %s: got %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestApplySortVerifiedIsStable(t *testing.T) {
	// Two verified candidates keep their relative pool order.
	got := ids(Apply(testPool(), FilterSpec{SortBy: SortVerified}))
	if got[0] != 1 || got[1] != 3 {
		t.Errorf("verified sort not stable: got %v", got)
	}
}
