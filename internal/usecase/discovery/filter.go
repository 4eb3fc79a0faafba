package discovery

import (
	"sort"
	"strings"

	"github.com/craftlink/craftlink-backend/internal/domain"
)

type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortOldest   SortMode = "oldest"
	SortVerified SortMode = "verified"
	SortName     SortMode = "name"
)

// FilterSpec is the viewer-editable query over the candidate pool. A zero
// value on any field means "no constraint on this dimension"; SortBy empty
// means newest-first.
type FilterSpec struct {
	Search       string   `json:"search"`
	Roles        []string `json:"roles"`
	LookingFor   []string `json:"looking_for"`
	Skills       []string `json:"skills"`
	VibeWords    []string `json:"vibe_words"`
	Location     string   `json:"location"`
	RemoteOnly   bool     `json:"remote_only"`
	VerifiedOnly bool     `json:"verified_only"`
	SortBy       SortMode `json:"sort_by"`
}

// Apply filters and sorts a candidate pool. Pure function: the input slice
// is never mutated and the result is deterministic for a given (pool, spec).
// Tag dimensions use OR within a set and AND across dimensions; sorting is
// stable so ties keep the original pool order.
func Apply(pool []domain.Candidate, spec FilterSpec) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(pool))
	for _, c := range pool {
		if matchesSpec(&c, &spec) {
			out = append(out, c)
		}
	}
	sortCandidates(out, spec.SortBy)
	return out
}

func matchesSpec(c *domain.Candidate, spec *FilterSpec) bool {
	if spec.Search != "" && !matchesSearch(c, spec.Search) {
		return false
	}
	if len(spec.Roles) > 0 && !intersects(c.Roles, spec.Roles) {
		return false
	}
	if len(spec.LookingFor) > 0 && !intersects(c.LookingFor, spec.LookingFor) {
		return false
	}
	if len(spec.Skills) > 0 && !intersects(c.Skills, spec.Skills) {
		return false
	}
	if len(spec.VibeWords) > 0 && !intersects(c.VibeWords, spec.VibeWords) {
		return false
	}
	if spec.Location != "" {
		// No location on the candidate excludes them while the filter is set.
		if c.Location == nil || !containsFold(*c.Location, spec.Location) {
			return false
		}
	}
	if spec.RemoteOnly && !c.Remote {
		return false
	}
	if spec.VerifiedOnly && !c.Verified {
		return false
	}
	return true
}

func matchesSearch(c *domain.Candidate, search string) bool {
	if containsFold(c.DisplayName, search) || containsFold(c.Handle, search) {
		return true
	}
	if c.Tagline != nil && containsFold(*c.Tagline, search) {
		return true
	}
	for _, tags := range [][]string{c.Roles, c.Skills, c.VibeWords} {
		for _, tag := range tags {
			if containsFold(tag, search) {
				return true
			}
		}
	}
	return false
}

// intersects reports whether the two tag sets share at least one entry,
// case-insensitively.
func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func sortCandidates(pool []domain.Candidate, mode SortMode) {
	switch mode {
	case SortOldest:
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].CreatedAt.Before(pool[j].CreatedAt)
		})
	case SortVerified:
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].Verified && !pool[j].Verified
		})
	case SortName:
		sort.SliceStable(pool, func(i, j int) bool {
			return strings.ToLower(pool[i].DisplayName) < strings.ToLower(pool[j].DisplayName)
		})
	default: // SortNewest
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].CreatedAt.After(pool[j].CreatedAt)
		})
	}
}
