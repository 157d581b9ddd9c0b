package matching

import (
	"sort"
	"time"
)

const (
	courseWeight   = 2
	interestWeight = 1
)

type Candidate struct {
	UserID    string
	Email     string
	Courses   []string
	Interests []string
	CreatedAt time.Time
}

type Match struct {
	UserID          string
	Email           string
	Courses         []string
	Interests       []string
	SharedCourses   []string
	SharedInterests []string
	Score           int
	CreatedAt       time.Time
}

// Rank scores every candidate against the target and returns them ordered.
// A candidate qualifies only when its course set intersects the target's
// non-emptily; interest overlap alone never qualifies. The target itself is
// skipped regardless of its position in candidates.
//
// Ordering is total: score descending, then candidate creation time
// descending, then user id ascending so repeated calls are reproducible.
func Rank(target Candidate, candidates []Candidate) []Match {
	targetCourses := toSet(target.Courses)
	targetInterests := toSet(target.Interests)

	out := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == target.UserID {
			continue
		}

		sharedCourses := intersect(c.Courses, targetCourses)
		if len(sharedCourses) == 0 {
			continue
		}
		sharedInterests := intersect(c.Interests, targetInterests)

		out = append(out, Match{
			UserID:          c.UserID,
			Email:           c.Email,
			Courses:         c.Courses,
			Interests:       c.Interests,
			SharedCourses:   sharedCourses,
			SharedInterests: sharedInterests,
			Score:           courseWeight*len(sharedCourses) + interestWeight*len(sharedInterests),
			CreatedAt:       c.CreatedAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].UserID < out[j].UserID
	})

	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// intersect keeps the candidate's declared order and drops duplicates.
// Comparison is exact and case sensitive.
func intersect(values []string, set map[string]struct{}) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := set[v]; !ok {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
