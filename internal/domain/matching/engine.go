package matching

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	// A candidate teaching something the requester wants to learn is the
	// direct win; reciprocity only signals potential, so it weighs less.
	teachWeight  = 10
	mutualWeight = 5
)

type Skill struct {
	ID          uuid.UUID
	Name        string
	Category    string
	Level       string
	Description string
}

type Candidate struct {
	UserID      uuid.UUID
	DisplayName string
	Bio         string
	AvatarURL   string
	Teaches     []Skill
	Learns      []Skill
}

type Result struct {
	CandidateID    uuid.UUID
	DisplayName    string
	Bio            string
	AvatarURL      string
	Score          int
	MatchingSkills []string
	MutualSkills   []string
	Teaches        []Skill
	Learns         []Skill
}

// Rank scores every candidate against the requester's skill lists and
// returns them ordered by descending score, candidate id ascending on ties.
// Zero-score candidates are kept; trimming is the caller's concern.
func Rank(requesterTeaches, requesterLearns []Skill, candidates []Candidate) []Result {
	learnSet := nameSet(requesterLearns)
	teachSet := nameSet(requesterTeaches)

	if len(learnSet) == 0 {
		return []Result{}
	}

	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		r := Result{
			CandidateID:    c.UserID,
			DisplayName:    c.DisplayName,
			Bio:            c.Bio,
			AvatarURL:      c.AvatarURL,
			MatchingSkills: []string{},
			MutualSkills:   []string{},
			Teaches:        c.Teaches,
			Learns:         c.Learns,
		}

		for _, s := range c.Teaches {
			key := normalizeName(s.Name)
			if key == "" {
				continue
			}
			if learnSet[key] {
				r.Score += teachWeight
				r.MatchingSkills = append(r.MatchingSkills, s.Name)
			}
		}

		for _, s := range c.Learns {
			key := normalizeName(s.Name)
			if key == "" {
				continue
			}
			if teachSet[key] {
				r.Score += mutualWeight
				r.MutualSkills = append(r.MutualSkills, s.Name)
			}
		}

		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CandidateID.String() < results[j].CandidateID.String()
	})

	return results
}

func nameSet(skills []Skill) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		key := normalizeName(s.Name)
		if key == "" {
			continue
		}
		set[key] = true
	}
	return set
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
