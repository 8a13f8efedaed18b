package matching

import (
	"testing"

	"github.com/google/uuid"
)

func teach(names ...string) []Skill {
	out := make([]Skill, 0, len(names))
	for _, n := range names {
		out = append(out, Skill{ID: uuid.New(), Name: n, Level: "Intermediate"})
	}
	return out
}

func TestRank_EmptyLearnListShortCircuits(t *testing.T) {
	cands := []Candidate{{UserID: uuid.New(), Teaches: teach("Python")}}
	got := Rank(teach("Guitar"), nil, cands)
	if len(got) != 0 {
		t.Fatalf("expected no results for empty learn list, got %d", len(got))
	}
}

func TestRank_ScoresBothDirections(t *testing.T) {
	// A teaches Guitar and wants Python; B teaches Python and wants Guitar.
	b := Candidate{
		UserID:      uuid.New(),
		DisplayName: "B",
		Teaches:     []Skill{{Name: "Python", Category: "Programming", Level: "Advanced"}},
		Learns:      []Skill{{Name: "Guitar", Category: "Music", Level: "Beginner"}},
	}

	got := Rank(teach("Guitar"), teach("Python"), []Candidate{b})
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Score != 15 {
		t.Fatalf("expected score 15, got %d", got[0].Score)
	}
	if len(got[0].MatchingSkills) != 1 || got[0].MatchingSkills[0] != "Python" {
		t.Fatalf("unexpected matching skills: %v", got[0].MatchingSkills)
	}
	if len(got[0].MutualSkills) != 1 || got[0].MutualSkills[0] != "Guitar" {
		t.Fatalf("unexpected mutual skills: %v", got[0].MutualSkills)
	}
}

func TestRank_CaseInsensitiveNames(t *testing.T) {
	c := Candidate{UserID: uuid.New(), Teaches: []Skill{{Name: "PYTHON"}}}
	got := Rank(nil, teach("python"), []Candidate{c})
	if len(got) != 1 || got[0].Score != 10 {
		t.Fatalf("expected case-insensitive match with score 10, got %+v", got)
	}
}

func TestRank_KeepsZeroScoreCandidates(t *testing.T) {
	c := Candidate{UserID: uuid.New(), Teaches: teach("Welding")}
	got := Rank(nil, teach("Python"), []Candidate{c})
	if len(got) != 1 {
		t.Fatalf("expected zero-score candidate kept, got %d results", len(got))
	}
	if got[0].Score != 0 {
		t.Fatalf("expected score 0, got %d", got[0].Score)
	}
}

func TestRank_SkipsBlankSkillNames(t *testing.T) {
	c := Candidate{UserID: uuid.New(), Teaches: []Skill{{Name: "  "}, {Name: "Python"}}}
	got := Rank(nil, []Skill{{Name: ""}, {Name: "Python"}}, []Candidate{c})
	if len(got) != 1 || got[0].Score != 10 {
		t.Fatalf("expected blank names ignored, got %+v", got)
	}
}

func TestRank_SortsDescendingWithIDTieBreak(t *testing.T) {
	learns := teach("Go", "Rust", "SQL")

	low := Candidate{UserID: uuid.New(), Teaches: teach("Go")}
	high := Candidate{UserID: uuid.New(), Teaches: teach("Go", "Rust")}
	tieA := Candidate{UserID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Teaches: teach("SQL")}
	tieB := Candidate{UserID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Teaches: teach("SQL")}

	got := Rank(nil, learns, []Candidate{tieB, low, high, tieA})
	if len(got) != 4 {
		t.Fatalf("expected 4 results, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("results not sorted descending at %d: %d < %d", i, got[i-1].Score, got[i].Score)
		}
	}
	if got[0].CandidateID != high.UserID {
		t.Fatalf("expected highest scorer first")
	}
	// Equal scores order by candidate id ascending.
	if got[1].CandidateID != tieA.UserID && got[2].CandidateID != tieA.UserID {
		t.Fatalf("tie candidates misplaced")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score == got[i].Score && got[i-1].CandidateID.String() > got[i].CandidateID.String() {
			t.Fatalf("tie-break not by id ascending")
		}
	}
}

func TestRank_DuplicateSkillNamesAccumulate(t *testing.T) {
	// The candidate lists Python twice; each entry contributes.
	c := Candidate{UserID: uuid.New(), Teaches: teach("Python", "Python")}
	got := Rank(nil, teach("Python"), []Candidate{c})
	if len(got) != 1 || got[0].Score != 20 {
		t.Fatalf("expected duplicate entries to accumulate to 20, got %+v", got)
	}
}
