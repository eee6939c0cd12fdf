package matchscore

import (
	"testing"

	"tunitech/internal/domain/experience"
)

func TestCalculate_FullMatch(t *testing.T) {
	req := Requirement{ExperienceLevel: experience.Senior, TechnicalSkills: "React, Node.js, AWS"}
	dev := Developer{ExperienceLevel: experience.Senior, TechnicalSkills: []string{"React", "Node.js", "AWS", "TypeScript"}}

	if got := Calculate(req, dev); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCalculate_OverqualifiedPartialCredit(t *testing.T) {
	// experience 25 (senior for medior) + round(60*1/2) = 55
	req := Requirement{ExperienceLevel: experience.Medior, TechnicalSkills: "Python, Django"}
	dev := Developer{ExperienceLevel: experience.Senior, TechnicalSkills: []string{"Python"}}

	if got := Calculate(req, dev); got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}
}

func TestCalculate_ExperienceTable(t *testing.T) {
	cases := []struct {
		name     string
		required experience.Level
		offered  experience.Level
		want     int
	}{
		{"junior_junior", experience.Junior, experience.Junior, 40},
		{"junior_medior", experience.Junior, experience.Medior, 35},
		{"junior_senior", experience.Junior, experience.Senior, 35},
		{"medior_medior", experience.Medior, experience.Medior, 40},
		{"medior_senior", experience.Medior, experience.Senior, 25},
		{"medior_junior", experience.Medior, experience.Junior, 0},
		{"senior_senior", experience.Senior, experience.Senior, 40},
		{"senior_medior", experience.Senior, experience.Medior, 0},
		{"senior_junior", experience.Senior, experience.Junior, 0},
		{"unknown_level", experience.Level("principal"), experience.Senior, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := Requirement{ExperienceLevel: tc.required}
			dev := Developer{ExperienceLevel: tc.offered}
			if got := Calculate(req, dev); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCalculate_EmptySkillsTextContributesNothing(t *testing.T) {
	req := Requirement{ExperienceLevel: experience.Senior, TechnicalSkills: "   "}
	dev := Developer{ExperienceLevel: experience.Senior, TechnicalSkills: []string{"Go", "Rust", "Kubernetes"}}

	if got := Calculate(req, dev); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestCalculate_EmptyDeveloperSkills(t *testing.T) {
	req := Requirement{ExperienceLevel: experience.Junior, TechnicalSkills: "React, Vue"}
	dev := Developer{ExperienceLevel: experience.Junior}

	if got := Calculate(req, dev); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestCalculate_BidirectionalSubstring(t *testing.T) {
	req := Requirement{ExperienceLevel: experience.Junior, TechnicalSkills: "react postgresql"}
	dev := Developer{ExperienceLevel: experience.Junior, TechnicalSkills: []string{"React.js", "Postgre"}}

	// "react" is contained in "react.js"; "postgre" is contained in "postgresql".
	if got := Calculate(req, dev); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCalculate_SkillOrderInvariant(t *testing.T) {
	req := Requirement{ExperienceLevel: experience.Medior, TechnicalSkills: "Go, Docker, Terraform"}
	a := Developer{ExperienceLevel: experience.Medior, TechnicalSkills: []string{"Go", "Docker"}}
	b := Developer{ExperienceLevel: experience.Medior, TechnicalSkills: []string{"Docker", "Go"}}

	if Calculate(req, a) != Calculate(req, b) {
		t.Fatalf("score changed under skill reordering")
	}
}

func TestCalculate_AlwaysInRange(t *testing.T) {
	levels := []experience.Level{experience.Junior, experience.Medior, experience.Senior, ""}
	texts := []string{"", "Go", "Go, Rust, C, C++, Zig", ",,, ,"}
	skillSets := [][]string{nil, {""}, {"Go"}, {"go", "rust", "c", "c++", "zig", "python"}}

	for _, rl := range levels {
		for _, dl := range levels {
			for _, txt := range texts {
				for _, sk := range skillSets {
					got := Calculate(
						Requirement{ExperienceLevel: rl, TechnicalSkills: txt},
						Developer{ExperienceLevel: dl, TechnicalSkills: sk},
					)
					if got < 0 || got > 100 {
						t.Fatalf("score out of range: %d (req=%q dev=%q text=%q skills=%v)", got, rl, dl, txt, sk)
					}
				}
			}
		}
	}
}

func TestTokenizeSkills(t *testing.T) {
	got := tokenizeSkills("React,  Node.js\tAWS, ,TypeScript")
	want := []string{"react", "node.js", "aws", "typescript"}
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("term %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
