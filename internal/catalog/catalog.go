package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// AnswerType describes how a question's answer is normalized and compared.
type AnswerType string

const (
	AnswerNumber     AnswerType = "number"
	AnswerPercentage AnswerType = "percentage"
	AnswerList       AnswerType = "list"
	AnswerText       AnswerType = "text"
)

// Field represents a career field grouping simulations.
type Field struct {
	ID          string
	Name        string
	Description string
}

// Question is a single task question inside a simulation.
type Question struct {
	ID            string
	Prompt        string
	AnswerType    AnswerType
	CorrectAnswer string
	Hints         []string
}

// Mask returns the masked representation of the correct answer shown to
// the user before answering. Underscores in the stored answer render as
// spaces, so the mask length matches what the user would actually type.
func (q Question) Mask() string {
	if q.CorrectAnswer == "" {
		return ""
	}
	return strings.Repeat("*", len(strings.ReplaceAll(q.CorrectAnswer, "_", " ")))
}

// MaxLength returns the input length hint derived from the correct answer.
func (q Question) MaxLength() int {
	return len(strings.ReplaceAll(q.CorrectAnswer, "_", " "))
}

// Difficulty buckets for simulations.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Simulation is a complete career simulation: briefing, questions, and an
// optional downloadable work artifact.
type Simulation struct {
	ID            string
	Title         string
	Description   string
	FieldID       string
	SubField      string
	Difficulty    Difficulty
	EstimatedMins int
	Briefing      string
	Instructions  []string
	Questions     []Question
	Badge         string
	Artifact      *Artifact
}

// Question returns the question with the given ID, or nil.
func (s *Simulation) Question(id string) *Question {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i]
		}
	}
	return nil
}

// catalog holds the simulation set with precomputed indices.
type catalog struct {
	fields  []Field
	sims    []Simulation
	byID    map[string]*Simulation
	byField map[string][]Simulation
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

func buildCatalog(fields []Field, sims []Simulation) (*catalog, error) {
	ct := &catalog{
		fields:  fields,
		sims:    sims,
		byID:    make(map[string]*Simulation, len(sims)),
		byField: make(map[string][]Simulation),
	}

	fieldIDs := make(map[string]bool, len(fields))
	for _, f := range fields {
		fieldIDs[f.ID] = true
	}

	for i := range ct.sims {
		s := &ct.sims[i]
		if _, dup := ct.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate simulation id %q", s.ID)
		}
		if !fieldIDs[s.FieldID] {
			return nil, fmt.Errorf("simulation %q references unknown field %q", s.ID, s.FieldID)
		}
		if len(s.Questions) == 0 {
			return nil, fmt.Errorf("simulation %q has no questions", s.ID)
		}
		qids := make(map[string]bool, len(s.Questions))
		for _, q := range s.Questions {
			if q.CorrectAnswer == "" {
				return nil, fmt.Errorf("simulation %q question %q has no correct answer", s.ID, q.ID)
			}
			if qids[q.ID] {
				return nil, fmt.Errorf("simulation %q has duplicate question id %q", s.ID, q.ID)
			}
			qids[q.ID] = true
		}
		ct.byID[s.ID] = s
		ct.byField[s.FieldID] = append(ct.byField[s.FieldID], *s)
	}

	return ct, nil
}

// All returns every simulation in catalog order.
func All() []Simulation {
	out := make([]Simulation, len(c.sims))
	copy(out, c.sims)
	return out
}

// ByID returns the simulation with the given ID, or nil.
func ByID(id string) *Simulation {
	return c.byID[id]
}

// ByField returns the simulations for a career field.
func ByField(fieldID string) []Simulation {
	out := make([]Simulation, len(c.byField[fieldID]))
	copy(out, c.byField[fieldID])
	return out
}

// Fields returns all career fields in display order.
func Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// BadgeFor returns the badge name awarded for completing a simulation,
// or the empty string when the simulation is unknown.
func BadgeFor(simulationID string) string {
	s := c.byID[simulationID]
	if s == nil {
		return ""
	}
	return s.Badge
}

// IDs returns all simulation IDs sorted lexically.
func IDs() []string {
	ids := make([]string, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
