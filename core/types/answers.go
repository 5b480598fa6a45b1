// Package types defines the data model shared by the pricing engine.
package types

// QuestionID identifies a question in the catalog. IDs are stable and
// owned by the catalog, not by the engine.
type QuestionID string

const (
	// QExperienceLevel is the freelancer's experience level
	QExperienceLevel QuestionID = "niveau_experience"

	// QPastClients is the number of clients already served
	QPastClients QuestionID = "nombre_clients"

	// QBackground is the education / training background
	QBackground QuestionID = "background"

	// QWorkContexts is the professional contexts worked in
	QWorkContexts QuestionID = "type_experience"

	// QMeasurableResults is the set of demonstrated result types
	QMeasurableResults QuestionID = "resultats_mesurables"

	// QIncludedServices is the set of services in the monthly offer
	QIncludedServices QuestionID = "services_inclus"

	// QTargetClients is the set of targeted client segments
	QTargetClients QuestionID = "cible_clients"

	// QTransformationLevel is the self-assessed transformation depth
	QTransformationLevel QuestionID = "niveau_transformation"

	// QTransformationDesc is the free-text transformation description
	QTransformationDesc QuestionID = "description_transformation"

	// QHoursPerClient is the monthly hours-per-client bucket
	QHoursPerClient QuestionID = "temps_par_client"

	// QMonthlyNetTarget is the desired net monthly income
	QMonthlyNetTarget QuestionID = "objectif_mensuel_net"

	// QMaxClients is the maximum manageable client count
	QMaxClients QuestionID = "nombre_clients_max"

	// QGeographicZone is the working zone
	QGeographicZone QuestionID = "zone_geographique"
)

// AnswerKind tags the shape of an answer value.
type AnswerKind string

const (
	// KindSingle is one selected option code
	KindSingle AnswerKind = "single"

	// KindMulti is a set of selected option codes
	KindMulti AnswerKind = "multi"

	// KindNumeric is a numeric string
	KindNumeric AnswerKind = "numeric"

	// KindText is free-form text
	KindText AnswerKind = "text"
)

// AnswerValue is a tagged union over the four answer shapes. The zero
// value is "absent"; accessors report ok=false for it and for kind
// mismatches, so callers fall back to their documented defaults instead
// of coercing.
type AnswerValue struct {
	kind    AnswerKind
	choice  string
	choices []string
	text    string
}

// SingleChoice builds a single-choice answer.
func SingleChoice(code string) AnswerValue {
	return AnswerValue{kind: KindSingle, choice: code}
}

// MultiChoice builds a multi-choice answer. Duplicates are dropped so the
// value behaves as a set.
func MultiChoice(codes ...string) AnswerValue {
	seen := make(map[string]bool, len(codes))
	uniq := make([]string, 0, len(codes))
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			uniq = append(uniq, c)
		}
	}
	return AnswerValue{kind: KindMulti, choices: uniq}
}

// NumericString builds a numeric answer from its raw string form.
func NumericString(raw string) AnswerValue {
	return AnswerValue{kind: KindNumeric, text: raw}
}

// FreeText builds a free-text answer.
func FreeText(text string) AnswerValue {
	return AnswerValue{kind: KindText, text: text}
}

// Kind returns the answer shape, or "" for an absent value.
func (v AnswerValue) Kind() AnswerKind { return v.kind }

// Choice returns the selected option code of a single-choice answer.
func (v AnswerValue) Choice() (string, bool) {
	return v.choice, v.kind == KindSingle
}

// Choices returns the selected option codes of a multi-choice answer.
func (v AnswerValue) Choices() ([]string, bool) {
	return v.choices, v.kind == KindMulti
}

// Numeric returns the raw numeric string of a numeric answer.
func (v AnswerValue) Numeric() (string, bool) {
	return v.text, v.kind == KindNumeric
}

// Text returns the content of a free-text answer.
func (v AnswerValue) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// AnswerSet maps question IDs to answer values. The presentation layer
// builds it incrementally; the engine only ever reads it.
type AnswerSet map[QuestionID]AnswerValue

// Single returns the option code for id, or "" when the answer is absent
// or not single-choice.
func (a AnswerSet) Single(id QuestionID) string {
	c, _ := a[id].Choice()
	return c
}

// Codes returns the selected codes for id, or nil when the answer is
// absent or not multi-choice.
func (a AnswerSet) Codes(id QuestionID) []string {
	cs, _ := a[id].Choices()
	return cs
}

// NumericRaw returns the raw numeric string for id, or "".
func (a AnswerSet) NumericRaw(id QuestionID) string {
	n, _ := a[id].Numeric()
	return n
}

// TextRaw returns the free-text content for id, or "".
func (a AnswerSet) TextRaw(id QuestionID) string {
	t, _ := a[id].Text()
	return t
}

// Has reports whether id carries a non-absent answer.
func (a AnswerSet) Has(id QuestionID) bool {
	return a[id].kind != ""
}
