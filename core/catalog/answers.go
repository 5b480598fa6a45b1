// Package catalog - Answer file parsing
package catalog

import (
	"encoding/json"

	"freelance-pricing/core/types"
	"freelance-pricing/internal/errors"
)

// ParseAnswers decodes a JSON answer document into an AnswerSet, using
// the catalog to pick the right answer shape per question. The document
// maps question ids to a string, a number, or an array of strings:
//
//	{"niveau_experience": "experte", "services_inclus": ["strategie"], "objectif_mensuel_net": 5000}
//
// A value whose JSON shape contradicts the question type is a typed
// error, not a silent coercion. Ids not in the catalog are skipped; the
// engine would ignore them anyway.
func (c *Catalog) ParseAnswers(data []byte) (types.AnswerSet, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "parsing answers document", err)
	}

	answers := make(types.AnswerSet, len(doc))
	for key, raw := range doc {
		id := types.QuestionID(key)
		q, ok := c.byID[id]
		if !ok {
			continue
		}

		value, err := decodeAnswer(q, raw)
		if err != nil {
			return nil, err
		}
		answers[id] = value
	}
	return answers, nil
}

func decodeAnswer(q *Question, raw json.RawMessage) (types.AnswerValue, error) {
	switch q.Type {
	case TypeDropdown, TypeRadio:
		var code string
		if err := json.Unmarshal(raw, &code); err != nil {
			return types.AnswerValue{}, errors.Newf(errors.TypeInput, "question %q expects a single option code", q.ID)
		}
		return types.SingleChoice(code), nil

	case TypeMultiple:
		var codes []string
		if err := json.Unmarshal(raw, &codes); err != nil {
			return types.AnswerValue{}, errors.Newf(errors.TypeInput, "question %q expects an array of option codes", q.ID)
		}
		return types.MultiChoice(codes...), nil

	case TypeNumber:
		// Accept both 5000 and "5000"; the engine parses the raw string
		// and applies its own default on garbage.
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return types.AnswerValue{}, errors.Newf(errors.TypeInput, "question %q expects a number", q.ID)
			}
			return types.NumericString(s), nil
		}
		return types.NumericString(n.String()), nil

	case TypeTextarea:
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return types.AnswerValue{}, errors.Newf(errors.TypeInput, "question %q expects text", q.ID)
		}
		return types.FreeText(text), nil

	default:
		return types.AnswerValue{}, errors.Newf(errors.TypeCatalog, "question %q has unknown type %q", q.ID, q.Type)
	}
}
