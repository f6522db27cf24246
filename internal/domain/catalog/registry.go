package catalog

import "fmt"

// Registry holds the question catalog, preserving declaration order for
// listings.
type Registry struct {
	questions map[string]Question
	order     []string
}

// NewRegistry builds a registry from a question list. Duplicate codes
// are rejected.
func NewRegistry(questions []Question) (*Registry, error) {
	r := &Registry{questions: make(map[string]Question, len(questions))}
	for _, q := range questions {
		if q.Code == "" {
			return nil, fmt.Errorf("catalog: question with empty code")
		}
		if _, dup := r.questions[q.Code]; dup {
			return nil, fmt.Errorf("catalog: duplicate question code %q", q.Code)
		}
		r.questions[q.Code] = q
		r.order = append(r.order, q.Code)
	}
	return r, nil
}

// Default returns the registry built from the built-in questionnaire.
func Default() *Registry {
	r, err := NewRegistry(defaultQuestions)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) Get(code string) (Question, error) {
	q, ok := r.questions[code]
	if !ok {
		return Question{}, fmt.Errorf("%w: %q", ErrUnknownQuestion, code)
	}
	return q, nil
}

func (r *Registry) Has(code string) bool {
	_, ok := r.questions[code]
	return ok
}

func (r *Registry) Len() int { return len(r.order) }

// All returns every question in declaration order.
func (r *Registry) All() []Question {
	out := make([]Question, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.questions[code])
	}
	return out
}
