package operations

import "fmt"

// Namer resolves account codes to display names.
type Namer interface {
	Name(code string) string
}

// Question is a multiple-choice question about one operation.
type Question struct {
	Prompt  string
	Options []string
	Answer  int // index into Options
}

// Check reports whether choice (0-based) is the right answer.
func (q Question) Check(choice int) bool {
	return choice == q.Answer
}

// NewQuestion asks which entry the operation at index n generates. The
// options are the correct pairing, the reversed pairing and pairings taken
// from the other operations; their order rotates with n so the answer is not
// always in the same place.
func NewQuestion(presets []Preset, n int, names Namer) (Question, error) {
	if len(presets) == 0 {
		return Question{}, fmt.Errorf("no operations to ask about")
	}
	p := presets[n%len(presets)]

	label := func(debit, credit string) string {
		return fmt.Sprintf("Débito em %s e Crédito em %s", names.Name(debit), names.Name(credit))
	}

	correct := label(p.DebitCode, p.CreditCode)
	options := []string{correct}
	seen := map[string]bool{correct: true}
	add := func(opt string) {
		if !seen[opt] {
			seen[opt] = true
			options = append(options, opt)
		}
	}
	add(label(p.CreditCode, p.DebitCode))
	for i := 1; i < len(presets) && len(options) < 4; i++ {
		o := presets[(n+i)%len(presets)]
		add(label(o.DebitCode, o.CreditCode))
	}

	shift := n % len(options)
	rotated := append(options[shift:len(options):len(options)], options[:shift]...)
	answer := (len(options) - shift) % len(options)

	return Question{
		Prompt:  fmt.Sprintf("%s gera qual lançamento?", p.Description),
		Options: rotated,
		Answer:  answer,
	}, nil
}
