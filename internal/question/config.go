package question

// Config controls the behavior of the Provider.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// rejects the draft and the provider moves to the next attempt.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxAttempts bounds how many generation attempts are made before
	// falling back to the static table. Each attempt is a fresh LLM
	// call; retryable transport errors inside one attempt are already
	// handled by the llm retry middleware.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoiceValidator{},
			&AnswerLengthValidator{},
		},
		MaxTokens:   512,
		Temperature: 0.7,
		MaxAttempts: 3,
	}
}
