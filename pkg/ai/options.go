package ai

// SummarizeOptions constrain a single summarization call. Deterministic
// disables sampling so identical input yields identical output; this is a
// requirement on the model service, not something the pipeline can enforce.
type SummarizeOptions struct {
	MaxLength     int
	MinLength     int
	Deterministic bool
}

// DefaultSummarizeOptions matches the tuning of the dialogue summarization
// model the service was built against
func DefaultSummarizeOptions() SummarizeOptions {
	return SummarizeOptions{
		MaxLength:     250,
		MinLength:     80,
		Deterministic: true,
	}
}
