package trainer

import "math"

// Config holds the hyperparameters of one epoch.
type Config struct {
	LearningRate float64 // Step size, > 0
	BatchSize    int     // Rows per update, > 0; the last batch may be shorter

	// NumClasses is the class count k. Zero infers k as max(labels)+1.
	NumClasses int

	// StableSoftmax subtracts each row's maximum score before exponentiating.
	// Off by default: scores are exponentiated unshifted, so scores above ~709
	// overflow and poison the parameters with NaN. Turning it on changes
	// results in the last bits even when nothing overflows.
	StableSoftmax bool
}

// Validate reports ErrInvalidHyperparameter for unusable settings.
func (c Config) Validate() error {
	if math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) || c.LearningRate <= 0 {
		return invalid(ErrInvalidHyperparameter, "learning rate must be a positive finite number (got %v)", c.LearningRate)
	}
	if c.BatchSize <= 0 {
		return invalid(ErrInvalidHyperparameter, "batch size must be > 0 (got %d)", c.BatchSize)
	}
	if c.NumClasses < 0 {
		return invalid(ErrInvalidHyperparameter, "class count must not be negative (got %d)", c.NumClasses)
	}
	return nil
}
