package store

// ErrorClassificator decides whether a failed database operation is worth
// another attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
