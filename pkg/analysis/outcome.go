package analysis

// Reason объясняет, почему вместо настоящего значения подставлено запасное.
type Reason string

const (
	ReasonMatchingFailed     Reason = "matching_failed"
	ReasonScoringFailed      Reason = "scoring_failed"
	ReasonScoringTimeout     Reason = "scoring_timeout"
	ReasonScoringUnavailable Reason = "scoring_unavailable"
)

// Outcome carries a stage value; Reason is empty when the value is real.
type Outcome[T any] struct {
	Value  T      `json:"value"`
	Reason Reason `json:"reason,omitempty"`
}

func Ok[T any](v T) Outcome[T] { return Outcome[T]{Value: v} }

func Degrade[T any](v T, reason Reason) Outcome[T] {
	return Outcome[T]{Value: v, Reason: reason}
}

func (o Outcome[T]) Degraded() bool { return o.Reason != "" }
