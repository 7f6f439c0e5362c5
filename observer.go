package dateconv

// Outcome represents conversion outcome
type Outcome string

const (
	OutcomeConverted    Outcome = "converted"
	OutcomeNull         Outcome = "null"
	OutcomeLossy        Outcome = "lossy"
	OutcomeUnsupported  Outcome = "unsupported"
	OutcomeParseFailure Outcome = "parse_failure"
)

// Observer receives every conversion outcome, string sources are reported as KindInvalid
type Observer interface {
	Observe(source, target Kind, outcome Outcome)
}

type nopObserver struct{}

func (nopObserver) Observe(Kind, Kind, Outcome) {}

func outcomeOf(result Result) Outcome {
	if result.Err == nil {
		if result.Value == nil {
			return OutcomeNull
		}
		return OutcomeConverted
	}
	switch category, _ := CategoryOf(result.Err); category {
	case CategoryLossyConversion:
		return OutcomeLossy
	case CategoryParseFailure:
		return OutcomeParseFailure
	}
	return OutcomeUnsupported
}
