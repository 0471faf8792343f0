package production

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Stage is the position of an order in the fixed production pipeline:
//
//	EMBROIDERY ──> SEWING ──> FINISHING ──> PACKAGING ──> DONE
//
// Next and Prev are idempotent at the boundaries: advancing from DONE stays
// DONE, retreating from EMBROIDERY stays EMBROIDERY.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	StageUnknown Stage = iota

	Embroidery
	Sewing
	Finishing
	Packaging
	Done
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown: "UNKNOWN",
		Embroidery:   "EMBROIDERY",
		Sewing:       "SEWING",
		Finishing:    "FINISHING",
		Packaging:    "PACKAGING",
		Done:         "DONE",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		Embroidery: "EMBROIDERY",
		Sewing:     "SEWING",
		Finishing:  "FINISHING",
		Packaging:  "PACKAGING",
		Done:       "DONE",
	}
}

// Stages returns all pipeline stages in order. Used to build the board.
func Stages() []Stage {
	return []Stage{Embroidery, Sewing, Finishing, Packaging, Done}
}

// StageFromString parses a stage name as received over HTTP or read from
// persistence.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getValidStageStrings() {
		if str == s {
			return stage, nil
		}
	}
	return StageUnknown, errs.NewValueIsInvalidErrorWithCause("stage",
		fmt.Errorf("%q is not a valid production stage", s))
}

// Validate checks that the stage is one of the defined values.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%d is not a valid production stage", s))
	}
	return nil
}

// String returns the stage name, or "UNKNOWN" for invalid values.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the following stage in the pipeline; Done stays Done.
func (s Stage) Next() Stage {
	switch s {
	case Embroidery:
		return Sewing
	case Sewing:
		return Finishing
	case Finishing:
		return Packaging
	case Packaging:
		return Done
	default:
		return Done
	}
}

// Prev returns the preceding stage in the pipeline; Embroidery stays
// Embroidery.
func (s Stage) Prev() Stage {
	switch s {
	case Done:
		return Packaging
	case Packaging:
		return Finishing
	case Finishing:
		return Sewing
	default:
		return Embroidery
	}
}
