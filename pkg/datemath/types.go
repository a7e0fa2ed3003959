package datemath

import (
	"fmt"
	"time"
)

// Unit is the bucket a duration is expressed in.
type Unit string

const (
	UnitDays   Unit = "DAYS"
	UnitWeeks  Unit = "WEEKS"
	UnitMonths Unit = "MONTHS"
)

// Duration is a human-sized span such as "3 weeks" or "1 month".
type Duration struct {
	Value int  `json:"value"`
	Unit  Unit `json:"unit"`
}

// AddTo returns start moved forward by d using calendar arithmetic.
func (d Duration) AddTo(start time.Time) time.Time {
	switch d.Unit {
	case UnitMonths:
		return start.AddDate(0, d.Value, 0)
	case UnitWeeks:
		return start.AddDate(0, 0, 7*d.Value)
	default:
		return start.AddDate(0, 0, d.Value)
	}
}

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Unit)
}

// Lang is the language a phrase was written in.
type Lang string

const (
	LangEN Lang = "en"
	LangID Lang = "id"
)

// Phrase is a duration phrase located inside free text.
type Phrase struct {
	Duration Duration
	Lang     Lang
	// Start and End are byte offsets of the numeral+unit part of the match.
	Start int
	End   int
}
