package validator

import (
	"context"
	"fmt"
	"time"
)

// dateBound selects the check of a date constraint.
type dateBound int

const (
	datePast dateBound = iota
	dateFuture
	dateBetween
)

type dateSpec struct {
	bound      dateBound
	start, end time.Time
}

// Past requires a time.Time before the moment of validation.
// A zero time is treated as absent.
func Past() Constraint {
	return Constraint{kind: KindDate, message: DefaultMessage, spec: dateSpec{bound: datePast}}
}

// Future requires a time.Time after the moment of validation.
func Future() Constraint {
	return Constraint{kind: KindDate, message: DefaultMessage, spec: dateSpec{bound: dateFuture}}
}

// DateBetween requires start <= t <= end.
func DateBetween(start, end time.Time) Constraint {
	if end.Before(start) {
		panic(fmt.Sprintf("validator: date range end %s is before start %s", end, start))
	}
	return Constraint{
		kind: KindDate,
		params: map[string]any{
			ParamMin: start.Format(time.DateOnly),
			ParamMax: end.Format(time.DateOnly),
		},
		message: DefaultMessage,
		spec:    dateSpec{bound: dateBetween, start: start, end: end},
	}
}

// Age treats a time.Time as a birth date and bounds the age in full years.
func Age(min, max int) Constraint {
	if min < 0 || min > max {
		panic(fmt.Sprintf("validator: invalid age bounds [%d, %d]", min, max))
	}
	return Constraint{
		kind:    KindAge,
		params:  map[string]any{ParamMin: min, ParamMax: max},
		message: DefaultMessage,
	}
}

func asTime(value any) (time.Time, bool) {
	t, ok := value.(time.Time)
	return t, ok
}

func validateDate(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	t, ok := asTime(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}
	if t.IsZero() {
		return nil, nil
	}

	spec, ok := c.spec.(dateSpec)
	if !ok {
		var err error
		if spec, err = dateSpecFromParams(c); err != nil {
			return nil, InvalidConstraint(field, c, err)
		}
	}
	switch spec.bound {
	case datePast:
		if !t.Before(time.Now()) {
			return failure(field, c, "date.not_past"), nil
		}
	case dateFuture:
		if !t.After(time.Now()) {
			return failure(field, c, "date.not_future"), nil
		}
	case dateBetween:
		if t.Before(spec.start) {
			return failure(field, c, "date.too_early"), nil
		}
		if t.After(spec.end) {
			return failure(field, c, "date.too_late"), nil
		}
	}
	return nil, nil
}

// dateSpecFromParams reads a DateBetween range from MIN and MAX given as
// YYYY-MM-DD strings, as produced by DateBetween.
func dateSpecFromParams(c Constraint) (dateSpec, error) {
	min, minOK := c.params[ParamMin].(string)
	max, maxOK := c.params[ParamMax].(string)
	if !minOK || !maxOK {
		return dateSpec{}, fmt.Errorf("date range needs %s and %s dates", ParamMin, ParamMax)
	}

	start, err := time.Parse(time.DateOnly, min)
	if err != nil {
		return dateSpec{}, fmt.Errorf("parse %s: %w", ParamMin, err)
	}
	end, err := time.Parse(time.DateOnly, max)
	if err != nil {
		return dateSpec{}, fmt.Errorf("parse %s: %w", ParamMax, err)
	}
	if end.Before(start) {
		return dateSpec{}, fmt.Errorf("date range end %s is before start %s", max, min)
	}
	// The range covers the whole last day.
	return dateSpec{bound: dateBetween, start: start, end: end.Add(24*time.Hour - time.Nanosecond)}, nil
}

func validateAge(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	birth, ok := asTime(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}
	if birth.IsZero() {
		return nil, nil
	}

	age := yearsSince(birth, time.Now())
	if min, ok := intParam(c, ParamMin); ok && int64(age) < min {
		return failure(field, c, "age.too_young", ParamActual, age), nil
	}
	if max, ok := intParam(c, ParamMax); ok && int64(age) > max {
		return failure(field, c, "age.too_old", ParamActual, age), nil
	}
	return nil, nil
}

// yearsSince counts full years between birth and now; the year is not
// complete until the birthday has been reached.
func yearsSince(birth, now time.Time) int {
	birth = birth.In(now.Location())
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}
