package usecase

import (
	"regexp"

	"schedule-calendar/internal/schedule"
)

var (
	fichaPattern = regexp.MustCompile(`^[0-9]+$`)
	// Letters and whitespace, including \v and Unicode space separators such as NBSP.
	coordinacionPattern = regexp.MustCompile(`^[A-Za-z\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+$`)
)

// Validate applies the lookup form rules in order and stops at the first failure.
func Validate(input schedule.LookupInput) error {
	if !fichaPattern.MatchString(input.Ficha) {
		return &schedule.ValidationError{Field: schedule.FieldFicha, Err: schedule.ErrFichaNotNumeric}
	}
	if len(input.Ficha) > schedule.MaxFichaDigits {
		return &schedule.ValidationError{Field: schedule.FieldFicha, Err: schedule.ErrFichaTooLong}
	}
	if !coordinacionPattern.MatchString(input.Coordinacion) {
		return &schedule.ValidationError{Field: schedule.FieldCoordinacion, Err: schedule.ErrCoordinacionNotLetters}
	}
	return nil
}

// Validate checks the raw form input.
func (uc *implUseCase) Validate(input schedule.LookupInput) error {
	return Validate(input)
}
