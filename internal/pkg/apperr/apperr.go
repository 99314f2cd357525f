package apperr

import (
	"errors"
)

// Kind закрытый набор классов ошибок. По нему транспорт выбирает код ответа,
// а клиент решает, повторять ли запрос.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindForbidden
	KindExternalUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindExternalUnavailable:
		return "external_unavailable"
	case KindInternal:
		return "internal"
	}
	return "internal"
}

// Error ошибка с классом. Значения создаются один раз как sentinel-переменные пакета
// и сравниваются через errors.Is, контекст добавляется через fmt.Errorf("...: %w").
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap присваивает класс произвольной ошибке, например ошибке транспорта провайдера.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func Validation(msg string) *Error { return New(KindValidation, msg) }

func NotFound(msg string) *Error { return New(KindNotFound, msg) }

func Conflict(msg string) *Error { return New(KindConflict, msg) }

func Forbidden(msg string) *Error { return New(KindForbidden, msg) }

func ExternalUnavailable(msg string) *Error { return New(KindExternalUnavailable, msg) }

// KindOf возвращает класс первой *Error в цепочке, KindInternal если такой нет.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsValidation(err error) bool { return err != nil && KindOf(err) == KindValidation }

func IsNotFound(err error) bool { return err != nil && KindOf(err) == KindNotFound }

func IsConflict(err error) bool { return err != nil && KindOf(err) == KindConflict }

func IsForbidden(err error) bool { return err != nil && KindOf(err) == KindForbidden }

func IsExternalUnavailable(err error) bool {
	return err != nil && KindOf(err) == KindExternalUnavailable
}
