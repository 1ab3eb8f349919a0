package domain

import "errors"

// Data-contract errors: the API payload does not have the expected shape
var (
	ErrUnexpectedType = errors.New("неверный тип данных")
	ErrMissingField   = errors.New("отсутствует обязательное поле")
	ErrUnknownStatus  = errors.New("неверный ключ проверки")
)
