package service

import "errors"

var (
	// ErrMaxRetriesExceeded возвращается когда не удалось сохранить запись с уникальным ключом
	// после максимального количества попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for key generation")

	// errKeyTaken ключ-кандидат уже занят, попытку нужно повторить
	errKeyTaken = errors.New("key is already taken")
)
