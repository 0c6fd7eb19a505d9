package service

import (
	"fmt"

	"github.com/avc-dev/linkzip/internal/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	KeyLength    = 6
	AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// KeyGenerator генерирует случайные ключи фиксированной длины.
// Каждый символ выбирается равномерно из AllowedChars криптостойким источником.
type KeyGenerator struct {
	alphabet string
	length   int
}

// NewKeyGenerator создает генератор ключей длины KeyLength
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{
		alphabet: AllowedChars,
		length:   KeyLength,
	}
}

// GenerateKey возвращает новый ключ-кандидат
func (g *KeyGenerator) GenerateKey() (model.ShortKey, error) {
	key, err := gonanoid.Generate(g.alphabet, g.length)
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}

	return model.ShortKey(key), nil
}
