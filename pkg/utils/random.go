package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	mathrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateDeterministicID создает ID из переданного генератора.
// Один и тот же сид дает одну и ту же последовательность ID,
// поэтому сгенерированные уровни полностью воспроизводимы.
func GenerateDeterministicID(rng *mathrand.Rand, prefix string) string {
	return fmt.Sprintf("%s%016x", prefix, rng.Uint64())
}

// StringToSeed превращает произвольную строку (имя прохождения) в сид.
// FNV-1a: стабилен между запусками и платформами.
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64() & 0x7FFFFFFFFFFFFFFF)
}
