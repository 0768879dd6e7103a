package utils

import "math"

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// Pluralize выбирает форму слова: единственное число только для |n| == 1
func Pluralize(singular, plural string, n int64) string {
	if n == 1 || n == -1 {
		return singular
	}
	return plural
}

// MaxInt64 возвращает большее из двух чисел
func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// MulInt64 перемножает числа; ok == false при переполнении int64
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return 0, false
	}
	return c, true
}

// AddInt64 складывает числа; ok == false при переполнении int64
func AddInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

// FloatToInt64 приводит целое float64 к int64; ok == false, если значение
// не конечно или не помещается в int64
func FloatToInt64(value float64) (int64, bool) {
	// -2^63 представимо точно, 2^63 уже вне диапазона
	if !IsFinite(value) || value < math.MinInt64 || value >= -math.MinInt64 {
		return 0, false
	}
	return int64(value), true
}
