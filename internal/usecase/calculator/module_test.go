package calculator

import (
	"math"
	"testing"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		operator string
		want     string
	}{
		{
			name:     "сложение целых",
			a:        10,
			b:        5,
			operator: "+",
			want:     "10 + 5",
		},
		{
			name:     "вычитание целых",
			a:        100,
			b:        50,
			operator: "-",
			want:     "100 - 50",
		},
		{
			name:     "умножение с дробными",
			a:        3.14,
			b:        2,
			operator: "*",
			want:     "3.14 * 2",
		},
		{
			name:     "деление с дробным результатом",
			a:        1,
			b:        3,
			operator: "/",
			want:     "1 / 3",
		},
		{
			name:     "отрицательные числа",
			a:        -10,
			b:        -5,
			operator: "+",
			want:     "-10 + -5",
		},
		{
			name:     "NaN-операнд",
			a:        math.NaN(),
			b:        3,
			operator: "+",
			want:     "NaN + 3",
		},
		{
			name:     "неизвестная операция",
			a:        5,
			b:        3,
			operator: "%",
			want:     "5 % 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cacheKey(tt.a, tt.b, tt.operator)
			if got != tt.want {
				t.Errorf("cacheKey(%v, %v, %q) = %q, want %q",
					tt.a, tt.b, tt.operator, got, tt.want)
			}
		})
	}
}
