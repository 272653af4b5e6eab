package estimate

import (
	"context"
	"strconv"

	"wave-estimates-backend/internal/repository"
)

// FirstNumber is issued when the store is empty or its highest number is not
// numeric.
const FirstNumber = "45303"

// NextNumber derives the next business number from MAX(number). The read and
// the later insert are not atomic, so two concurrent creates can pick the same
// number; the unique index rejects the second one.
func NextNumber(ctx context.Context, repo *repository.EstimateRepository) (string, error) {
	current, err := repo.MaxNumber(ctx)
	if err != nil {
		return "", err
	}
	return nextAfter(current), nil
}

func nextAfter(current string) string {
	if current == "" {
		return FirstNumber
	}
	n, err := strconv.ParseInt(current, 10, 64)
	if err != nil {
		return FirstNumber
	}
	return strconv.FormatInt(n+1, 10)
}
