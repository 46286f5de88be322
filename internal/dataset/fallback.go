package dataset

import (
	_ "embed"
	"fmt"

	"github.com/tbourn/go-discovery-backend/internal/domain"
)

//go:embed fallback.json
var fallbackJSON []byte

// fallback is decoded once at init; a broken embedded file is a build defect.
var fallback = mustDecodeFallback()

func mustDecodeFallback() domain.Dataset {
	ds, rep, err := Decode(fallbackJSON)
	if err != nil {
		panic(fmt.Sprintf("dataset: embedded fallback: %v", err))
	}
	if !rep.Clean() {
		panic(fmt.Sprintf("dataset: embedded fallback needed coercion: %+v", rep))
	}
	return ds
}

// Fallback returns a copy of the built-in dataset.
func Fallback() domain.Dataset {
	return fallback.Normalize()
}
