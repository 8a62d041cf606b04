package requestid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 16

// Generate returns a url-safe random request identifier
func Generate() (string, error) {
	return gonanoid.New(idLength)
}
