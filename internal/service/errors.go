package service

import (
	"errors"
	"fmt"
)

// ErrGenerativeStage marca fallas de la etapa generativa (llamada al LLM o
// respuesta malformada). El core no reintenta.
var ErrGenerativeStage = errors.New("generative stage failed")

// InsufficientCandidatesError indica que sobrevivieron menos candidatos de
// los necesarios para recomendar; la etapa generativa nunca se invoca.
type InsufficientCandidatesError struct {
	Count int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("insufficient candidates (%d) for recommendations", e.Count)
}
