package executing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/campaign-optimizer-api/internal/domain"
)

var (
	// ErrActionNotFound indica que a ação pedida não existe
	ErrActionNotFound = errors.New("ação proposta não encontrada")
	// ErrActionNotExecutable indica que a ação não tem alvo executável
	ErrActionNotExecutable = errors.New("ação sem alvo executável")
	// ErrActionAlreadyClaimed indica que outro operador reservou a ação e a
	// execução dele ainda está em andamento
	ErrActionAlreadyClaimed = errors.New("ação já reservada por outro operador")
)

// InvalidTransitionError indica uma tentativa de transição a partir de um
// status terminal. Carrega o status atual para a resposta da API.
type InvalidTransitionError struct {
	ActionID      int64
	CurrentStatus domain.ActionStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("ação %d não está pendente (status atual: %s)", e.ActionID, e.CurrentStatus)
}

// IsInvalidTransition verifica se o erro é de transição inválida
func IsInvalidTransition(err error) bool {
	var invalid *InvalidTransitionError
	return errors.As(err, &invalid)
}
