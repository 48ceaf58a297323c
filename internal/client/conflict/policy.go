package conflict

import (
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

// Policy is the named conflict resolution strategy
type Policy string

const (
	PolicyRemoteWins Policy = "remote-wins"
	PolicyLocalWins  Policy = "local-wins"
	PolicyManual     Policy = "manual"

	// DefaultPolicy применяется, пока пользователь не выбрал другую
	DefaultPolicy = PolicyRemoteWins
)

// Policies lists the accepted canonical names
var Policies = []Policy{PolicyRemoteWins, PolicyLocalWins, PolicyManual}

// ParsePolicy accepts the canonical names and the "server-wins" alias
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "remote-wins", "server-wins":
		return PolicyRemoteWins, nil
	case "local-wins":
		return PolicyLocalWins, nil
	case "manual":
		return PolicyManual, nil
	}
	return "", &models.ValidationError{
		Field:  "conflict policy",
		Reason: fmt.Sprintf("unknown policy %q (want remote-wins, local-wins or manual)", name),
	}
}

func (p Policy) String() string {
	return string(p)
}

// Outcome is the result of applying a policy to one conflict.
// Applied=false means the record stays as Result (the local version) and the
// conflict must be queued for a manual decision.
type Outcome struct {
	Result  models.Quote
	Applied bool
}

// Resolve применяет политику к конфликту. Чистая функция: не меняет входные значения.
func Resolve(policy Policy, local, remote models.Quote, desc *Descriptor, now time.Time) Outcome {
	if desc == nil {
		return Outcome{Result: local, Applied: true}
	}

	switch policy {
	case PolicyLocalWins:
		result := local
		result.Touch(now)
		return Outcome{Result: result, Applied: true}
	case PolicyManual:
		return Outcome{Result: local, Applied: false}
	default:
		return Outcome{Result: takeRemote(local, remote, now), Applied: true}
	}
}

// takeRemote копирует значимые поля удаленной версии, сохраняя id, dateAdded и source
func takeRemote(local, remote models.Quote, now time.Time) models.Quote {
	result := local
	result.Text = remote.Text
	result.Category = remote.Category
	result.Touch(now)
	return result
}

// Choice is the user's decision for a pending conflict
type Choice string

const (
	ChoiceLocal  Choice = "local"
	ChoiceServer Choice = "server"
)

// ParseChoice accepts "local", "server" and the "remote" alias
func ParseChoice(name string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "local":
		return ChoiceLocal, nil
	case "server", "remote":
		return ChoiceServer, nil
	}
	return "", &models.ValidationError{
		Field:  "choice",
		Reason: fmt.Sprintf("unknown choice %q (want local or server)", name),
	}
}

// Apply builds the record that replaces the stored one after a manual decision.
// current is the record as it is stored now.
func (p *Pending) Apply(choice Choice, current models.Quote, now time.Time) models.Quote {
	if choice == ChoiceServer {
		return takeRemote(current, p.RemoteSnapshot, now)
	}

	result := current
	result.Text = p.LocalSnapshot.Text
	result.Category = p.LocalSnapshot.Category
	result.Touch(now)
	return result
}
