package enums

// AIState — решение монстра за проход, используется в логах.
type AIState uint8

const (
	AIStateIdle AIState = iota
	AIStateApproach
	AIStateBlocked
	AIStateAttack
)

var aiStateToString = map[AIState]string{
	AIStateIdle:     "IDLE",
	AIStateApproach: "APPROACH",
	AIStateBlocked:  "BLOCKED",
	AIStateAttack:   "ATTACK",
}

func (s AIState) String() string {
	if val, ok := aiStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}
