package systems

import (
	"github.com/sirupsen/logrus"

	"dungeon-engine/pkg/logger"
)

// Pipeline выполняет системы строго по порядку. Структурные изменения
// копятся в ctx.Cmds и применяются одним Flush после последней системы.
type Pipeline struct {
	systems []System
}

func NewPipeline(systems ...System) *Pipeline {
	return &Pipeline{systems: systems}
}

// DefaultPipeline - фиксированный порядок хода.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		Visibility{},
		MonsterAI{},
		Movement{},
		MapIndexing{},
		MeleeCombat{},
		Damage{},
		ItemCollection{},
		PotionUse{},
		ItemDrop{},
	)
}

func (p *Pipeline) Names() []string {
	names := make([]string, len(p.systems))
	for i, s := range p.systems {
		names[i] = s.Name()
	}
	return names
}

// Run - один полный проход: все системы, затем flush.
func (p *Pipeline) Run(ctx *Context) {
	w := ctx.World

	w.BeginPass()
	for _, s := range p.systems {
		w.Enter(s.Name(), s.Access())
		s.Run(ctx)
		w.Leave()
	}
	w.EndPass()

	pending := ctx.Cmds.Len()
	w.Flush(ctx.Cmds)

	logger.Log.WithFields(logrus.Fields{
		"component": "pipeline",
		"run_state": ctx.RunState.String(),
		"commands":  pending,
		"entities":  w.Len(),
	}).Debug("Pass complete.")
}
