package agent

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"dungeon-engine/internal/core/types/enums"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/api"
	"dungeon-engine/pkg/logger"
	"dungeon-engine/pkg/utils"
)

// Bot - "игрок-компьютер" для безголового запуска. Видит мир только через
// api.Snapshot, как внешний рендерер, и отвечает абстрактными командами.
//
// Приоритеты:
//  1. Меню открыто - закрыть.
//  2. HP ниже половины и есть зелье - выпить.
//  3. Под ногами предмет - поднять.
//  4. Виден монстр - идти к ближайшему (шаг в него - атака).
//  5. Иначе бродить по разведанному полу.
type Bot struct {
	rng     *rand.Rand
	lastDir int
}

var directions = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

func NewBot(seed int64) *Bot {
	return &Bot{rng: utils.NewRNG(seed), lastDir: -1}
}

// localMap - то, что бот знает о карте. Неразведанное считается стеной,
// чтобы не строить пути в неизвестность.
type localMap struct {
	w, h     int
	walkable []bool
}

func newLocalMap(state api.Snapshot) *localMap {
	lm := &localMap{w: state.Grid.Width, h: state.Grid.Height}
	lm.walkable = make([]bool, lm.w*lm.h)
	for _, tv := range state.Map {
		if tv.X < lm.w && tv.Y < lm.h {
			lm.walkable[tv.Y*lm.w+tv.X] = !tv.IsWall
		}
	}
	return lm
}

func (lm *localMap) canStep(x, y int) bool {
	if x < 0 || y < 0 || x >= lm.w || y >= lm.h {
		return false
	}
	return lm.walkable[y*lm.w+x]
}

// Decide возвращает следующую команду. nil - игра окончена.
func (b *Bot) Decide(state api.Snapshot) *domain.Command {
	if state.Dead {
		return nil
	}

	rs, _ := enums.ParseRunState(state.RunState)
	if rs.IsModal() {
		return domain.Cancel()
	}

	me, ok := findPlayer(state)
	if !ok {
		return domain.Wait()
	}
	botLog := logger.Log.WithFields(logrus.Fields{
		"component": "bot",
		"pos":       domain.Position{X: me.X, Y: me.Y},
	})

	if cmd := b.heal(state, me); cmd != nil {
		botLog.Debug("Drinking a potion.")
		return cmd
	}

	for _, ev := range state.Entities {
		if ev.Type == api.EntityTypeItem && ev.X == me.X && ev.Y == me.Y {
			botLog.WithField("item", ev.Name).Debug("Picking up.")
			return domain.Pickup()
		}
	}

	lm := newLocalMap(state)
	for _, ev := range state.Entities {
		if ev.Type == api.EntityTypeMonster {
			lm.walkable[ev.Y*lm.w+ev.X] = false
		}
	}

	if target, ok := nearestMonster(state, me); ok {
		dx, dy := sign(target.X-me.X), sign(target.Y-me.Y)
		// Соседний монстр: шаг в него - удар
		if chebyshev(me, target) <= 1 || lm.canStep(me.X+dx, me.Y+dy) {
			botLog.WithField("target", target.Name).Debug("Closing in.")
			return domain.Move(dx, dy)
		}
	}

	return b.wander(lm, me)
}

func (b *Bot) heal(state api.Snapshot, me api.EntityView) *domain.Command {
	if me.Stats == nil || me.Stats.HP*2 >= me.Stats.MaxHP {
		return nil
	}
	for _, it := range state.Backpack {
		if it.HealAmount > 0 {
			return domain.Drink(it.ID)
		}
	}
	return nil
}

// wander продолжает прежнее направление, пока можно, иначе выбирает
// случайное свободное.
func (b *Bot) wander(lm *localMap, me api.EntityView) *domain.Command {
	if b.lastDir >= 0 {
		d := directions[b.lastDir]
		if lm.canStep(me.X+d[0], me.Y+d[1]) {
			return domain.Move(d[0], d[1])
		}
	}

	open := make([]int, 0, len(directions))
	for i, d := range directions {
		if lm.canStep(me.X+d[0], me.Y+d[1]) {
			open = append(open, i)
		}
	}
	if len(open) == 0 {
		b.lastDir = -1
		return domain.Wait()
	}
	b.lastDir = open[b.rng.Intn(len(open))]
	d := directions[b.lastDir]
	return domain.Move(d[0], d[1])
}

func findPlayer(state api.Snapshot) (api.EntityView, bool) {
	for _, ev := range state.Entities {
		if ev.Type == api.EntityTypePlayer {
			return ev, true
		}
	}
	return api.EntityView{}, false
}

func nearestMonster(state api.Snapshot, me api.EntityView) (api.EntityView, bool) {
	var best api.EntityView
	found := false
	for _, ev := range state.Entities {
		if ev.Type != api.EntityTypeMonster {
			continue
		}
		if !found || chebyshev(me, ev) < chebyshev(me, best) {
			best, found = ev, true
		}
	}
	return best, found
}

func chebyshev(a, b api.EntityView) int {
	return domain.Position{X: a.X, Y: a.Y}.ChebyshevTo(domain.Position{X: b.X, Y: b.Y})
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
