package system

import (
	"github.com/milk9111/treasurehunt/ecs"
	"github.com/milk9111/treasurehunt/ecs/component"
)

// PickupCollectSystem credits coins the player overlaps and removes them
// in the same frame.
type PickupCollectSystem struct {
	fx Effects
}

func NewPickupCollectSystem(fx Effects) *PickupCollectSystem {
	return &PickupCollectSystem{fx: orNop(fx)}
}

func (s *PickupCollectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent)
	pbox, ok := collisionBox(w, player)
	if !ok {
		return
	}

	ecs.ForEach(w, component.CoinComponent, func(e ecs.Entity, coin *component.Coin) {
		box, ok := collisionBox(w, e)
		if !ok || !box.Intersects(pbox) {
			return
		}
		p.Coins += coin.Amount
		w.Events().Push(ecs.Event{
			Type:   ecs.EventCoinCollected,
			Entity: e,
			Data:   ecs.CoinData{Kind: coin.Kind, Amount: coin.Amount, Total: p.Coins},
		})
		s.fx.PlaySound("coin")
		s.fx.SpawnParticle("coin", box.CenterX(), box.CenterY())

		ecs.Remove(w, e, component.CoinComponent)
		ecs.QueueDestroy(w, e)
	})
}
