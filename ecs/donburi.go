package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
	"github.com/zapata1/tween"
)

// TweenEventType is the Donburi event type for tween lifecycle events.
var TweenEventType = events.NewEventType[tween.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes to TweenEventType.
// Events are queued; consume them with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTweenEvent(e tween.Event) {
	TweenEventType.Publish(s.world, e)
}

// Tweens is the component payload holding the tweens attached to an entity.
type Tweens struct {
	Active []*tween.Tween
}

// TweenComponent stores the tweens attached to an entity.
var TweenComponent = donburi.NewComponentType[Tweens]()

var tweenQuery = donburi.NewQuery(filter.Contains(TweenComponent))

// Attach adds tw to the entity, creating its TweenComponent if needed.
// Invalid entities are ignored.
func Attach(world donburi.World, entity donburi.Entity, tw *tween.Tween) {
	if !world.Valid(entity) {
		return
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(TweenComponent) {
		entry.AddComponent(TweenComponent)
	}
	data := TweenComponent.Get(entry)
	data.Active = append(data.Active, tw)
}

// Step advances every attached tween. Completed tweens are dropped and
// entities left with none lose their TweenComponent.
func Step(world donburi.World, timestamp, delta float64) {
	var idle []*donburi.Entry
	tweenQuery.Each(world, func(entry *donburi.Entry) {
		data := TweenComponent.Get(entry)
		kept := data.Active[:0]
		for _, tw := range data.Active {
			tw.Step(timestamp, delta)
			if !tw.IsComplete() {
				kept = append(kept, tw)
			}
		}
		clear(data.Active[len(kept):])
		data.Active = kept
		if len(kept) == 0 {
			idle = append(idle, entry)
		}
	})
	for _, entry := range idle {
		entry.RemoveComponent(TweenComponent)
	}
}
