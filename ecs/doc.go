// Package ecs connects tweens to a [Donburi] world.
//
// [NewDonburiSink] publishes every tween lifecycle event to [TweenEventType]
// so ECS systems can react to starts, repeats and completions:
//
//	sink := ecs.NewDonburiSink(world)
//	mgr := manager.New(manager.WithSink(sink))
//	ecs.TweenEventType.Subscribe(world, onTweenEvent)
//
// Tweens can also live on entities. [Attach] adds a tween to an entity's
// [TweenComponent] and [Step] advances every attached tween, detaching the
// completed ones.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
