// Package inheritance explains why Go has none, and what embedding gives
// you instead.
//
// Class inheritance bundles three separable things: code reuse (the child
// gets the parent's methods), subtyping (the child can stand in for the
// parent), and open recursion (the parent's methods can call overridden
// ones). Go unbundles them. Embedding, shown here, delivers only the
// first; subtyping is the interface lessons' job; open recursion simply
// does not exist.
//
// Car embeds Engine by listing the type with no field name. The effect is
// promotion: Engine's fields and methods appear on Car, so car.Start()
// works and means car.Engine.Start(). It reads like inheritance at the
// call site, but it is composition underneath: there is a real Engine
// field, reachable as car.Engine, and a Car is NOT an Engine. A function
// taking Engine will not accept a Car.
//
// Car declaring its own Describe shadows the promoted one. The outer
// method can still reach the inner as c.Engine.Describe(), the closest
// thing to a super call. What shadowing does not do is virtual dispatch:
// nothing that calls Engine's methods will ever land on Car's. If Start
// called Describe internally it would get Engine's version, even when the
// Engine sits inside a Car. That missing link is not a defect to work
// around; it is the cue to reach for interfaces, two lessons from here.
package inheritance
