package inheritance

// Engine is the embedded "base". It knows nothing about cars.
type Engine struct {
	Power int
}

// Start reports the engine turning over.
func (e Engine) Start() string {
	return "engine started"
}

// Describe identifies a free-standing engine.
func (e Engine) Describe() string {
	return "bare engine"
}

// Car embeds Engine: the unnamed field promotes Engine's fields and
// methods onto Car.
type Car struct {
	Engine
	Model string
}

// Describe shadows the promoted Engine.Describe. Reaching the shadowed
// version explicitly is as close as Go comes to a super call.
func (c Car) Describe() string {
	return c.Model + " with " + c.Engine.Describe()
}
