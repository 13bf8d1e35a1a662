package ecs

// SoundPlayer plays a sound effect by id. It is fire-and-forget: errors are logged and
// never interrupt the step.
type SoundPlayer interface {
	PlaySFX(id int) error
}

// ScriptRunner starts an event script on behalf of an executing entity.
type ScriptRunner interface {
	StartScript(event int, executor Entity) error
}

// Controller answers boolean input queries for the current step.
type Controller interface {
	MoveLeft() bool
	MoveRight() bool
	Jump() bool
	Interact() bool
	Shoot() bool
}

type noInput struct{}

func (noInput) MoveLeft() bool  { return false }
func (noInput) MoveRight() bool { return false }
func (noInput) Jump() bool      { return false }
func (noInput) Interact() bool  { return false }
func (noInput) Shoot() bool     { return false }
