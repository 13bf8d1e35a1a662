package ecs

// Sound effect ids shared by the simulation and the sfx table.
const (
	SfxBonk          = 3
	SfxExpPickup     = 14
	SfxPlayerJump    = 15
	SfxPlayerHurt    = 16
	SfxPlayerDie     = 17
	SfxHeartPickup   = 20
	SfxThud          = 23
	SfxLevelUp       = 27
	SfxEnemyDie      = 28
	SfxTink          = 31
	SfxShot          = 32
	SfxMissilePickup = 42
	SfxExpBounce     = 45
)

// Script events raised by the simulation itself.
const (
	EventPlayerDeath = 40
)
