package sim

// Event is a discrete feedback signal raised by the simulation. The set
// of implementations is closed.
type Event interface {
	event()
}

// Jumped is raised for every accepted jump command.
type Jumped struct {
	Double bool
}

// DamageTaken is raised when a hazard or bird hits the player. With
// ShieldUsed the powerup absorbed the hit and Health is unchanged.
type DamageTaken struct {
	Health     int
	ShieldUsed bool
}

// ItemCollected is raised when a pickup is collected.
type ItemCollected struct {
	Value   int
	Powerup bool
}

// BonusCollected is raised when the level's candy is collected.
type BonusCollected struct {
	Count int
}

// BlockStruck is raised whenever the player hits a block from below.
type BlockStruck struct {
	YieldedBonus bool
}

// LevelUp is raised when the level advances.
type LevelUp struct {
	Level int
}

// GameStarted is raised on every Idle -> Running transition.
type GameStarted struct{}

// GameEnded is raised when health reaches zero.
type GameEnded struct {
	Score int
	Level int
	Bonus int
}

// NewBestScore is raised each time the score passes the best score.
type NewBestScore struct {
	Value int
}

func (Jumped) event()         {}
func (DamageTaken) event()    {}
func (ItemCollected) event()  {}
func (BonusCollected) event() {}
func (BlockStruck) event()    {}
func (LevelUp) event()        {}
func (GameStarted) event()    {}
func (GameEnded) event()      {}
func (NewBestScore) event()   {}
