package pkg

import (
	"fmt"
)

// Player is the record of one session. Nothing is persisted.
type Player struct {
	Name  string
	Best  int
	Last  int
	Games int
}

func NewPlayer(name string) *Player {
	return &Player{Name: NicknameOrRandom(name)}
}

// Record stores the score of a finished game and reports whether it beat
// the session best.
func (p *Player) Record(score int) bool {
	p.Games++
	p.Last = score

	if score > p.Best {
		p.Best = score
		return true
	}

	return false
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (best %d, %d games)", p.Name, p.Best, p.Games)
}
