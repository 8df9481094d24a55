package pkg

type Action string

const (
	ActionNewGamePrompt Action = "Game Over"
	ActionNewGameOffer         = "New Game"
	ActionExit                 = "Exit"
	ActionPausePrompt          = "Paused"
	ActionBest                 = "New best!"
)
