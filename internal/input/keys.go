package input

// Key identifiers follow the names browsers and most toolkits report:
// printable keys by their character, arrows by name.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEscape     = "Escape"
	KeySpace      = " "
)

// Directional bindings. Any key of a binding being down counts.
var (
	MoveUp    = []string{"w", "W", KeyArrowUp}
	MoveDown  = []string{"s", "S", KeyArrowDown}
	MoveLeft  = []string{"a", "A", KeyArrowLeft}
	MoveRight = []string{"d", "D", KeyArrowRight}
	Pause     = []string{"p", "P"}
	Quit      = []string{"q", "Q", KeyEscape}
)
