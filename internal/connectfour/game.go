package connectfour

type GameType struct {
	ShortName string
	LongName  string

	Sequential         bool
	Deterministic      bool
	PerfectInformation bool
	ZeroSum            bool
	TerminalRewards    bool

	MinNumPlayers int
	MaxNumPlayers int

	ProvidesInformationState       bool
	ProvidesInformationStateTensor bool
	ProvidesObservation            bool
}

// Type describes the game to a host framework. Registering it is up to the host.
var Type = GameType{
	ShortName: "connect_four",
	LongName:  "Connect Four",

	Sequential:         true,
	Deterministic:      true,
	PerfectInformation: true,
	ZeroSum:            true,
	TerminalRewards:    true,

	MinNumPlayers: NumPlayers,
	MaxNumPlayers: NumPlayers,

	ProvidesInformationState:       true,
	ProvidesInformationStateTensor: true,
}

// Game is stateless; it creates states and converts them to and from text.
type Game struct{}

func NewGame() *Game {
	return &Game{}
}

func (that *Game) Type() GameType {
	return Type
}

func (that *Game) NumDistinctActions() int {
	return Cols
}

func (that *Game) NumPlayers() int {
	return NumPlayers
}

func (that *Game) MinUtility() float64 {
	return -1
}

func (that *Game) MaxUtility() float64 {
	return 1
}

func (that *Game) UtilitySum() float64 {
	return 0
}

// MaxGameLength - every move fills one cell.
func (that *Game) MaxGameLength() int {
	return NumCells
}

func (that *Game) InformationStateTensorShape() []int {
	return []int{CellStates, Rows, Cols}
}

func (that *Game) NewInitialState() *State {
	return NewState()
}

func (that *Game) SerializeState(state *State) string {
	return Serialize(state)
}

func (that *Game) DeserializeState(text string) (*State, error) {
	return Deserialize(text)
}
