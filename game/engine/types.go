package engine

// TileCategory classifies board tiles by the kind of financial effect they carry
type TileCategory string

const (
	TileGo          TileCategory = "go"
	TileIncome      TileCategory = "income"
	TileExpense     TileCategory = "expense"
	TileInvestment  TileCategory = "investment"
	TileOpportunity TileCategory = "opportunity"
	TileRisk        TileCategory = "risk"
	TileEvent       TileCategory = "event"
)

// AssetCategory classifies purchasable assets
type AssetCategory string

const (
	AssetRealEstate AssetCategory = "realestate"
	AssetStock      AssetCategory = "stock"
	AssetBusiness   AssetCategory = "business"
	AssetSideHustle AssetCategory = "sidehustle"
)

// MarketCondition is the session-wide market state, re-rolled each round
type MarketCondition string

const (
	MarketBull    MarketCondition = "bull"
	MarketBear    MarketCondition = "bear"
	MarketNeutral MarketCondition = "neutral"
)

// TurnPhase tracks where the current player is in their turn
type TurnPhase string

const (
	PhaseAwaitingRoll    TurnPhase = "awaiting_roll"
	PhaseAwaitingEndTurn TurnPhase = "awaiting_end_turn"
	PhaseGameOver        TurnPhase = "game_over"
)

const (
	// Board and player bounds
	BoardSize  = 24
	MinPlayers = 2
	MaxPlayers = 6

	// Dice bounds
	MinRoll = 1
	MaxRoll = 6

	// Market multipliers applied to an asset's cost on sale
	BullSaleMultiplier    = 0.8
	BearSaleMultiplier    = 0.5
	NeutralSaleMultiplier = 0.65

	// Fraction of an asset's cost counted toward covering negative cash
	LiquidationRate = 0.5

	// Cash-flow scaling applied by market-wide tiles
	CrashFactor = 0.8
	BoomFactor  = 1.15

	// SnapshotVersion tags serialized game state for safe evolution
	SnapshotVersion = 1

	// Classic rule-set economy defaults
	DefaultStartingCash     = 2000
	DefaultStartingSalary   = 1000
	DefaultBaselineExpenses = 500
	DefaultPassingGoAmount  = 1000
	DefaultFreedomAmount    = 5000
)

// HistoryEventType labels entries in a player's turn history
type HistoryEventType string

const (
	EventIncome      HistoryEventType = "income"
	EventExpense     HistoryEventType = "expense"
	EventInvestment  HistoryEventType = "investment"
	EventOpportunity HistoryEventType = "opportunity"
	EventRisk        HistoryEventType = "risk"
	EventEvent       HistoryEventType = "event"
	EventLiability   HistoryEventType = "liability"
	EventPassedGo    HistoryEventType = "passed_go"
	EventBankrupt    HistoryEventType = "bankrupt"
	EventNewRound    HistoryEventType = "new_round"
	EventVictory     HistoryEventType = "victory"
)

// HistoryEvent is a single entry in a player's turn history or the
// session event feed. Amount is omitted for events with no cash figure.
type HistoryEvent struct {
	Type   HistoryEventType `json:"type"`
	Name   string           `json:"name"`
	Amount int              `json:"amount,omitempty"`
}

// Asset is a purchasable, income-generating holding. Catalog templates
// carry Owned=0; a player's copy tracks the owned count and may have its
// CashFlow mutated by market-wide tile effects. The shared catalog is
// never mutated.
type Asset struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category AssetCategory `json:"category"`
	Cost     int           `json:"cost"`
	CashFlow int           `json:"cash_flow"`
	Owned    int           `json:"owned"`
}

// Liability is an outstanding debt. Amount is a float because monthly
// interest accrual is fractional; the minimum payment is whole units.
type Liability struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Amount         float64 `json:"amount"`
	InterestRate   float64 `json:"interest_rate"`
	MinimumPayment int     `json:"minimum_payment"`
}

// Player is one participant's full financial ledger
type Player struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Cash          int            `json:"cash"`
	Position      int            `json:"position"`
	Salary        int            `json:"salary"`
	PassiveIncome int            `json:"passive_income"`
	Expenses      int            `json:"expenses"`
	Assets        []Asset        `json:"assets"`
	Liabilities   []Liability    `json:"liabilities"`
	IsInDebt      bool           `json:"is_in_debt"`
	Bankrupt      bool           `json:"bankrupt"`
	TurnHistory   []HistoryEvent `json:"turn_history"`
}

// Tile is one immutable board square. Its effect is pure data: a kind
// tag plus parameters, dispatched through the effect table at landing
// time. Nothing behavioral is ever serialized.
type Tile struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Category    TileCategory `json:"category"`
	Description string       `json:"description"`
	Effect      EffectSpec   `json:"effect"`
}

// GameState is the complete serializable session state
type GameState struct {
	Players            []Player        `json:"players"`
	CurrentPlayerIndex int             `json:"current_player_index"`
	Tiles              []Tile          `json:"tiles"`
	BoardSize          int             `json:"board_size"`
	GameStarted        bool            `json:"game_started"`
	GameFinished       bool            `json:"game_finished"`
	Winner             *Player         `json:"winner,omitempty"`
	Round              int             `json:"round"`
	Phase              TurnPhase       `json:"phase"`
	PassingGoAmount    int             `json:"passing_go_amount"`
	FreedomAmount      int             `json:"freedom_amount"`
	AvailableAssets    []Asset         `json:"available_assets"`
	MarketCondition    MarketCondition `json:"market_condition"`

	// Events is the session-wide feed mirroring notable turn-history
	// entries, used for UI display only.
	Events []HistoryEvent `json:"events"`

	// LiabilitySeq numbers liabilities granted by tiles so their ids
	// stay unique and deterministic across a session.
	LiabilitySeq int `json:"liability_seq"`
}
