package models

// GameConfig is what the frontend sends to start a game. Every field is
// optional; the server fills in its configured defaults.
type GameConfig struct {
	EngineColor string `json:"engine_color"` // "white" or "black"
	Difficulty  string `json:"difficulty"`   // "easy", "medium", "hard"
	Persona     string `json:"persona"`
}

type MoveRequest struct {
	GameID     string `json:"game_id" binding:"required"`
	FromSquare string `json:"from_square" binding:"required"`
	ToSquare   string `json:"to_square" binding:"required"`
	Promotion  string `json:"promotion"` // "q","r","b","n"; empty promotes to queen
}

type SetPersonaRequest struct {
	GameID  string `json:"game_id" binding:"required"`
	Persona string `json:"persona" binding:"required"`
}

type SelfPlayRequest struct {
	GameID string `json:"game_id" binding:"required"`
}

type LegalMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveRecord is one entry in a session's move log.
type MoveRecord struct {
	Ply     int    `json:"ply"`
	Color   string `json:"color"` // "white" or "black"
	UCI     string `json:"uci"`
	SAN     string `json:"san"`
	Comment string `json:"comment,omitempty"`
	Eval    string `json:"eval,omitempty"`
}

// GameSnapshot is the board-facing part shared by every game response.
type GameSnapshot struct {
	GameID     string      `json:"game_id"`
	BoardFEN   string      `json:"board_fen"`
	Turn       string      `json:"turn"`
	InCheck    bool        `json:"in_check"`
	GameState  string      `json:"game_state"` // "ongoing","checkmate","stalemate","draw"
	Winner     string      `json:"winner,omitempty"`
	LegalMoves []LegalMove `json:"legal_moves"`
}

type NewGameResponse struct {
	GameSnapshot
	Difficulty    string `json:"difficulty"`
	Persona       string `json:"persona"`
	EngineColor   string `json:"engine_color"`
	EngineMove    string `json:"engine_move,omitempty"`
	EngineComment string `json:"engine_comment,omitempty"`
}

type MoveResponse struct {
	Status string `json:"status"` // "ok","illegal_move","game_over","error"
	GameSnapshot
	EngineMove    string        `json:"engine_move,omitempty"`
	EngineComment string        `json:"engine_comment,omitempty"`
	HumanComment  string        `json:"human_comment,omitempty"`
	Analysis      *MoveAnalysis `json:"analysis,omitempty"`
	Evaluation    *Evaluation   `json:"evaluation,omitempty"`
	MoveLog       []MoveRecord  `json:"move_log,omitempty"`
}
