package app

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/notnil/chess"

	"github.com/pramod-motupalli/Chess.IO/app/config"
	"github.com/pramod-motupalli/Chess.IO/app/models"
	"github.com/pramod-motupalli/Chess.IO/engine"
)

// store holds every live game. In-memory only; a restart forfeits all games.
var store = NewGameStore()

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"active_games": store.Len(),
	})
}

// ListPersonas returns the opponents the frontend can offer.
func ListPersonas(c *gin.Context) {
	var out []engine.Persona
	for _, name := range engine.PersonaNames() {
		out = append(out, engine.PersonaByName(name))
	}
	c.JSON(http.StatusOK, gin.H{"personas": out})
}

// NewGame creates a session. The body is optional; missing fields fall back
// to the server defaults. If the engine has White it replies with its
// opening move already played.
func NewGame(c *gin.Context) {
	var req models.GameConfig
	_ = c.ShouldBindJSON(&req)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("LoadConfig failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load config"})
		return
	}

	engineColor := parseColor(firstNonEmpty(req.EngineColor, cfg.Engine.Color), chess.Black)
	difficulty := engine.ParseDifficulty(firstNonEmpty(req.Difficulty, cfg.Engine.Difficulty))
	persona := firstNonEmpty(req.Persona, cfg.Engine.Persona)

	s := store.Create(engineColor, difficulty, persona)
	s.Lock()
	defer s.Unlock()

	resp := models.NewGameResponse{
		Difficulty:  string(difficulty),
		Persona:     s.Persona,
		EngineColor: colorName(engineColor),
	}

	if engineColor == chess.White {
		uci, comment, err := playEngineMove(s)
		if err != nil {
			log.Printf("engine opening move failed for game=%s: %v", s.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "engine failed to move"})
			return
		}
		resp.EngineMove = uci
		resp.EngineComment = comment
	}

	resp.GameSnapshot = snapshot(s)
	c.JSON(http.StatusOK, resp)
}

// MakeMove applies the player's move and, if the game continues, answers
// with the engine's reply. Illegal moves come back as status "illegal_move"
// with the position untouched.
func MakeMove(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := store.Get(req.GameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	s.Lock()
	defer s.Unlock()

	if gameState(s) != "ongoing" {
		c.JSON(http.StatusOK, models.MoveResponse{
			Status:       "game_over",
			GameSnapshot: snapshot(s),
			MoveLog:      s.MoveLog,
		})
		return
	}

	from, err := parseSquare(req.FromSquare)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseSquare(req.ToSquare)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	promo := chess.NoPieceType
	if req.Promotion != "" {
		promo = parsePromotion(req.Promotion)
	}

	before := s.Game.Position()
	m, err := engine.FindMove(before, from, to, promo)
	if err != nil {
		var illegal *engine.IllegalMoveError
		if errors.As(err, &illegal) {
			c.JSON(http.StatusOK, models.MoveResponse{
				Status:       "illegal_move",
				GameSnapshot: snapshot(s),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	humanColor := before.Turn()
	san := chess.AlgebraicNotation{}.Encode(before, m)
	if err := s.Game.Move(m); err != nil {
		log.Printf("apply move failed for game=%s move=%s: %v", s.ID, san, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply move"})
		return
	}

	analysis, delta := AnalyzeHumanMove(before, s.Game.Position(), humanColor)
	humanComment := s.Engine.Explainer.AnnotateOpponentMove(m, delta)
	s.Record(m, san, humanColor, humanComment, "")

	resp := models.MoveResponse{
		Status:       "ok",
		HumanComment: humanComment,
		Analysis:     &analysis,
	}

	switch gameState(s) {
	case "ongoing":
		uci, comment, err := playEngineMove(s)
		if err != nil {
			log.Printf("engine reply failed for game=%s: %v", s.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "engine failed to move"})
			return
		}
		resp.EngineMove = uci
		resp.EngineComment = comment
	case "checkmate":
		// The player mated the engine.
		resp.EngineComment = s.Engine.Explainer.Persona().LossQuote
	}

	if gameState(s) != "ongoing" {
		resp.Status = "game_over"
	}
	resp.GameSnapshot = snapshot(s)
	resp.Evaluation = evaluation(s.Game.Position())
	resp.MoveLog = s.MoveLog
	c.JSON(http.StatusOK, resp)
}

// SetPersona switches the commentary voice mid-game.
func SetPersona(c *gin.Context) {
	var req models.SetPersonaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := store.Get(req.GameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	s.Lock()
	defer s.Unlock()

	s.Persona = strings.ToLower(req.Persona)
	s.Engine.SetPersona(s.Persona)

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"persona": s.Persona,
		"name":    s.Engine.Explainer.Persona().Name,
	})
}

// SelfPlay lets the engine move for whichever side is to move. Optional
// ?moves=N plays several plies; it stops early if the game ends.
func SelfPlay(c *gin.Context) {
	var req models.SelfPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := store.Get(req.GameID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	s.Lock()
	defer s.Unlock()

	plies := 1
	if q := c.Query("moves"); q != "" {
		if v, err := parsePositiveInt(q); err == nil && v > 0 && v <= 200 {
			plies = v
		}
	}

	var lastUCI, lastComment string
	for i := 0; i < plies; i++ {
		if gameState(s) != "ongoing" {
			break
		}
		pos := s.Game.Position()

		// Temporary engine for the side to move, same depth and voice.
		mover := engine.NewWithDepth(pos.Turn(), s.Engine.Depth)
		mover.SetPersona(s.Persona)

		res, err := mover.ChooseMove(pos)
		if err != nil {
			log.Printf("self-play move failed for game=%s: %v", s.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "engine failed to move"})
			return
		}

		san := chess.AlgebraicNotation{}.Encode(pos, res.BestMove)
		if err := s.Game.Move(res.BestMove); err != nil {
			log.Printf("self-play apply failed for game=%s move=%s: %v", s.ID, san, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply move"})
			return
		}
		s.Record(res.BestMove, san, pos.Turn(), res.Explanation, engine.FormatScore(res.Score))

		lastUCI = chess.UCINotation{}.Encode(nil, res.BestMove)
		lastComment = res.Explanation
	}

	resp := models.MoveResponse{
		Status:        "ok",
		EngineMove:    lastUCI,
		EngineComment: lastComment,
		GameSnapshot:  snapshot(s),
		Evaluation:    evaluation(s.Game.Position()),
		MoveLog:       s.MoveLog,
	}
	if resp.GameState != "ongoing" {
		resp.Status = "game_over"
	}
	c.JSON(http.StatusOK, resp)
}

// GetGame returns the full state of a session.
func GetGame(c *gin.Context) {
	s, ok := store.Get(c.Param("gameid"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	s.Lock()
	defer s.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"game":       snapshot(s),
		"difficulty": string(s.Difficulty),
		"persona":    s.Persona,
		"evaluation": evaluation(s.Game.Position()),
		"move_log":   s.MoveLog,
		"created_at": s.CreatedAt,
	})
}

// DeleteGame resigns and forgets a session.
func DeleteGame(c *gin.Context) {
	id := c.Param("gameid")
	if _, ok := store.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
		return
	}
	store.Delete(id)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// playEngineMove searches the session's current position, plays the result
// and logs it. Caller holds the session lock and has checked the game is
// still ongoing.
func playEngineMove(s *GameSession) (uci, comment string, err error) {
	pos := s.Game.Position()

	res, err := s.Engine.ChooseMove(pos)
	if err != nil {
		return "", "", err
	}

	san := chess.AlgebraicNotation{}.Encode(pos, res.BestMove)
	if err := s.Game.Move(res.BestMove); err != nil {
		return "", "", err
	}
	s.Record(res.BestMove, san, s.Engine.Color, res.Explanation, engine.FormatScore(res.Score))

	return chess.UCINotation{}.Encode(nil, res.BestMove), res.Explanation, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
