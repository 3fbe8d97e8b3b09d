// Package board hosts a chess game as a grid of pointer-aware square widgets
//
// Each square is an entity. Squares holding a piece of the side to move declare the
// "square" cursors, pieces of the other side the "forbidden" cursor, empty squares none.
// Dragging a piece onto another square requests a move; when the move needs a promotion,
// picker widgets are spawned until one is pressed. Widgets whose contents change are
// despawned and respawned, which drops any cursor requests they still hold.
package board

import (
	"fmt"
	"sync/atomic"

	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/lixenwraith/vi-chess/component"
	"github.com/lixenwraith/vi-chess/config"
	"github.com/lixenwraith/vi-chess/core"
	"github.com/lixenwraith/vi-chess/engine"
	"github.com/lixenwraith/vi-chess/event"
	"github.com/lixenwraith/vi-chess/logger"
	"github.com/lixenwraith/vi-chess/status"
	"github.com/lixenwraith/vi-chess/system"
)

// ErrIllegalMove is returned for a move the rules engine rejects
var ErrIllegalMove = errors.New("illegal move")

// PromotionPieces is the picker order
var PromotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Knight, chess.Bishop}

type squareWidget struct {
	entity   core.Entity
	piece    chess.Piece
	kind     string
	bindings []*system.Binding
}

type Board struct {
	world   *engine.World
	cursors *system.CursorSystem
	cfg     *config.Config
	log     logger.Logger

	game    *chess.Game
	flipped bool
	message string

	squares   [64]squareWidget
	promotion []core.Entity

	// Cursor bindings of the open promotion choices
	promotionBindings []*system.Binding

	statMoves   *atomic.Int64
	statWidgets *atomic.Int64
}

// New creates a board with a fresh game and spawns its square widgets
func New(world *engine.World, cursors *system.CursorSystem, cfg *config.Config) *Board {
	if cfg == nil {
		cfg = config.Default()
	}
	b := &Board{
		world:   world,
		cursors: cursors,
		cfg:     cfg,
		log:     world.Resources.Log,

		statMoves:   world.Resources.Status.Ints.Get(status.BoardMoves),
		statWidgets: world.Resources.Status.Ints.Get(status.BoardWidgets),
	}
	b.NewGame()
	return b
}

// NewGame discards the current game and starts over
func (b *Board) NewGame() {
	b.start(chess.NewGame())
	b.log.Info("new game")
}

// LoadFEN starts a game from a FEN position
func (b *Board) LoadFEN(fen string) error {
	opt, err := chess.FEN(fen)
	if err != nil {
		return errors.Wrap(err, "parse fen")
	}
	b.start(chess.NewGame(opt))
	b.log.Info("game loaded", "fen", fen)
	return nil
}

func (b *Board) start(game *chess.Game) {
	b.cancelPromotion()
	b.game = game
	b.statMoves.Store(0)
	b.message = ""
	b.sync()
}

// Game returns the running game
func (b *Board) Game() *chess.Game {
	return b.game
}

// Flip swaps the board orientation
func (b *Board) Flip() {
	b.flipped = !b.flipped
}

// Flipped reports whether black is drawn at the bottom
func (b *Board) Flipped() bool {
	return b.flipped
}

// Message returns the last status message
func (b *Board) Message() string {
	return b.message
}

// SquareEntity returns the widget currently standing for sq
func (b *Board) SquareEntity(sq chess.Square) core.Entity {
	return b.squares[sq].entity
}

// PromotionChoices returns the picker widgets in PromotionPieces order, nil when closed
func (b *Board) PromotionChoices() []core.Entity {
	return b.promotion
}

// EventTypes implements event.Handler
func (b *Board) EventTypes() []event.EventType {
	return []event.EventType{event.EventPointerPress, event.EventPointerDrop}
}

// HandleEvent implements event.Handler
func (b *Board) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPointerPress:
		if choice, ok := b.world.Promotions.Get(ev.Entity); ok {
			if err := b.completePromotion(choice); err != nil {
				b.message = err.Error()
			}
			return
		}
		if b.promotion != nil {
			b.cancelPromotion()
			b.message = "promotion cancelled"
		}
	case event.EventPointerDrop:
		from, ok := b.world.Squares.Get(ev.Source)
		if !ok {
			return
		}
		to, ok := b.world.Squares.Get(ev.Entity)
		if !ok {
			return
		}
		if err := b.RequestMove(from.Square, to.Square); err != nil {
			b.message = err.Error()
			b.log.Debug("move rejected", "from", from.Square, "to", to.Square, "error", err)
		}
	}
}

// RequestMove plays from->to, or opens the promotion picker if the move promotes
func (b *Board) RequestMove(from, to chess.Square) error {
	if b.game.Outcome() != chess.NoOutcome {
		return errors.New("game is over")
	}

	var candidates []*chess.Move
	for _, m := range b.game.ValidMoves() {
		if m.S1() == from && m.S2() == to {
			candidates = append(candidates, m)
		}
	}

	switch {
	case len(candidates) == 0:
		return errors.Wrapf(ErrIllegalMove, "%s%s", from, to)
	case len(candidates) > 1 || candidates[0].Promo() != chess.NoPieceType:
		b.openPromotion(from, to)
		return nil
	}
	return b.play(candidates[0])
}

// Promote completes a pending promotion with piece
func (b *Board) Promote(piece chess.PieceType) error {
	for _, e := range b.promotion {
		if choice, ok := b.world.Promotions.Get(e); ok && choice.Piece == piece {
			return b.completePromotion(choice)
		}
	}
	return errors.New("no promotion pending")
}

func (b *Board) completePromotion(choice component.PromotionChoiceComponent) error {
	b.cancelPromotion()
	for _, m := range b.game.ValidMoves() {
		if m.S1() == choice.From && m.S2() == choice.To && m.Promo() == choice.Piece {
			return b.play(m)
		}
	}
	return errors.Wrapf(ErrIllegalMove, "%s%s%s", choice.From, choice.To, choice.Piece)
}

func (b *Board) play(m *chess.Move) error {
	mover := b.game.Position().Turn()
	if err := b.game.Move(m); err != nil {
		return errors.Wrapf(err, "move %s", m)
	}
	b.statMoves.Add(1)
	b.message = fmt.Sprintf("%s played %s", mover.Name(), m)
	if outcome := b.game.Outcome(); outcome != chess.NoOutcome {
		b.message = fmt.Sprintf("%s (%s)", outcome, b.game.Method())
	}
	b.log.Info("move", "side", mover.Name(), "move", m.String(), "outcome", b.game.Outcome())
	b.sync()
	return nil
}

func (b *Board) openPromotion(from, to chess.Square) {
	b.cancelPromotion()
	b.promotion = make([]core.Entity, 0, len(PromotionPieces))
	for _, piece := range PromotionPieces {
		e := b.world.CreateEntity()
		b.world.Promotions.Set(e, component.PromotionChoiceComponent{From: from, To: to, Piece: piece})
		b.promotionBindings = append(b.promotionBindings, b.attach(e, config.WidgetPromotion)...)
		b.promotion = append(b.promotion, e)
	}
	b.message = "choose a promotion"
	b.publish()
}

func (b *Board) cancelPromotion() {
	detach(b.promotionBindings)
	for _, e := range b.promotion {
		b.world.DestroyEntity(e)
	}
	b.promotion = nil
	b.promotionBindings = nil
	b.publish()
}

// sync brings square widgets in line with the position
// A square whose piece or cursor kind changed gets a new widget
func (b *Board) sync() {
	board := b.game.Position().Board()
	turn := b.game.Position().Turn()
	over := b.game.Outcome() != chess.NoOutcome

	for i := range b.squares {
		sq := chess.Square(i)
		piece := board.Piece(sq)
		kind := widgetKind(piece, turn, over)

		w := &b.squares[i]
		if w.entity != 0 && w.piece == piece && w.kind == kind {
			continue
		}
		if w.entity != 0 {
			detach(w.bindings)
			b.world.DestroyEntity(w.entity)
		}

		e := b.world.CreateEntity()
		b.world.Squares.Set(e, component.SquareComponent{Square: sq})
		*w = squareWidget{entity: e, piece: piece, kind: kind, bindings: b.attach(e, kind)}
	}
	b.publish()
}

// attach declares kind's cursors on e and returns the bindings the widget holds until rebuilt
func (b *Board) attach(e core.Entity, kind string) []*system.Binding {
	if kind == "" {
		return nil
	}
	var bindings []*system.Binding
	for _, tier := range []component.CursorTier{component.TierHover, component.TierClick} {
		if pref, ok := b.cfg.Preference(kind, tier); ok {
			bindings = append(bindings, b.cursors.Attach(e, tier, pref))
		}
	}
	return bindings
}

// detach tears bindings down ahead of despawn, which would otherwise do it
func detach(bindings []*system.Binding) {
	for _, bd := range bindings {
		bd.Detach()
	}
}

func (b *Board) publish() {
	b.statWidgets.Store(int64(b.world.Squares.Count() + b.world.Promotions.Count()))
}

// widgetKind selects the cursor declarations for a square
func widgetKind(piece chess.Piece, turn chess.Color, over bool) string {
	if piece == chess.NoPiece || over {
		return ""
	}
	if piece.Color() == turn {
		return config.WidgetSquare
	}
	return config.WidgetForbidden
}
