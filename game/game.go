package game

import (
	"log"
	"math"
	"time"

	"centipede/game/entity"
	"centipede/game/input"
	"centipede/game/manager"
	"centipede/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Game ties the creature to its food and drives one frame at a time.
type Game struct {
	UUID      string
	StartTime time.Time

	cfg          types.Config
	creature     *Creature
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	onEat        func(entity.Food)
}

// New validates cfg and builds a game whose creature starts at the centre
// of bounds and steers toward pointer. rng drives food placement and ids.
func New(cfg types.Config, bounds types.Bounds, pointer input.Source, rng types.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, errors.Wrap(err, "session id")
	}
	startTime := time.Now()

	collisionMgr := manager.NewCollisionManager(bounds, cfg.FoodMargin)
	foodMgr := manager.NewFoodManager(cfg, collisionMgr, rng)

	g := &Game{
		UUID:         id.String(),
		StartTime:    startTime,
		cfg:          cfg,
		collisionMgr: collisionMgr,
		foodMgr:      foodMgr,
		creature:     NewCreature(cfg, bounds.Center(), pointer, foodMgr),
		stateMgr:     manager.NewStateManager(id.String(), startTime, cfg.Segments),
	}
	g.creature.onEat = g.handleMeal
	g.foodMgr.EnsureReplenished()

	return g, nil
}

// Step runs one frame: clamp dt, update the creature, refill food.
func (g *Game) Step(dt float64) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, g.cfg.MaxFrameDelta)

	g.creature.Update(dt)
	g.foodMgr.EnsureReplenished()
	g.stateMgr.RecordFrame()
}

func (g *Game) handleMeal(food entity.Food, length int) {
	if g.stateMgr.RecordMeal(length) {
		log.Printf("centipede reached %d segments", length)
	}
	if g.onEat != nil {
		g.onEat(food)
	}
}

// OnEat registers a callback run after every consumption.
func (g *Game) OnEat(fn func(entity.Food)) {
	g.onEat = fn
}

// Resize moves the playing area. Food left outside is dropped and replaced.
func (g *Game) Resize(bounds types.Bounds) {
	if bounds == g.collisionMgr.Bounds() {
		return
	}
	if dropped := g.foodMgr.Resize(bounds); dropped > 0 {
		log.Printf("resize to %.0fx%.0f dropped %d food", bounds.Width, bounds.Height, dropped)
	}
	g.foodMgr.EnsureReplenished()
}

func (g *Game) Bounds() types.Bounds {
	return g.collisionMgr.Bounds()
}

func (g *Game) Config() types.Config {
	return g.cfg
}

func (g *Game) Creature() *Creature {
	return g.creature
}

func (g *Game) GetFoodList() []entity.Food {
	return g.foodMgr.GetFoodList()
}

// Stats returns the session record
func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Snapshot()
}
