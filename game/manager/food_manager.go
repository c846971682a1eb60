package manager

import (
	"centipede/game/entity"
	"centipede/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// FoodManager owns the pool of food items and keeps it at its target size.
type FoodManager struct {
	foodList     []entity.Food
	target       int
	radiusMin    float64
	radiusMax    float64
	rng          types.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(cfg types.Config, collisionMgr *CollisionManager, rng types.Rand) *FoodManager {
	return &FoodManager{
		foodList:     make([]entity.Food, 0, cfg.FoodCount),
		target:       cfg.FoodCount,
		radiusMin:    cfg.FoodRadiusMin,
		radiusMax:    cfg.FoodRadiusMax,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// EnsureReplenished spawns food until the pool is back at its target and
// returns how many items were added.
func (fm *FoodManager) EnsureReplenished() int {
	spawned := 0
	for len(fm.foodList) < fm.target {
		fm.foodList = append(fm.foodList, fm.GenerateFood())
		spawned++
	}
	return spawned
}

// GenerateFood creates a food item inside the spawn area
func (fm *FoodManager) GenerateFood() entity.Food {
	min, max := fm.collisionMgr.SpawnArea()
	return entity.Food{
		ID: fm.newID(),
		Pos: types.Point{
			X: types.Uniform(fm.rng, min.X, max.X),
			Y: types.Uniform(fm.rng, min.Y, max.Y),
		},
		Radius: types.Uniform(fm.rng, fm.radiusMin, fm.radiusMax),
		Hue:    float64(fm.rng.Intn(360)),
	}
}

func (fm *FoodManager) newID() string {
	id, err := uuid.NewRandomFromReader(fm.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ConsumeOverlapping removes and returns the first food, in insertion
// order, whose circle overlaps the given one.
func (fm *FoodManager) ConsumeOverlapping(center types.Point, radius float64) (entity.Food, bool) {
	i := slices.IndexFunc(fm.foodList, func(f entity.Food) bool {
		return fm.collisionMgr.Overlaps(center, radius, f.Pos, f.Radius)
	})
	if i < 0 {
		return entity.Food{}, false
	}
	food := fm.foodList[i]
	fm.foodList = slices.Delete(fm.foodList, i, i+1)
	return food, true
}

// Resize moves the spawn area and drops food that is no longer inside it.
// The pool is refilled on the next EnsureReplenished.
func (fm *FoodManager) Resize(bounds types.Bounds) int {
	fm.collisionMgr.Resize(bounds)
	before := len(fm.foodList)
	fm.foodList = slices.DeleteFunc(fm.foodList, func(f entity.Food) bool {
		return !fm.collisionMgr.ValidateSpawnPosition(f.Pos)
	})
	return before - len(fm.foodList)
}

// GetFoodList returns a copy of the pool in insertion order
func (fm *FoodManager) GetFoodList() []entity.Food {
	return slices.Clone(fm.foodList)
}

func (fm *FoodManager) AddFood(food entity.Food) {
	fm.foodList = append(fm.foodList, food)
}

func (fm *FoodManager) Count() int {
	return len(fm.foodList)
}

func (fm *FoodManager) Target() int {
	return fm.target
}
