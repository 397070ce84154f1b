package searcher

import "time"

// Hyperparameters for MCTS

const DefaultExploration = 1.4 // Roughly sqrt(2)

const DefaultDuration = 10 * time.Second

// Rollout outcomes from the searching player's perspective
const Win = 1.0
const Loss = 0.0
