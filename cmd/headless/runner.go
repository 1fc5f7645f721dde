package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"arenashooter/game"
)

const (
	ticksPerSecond = 60
	tickDuration   = time.Second / ticksPerSecond
	bannerTicks    = int(2 * time.Second / tickDuration)
)

// Outcome is how a headless session ended
type Outcome string

const (
	OutcomeVictory   Outcome = "victory"
	OutcomeDefeat    Outcome = "defeat"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeCancelled Outcome = "cancelled"
)

// Summary describes a finished session
type Summary struct {
	Outcome       Outcome
	LevelsCleared int
	Levels        int
	Score         int
	Kills         int
	ShotsFired    int
	DamageTaken   int
	Ticks         int
}

// run plays a full campaign with the bot on a simulated 60Hz clock
func run(ctx context.Context, cfg game.Config, seed int64, maxTicks int, logger *slog.Logger) (Summary, error) {
	sim, err := game.NewSimulation(cfg,
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithLogger(logger.With("subsystem", "simulation")))
	if err != nil {
		return Summary{}, err
	}
	campaign, err := game.NewCampaign(sim, cfg.Levels)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Levels: campaign.Levels()}
	levelStart := 0
	banner := -1 // ticks left before the next level starts, -1 when no banner is up

	for tick := 0; ; tick++ {
		if err := ctx.Err(); err != nil {
			summary.Outcome = OutcomeCancelled
			summary.Ticks = tick
			break
		}
		if tick >= maxTicks {
			summary.Outcome = OutcomeTimeout
			summary.Ticks = tick
			break
		}

		if banner == 0 {
			if _, err := campaign.Advance(); err != nil {
				return summary, fmt.Errorf("level %d: %w", campaign.Level()+1, err)
			}
			levelStart = tick
			banner = -1
		} else if banner > 0 {
			banner--
		}

		result := sim.Tick(botInput(sim), time.Duration(tick)*tickDuration)
		summary.Kills += len(result.Deaths)
		summary.ShotsFired += countPlayerShots(result.Shots)
		for _, d := range result.Damage {
			if d.Target.Kind == game.TargetPlayer {
				summary.DamageTaken += d.Amount
			}
		}

		if result.PlayerDefeated {
			summary.Outcome = OutcomeDefeat
			summary.Ticks = tick + 1
			break
		}
		if result.LevelCleared {
			summary.LevelsCleared++
			logger.Info("level cleared",
				"level", campaign.Level(),
				"ticks", tick+1-levelStart,
				"score", sim.Score(),
				"health", sim.Player().Health)
			if campaign.Level() == campaign.Levels() {
				if _, err := campaign.Advance(); err != nil {
					return summary, err
				}
				summary.Outcome = OutcomeVictory
				summary.Ticks = tick + 1
				break
			}
			banner = bannerTicks
		}
	}

	summary.Score = sim.Score()
	return summary, nil
}

func countPlayerShots(shots []game.ShotEvent) int {
	n := 0
	for _, s := range shots {
		if s.Owner == game.OwnerPlayer {
			n++
		}
	}
	return n
}
