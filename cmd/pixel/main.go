// Command pixel is a headless demo shell: it loads a scene, registers the
// movement system, and drives the coordinator through a fixed-timestep loop.
package main

import (
	"flag"
	"os"

	"github.com/TheBitDrifter/backstage"
	"github.com/TheBitDrifter/backstage/motion"
	"github.com/TheBitDrifter/backstage/scene"
	"github.com/TheBitDrifter/table"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "path to the scene file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*scenePath, *debug, log); err != nil {
		log.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(scenePath string, debug bool, log *zap.Logger) error {
	s, err := scene.LoadFile(scenePath)
	if err != nil {
		return err
	}

	var coreLog *zap.Logger
	if debug {
		coreLog = log
	}
	coordinator := backstage.Factory.NewCoordinator(table.Factory.NewSchema(), coreLog)

	movement, err := motion.NewMovement(coordinator, s.Gravity)
	if err != nil {
		return err
	}
	backstage.AddSystem(coordinator, movement)

	if _, err := s.Spawn(coordinator); err != nil {
		return err
	}

	log.Info("scene loaded",
		zap.String("path", scenePath),
		zap.Int("entities", len(s.Entities)),
		zap.Float64("timestep", s.Timestep),
		zap.Int("steps", s.Steps),
	)

	for step := 0; step < s.Steps; step++ {
		// Reconciliation runs exactly once per step, before any system.
		coordinator.Update()
		if err := movement.Update(coordinator, s.Timestep); err != nil {
			return err
		}
	}
	coordinator.Update()

	for _, entity := range movement.Entities() {
		transform, err := motion.TransformComponent.Get(coordinator, entity)
		if err != nil {
			return err
		}
		log.Info("final position",
			zap.Uint32("entity", uint32(entity.ID())),
			zap.Float64("x", transform.Position.X),
			zap.Float64("y", transform.Position.Y),
		)
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	zapCfg.DisableCaller = true
	zapCfg.DisableStacktrace = true
	if debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapCfg.Build()
}
