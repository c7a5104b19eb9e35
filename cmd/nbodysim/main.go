// Command nbodysim runs an interactive Barnes-Hut N-body simulation driven
// by a JSON configuration file, rendered with raylib.
package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"nbodysim/internal/config"
	"nbodysim/internal/input"
	"nbodysim/internal/renderer"
	"nbodysim/internal/simulation"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the simulation configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("nbodysim: loading config: %v", err)
	}

	sim, err := simulation.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("nbodysim: building simulation: %v", err)
	}

	rl.InitWindow(int32(cfg.WindowSize), int32(cfg.WindowSize), "Barnes-Hut N-Body Simulation")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	cam := renderer.NewCamera(float64(cfg.WindowSize) / 50000.0)
	particleRenderer := renderer.NewParticleRenderer()
	particleRenderer.SetCamera(cam)
	particleRenderer.SetScreenCenter(float64(cfg.WindowSize)/2, float64(cfg.WindowSize)/2)
	particleRenderer.SetTree(sim.Tree(), true)
	if err := particleRenderer.Setup(); err != nil {
		log.Fatalf("nbodysim: setting up particle renderer: %v", err)
	}

	ui := renderer.NewUIRenderer(cfg.WindowSize, cfg.WindowSize)

	controller := input.NewInputController()
	state := &input.SimulationState{Theta: sim.GetTheta()}
	inputConfig := &input.InputConfig{
		ThetaStep:    0.01,
		ZoomStep:     0.08,
		MinTheta:     0.0,
		MaxTheta:     2.0,
		ScreenWidth:  cfg.WindowSize,
		ScreenHeight: cfg.WindowSize,
	}

	loop := renderer.NewRenderLoop()
	loop.SetTargetFPS(60)

	loop.SetUpdateCallback(func(dt float64) {
		controller.UpdateFromRaylib()
		controller.ProcessInput(cam, state, inputConfig)

		sim.SetTheta(state.Theta)
		if state.ReverseRequested {
			sim.Reverse()
		}
		if !state.Paused {
			sim.Step()
		}

		if rl.WindowShouldClose() {
			loop.RequestClose()
		}
	})

	loop.SetBeginCallback(func() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(5, 5, 15, 255))
	})

	loop.SetRenderCallback(func(dt float64) {
		particleRenderer.SetParticles(sim.Particles(), sim.Parameters())
		particleRenderer.SetTree(sim.Tree(), true)
		if err := particleRenderer.Render(); err != nil {
			log.Printf("nbodysim: render: %v", err)
		}

		ui.UpdateState(renderer.UIState{
			ParticleCount:  sim.ParticleCount(),
			IntegratorName: sim.IntegratorName(),
			Theta:          sim.GetTheta(),
			ActualFPS:      loop.GetActualFPS(),
			FrameTime:      loop.GetLastFrameTime(),
			Paused:         state.Paused,
			SimulationTime: sim.Time(),
		})
		if err := ui.Render(); err != nil {
			log.Printf("nbodysim: render UI: %v", err)
		}
	})

	loop.SetEndCallback(func() {
		rl.EndDrawing()
	})

	loop.Run()
}
