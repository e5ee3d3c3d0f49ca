package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"tower-simulator/internal/config"
	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/control"
	"tower-simulator/internal/game/savefile"
	"tower-simulator/internal/game/simulation"
	"tower-simulator/internal/logging"
	"tower-simulator/internal/ui"
	"tower-simulator/internal/ui/command"
	"tower-simulator/pkg/types"
)

type Game struct {
	width, height int
	cfg           *config.Config
	sim           *simulation.Simulation
	saveDir       string

	paused        bool
	frames        int
	framesPerTick int
	quit          bool

	selectedAircraftID types.AircraftID
	status             string
	commandInput       *ui.TextInput

	terminals *ui.Panel
	queues    *ui.Panel
	fleet     *ui.Panel
	fleetIDs  []types.AircraftID
	radio     *ui.Panel
}

func NewGame(cfg *config.Config, sim *simulation.Simulation, saveDir string) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height
	game := &Game{
		width:         w,
		height:        h,
		cfg:           cfg,
		sim:           sim,
		saveDir:       saveDir,
		framesPerTick: max(1, int(float64(ebiten.DefaultTPS)/cfg.TickRate)),
		status:        command.Help,
	}

	top, bottom := 24, h-48
	half := (bottom - top) / 2
	game.terminals = ui.NewPanel(10, top, w/3-15, bottom-top-6, "TERMINALS")
	game.queues = ui.NewPanel(w/3, top, w/3-10, half-6, "QUEUES")
	game.fleet = ui.NewPanel(w/3, top+half, w/3-10, half-6, "AIRCRAFT")
	game.radio = ui.NewPanel(2*w/3, top, w/3-10, bottom-top-6, "RADIO")

	game.commandInput = ui.NewTextInput(10, h-40, w-20, 30, func(cmd string) {
		game.parseAndExecuteCommand(cmd)
	})
	return game
}

func (g *Game) Update() error {
	typing := g.commandInput.IsActive
	g.commandInput.Update()
	g.handleInput(typing)
	if g.quit {
		return ebiten.Termination
	}

	if !g.paused {
		g.frames++
		if g.frames >= g.framesPerTick {
			g.frames = 0
			g.sim.Tick()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.drawTerminals()
	g.drawQueues()
	g.drawFleet()
	g.drawRadio()
	for _, p := range []*ui.Panel{g.terminals, g.queues, g.fleet, g.radio} {
		p.Draw(screen)
	}
	g.commandInput.Draw(screen)

	state := "RUNNING"
	if g.paused {
		state = "PAUSED"
	}
	header := fmt.Sprintf("TICK %d  %s  landings %d  takeoffs %d  selected %s",
		g.sim.Ticks, state, g.sim.Landings, g.sim.Takeoffs, selectedText(g.selectedAircraftID))
	ebitenutil.DebugPrintAt(screen, header, 10, 4)
	ebitenutil.DebugPrintAt(screen, g.status, 10, g.height-58)
	ebitenutil.DebugPrintAt(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64), g.width-90, 4)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func selectedText(id types.AircraftID) string {
	if id == "" {
		return "none"
	}
	return id.String()
}

// handleInput processes mouse selection and keyboard shortcuts. Shortcuts are
// ignored while the command box had focus at the start of the frame.
func (g *Game) handleInput(typing bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.commandInput.Contains(x, y) {
			g.commandInput.IsActive = true
			return
		}
		g.commandInput.IsActive = false

		g.selectedAircraftID = ""
		if i := g.fleet.LineAt(x, y); i >= 0 && i < len(g.fleetIDs) {
			g.selectedAircraftID = g.fleetIDs[i]
			log.Debugf("Selected aircraft: %s", g.selectedAircraftID)
		}
	}

	if typing || g.commandInput.IsActive {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySlash):
		g.commandInput.IsActive = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyPeriod) && g.paused:
		g.sim.Tick()
	}
}

func (g *Game) parseAndExecuteCommand(cmd string) {
	r, err := command.Execute(g.sim, g.selectedAircraftID, cmd)
	if err != nil {
		g.status = err.Error()
		log.Warnf("%s: %v", cmd, err)
		return
	}

	switch r.Action {
	case command.PAUSE:
		g.paused = !g.paused
	case command.SAVE:
		dir := g.saveDir
		if r.Arg != "" {
			dir = r.Arg
		}
		if err := savefile.Save(dir, g.cfg.Files, g.sim); err != nil {
			g.status = err.Error()
			log.Errorf("save %s: %v", dir, err)
			return
		}
		r.Message = "saved to " + dir
	case command.QUIT:
		g.quit = true
	}
	if r.Message != "" {
		g.status = r.Message
	}
}

func (g *Game) drawTerminals() {
	p := g.terminals
	p.Reset()
	for _, t := range g.sim.Terminals {
		marker := color.Color(ui.Normal)
		if t.HasEmergency() {
			marker = ui.Urgent
		}
		p.Add(fmt.Sprintf("%s %d%% full", t, t.OccupancyLevel()), marker)
		for _, gate := range t.Gates() {
			marker := color.Color(ui.Idle)
			if gate.IsOccupied() {
				marker = ui.Normal
			}
			p.Add("  "+gate.String(), marker)
		}
	}
}

func (g *Game) drawQueues() {
	p := g.queues
	p.Reset()

	p.Add(fmt.Sprintf("%s (%d)", control.LandingQueueName, g.sim.LandingQueue.Len()), nil)
	for _, ac := range g.sim.LandingQueue.InOrder() {
		p.Add(fmt.Sprintf("  %-8s fuel %3d%%", ac.Callsign, ac.FuelPercentRemaining()), aircraftMarker(ac))
	}
	p.Add(fmt.Sprintf("%s (%d)", control.TakeoffQueueName, g.sim.TakeoffQueue.Len()), nil)
	for _, ac := range g.sim.TakeoffQueue.InOrder() {
		p.Add("  "+ac.Callsign.String(), aircraftMarker(ac))
	}
	p.Add(fmt.Sprintf("%s (%d)", control.LoadingAircraftName, g.sim.Loading.Len()), nil)
	for _, ac := range g.sim.Loading.Aircraft() {
		ticks, _ := g.sim.Loading.Get(ac)
		p.Add(fmt.Sprintf("  %-8s %d ticks", ac.Callsign, ticks), aircraftMarker(ac))
	}
}

func (g *Game) drawFleet() {
	p := g.fleet
	p.Reset()
	g.fleetIDs = g.fleetIDs[:0]
	for _, ac := range g.sim.Aircraft {
		text := fmt.Sprintf("%s fuel %d%% load %d%%", ac, ac.FuelPercentRemaining(), ac.OccupancyLevel())
		if ac.Callsign == g.selectedAircraftID {
			text = "> " + text
		}
		p.Add(text, aircraftMarker(ac))
		g.fleetIDs = append(g.fleetIDs, ac.Callsign)
	}
}

func (g *Game) drawRadio() {
	p := g.radio
	p.Reset()
	msgs := g.sim.RadioLog
	if n := p.Capacity(); len(msgs) > n {
		msgs = msgs[len(msgs)-n:]
	}
	for _, msg := range msgs {
		var marker color.Color
		if msg.IsUrgent {
			marker = ui.Urgent
		}
		p.Add(msg.String(), marker)
	}
}

func aircraftMarker(ac *aircraft.Aircraft) color.Color {
	switch {
	case ac.HasEmergency():
		return ui.Urgent
	case ac.FuelPercentRemaining() <= control.CriticalFuelPercent:
		return ui.Caution
	default:
		return ui.Normal
	}
}

func main() {
	var configPath, saveDir, logLevel string

	root := &cobra.Command{
		Use:          "client",
		Short:        "Airport control tower display",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			closer, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			if saveDir == "" {
				saveDir = cfg.SaveDir
			}
			sim, err := savefile.Load(saveDir, cfg.Files)
			if err != nil {
				return err
			}

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle("Tower Simulator - " + saveDir)
			ebiten.SetVsyncEnabled(true)

			err = ebiten.RunGame(NewGame(cfg, sim, saveDir))
			if errors.Is(err, ebiten.Termination) {
				return nil
			}
			return err
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.Flags().StringVar(&saveDir, "save", "", "save directory to load (default from config)")
	root.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn, error or off")

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
