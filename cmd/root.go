// Package cmd wires flags, configuration and logging, then runs the
// turn loop.
package cmd

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ShomRinn/LabAdventures/pkg/game/config"
	"github.com/ShomRinn/LabAdventures/pkg/game/dungeon"
	"github.com/ShomRinn/LabAdventures/pkg/game/gameplay"
	"github.com/ShomRinn/LabAdventures/pkg/game/renderer"
	"github.com/ShomRinn/LabAdventures/pkg/game/renderer/tui"
	"github.com/ShomRinn/LabAdventures/pkg/game/state"
)

var (
	settings   = config.Default()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "labadventures",
	Short: "Explore a procedurally generated multi-floor maze",
	Long: `labadventures carves a stack of maze floors, hides a few secret
doors in the walls, links the floors with staircases and drops you in
under fog of war.

Move with the arrow keys (or hjkl / nsew), press f to search the walls
around you and t to take a staircase.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, &loaded)
			settings = loaded
		}
		if err := settings.Validate(); err != nil {
			return err
		}

		setupLogging()
		return run()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().IntVarP(&settings.Width, "width", "w", settings.Width, "Width of each floor, in cells")
	rootCmd.Flags().IntVar(&settings.Height, "height", settings.Height, "Height of each floor, in cells")
	rootCmd.Flags().IntVarP(&settings.Floors, "floors", "n", settings.Floors, "Number of maze floors")
	rootCmd.Flags().IntVarP(&settings.ViewRadius, "radius", "r", settings.ViewRadius, "Fog-of-war view radius (Manhattan distance)")
	rootCmd.Flags().Float64Var(&settings.SecretDoorChance, "secret-doors", settings.SecretDoorChance, "Per-wall probability of a secret door")
	rootCmd.Flags().Int64Var(&settings.Seed, "seed", settings.Seed, "World seed (0 = time-based)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML settings file")
	rootCmd.Flags().StringVar(&settings.LogFile, "log-file", settings.LogFile, "Write logs to this file (rotated)")
	rootCmd.Flags().BoolVar(&settings.Debug, "debug", settings.Debug, "Enable debug logging")
}

// applyFlagOverrides re-applies explicitly set flags on top of file
// values, so precedence stays flags > file > defaults.
func applyFlagOverrides(cmd *cobra.Command, loaded *config.Settings) {
	if cmd.Flags().Changed("width") {
		loaded.Width = settings.Width
	}
	if cmd.Flags().Changed("height") {
		loaded.Height = settings.Height
	}
	if cmd.Flags().Changed("floors") {
		loaded.Floors = settings.Floors
	}
	if cmd.Flags().Changed("radius") {
		loaded.ViewRadius = settings.ViewRadius
	}
	if cmd.Flags().Changed("secret-doors") {
		loaded.SecretDoorChance = settings.SecretDoorChance
	}
	if cmd.Flags().Changed("seed") {
		loaded.Seed = settings.Seed
	}
	if cmd.Flags().Changed("log-file") {
		loaded.LogFile = settings.LogFile
	}
	if cmd.Flags().Changed("debug") {
		loaded.Debug = settings.Debug
	}
}

// setupLogging routes logs away from the TUI: to a rotated file when
// configured, to stderr in debug mode, otherwise discarded.
func setupLogging() {
	if settings.Debug {
		log.SetLevel(log.DebugLevel)
	}

	switch {
	case settings.LogFile != "":
		log.SetOutput(&lumberjack.Logger{
			Filename:   settings.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
		})
	case settings.Debug:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}
}

func run() error {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.WithField("seed", seed).Debug("world seed")

	d, err := dungeon.New(settings.Floors, settings.Height, settings.Width, settings.SecretDoorChance, nil, rng)
	if err != nil {
		return err
	}

	session := state.NewSession(d, settings.ViewRadius)
	session.AddMessage(renderer.ApplyMarkup("GT{You wake up in an unfamiliar maze.}"))
	if d.FloorCount() > 1 {
		session.AddMessage(renderer.ApplyMarkup("Find the stairs ITEM{>} to go deeper."))
	}

	var r renderer.Renderer = tui.New()
	r.Init()

	for !session.Done {
		r.Clear()
		r.RenderFrame(session)
		gameplay.ProcessIntent(session, r.GetInput())
	}

	r.ShowMessage(gotext.Get("Goodbye!"))
	return nil
}
