package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"walkabout/internal/config"
	"walkabout/internal/texgen"
)

var CLI struct {
	Config string `help:"Configuration file." short:"c" default:"${config_path}" env:"WALKABOUT_CONFIG"`
	Debug  bool   `help:"Enable debug logging."`

	Run struct{} `cmd:"" default:"1" help:"Open the window and walk around."`

	Texture struct {
		Out  string `arg:"" name:"out" help:"Where to write the PNG." type:"path"`
		Seed uint64 `help:"Pattern seed; 0 picks one from the clock."`
		Size int    `help:"Edge length in pixels; 0 uses the configured size."`
	} `cmd:"" help:"Write the procedural stone texture to a PNG file."`

	Defaults struct {
		Write bool `help:"Save to the --config path instead of printing."`
	} `cmd:"" name:"config" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("walkabout"),
		kong.Description("a first-person walk on a stone platform"),
		kong.UsageOnError(),
		kong.Vars{"config_path": config.DefaultPath},
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	switch ctx.Command() {
	case "run":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			writeError(err)
		}
		if CLI.Debug {
			cfg.Log.Level = zerolog.LevelDebugValue
		}
		if err := run(cfg); err != nil {
			writeError(err)
		}
	case "texture <out>":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			writeError(err)
		}
		opts := texgen.Options{
			Size:     cfg.Texture.Size,
			Speckles: cfg.Texture.Speckles,
			Streaks:  cfg.Texture.Streaks,
			Seed:     cfg.Texture.Seed,
		}
		if CLI.Texture.Seed != 0 {
			opts.Seed = CLI.Texture.Seed
		}
		if CLI.Texture.Size > 0 {
			opts.Size = CLI.Texture.Size
		}
		if err := texgen.Save(CLI.Texture.Out, texgen.Stone(opts)); err != nil {
			writeError(err)
		}
	case "config":
		if CLI.Defaults.Write {
			if err := config.Save(CLI.Config, config.Default()); err != nil {
				writeError(err)
			}
			fmt.Fprintf(os.Stderr, "wrote %s\n", CLI.Config)
			return
		}
		data, err := config.Marshal(config.Default())
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(data)
	}
}
