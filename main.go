package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"github.com/leonelquinteros/gotext"
	"github.com/pkg/errors"

	"tilegrid/pkg/game/config"
	"tilegrid/pkg/game/devtools"
	"tilegrid/pkg/game/generator"
	"tilegrid/pkg/game/menu"
	"tilegrid/pkg/game/renderer"
	"tilegrid/pkg/game/renderer/ebiten"
	"tilegrid/pkg/game/renderer/tui"
	"tilegrid/pkg/game/state"
	"tilegrid/pkg/game/tiles"
)

const VERSION = "v0.1.0"

const configFile = "tilegrid.json"

var cli struct {
	Logging string          `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version VersionFlag     `help:"Print version information and quit" name:"version" short:"v"`
	Config  kong.ConfigFlag `help:"JSON file with flag defaults." placeholder:"<config-file>"`

	Width     int               `help:"Number of columns." default:"${width}"`
	Height    int               `help:"Number of rows." default:"${height}"`
	Seed      int64             `help:"Seed for the board. 0 picks one from the clock." default:"0"`
	Palette   []string          `help:"Tile types, one per flag. Defaults to the four image tiles." placeholder:"<type>"`
	Generator string            `help:"Board generator." enum:"${generators}" default:"${generator}" short:"g"`
	TileSize  int               `help:"Tile size in pixels for the window renderer." default:"${tileSize}"`
	Locale    string            `help:"Locale for UI strings." default:"${locale}"`
	Bind      map[string]string `help:"Rebind an action to a key, e.g. --bind select=x." placeholder:"<action>=<key>"`

	Play struct {
		Renderer string `help:"Renderer to use." enum:"tui,ebiten" default:"tui" short:"r"`
		Dump     bool   `help:"Write the board and its marks to board.txt on exit."`
	} `cmd:"" default:"1" help:"Shows the board. Click to select a region, hover to preview one."`
	Region struct {
		Index int `help:"Start cell index (row*width + col)." default:"-1" short:"i"`
		Row   int `help:"Start cell row, used with --col." default:"-1"`
		Col   int `help:"Start cell column, used with --row." default:"-1"`
	} `cmd:"" help:"Prints the region around one start cell."`
	Dump struct{} `cmd:"" help:"Prints the board with one letter per tile type."`
	Keys struct{} `cmd:"" help:"Prints the keyboard bindings."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("tilegrid"),
		kong.Description("Finds and highlights connected regions of same-type tiles."),
		kong.Configuration(kong.JSON, configFile),
		kong.Vars{
			"version":    VERSION,
			"width":      strconv.Itoa(config.DefaultWidth),
			"height":     strconv.Itoa(config.DefaultHeight),
			"tileSize":   strconv.Itoa(config.DefaultTileSize),
			"locale":     config.DefaultLocale,
			"generator":  config.DefaultGenerator,
			"generators": strings.Join(generator.Names(), ","),
		},
	)

	initLogging(cli.Logging)
	initLocale(cli.Locale)
	for action, code := range cli.Bind {
		sigolo.FatalCheck(menu.Rebind(action, code))
	}

	if ctx.Command() == "keys" {
		for _, item := range menu.GetMenuItems() {
			fmt.Println(item.GetLabel())
		}
		return
	}

	cfg := configFromCLI()
	seed := cfg.ResolvedSeed()
	board, err := cfg.NewBoard(seed)
	sigolo.FatalCheck(err)
	sigolo.Debugf("Generated %dx%d board with the %s generator, seed %d", cfg.Width, cfg.Height, cfg.Generator, seed)

	switch ctx.Command() {
	case "play":
		sigolo.FatalCheck(play(board, cfg))
	case "region":
		start, err := regionStart(board)
		sigolo.FatalCheck(err)
		sigolo.FatalCheck(devtools.WriteRegion(os.Stdout, board, start))
	case "dump":
		sigolo.FatalCheck(devtools.WriteBoard(os.Stdout, board, nil))
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

func initLogging(level string) {
	if strings.ToLower(level) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(level) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(level) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", level)
	}
}

// initLocale loads translations from locales/<locale>/LC_MESSAGES/default.po.
// Missing files leave the English strings in place.
func initLocale(locale string) {
	gotext.Configure("locales", locale, "default")
}

func configFromCLI() config.Config {
	cfg := config.Default()
	cfg.Width = cli.Width
	cfg.Height = cli.Height
	cfg.Seed = cli.Seed
	cfg.Generator = cli.Generator
	cfg.Renderer = cli.Play.Renderer
	cfg.TileSize = cli.TileSize
	cfg.Locale = cli.Locale
	if len(cli.Palette) > 0 {
		cfg.Palette = cli.Palette
	}
	return cfg
}

// regionStart resolves the region command's start cell from --index or --row/--col
func regionStart(board *tiles.Board) (int, error) {
	if cli.Region.Index >= 0 {
		return cli.Region.Index, nil
	}
	if cli.Region.Row < 0 || cli.Region.Col < 0 {
		return 0, errors.New("region needs --index or both --row and --col")
	}
	return board.Grid().ToIndex(cli.Region.Row, cli.Region.Col)
}

func play(board *tiles.Board, cfg config.Config) error {
	g := state.NewGame(board)

	switch cfg.Renderer {
	case config.RendererEbiten:
		renderer.SetRenderer(ebiten.New(cfg.TileSize))
	default:
		renderer.SetRenderer(tui.New())
	}
	if err := renderer.Init(); err != nil {
		return errors.Wrapf(err, "initializing %s renderer", cfg.Renderer)
	}

	g.AddMessage(renderer.FormatText("GT{Hover a tile to preview its region, click to select it}"))
	if err := renderer.Run(g); err != nil {
		return err
	}

	if cli.Play.Dump {
		path, err := devtools.DumpBoardToFile(board, g.Snapshot().Layers)
		if err != nil {
			return err
		}
		sigolo.Infof("Board written to %s", path)
	}
	return nil
}
